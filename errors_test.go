package hawk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := newError(KindMacMismatch, "request mac does not match")
	assert.Equal(t, "mac mismatch: request mac does not match", err.Error())

	bare := &Error{Kind: KindTokenExpired}
	assert.Equal(t, "token expired", bare.Error())
}

func TestKindOf(t *testing.T) {
	err := newError(KindValueError, "bad input")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindValueError, kind)

	_, ok = KindOf(errors.New("not a hawk error"))
	assert.False(t, ok)
}

func TestErrorIs(t *testing.T) {
	a := newError(KindMacMismatch, "x")
	b := newError(KindMacMismatch, "y")
	c := newError(KindTokenExpired, "z")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestWrapLookupError(t *testing.T) {
	cause := errors.New("database unavailable")
	wrapped := wrapLookupError(cause)
	assert.Equal(t, KindCredentialsLookupError, wrapped.Kind)
	assert.ErrorIs(t, wrapped, cause)
}
