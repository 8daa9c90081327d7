package noncestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeenTestAndSet(t *testing.T) {
	s := New(time.Minute)

	assert.False(t, s.Seen("abc", 1000, "my-id"))
	assert.True(t, s.Seen("abc", 1000, "my-id"))
}

func TestSeenDistinguishesIdAndTimestamp(t *testing.T) {
	s := New(time.Minute)

	assert.False(t, s.Seen("abc", 1000, "id-a"))
	assert.False(t, s.Seen("abc", 1000, "id-b"))
	assert.False(t, s.Seen("abc", 1001, "id-a"))
}

func TestLen(t *testing.T) {
	s := New(time.Minute)
	assert.Equal(t, 0, s.Len())
	s.Seen("a", 1, "id")
	s.Seen("b", 2, "id")
	assert.Equal(t, 2, s.Len())
}

func TestEviction(t *testing.T) {
	s := New(time.Millisecond)
	s.Seen("a", 1, "id")
	time.Sleep(5 * time.Millisecond)
	// A fresh Seen call triggers the janitor sweep before recording itself.
	s.Seen("b", 2, "id")
	assert.Equal(t, 1, s.Len(), "expired entry should have been evicted, leaving only the newest")
}
