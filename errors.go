package hawk

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the typed error conditions a Hawk exchange can raise.
// Callers should switch on Kind rather than comparing error strings.
type Kind int

const (
	// KindInvalidCredentials: a credentials record is absent or structurally
	// malformed (missing id, key, or algorithm).
	KindInvalidCredentials Kind = iota
	// KindCredentialsLookupError: the host-supplied CredentialsLookupFunc
	// returned an error.
	KindCredentialsLookupError
	// KindBadHeaderValue: a header field to be emitted or parsed contains
	// forbidden characters or is otherwise structurally invalid.
	KindBadHeaderValue
	// KindMisComputedContentHash: the payload hash is present but does not
	// match the body, or is absent when one is required.
	KindMisComputedContentHash
	// KindMacMismatch: the normalized-string MAC disagrees with the one
	// supplied. Deliberately never reports which field differed.
	KindMacMismatch
	// KindTokenExpired: the claimed timestamp falls outside the permitted
	// skew window.
	KindTokenExpired
	// KindAlreadyProcessed: the nonce gate reported the (nonce, ts, id)
	// triple as already seen.
	KindAlreadyProcessed
	// KindValueError: caller-supplied inputs are mutually inconsistent
	// (e.g. content without content-type).
	KindValueError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindCredentialsLookupError:
		return "credentials lookup error"
	case KindBadHeaderValue:
		return "bad header value"
	case KindMisComputedContentHash:
		return "mis-computed content hash"
	case KindMacMismatch:
		return "mac mismatch"
	case KindTokenExpired:
		return "token expired"
	case KindAlreadyProcessed:
		return "already processed"
	case KindValueError:
		return "value error"
	default:
		return "unknown hawk error"
	}
}

// Error is the single error type this package returns. It carries only
// the fields named in the error taxonomy: a Kind, a human message, and,
// for KindTokenExpired, the verifier's local clock so the peer can
// resynchronize.
type Error struct {
	Kind    Kind
	Message string

	// LocaltimeInSeconds is set only for KindTokenExpired. It is public API:
	// callers may surface it to a peer (e.g. as a WWW-Authenticate hint) so
	// the peer can correct its clock.
	LocaltimeInSeconds int64

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes any wrapped cause so errors.Is/errors.As work across a
// CredentialsLookupError boundary.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a *Error with the same Kind, letting
// callers write `errors.Is(err, &hawk.Error{Kind: hawk.KindMacMismatch})`-
// style comparisons via a Kind-only sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapLookupError turns an arbitrary error raised by a host-supplied
// CredentialsLookupFunc into a KindCredentialsLookupError, preserving the
// original as the wrapped cause without leaking its concrete type —
// mirrors errors.Wrap(err, "Hawk: ...") in go-syncstorage's hawkHandler.
func wrapLookupError(err error) *Error {
	return &Error{
		Kind:    KindCredentialsLookupError,
		Message: errors.Wrap(err, "credentials lookup failed").Error(),
		cause:   err,
	}
}

// KindOf returns the Kind of err if it is (or wraps) a *Error, and false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
