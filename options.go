package hawk

import "time"

// Logger is the diagnostic-tracing capability Sender and Receiver accept.
// It never sees secret material; it logs correlation ids, chosen nonces,
// and request timestamps. A nil Logger is never used internally —
// WithLogger ignores nil, and the default is noopLogger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// CredentialsLookupFunc resolves a credentials id to a Credentials
// record. Any error it returns is wrapped as KindCredentialsLookupError;
// a nil, nil return (no error, no credentials) is treated the same way a
// host-specific "not found" error would be, surfacing as a lookup error
// rather than KindInvalidCredentials, since the lookup itself is what
// failed.
type CredentialsLookupFunc func(id string) (*Credentials, error)

// options carries every tunable behavior a Sender or Receiver accepts.
// Unexported: callers never construct this directly, only through Option
// values passed to NewSender/NewReceiver.
type options struct {
	timestampSkew          time.Duration
	localtimeOffset        time.Duration
	alwaysHashContent      bool
	acceptUntrustedContent bool
	seenNonce              NonceSeen
	nonce                  string
	timestamp              int64
	ext                    string
	app                    string
	dlg                    string
	clock                  Clock
	logger                 Logger
}

func defaultOptions() options {
	return options{
		timestampSkew:     60 * time.Second,
		alwaysHashContent: true,
		clock:             realClock{},
		logger:            noopLogger{},
	}
}

// Option configures a Sender or Receiver.
type Option func(*options)

// WithTimestampSkew sets the tolerance window around the verifier's
// clock. Default 60s.
func WithTimestampSkew(d time.Duration) Option {
	return func(o *options) { o.timestampSkew = d }
}

// WithLocaltimeOffset adds a signed offset to the local clock before the
// skew comparison, to accommodate a peer known to run ahead or behind.
func WithLocaltimeOffset(d time.Duration) Option {
	return func(o *options) { o.localtimeOffset = d }
}

// WithAlwaysHashContent controls whether payload hashing is mandatory
// when no content/content-type is supplied. Default true; set false to
// permit signing/verifying requests with no body and no declared
// content-type.
func WithAlwaysHashContent(v bool) Option {
	return func(o *options) { o.alwaysHashContent = v }
}

// WithAcceptUntrustedContent permits an absent payload hash on verify.
// Default false. A present hash must still validate even with this set.
func WithAcceptUntrustedContent(v bool) Option {
	return func(o *options) { o.acceptUntrustedContent = v }
}

// WithSeenNonce installs the replay-cache probe.
func WithSeenNonce(f NonceSeen) Option {
	return func(o *options) { o.seenNonce = f }
}

// WithNonce overrides the automatically generated nonce. Test-only.
func WithNonce(n string) Option {
	return func(o *options) { o.nonce = n }
}

// WithTimestamp overrides the automatically generated timestamp.
// Test-only.
func WithTimestamp(ts int64) Option {
	return func(o *options) { o.timestamp = ts }
}

// WithExt sets the opaque ext value carried under the MAC.
func WithExt(ext string) Option {
	return func(o *options) { o.ext = ext }
}

// WithApp sets the Oz-delegation app identifier.
func WithApp(app string) Option {
	return func(o *options) { o.app = app }
}

// WithDlg sets the Oz-delegation dlg identifier. Only meaningful together
// with WithApp.
func WithDlg(dlg string) Option {
	return func(o *options) { o.dlg = dlg }
}

// WithClock injects a Clock, overriding the wall-clock default. Intended
// for tests.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger installs a diagnostic logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
