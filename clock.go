package hawk

import "time"

// Clock supplies the current time to the skew gate. Production code uses
// realClock; tests inject a fixed clock instead of reaching for a
// process-wide time hook.
type Clock interface {
	Now() time.Time
}

// realClock is the default Clock, backed by time.Now.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// checkTimestamp applies the clock gate: accept iff
// |(clock.Now() + offset) - ts| <= skew. On rejection it returns
// KindTokenExpired carrying the verifier's local time so the peer can
// resynchronize.
func checkTimestamp(clock Clock, ts int64, skew, offset time.Duration) error {
	now := clock.Now().Add(offset)
	delta := now.Unix() - ts
	if delta < 0 {
		delta = -delta
	}
	if time.Duration(delta)*time.Second > skew {
		return &Error{
			Kind:               KindTokenExpired,
			Message:            "timestamp outside the permitted skew window",
			LocaltimeInSeconds: clock.Now().Unix(),
		}
	}
	return nil
}
