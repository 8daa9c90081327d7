package hawk

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"unsafe"
)

// NonceSeen reports whether the (nonce, ts) pair for a given credentials
// id has already been observed within the skew window. A true return
// fails verification with KindAlreadyProcessed.
//
// Implementations that back this with shared storage should make the
// check-and-record atomic (test-and-set): this package only calls it
// once per verification, after the MAC and clock gates have already
// passed, so an implementation that merely "checks" without recording is
// not replay-safe on its own.
type NonceSeen func(nonce string, ts int64, id string) bool

const (
	letterBytes   = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6
	letterIdxMask = 1<<letterIdxBits - 1
	letterIdxMax  = 63 / letterIdxBits
)

var randSrc = rand.NewSource(cryptoSeed())

// cryptoSeed reads an int64 seed from crypto/rand rather than
// time.Now().UnixNano(), so two processes started in the same clock tick
// don't hand out colliding nonces.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic("hawk: failed to seed nonce source: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// NewNonce returns a new n-byte nonce drawn from an alphanumeric alphabet.
// The bit-packing approach is András Belicza's
// (https://stackoverflow.com/a/31832326): draw 63 bits at a time from the
// source and consume letterIdxBits of them per character, to avoid
// calling the RNG once per output byte.
func NewNonce(n int) string {
	if n < 1 {
		n = 6
	}
	b := make([]byte, n)
	for i, cache, remain := n-1, randSrc.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = randSrc.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return *(*string)(unsafe.Pointer(&b))
}

// checkNonce applies the nonce gate: if seen reports the triple as
// already observed, verification fails with KindAlreadyProcessed. A nil
// seen disables replay protection entirely (the zero value is "accept
// everything"), which callers should only use in tests.
func checkNonce(seen NonceSeen, nonce string, ts int64, id string) error {
	if seen == nil {
		return nil
	}
	if seen(nonce, ts, id) {
		return newError(KindAlreadyProcessed, "nonce %q already processed for id %q", nonce, id)
	}
	return nil
}
