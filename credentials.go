package hawk

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Algorithm identifies the hash used to compute a MAC and a payload hash.
// Hawk matches algorithm names case-insensitively on the wire; Credentials
// carries the resolved crypto.Hash so callers never deal with strings
// directly once credentials have been constructed.
type Algorithm = crypto.Hash

// Supported algorithms. SHA256 is required by the protocol; the others are
// accepted when a credentials record names them.
const (
	SHA1   = crypto.SHA1
	SHA256 = crypto.SHA256
	SHA384 = crypto.SHA384
	SHA512 = crypto.SHA512
)

// algorithmNames maps the wire/config name (matched case-insensitively) to
// the resolved crypto.Hash. Kept separate from Algorithm so credentials
// loaded from config files or environment variables can be resolved with
// ResolveAlgorithm.
var algorithmNames = map[string]crypto.Hash{
	"sha1":   SHA1,
	"sha256": SHA256,
	"sha384": SHA384,
	"sha512": SHA512,
}

// ResolveAlgorithm looks up an algorithm by its Hawk-style name, matched
// case-insensitively. It reports ok=false for unrecognized names.
func ResolveAlgorithm(name string) (Algorithm, bool) {
	a, ok := algorithmNames[lowerASCII(name)]
	return a, ok
}

// Credentials is a Hawk key pair: the identifier a Receiver looks up by,
// the shared secret, and the algorithm both sides must agree on.
//
// Credentials are immutable once constructed; nothing in this package
// mutates a Credentials value after validation.
type Credentials struct {
	ID        string
	Key       []byte
	Algorithm Algorithm
}

// Validate performs the structural check described by the credentials
// validator: id, key, and algorithm must all be present, and the algorithm
// must be a hash this package knows how to use.
func (c Credentials) Validate() error {
	if c.ID == "" {
		return newError(KindInvalidCredentials, "credentials missing id")
	}
	if len(c.Key) == 0 {
		return newError(KindInvalidCredentials, "credentials missing key")
	}
	if !c.Algorithm.Available() {
		return newError(KindInvalidCredentials, "credentials missing or unsupported algorithm")
	}
	return nil
}
