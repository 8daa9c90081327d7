package hawk

import (
	"crypto/hmac"
	"encoding/base64"
)

// computeMAC returns base64(HMAC(creds.Key, normalized)) under the
// credential's configured algorithm. The algorithm used is always the
// credential's, never one advertised on the wire: a peer that signed with
// a different algorithm than the verifier's stored credential simply
// fails the comparison in compareMAC, not a distinguished
// algorithm-mismatch error.
func computeMAC(creds Credentials, normalized []byte) string {
	m := hmac.New(creds.Algorithm.New, creds.Key)
	m.Write(normalized)
	return base64.StdEncoding.EncodeToString(m.Sum(nil))
}

// compareMAC reports whether two base64-encoded values are equal, in
// constant time with respect to the decoded byte contents (hmac.Equal).
// Used both for MAC comparison and payload-hash comparison. Mismatches
// never reveal which normalized-string field (or hash) differed; this
// package only ever returns KindMacMismatch or KindMisComputedContentHash,
// not a diff.
func compareMAC(got, want string) bool {
	gotBytes, err1 := base64.StdEncoding.DecodeString(got)
	wantBytes, err2 := base64.StdEncoding.DecodeString(want)
	if err1 != nil || err2 != nil {
		return false
	}
	return hmac.Equal(gotBytes, wantBytes)
}
