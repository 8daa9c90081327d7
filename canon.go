package hawk

import (
	"crypto"
	"encoding/base64"
	"strconv"
	"strings"
)

// artifacts holds the fields that feed a MAC computation, shared by the
// request and response normalized strings. A response artifact set carries
// the request's method/host/port/resource, timestamp and nonce.
type artifacts struct {
	method    string
	host      string
	port      string
	resource  string
	timestamp int64
	nonce     string
	hash      string
	ext       string
	app       string
	dlg       string
}

// normalizeRequest builds the "hawk.1.header" normalized string. It is a
// pure function of a and the credentials id is deliberately NOT part of
// it: the id only selects which key verifies the MAC, never the bytes
// that are MAC'd.
func normalizeRequest(a artifacts) []byte {
	return normalize("hawk.1.header", a)
}

// normalizeResponse builds the "hawk.1.response" normalized string. The
// caller is responsible for binding: a's timestamp and nonce must be the
// request's, not freshly generated ones.
func normalizeResponse(a artifacts) []byte {
	return normalize("hawk.1.response", a)
}

func normalize(prefix string, a artifacts) []byte {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('\n')
	b.WriteString(strconv.FormatInt(a.timestamp, 10))
	b.WriteByte('\n')
	b.WriteString(a.nonce)
	b.WriteByte('\n')
	b.WriteString(a.method)
	b.WriteByte('\n')
	b.WriteString(a.resource)
	b.WriteByte('\n')
	b.WriteString(a.host)
	b.WriteByte('\n')
	b.WriteString(a.port)
	b.WriteByte('\n')
	b.WriteString(a.hash)
	b.WriteByte('\n')
	b.WriteString(a.ext)
	b.WriteByte('\n')
	if a.app != "" || a.dlg != "" {
		b.WriteString(a.app)
		b.WriteByte('\n')
		b.WriteString(a.dlg)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// normalizeContentType reduces a Content-Type header value to its
// type/subtype prefix: trimmed, lowercased, parameters (everything from
// the first ';' on) dropped. This is what lets a client send
// "application/json; charset=utf8" and a server send
// "application/json; charset=other" and still agree on the payload hash.
func normalizeContentType(contentType string) string {
	ct := strings.TrimSpace(contentType)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return lowerASCII(strings.TrimSpace(ct))
}

// payloadHash computes base64(H("hawk.1.payload\n" + contentType + "\n" + content + "\n"))
// under the given algorithm.
func payloadHash(algo crypto.Hash, contentType string, content []byte) string {
	h := algo.New()
	h.Write([]byte("hawk.1.payload\n"))
	h.Write([]byte(normalizeContentType(contentType)))
	h.Write([]byte{'\n'})
	h.Write(content)
	h.Write([]byte{'\n'})
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// resolvePayloadHash applies the payload-hashing rule shared by Sender and
// Receiver: content and content-type must be supplied together or omitted
// together (anything else is KindValueError); when both are omitted,
// hashing still runs over the empty payload unless alwaysHash is false,
// in which case no hash is computed and included reports false.
//
// "Supplied" is judged by len(content) > 0, not content != nil: a caller
// that reads a present-but-empty HTTP body (ioutil.ReadAll returns a
// non-nil, zero-length slice for that) must be treated the same as a
// caller that passed nil, or an empty-body request with no declared
// content-type would spuriously fail as KindValueError instead of
// succeeding the way a request with no body at all does.
func resolvePayloadHash(algo crypto.Hash, content []byte, contentType string, alwaysHash bool) (hash string, included bool, err error) {
	hasContent := len(content) > 0
	hasType := contentType != ""

	switch {
	case hasContent != hasType:
		return "", false, newError(KindValueError, "content and content_type must both be supplied or both omitted")
	case !hasContent && !hasType && !alwaysHash:
		return "", false, nil
	default:
		return payloadHash(algo, contentType, content), true, nil
	}
}
