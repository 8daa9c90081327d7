package hawk

import (
	"github.com/google/uuid"
)

// Receiver is the server-side half of a Hawk exchange: it verifies one
// incoming request and then signs any number of responses bound to it.
type Receiver struct {
	creds   Credentials
	opts    options
	traceID string

	method  string
	target  requestTarget
	reqArts artifacts
}

// NewReceiver parses requestHeader, looks up credentials for the header's
// id via lookup, verifies the MAC, payload hash, clock, and nonce gates
// (in that order — MAC before clock before nonce, so an unauthenticated
// request can never poison the nonce cache), and returns a Receiver ready
// to sign a bound response.
func NewReceiver(lookup CredentialsLookupFunc, requestHeader, method, rawurl string, content []byte, contentType string, opts ...Option) (*Receiver, error) {
	parsed, err := parseHeader(requestHeader)
	if err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(parsed.TS)
	if err != nil {
		return nil, err
	}

	creds, err := lookupCredentials(lookup, parsed.ID)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	target, err := parseRequestTarget(rawurl)
	if err != nil {
		return nil, err
	}

	hash, included, err := resolvePayloadHash(creds.Algorithm, content, contentType, o.alwaysHashContent)
	if err != nil {
		return nil, err
	}
	if parsed.HasHash {
		if !compareMAC(parsed.Hash, hash) {
			return nil, newError(KindMisComputedContentHash, "request payload hash does not match body")
		}
	} else if included && !o.acceptUntrustedContent {
		return nil, newError(KindMisComputedContentHash, "request has no payload hash")
	}

	reqArts := artifacts{
		method:    method,
		host:      target.host,
		port:      target.port,
		resource:  target.resource,
		timestamp: ts,
		nonce:     parsed.Nonce,
		hash:      parsed.Hash,
		ext:       parsed.Ext,
		app:       parsed.App,
		dlg:       parsed.Dlg,
	}

	mac := computeMAC(creds, normalizeRequest(reqArts))
	if !compareMAC(parsed.MAC, mac) {
		return nil, newError(KindMacMismatch, "request mac does not match")
	}

	if parsed.HasHash {
		if !compareMAC(parsed.Hash, hash) {
			return nil, newError(KindMisComputedContentHash, "request payload hash does not match body")
		}
	} else if included && !o.acceptUntrustedContent {
		return nil, newError(KindMisComputedContentHash, "request has no payload hash")
	}

	if err := checkTimestamp(o.clock, ts, o.timestampSkew, o.localtimeOffset); err != nil {
		return nil, err
	}
	if err := checkNonce(o.seenNonce, parsed.Nonce, ts, creds.ID); err != nil {
		return nil, err
	}

	traceID := uuid.NewString()
	o.logger.Debugf("hawk receiver %s: verified %s %s nonce=%s", traceID, method, target.resource, parsed.Nonce)

	r := &Receiver{
		creds:   creds,
		opts:    o,
		traceID: traceID,
		method:  method,
		target:  target,
		reqArts: reqArts,
	}
	return r, nil
}

// Respond builds a Server-Authorization header bound to the request this
// Receiver just verified: same id (implicitly, via the shared key),
// timestamp, nonce, app, and dlg. The Receiver never changes the
// timestamp or nonce on the response — that's the only guarantee the
// Sender has that a response is a reply to its own request, not a replay
// of an earlier one.
func (r *Receiver) Respond(content []byte, contentType string, ext string) (string, error) {
	if err := checkOpaque("ext", ext); err != nil {
		return "", err
	}

	hash, _, err := resolvePayloadHash(r.creds.Algorithm, content, contentType, r.opts.alwaysHashContent)
	if err != nil {
		return "", err
	}

	respArts := artifacts{
		method:    r.method,
		host:      r.target.host,
		port:      r.target.port,
		resource:  r.target.resource,
		timestamp: r.reqArts.timestamp,
		nonce:     r.reqArts.nonce,
		hash:      hash,
		ext:       ext,
		app:       r.reqArts.app,
		dlg:       r.reqArts.dlg,
	}
	mac := computeMAC(r.creds, normalizeResponse(respArts))

	attrs := []headerAttr{
		{"id", r.creds.ID},
		{"ts", itoa(respArts.timestamp)},
		{"nonce", respArts.nonce},
	}
	if hash != "" {
		attrs = append(attrs, headerAttr{"hash", hash})
	}
	if ext != "" {
		attrs = append(attrs, headerAttr{"ext", ext})
	}
	attrs = append(attrs, headerAttr{"mac", mac})
	if respArts.app != "" {
		attrs = append(attrs, headerAttr{"app", respArts.app})
		if respArts.dlg != "" {
			attrs = append(attrs, headerAttr{"dlg", respArts.dlg})
		}
	}

	r.opts.logger.Debugf("hawk receiver %s: responding", r.traceID)
	return buildHeader(attrs)
}

func parseTimestamp(s string) (int64, error) {
	n, err := parseInt64(s)
	if err != nil {
		return 0, newError(KindBadHeaderValue, "invalid ts %q", s)
	}
	return n, nil
}

func lookupCredentials(lookup CredentialsLookupFunc, id string) (Credentials, error) {
	if lookup == nil {
		return Credentials{}, newError(KindCredentialsLookupError, "no credentials lookup configured")
	}
	creds, err := lookup(id)
	if err != nil {
		return Credentials{}, wrapLookupError(err)
	}
	if creds == nil {
		return Credentials{}, wrapLookupError(newError(KindCredentialsLookupError, "no credentials for id %q", id))
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return *creds, nil
}
