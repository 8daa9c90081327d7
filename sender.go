package hawk

import (
	"github.com/google/uuid"
)

// Sender is the client-side half of a Hawk exchange: it signs one
// request, retains the artifacts that produced the signature, and
// verifies any number of server responses bound to that same request.
//
// A Sender is single-use per exchange: construct one per outgoing
// request, not one per Client.
type Sender struct {
	creds   Credentials
	opts    options
	traceID string

	method  string
	target  requestTarget
	reqArts artifacts
}

// NewSender validates creds, chooses a timestamp and nonce (unless
// overridden via WithTimestamp/WithNonce), computes the payload hash
// (subject to the rules in resolvePayloadHash), and returns a Sender
// holding the request artifacts: RequestHeader builds the normalized
// request string and Authorization header from them, and AcceptResponse
// uses them to verify a bound response.
func NewSender(creds Credentials, method, rawurl string, content []byte, contentType string, opts ...Option) (*Sender, error) {
	if err := creds.Validate(); err != nil {
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

	ts := o.timestamp
	if ts == 0 {
		ts = o.clock.Now().Add(o.localtimeOffset).Unix()
	}
	nonce := o.nonce
	if nonce == "" {
		nonce = NewNonce(8)
	}

	if err := checkOpaque("ext", o.ext); err != nil {
		return nil, err
	}
	if o.app != "" {
		if err := checkOpaque("app", o.app); err != nil {
			return nil, err
		}
	}
	if o.dlg != "" {
		if o.app == "" {
			return nil, newError(KindValueError, "dlg requires app")
		}
		if err := checkOpaque("dlg", o.dlg); err != nil {
			return nil, err
		}
	}

	hash, _, err := resolvePayloadHash(creds.Algorithm, content, contentType, o.alwaysHashContent)
	if err != nil {
		return nil, err
	}

	reqArts := artifacts{
		method:    method,
		host:      target.host,
		port:      target.port,
		resource:  target.resource,
		timestamp: ts,
		nonce:     nonce,
		hash:      hash,
		ext:       o.ext,
		app:       o.app,
		dlg:       o.dlg,
	}

	traceID := uuid.NewString()
	o.logger.Debugf("hawk sender %s: signing %s %s nonce=%s ts=%d", traceID, method, target.resource, nonce, ts)

	s := &Sender{
		creds:   creds,
		opts:    o,
		traceID: traceID,
		method:  method,
		target:  target,
		reqArts: reqArts,
	}
	return s, nil
}

// RequestHeader returns the Authorization header value to send with the
// request. It is safe to call repeatedly; it always returns the same
// value for a given Sender.
func (s *Sender) RequestHeader() (string, error) {
	mac := computeMAC(s.creds, normalizeRequest(s.reqArts))
	attrs := []headerAttr{
		{"id", s.creds.ID},
		{"ts", itoa(s.reqArts.timestamp)},
		{"nonce", s.reqArts.nonce},
	}
	if s.reqArts.hash != "" {
		attrs = append(attrs, headerAttr{"hash", s.reqArts.hash})
	}
	if s.reqArts.ext != "" {
		attrs = append(attrs, headerAttr{"ext", s.reqArts.ext})
	}
	attrs = append(attrs, headerAttr{"mac", mac})
	if s.reqArts.app != "" {
		attrs = append(attrs, headerAttr{"app", s.reqArts.app})
		if s.reqArts.dlg != "" {
			attrs = append(attrs, headerAttr{"dlg", s.reqArts.dlg})
		}
	}
	return buildHeader(attrs)
}

// AcceptResponse parses and verifies a Server-Authorization header
// against the request this Sender signed. It reuses the retained
// timestamp and nonce when reconstructing the normalized response
// string, which is what binds the response to this specific request: a
// response signed for a different nonce/timestamp (a replayed or
// mismatched response) fails as KindMacMismatch.
func (s *Sender) AcceptResponse(header string, content []byte, contentType string, opts ...Option) error {
	o := s.opts
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := parseHeader(header)
	if err != nil {
		return err
	}

	hash, included, err := resolvePayloadHash(s.creds.Algorithm, content, contentType, o.alwaysHashContent)
	if err != nil {
		return err
	}
	if parsed.HasHash {
		if !compareMAC(parsed.Hash, hash) {
			return newError(KindMisComputedContentHash, "response payload hash does not match body")
		}
	} else if included && !o.acceptUntrustedContent {
		return newError(KindMisComputedContentHash, "response has no payload hash")
	}

	respArts := artifacts{
		method:    s.method,
		host:      s.target.host,
		port:      s.target.port,
		resource:  s.target.resource,
		timestamp: s.reqArts.timestamp,
		nonce:     s.reqArts.nonce,
		hash:      parsed.Hash,
		ext:       parsed.Ext,
		app:       s.reqArts.app,
		dlg:       s.reqArts.dlg,
	}
	mac := computeMAC(s.creds, normalizeResponse(respArts))
	if !compareMAC(parsed.MAC, mac) {
		return newError(KindMacMismatch, "response mac does not match")
	}

	if err := checkTimestamp(o.clock, s.reqArts.timestamp, o.timestampSkew, o.localtimeOffset); err != nil {
		// The response reuses the request's own timestamp, so this only
		// fails if the request itself is now outside the window — e.g. a
		// response arriving long after the request was signed.
		return err
	}

	o.logger.Debugf("hawk sender %s: accepted response", s.traceID)
	return nil
}
