// Package hawk implements the Hawk HTTP authentication scheme: a
// symmetric-key protocol for origin authentication, request/response
// integrity, and optional payload integrity between two parties that
// share a set of credentials out of band.
//
// A typical exchange looks like this:
//
//	creds := hawk.Credentials{ID: "my-hawk-id", Key: []byte("my hAwK sekret"), Algorithm: hawk.SHA256}
//
//	sender, err := hawk.NewSender(creds, "GET", "http://site.com/foo?bar=1", nil, "")
//	authHeader, err := sender.RequestHeader()
//	req, _ := http.NewRequest("GET", "http://site.com/foo?bar=1", nil)
//	req.Header.Set("Authorization", authHeader)
//
//	// ... server receives req ...
//
//	recv, err := hawk.NewReceiver(lookup, req.Header.Get("Authorization"), "GET", req.URL.String(), nil, "")
//	respHeader, err := recv.Respond(nil, "", "")
//	// ... set Server-Authorization: respHeader on the response ...
//
//	err = sender.AcceptResponse(respHeader, nil, "")
//
// The package deliberately knows nothing about HTTP transport, nonce
// storage, or credential storage: callers supply a CredentialsLookupFunc
// and a NonceSeen predicate, and get back header strings and typed errors.
package hawk
