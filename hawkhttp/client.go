// Package hawkhttp wires the hawk core into net/http and fasthttp
// requests and responses. It is a convenience layer only: transport is
// explicitly out of scope for the core protocol engine, so everything
// here is built entirely on the core's public Sender/Receiver API.
package hawkhttp

import (
	"bytes"
	"io/ioutil"
	"net/http"

	"gitlab.com/tdely/hawk"
)

// SignRequest signs req with creds and sets its Authorization header. If
// req has a body, it is fully read and replaced with a reader over the
// same bytes, so the body can still be read once after signing.
// req.GetBody is left unchanged.
func SignRequest(req *http.Request, creds hawk.Credentials, opts ...hawk.Option) (*hawk.Sender, error) {
	content, contentType, err := drainBody(req)
	if err != nil {
		return nil, err
	}

	sender, err := hawk.NewSender(creds, req.Method, req.URL.String(), content, contentType, opts...)
	if err != nil {
		return nil, err
	}
	header, err := sender.RequestHeader()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", header)
	return sender, nil
}

// VerifyRequest verifies an incoming *http.Request against lookup and
// returns the Receiver that can then sign a bound response.
func VerifyRequest(req *http.Request, lookup hawk.CredentialsLookupFunc, opts ...hawk.Option) (*hawk.Receiver, error) {
	content, contentType, err := drainBody(req)
	if err != nil {
		return nil, err
	}

	return hawk.NewReceiver(lookup, req.Header.Get("Authorization"), req.Method, req.URL.String(), content, contentType, opts...)
}

// RespondHeader builds the Server-Authorization header for resp using
// recv, and sets it on resp's headers.
func RespondHeader(recv *hawk.Receiver, resp http.ResponseWriter, content []byte, contentType, ext string) error {
	header, err := recv.Respond(content, contentType, ext)
	if err != nil {
		return err
	}
	resp.Header().Set("Server-Authorization", header)
	return nil
}

// AcceptResponse verifies resp's Server-Authorization header against the
// request sender signed.
func AcceptResponse(sender *hawk.Sender, resp *http.Response, opts ...hawk.Option) error {
	var content []byte
	contentType := resp.Header.Get("Content-Type")
	if resp.Body != nil {
		b, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		resp.Body = ioutil.NopCloser(bytes.NewReader(b))
		content = b
	}
	return sender.AcceptResponse(resp.Header.Get("Server-Authorization"), content, contentType, opts...)
}

func drainBody(req *http.Request) (content []byte, contentType string, err error) {
	contentType = req.Header.Get("Content-Type")
	if req.Body == nil || req.Body == http.NoBody {
		return nil, contentType, nil
	}
	b, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return nil, "", err
	}
	req.Body = ioutil.NopCloser(bytes.NewReader(b))
	return b, contentType, nil
}
