package hawkhttp

import (
	"github.com/valyala/fasthttp"

	"gitlab.com/tdely/hawk"
)

// SignFastRequest attaches a Hawk Authorization header to a
// *fasthttp.Request already populated with method, URI, and body,
// following the same lean-client shape as sensorswave-sdk-go's
// fastclient.HTTPClient: the caller owns acquiring/releasing the request
// from fasthttp's pool, this only signs it.
func SignFastRequest(req *fasthttp.Request, creds hawk.Credentials, opts ...hawk.Option) (*hawk.Sender, error) {
	method := string(req.Header.Method())
	url := req.URI().String()
	body := req.Body()
	contentType := string(req.Header.ContentType())

	var content []byte
	if len(body) > 0 || contentType != "" {
		content = body
	}

	sender, err := hawk.NewSender(creds, method, url, content, contentType, opts...)
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

// VerifyFastRequest verifies a *fasthttp.Request against lookup.
func VerifyFastRequest(req *fasthttp.Request, lookup hawk.CredentialsLookupFunc, opts ...hawk.Option) (*hawk.Receiver, error) {
	method := string(req.Header.Method())
	url := req.URI().String()
	body := req.Body()
	contentType := string(req.Header.ContentType())
	authHeader := string(req.Header.Peek("Authorization"))

	var content []byte
	if len(body) > 0 || contentType != "" {
		content = body
	}

	return hawk.NewReceiver(lookup, authHeader, method, url, content, contentType, opts...)
}
