package hawkhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestSignAndVerifyFastRequestRoundTrip(t *testing.T) {
	creds := testCreds()

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod("POST")
	req.SetRequestURI("http://site.com/foo?bar=1")
	req.Header.SetContentType("application/json")
	req.SetBody([]byte(`{"bar":"foobs"}`))

	sender, err := SignFastRequest(req, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, string(req.Header.Peek("Authorization")))

	recv, err := VerifyFastRequest(req, lookupFor(creds))
	require.NoError(t, err)
	require.NotNil(t, sender)
	require.NotNil(t, recv)
}

func TestSignFastRequestEmptyBody(t *testing.T) {
	creds := testCreds()

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.Header.SetMethod("GET")
	req.SetRequestURI("http://site.com/foo")

	sender, err := SignFastRequest(req, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, string(req.Header.Peek("Authorization")))

	_, err = VerifyFastRequest(req, lookupFor(creds))
	require.NoError(t, err)
	require.NotNil(t, sender)
}
