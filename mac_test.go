package hawk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMACDeterministic(t *testing.T) {
	creds := Credentials{ID: "dh37fgj492je", Key: []byte("werxhqb98rpaxn39848xrunpaw3489ruxnpaw3489ruxn"), Algorithm: SHA256}
	normalized := normalizeRequest(artifacts{
		method: "GET", host: "example.com", port: "8080",
		resource: "/resource?a=1&b=2", timestamp: 1353832234, nonce: "j4h3g2",
	})
	m1 := computeMAC(creds, normalized)
	m2 := computeMAC(creds, normalized)
	assert.Equal(t, m1, m2)
}

func TestComputeMACDiffersByKey(t *testing.T) {
	normalized := normalizeRequest(artifacts{method: "GET", host: "h", port: "80", resource: "/", timestamp: 1, nonce: "n"})
	m1 := computeMAC(Credentials{ID: "a", Key: []byte("key-one"), Algorithm: SHA256}, normalized)
	m2 := computeMAC(Credentials{ID: "a", Key: []byte("key-two"), Algorithm: SHA256}, normalized)
	assert.NotEqual(t, m1, m2)
}

func TestCompareMAC(t *testing.T) {
	creds := Credentials{ID: "a", Key: []byte("k"), Algorithm: SHA256}
	normalized := normalizeRequest(artifacts{method: "GET", host: "h", port: "80", resource: "/", timestamp: 1, nonce: "n"})
	mac := computeMAC(creds, normalized)

	assert.True(t, compareMAC(mac, mac))
	assert.False(t, compareMAC(mac, computeMAC(Credentials{ID: "a", Key: []byte("other"), Algorithm: SHA256}, normalized)))
	assert.False(t, compareMAC("not-base64!!", mac))
}
