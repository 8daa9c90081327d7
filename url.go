package hawk

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// lowerASCII folds s to lowercase. Hawk's own wire values (host, algorithm
// names, content-type) are ASCII, but we fold with golang.org/x/text/cases
// rather than strings.ToLower so behavior stays correct if a caller feeds
// us a host with non-ASCII labels (IDN) before punycode conversion.
func lowerASCII(s string) string {
	return lowerCaser.String(s)
}

// requestTarget is the (host, port, resource) triple the canonicalizer
// needs from a URL: host lowercased, port defaulted from scheme when
// absent, resource kept byte-exact (path plus raw query, never
// re-encoded).
type requestTarget struct {
	host     string
	port     string
	resource string
}

// parseRequestTarget extracts a requestTarget from a request URL string.
// The URL must be absolute (it carries the scheme/host used for the
// default-port decision); relative URLs are rejected with KindValueError.
func parseRequestTarget(rawurl string) (requestTarget, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return requestTarget{}, newError(KindValueError, "invalid url %q: %v", rawurl, err)
	}
	if u.Host == "" {
		return requestTarget{}, newError(KindValueError, "url %q has no host", rawurl)
	}

	host := lowerASCII(u.Hostname())
	port := u.Port()
	if port == "" {
		port = defaultPort(u.Scheme)
		if port == "" {
			return requestTarget{}, newError(KindValueError, "url %q has no port and scheme %q has no default", rawurl, u.Scheme)
		}
	}

	// RawPath holds the original bytes whenever they differ from the
	// default escaping of Path; otherwise EscapedPath reproduces them.
	resource := u.RawPath
	if resource == "" {
		resource = u.EscapedPath()
	}
	if resource == "" {
		resource = "/"
	}
	if u.RawQuery != "" {
		resource = resource + "?" + u.RawQuery
	}

	return requestTarget{host: host, port: port, resource: resource}, nil
}

func defaultPort(scheme string) string {
	switch strings.ToLower(scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}
