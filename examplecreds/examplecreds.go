// Package examplecreds is a minimal in-memory hawk.CredentialsLookupFunc
// implementation, meant for tests and documentation examples — not for
// production credential storage.
package examplecreds

import (
	"fmt"

	"gitlab.com/tdely/hawk"
)

// Store maps credentials ids to Credentials.
type Store map[string]hawk.Credentials

// Lookup returns the credentials stored in s under id, or an error if
// there are none. The method value s.Lookup is a hawk.CredentialsLookupFunc.
func (s Store) Lookup(id string) (*hawk.Credentials, error) {
	c, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("examplecreds: no credentials for id %q", id)
	}
	return &c, nil
}
