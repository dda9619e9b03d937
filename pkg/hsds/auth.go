package hsds

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Credentials injects authentication into an outgoing request. The
// same strategy is applied uniformly to every request the client
// sends. Implementations must be safe for concurrent use.
type Credentials interface {
	Apply(req *http.Request) error
}

// BasicAuth authenticates with an HTTP basic username/password pair.
type BasicAuth struct {
	Username string
	Password string
}

func (a BasicAuth) Apply(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

// BearerAuth authenticates with a static bearer token. The token is
// opaque to the client; acquiring and refreshing it is the caller's
// concern (see TokenSourceAuth for refreshing tokens).
type BearerAuth struct {
	Token string
}

func (a BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.Token)
	return nil
}

// NoAuth sends requests without an Authorization header.
type NoAuth struct{}

func (NoAuth) Apply(*http.Request) error { return nil }

// TokenSourceAuth authenticates with tokens drawn from an
// oauth2.TokenSource, so short-lived tokens refresh transparently.
type TokenSourceAuth struct {
	Source oauth2.TokenSource
}

func (a TokenSourceAuth) Apply(req *http.Request) error {
	tok, err := a.Source.Token()
	if err != nil {
		return fmt.Errorf("%w: fetching token: %v", ErrAuth, err)
	}
	tok.SetAuthHeader(req)
	return nil
}
