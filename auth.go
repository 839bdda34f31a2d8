package client

import (
	"github.com/go-resty/resty/v2"
)

type credentialKind int

const (
	credentialNone credentialKind = iota
	credentialBasic
	credentialBearer
)

// Credential is the authentication material attached to outgoing requests.
// Exactly one variant is active at a time: none, basic, or bearer. A
// Credential is a pure request decorator and performs no network I/O of its
// own; malformed credentials are rejected by the server at call time.
type Credential struct {
	kind     credentialKind
	username string
	password string
	token    string
}

// Basic returns a credential using HTTP Basic authentication.
func Basic(username, password string) Credential {
	return Credential{kind: credentialBasic, username: username, password: password}
}

// Bearer returns a credential that sends "Authorization: Bearer <token>".
func Bearer(token string) Credential {
	return Credential{kind: credentialBearer, token: token}
}

// IsZero reports whether no credential variant is active.
func (c Credential) IsZero() bool {
	return c.kind == credentialNone
}

func (c Credential) apply(req *resty.Request) {
	switch c.kind {
	case credentialBasic:
		req.SetBasicAuth(c.username, c.password)
	case credentialBearer:
		req.SetAuthToken(c.token)
	}
}

// resolveCredential picks the active credential: an explicit username and
// password pair wins over a credential supplied via WithCredential; absent
// both, requests go out unauthenticated.
func resolveCredential(o *Options) Credential {
	if o.basicAuthUsername != "" && o.basicAuthPassword != "" {
		return Basic(o.basicAuthUsername, o.basicAuthPassword)
	}
	return o.credential
}

// SetBearerToken replaces the active credential with a bearer token. All
// subsequent requests carry "Authorization: Bearer <token>"; any previously
// configured basic or bearer credential is discarded. Session-creation
// endpoints return tokens rather than accepting them at construction, so
// this is the hand-off point after [Client.CreateUserSession] or
// [Client.CreateRemoteSession].
//
// The swap is not synchronized with in-flight requests; callers using the
// client from multiple goroutines must serialize credential changes.
func (c *Client) SetBearerToken(token string) {
	c.cred = Bearer(token)
}
