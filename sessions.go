package client

import (
	"context"
	"fmt"
	"net/url"
)

// SessionOptions tunes session creation. The zero value (or a nil pointer)
// selects the server defaults: a one-hour session with a non-persistent
// cookie.
type SessionOptions struct {
	// ExpiresIn is the session lifetime in seconds. 0 means 3600.
	ExpiresIn int64
	// Cookie is the session cookie type, "session" or "persistent".
	// Empty means "session".
	Cookie string
	// Scope restricts a remote session to specific permission sets.
	// Ignored for user sessions; omitted from the request when nil.
	Scope map[string]any
}

func (o *SessionOptions) expiresIn() int64 {
	if o == nil || o.ExpiresIn == 0 {
		return 3600
	}
	return o.ExpiresIn
}

func (o *SessionOptions) cookie() string {
	if o == nil || o.Cookie == "" {
		return "session"
	}
	return o.Cookie
}

type userSessionRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	ExpiresIn int64  `json:"expiresIn"`
	Cookie    string `json:"cookie"`
}

type remoteSessionRequest struct {
	Name      string         `json:"name"`
	ExpiresIn int64          `json:"expiresIn"`
	Cookie    string         `json:"cookie"`
	Scope     map[string]any `json:"scope,omitempty"`
}

// SessionIdentity returns the identity of the current session.
func (c *Client) SessionIdentity(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/identity")
}

// CurrentSession returns the session backing the active credential.
func (c *Client) CurrentSession(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/sessions/me")
}

// DeleteCurrentSession invalidates the session backing the active
// credential. Subsequent calls with the same bearer token answer 401.
func (c *Client) DeleteCurrentSession(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/sessions/me")
}

// CreateUserSession authenticates username/password with the server and
// creates a session. The response body carries the session token under "id";
// hand it to [Client.SetBearerToken], or use [Client.LoginUser] to do both
// steps at once.
func (c *Client) CreateUserSession(ctx context.Context, username, password string, opts *SessionOptions) (*Response, error) {
	body := userSessionRequest{
		Username:  username,
		Password:  password,
		ExpiresIn: opts.expiresIn(),
		Cookie:    opts.cookie(),
	}
	return c.post(ctx, "/sessions/user", body)
}

// CreateRemoteSession creates a named remote session, optionally scoped to
// a set of permissions. Requires an already-authenticated client (basic or
// trusted-issuer bearer credential).
func (c *Client) CreateRemoteSession(ctx context.Context, name string, opts *SessionOptions) (*Response, error) {
	body := remoteSessionRequest{
		Name:      name,
		ExpiresIn: opts.expiresIn(),
		Cookie:    opts.cookie(),
	}
	if opts != nil {
		body.Scope = opts.Scope
	}
	return c.post(ctx, "/sessions/remote", body)
}

// Sessions lists the sessions on the server. sessionType filters by "user"
// or "remote"; empty lists all types.
func (c *Client) Sessions(ctx context.Context, sessionType string) (*Response, error) {
	return c.get(ctx, sessionsPath(sessionType))
}

// DeleteSessions deletes all sessions, optionally restricted to one
// sessionType ("user" or "remote").
func (c *Client) DeleteSessions(ctx context.Context, sessionType string) (*Response, error) {
	return c.delete(ctx, sessionsPath(sessionType))
}

func sessionsPath(sessionType string) string {
	if sessionType == "" {
		return "/sessions"
	}
	v := url.Values{}
	v.Set("type", sessionType)
	return "/sessions?" + v.Encode()
}

// Session retrieves a session by ID.
func (c *Client) Session(ctx context.Context, sessionID string) (*Response, error) {
	return c.get(ctx, "/sessions?"+url.QueryEscape(sessionID))
}

// DeleteSession deletes a session by ID.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) (*Response, error) {
	return c.delete(ctx, "/sessions?"+url.QueryEscape(sessionID))
}

// LoginUser creates a user session and installs the returned token as the
// client's bearer credential. Any prior credential is replaced.
func (c *Client) LoginUser(ctx context.Context, username, password string) error {
	resp, err := c.CreateUserSession(ctx, username, password, nil)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("create user session: status %d", resp.StatusCode)
	}

	session, ok := resp.Body.Map()
	if !ok {
		return fmt.Errorf("create user session: unexpected response body")
	}
	token, ok := session["id"].(string)
	if !ok || token == "" {
		return fmt.Errorf("create user session: response carries no session token")
	}

	c.SetBearerToken(token)
	return nil
}
