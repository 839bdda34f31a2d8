package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeVMS is a minimal session-aware server: creating a user session issues
// a token, protected endpoints answer 401 unless that token is presented,
// and deleting the current session invalidates it.
type fakeVMS struct {
	token string
	valid bool
}

func (f *fakeVMS) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/service/sessions/user":
			f.token = "session-token-1"
			f.valid = true
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"` + f.token + `","role":"Manager"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/service/sessions/me":
			if r.Header.Get("Authorization") != "Bearer "+f.token || !f.valid {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			f.valid = false
			w.WriteHeader(http.StatusOK)
		default:
			if r.Header.Get("Authorization") != "Bearer "+f.token || !f.valid {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	vms := &fakeVMS{}
	server := httptest.NewServer(vms.handler())
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	resp, err := c.CreateUserSession(ctx, "admin", "password", nil)
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	session, ok := resp.Body.Map()
	if !ok {
		t.Fatal("expected session body to decode as a map")
	}
	token, _ := session["id"].(string)
	if token == "" {
		t.Fatal("expected a session token")
	}

	c.SetBearerToken(token)

	resp, err = c.Cameras(ctx)
	if err != nil {
		t.Fatalf("protected call failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with fresh token, got %d", resp.StatusCode)
	}

	resp, err = c.DeleteCurrentSession(ctx)
	if err != nil {
		t.Fatalf("delete session failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 deleting session, got %d", resp.StatusCode)
	}

	resp, err = c.Cameras(ctx)
	if err != nil {
		t.Fatalf("post-delete call failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after session deletion, got %d", resp.StatusCode)
	}
}

func TestLoginUser(t *testing.T) {
	t.Parallel()

	vms := &fakeVMS{}
	server := httptest.NewServer(vms.handler())
	defer server.Close()

	c := newTestClient(t, server.URL)

	if err := c.LoginUser(context.Background(), "admin", "password"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	resp, err := c.Cameras(context.Background())
	if err != nil {
		t.Fatalf("protected call failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 after login, got %d", resp.StatusCode)
	}
}

func TestLoginUser_BadCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.LoginUser(context.Background(), "admin", "wrong")

	if err == nil {
		t.Fatal("expected error for rejected login")
	}

	if err.Error() != "create user session: status 401" {
		t.Errorf("unexpected error: %v", err)
	}

	if !c.cred.IsZero() {
		t.Error("credential must stay untouched after failed login")
	}
}

func TestCreateUserSession_Defaults(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.CreateUserSession(context.Background(), "admin", "password", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(capturedBody, &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}

	if body["username"] != "admin" || body["password"] != "password" {
		t.Errorf("unexpected credentials in body: %v", body)
	}

	if body["expiresIn"] != float64(3600) {
		t.Errorf("expected expiresIn=3600, got %v", body["expiresIn"])
	}

	if body["cookie"] != "session" {
		t.Errorf("expected cookie=session, got %v", body["cookie"])
	}
}

func TestCreateRemoteSession_ScopeOmittedWhenNil(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	t.Run("nil scope omitted", func(t *testing.T) {
		_, err := c.CreateRemoteSession(context.Background(), "remote-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]any
		if err := json.Unmarshal(capturedBody, &body); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}

		if _, present := body["scope"]; present {
			t.Error("expected scope key to be omitted")
		}

		if body["name"] != "remote-1" {
			t.Errorf("expected name=remote-1, got %v", body["name"])
		}
	})

	t.Run("scope transmitted", func(t *testing.T) {
		opts := &SessionOptions{
			Scope: map[string]any{"baseScope": []string{"config"}},
		}
		_, err := c.CreateRemoteSession(context.Background(), "remote-2", opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]any
		if err := json.Unmarshal(capturedBody, &body); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}

		if _, present := body["scope"]; !present {
			t.Error("expected scope key to be present")
		}
	})
}

func TestSessions_TypeFilter(t *testing.T) {
	t.Parallel()

	var capturedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	if _, err := c.Sessions(context.Background(), "user"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedQuery != "type=user" {
		t.Errorf("expected type=user, got %q", capturedQuery)
	}

	if _, err := c.Sessions(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedQuery != "" {
		t.Errorf("expected no query without a filter, got %q", capturedQuery)
	}

	if _, err := c.DeleteSessions(context.Background(), "remote"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedQuery != "type=remote" {
		t.Errorf("expected type=remote, got %q", capturedQuery)
	}
}
