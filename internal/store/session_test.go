// ABOUTME: Tests for the session store
// ABOUTME: Covers login/logout/profile flows and the stale-response guard

package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codementor/cli/internal/client"
	"github.com/codementor/cli/internal/credstore"
)

// authServer mocks the login and profile endpoints
func authServer(t *testing.T, loginOK bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			if !loginOK {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
				return
			}
			json.NewEncoder(w).Encode(client.AuthTokens{Access: "acc", Refresh: "ref"})
		case "/auth/profile/":
			json.NewEncoder(w).Encode(client.User{ID: 1, Username: "alice", Email: "a@x.com"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newSession(t *testing.T, url string) (*Session, *credstore.Store) {
	t.Helper()
	creds := credstore.New(t.TempDir())
	return NewSession(client.New(url, creds)), creds
}

func TestLogin_Success(t *testing.T) {
	server := authServer(t, true)
	defer server.Close()

	session, creds := newSession(t, server.URL)
	if err := session.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := session.Snapshot()
	if !snap.Authenticated {
		t.Error("expected authenticated true")
	}
	if snap.User == nil || snap.User.Username != "alice" {
		t.Errorf("expected user alice, got %+v", snap.User)
	}
	if snap.Loading {
		t.Error("expected loading false")
	}
	if snap.Err != "" {
		t.Errorf("expected no error, got %q", snap.Err)
	}
	if !creds.HasAccessToken() {
		t.Error("expected access token persisted")
	}
}

func TestLogin_Failure(t *testing.T) {
	server := authServer(t, false)
	defer server.Close()

	session, creds := newSession(t, server.URL)
	err := session.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	snap := session.Snapshot()
	if snap.User != nil {
		t.Errorf("expected user unchanged (nil), got %+v", snap.User)
	}
	if snap.Err != "Invalid credentials" {
		t.Errorf("expected server message, got %q", snap.Err)
	}
	if snap.Loading {
		t.Error("expected loading false")
	}
	if creds.HasAccessToken() {
		t.Error("expected no token persisted")
	}
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.RegisterResponse{
			User:   client.User{ID: 2, Username: "bob", Email: "b@x.com"},
			Tokens: client.AuthTokens{Access: "acc2", Refresh: "ref2"},
		})
	}))
	defer server.Close()

	session, creds := newSession(t, server.URL)
	err := session.Register(context.Background(), client.RegisterRequest{
		Username: "bob", Email: "b@x.com", Password: "pw", PasswordConfirm: "pw",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := session.Snapshot()
	if !snap.Authenticated || snap.User == nil || snap.User.Username != "bob" {
		t.Errorf("expected authenticated bob, got %+v", snap)
	}
	if !creds.HasAccessToken() {
		t.Error("expected token persisted")
	}
}

func TestLogout_ClearsTokensAndState(t *testing.T) {
	creds := credstore.New(t.TempDir())
	if err := creds.Save("acc", "ref"); err != nil {
		t.Fatal(err)
	}

	session := NewSession(client.New("http://localhost:1", creds))
	if !session.Snapshot().Authenticated {
		t.Fatal("expected authenticated seeded from token presence")
	}

	if err := session.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := session.Snapshot()
	if snap.Authenticated {
		t.Error("expected authenticated false after logout")
	}
	if snap.User != nil {
		t.Error("expected user cleared after logout")
	}
	if creds.HasAccessToken() {
		t.Error("expected access token removed")
	}
	if creds.RefreshToken() != "" {
		t.Error("expected refresh token removed")
	}
}

func TestFetchProfile_Success(t *testing.T) {
	server := authServer(t, true)
	defer server.Close()

	session, _ := newSession(t, server.URL)
	session.FetchProfile(context.Background())

	snap := session.Snapshot()
	if !snap.Authenticated || snap.User == nil || snap.User.Username != "alice" {
		t.Errorf("expected hydrated session, got %+v", snap)
	}
}

func TestFetchProfile_FailureForcesUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid"})
	}))
	defer server.Close()

	creds := credstore.New(t.TempDir())
	if err := creds.Save("stale", "stale"); err != nil {
		t.Fatal(err)
	}

	session := NewSession(client.New(server.URL, creds))
	session.FetchProfile(context.Background())

	snap := session.Snapshot()
	if snap.Authenticated {
		t.Error("expected authenticated forced false on failed profile fetch")
	}
	if snap.Err != "Token is invalid" {
		t.Errorf("expected error recorded, got %q", snap.Err)
	}
}

func TestClearError(t *testing.T) {
	server := authServer(t, false)
	defer server.Close()

	session, _ := newSession(t, server.URL)
	_ = session.Login(context.Background(), "alice", "wrong")
	if session.Snapshot().Err == "" {
		t.Fatal("expected error set")
	}

	session.ClearError()
	if session.Snapshot().Err != "" {
		t.Error("expected error cleared")
	}
}

func TestSession_StaleCommitDiscarded(t *testing.T) {
	session, _ := newSession(t, "http://localhost:1")

	first := session.begin()
	second := session.begin()

	session.commit(first, func() { session.err = "stale" })
	snap := session.Snapshot()
	if snap.Err != "" {
		t.Errorf("expected stale commit discarded, got %q", snap.Err)
	}
	if !snap.Loading {
		t.Error("expected still loading while newest request is in flight")
	}

	session.commit(second, func() { session.authenticated = true })
	snap = session.Snapshot()
	if !snap.Authenticated {
		t.Error("expected newest commit applied")
	}
	if snap.Loading {
		t.Error("expected loading false after newest commit")
	}
}

func TestErrorMessage_Fallback(t *testing.T) {
	if got := errorMessage(errors.New("dial tcp: boom"), "Login failed"); got != "Login failed" {
		t.Errorf("expected fallback, got %q", got)
	}
	apiErr := &client.APIError{Message: "Invalid credentials"}
	if got := errorMessage(apiErr, "Login failed"); got != "Invalid credentials" {
		t.Errorf("expected API message, got %q", got)
	}
}
