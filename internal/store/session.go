// ABOUTME: Session store owning authentication state and auth operations
// ABOUTME: Guards against stale in-flight responses with a per-store sequence

package store

import (
	"context"
	"sync"

	"github.com/codementor/cli/internal/client"
)

// Session owns the current user, the authenticated flag, and the
// loading/error flags the view layer renders. All methods are safe for
// concurrent use; state updates from requests that have been superseded
// by a newer one are discarded.
type Session struct {
	mu  sync.Mutex
	api *client.Client

	user          *client.User
	authenticated bool
	loading       bool
	err           string
	seq           uint64
}

// SessionSnapshot is a point-in-time copy of the session state
type SessionSnapshot struct {
	User          *client.User
	Authenticated bool
	Loading       bool
	Err           string
}

// NewSession creates a session store. The authenticated flag is seeded
// from token presence; the user is hydrated later via FetchProfile.
func NewSession(api *client.Client) *Session {
	return &Session{
		api:           api,
		authenticated: api.IsAuthenticated(),
	}
}

// begin marks a new in-flight operation and returns its sequence number
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	s.err = ""
	return s.seq
}

// commit applies mutate unless a newer operation has since begun
func (s *Session) commit(seq uint64, mutate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	s.loading = false
	mutate()
}

// Login exchanges credentials for tokens, then hydrates the profile.
// The failure is recorded in state and returned so a login form can
// keep itself open.
func (s *Session) Login(ctx context.Context, username, password string) error {
	seq := s.begin()

	_, err := s.api.Login(ctx, client.LoginRequest{Username: username, Password: password})
	if err == nil {
		var user *client.User
		user, err = s.api.Profile(ctx)
		if err == nil {
			s.commit(seq, func() {
				s.user = user
				s.authenticated = true
			})
			return nil
		}
	}

	msg := errorMessage(err, "Login failed")
	s.commit(seq, func() { s.err = msg })
	return err
}

// Register creates an account; the response carries both the user and
// the token pair, so no extra profile fetch is needed.
func (s *Session) Register(ctx context.Context, data client.RegisterRequest) error {
	seq := s.begin()

	resp, err := s.api.Register(ctx, data)
	if err != nil {
		msg := errorMessage(err, "Registration failed")
		s.commit(seq, func() { s.err = msg })
		return err
	}

	s.commit(seq, func() {
		user := resp.User
		s.user = &user
		s.authenticated = true
	})
	return nil
}

// Logout clears the persisted tokens and resets the session. Catalog
// state is deliberately left untouched.
func (s *Session) Logout() error {
	err := s.api.Logout()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.user = nil
	s.authenticated = false
	s.loading = false
	return err
}

// FetchProfile hydrates the session when a token exists but no user is
// cached. A failure forces authenticated=false: the token is presumed
// invalid. The error is recorded in state, not returned.
func (s *Session) FetchProfile(ctx context.Context) {
	seq := s.begin()

	user, err := s.api.Profile(ctx)
	if err != nil {
		msg := errorMessage(err, "Failed to fetch profile")
		s.commit(seq, func() {
			s.err = msg
			s.authenticated = false
		})
		return
	}

	s.commit(seq, func() {
		s.user = user
		s.authenticated = true
	})
}

// ClearError clears the error field only
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Snapshot returns a copy of the current session state
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		Authenticated: s.authenticated,
		Loading:       s.loading,
		Err:           s.err,
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}
