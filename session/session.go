package session

import (
	"context"
	"sync"

	"pulse/api"
	"pulse/core"
)

// Session holds the live credential. There is exactly one writer path
// (Login/Register/Logout) and many readers; readers see the credential as it
// is at call time, never as it was when a request was constructed.
type Session struct {
	client *api.Client
	store  *Store

	mu    sync.RWMutex
	token string
	user  *core.User
}

// New creates a Session backed by the given client and store, restoring any
// persisted credential. Corrupt or missing persisted state silently yields
// an anonymous session.
func New(client *api.Client, store *Store) *Session {
	s := &Session{client: client, store: store}
	s.token, s.user = store.Load()
	return s
}

// Login authenticates and persists the resulting credential. Transport
// failures surface unchanged so the caller can block the action.
func (s *Session) Login(ctx context.Context, username, password string) (core.User, error) {
	tok, err := s.client.Login(ctx, username, password)
	if err != nil {
		return core.User{}, err
	}

	user, err := s.client.CurrentUser(ctx, tok.AccessToken)
	if err != nil {
		return core.User{}, err
	}

	s.mu.Lock()
	s.token = tok.AccessToken
	s.user = &user
	s.mu.Unlock()

	if err := s.store.Save(tok.AccessToken, user); err != nil {
		return core.User{}, err
	}
	return user, nil
}

// Register creates an account, then logs in with the new credentials so the
// session ends up authenticated, exactly as a fresh login would.
func (s *Session) Register(ctx context.Context, email, username, password, fullName string) (core.User, error) {
	if _, err := s.client.Register(ctx, email, username, password, fullName); err != nil {
		return core.User{}, err
	}
	return s.Login(ctx, username, password)
}

// Logout clears the stored and in-memory credential. Subsequent
// authenticated calls proceed as anonymous; the server's rejection of those
// is not special-cased here.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.store.Clear()
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current profile, or nil when anonymous.
func (s *Session) User() *core.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a credential is live.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// CurrentUser re-fetches the profile from the backend using the token as it
// is right now.
func (s *Session) CurrentUser(ctx context.Context) (core.User, error) {
	return s.client.CurrentUser(ctx, s.Token())
}
