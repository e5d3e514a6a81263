package session

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"tido/internal/config"
	"tido/internal/service"
)

// Store is the session lifecycle: init-from-storage on construction,
// login/register against the remote API, teardown on logout. The gateway
// receives credentials through TokenSource rather than reading storage.
type Store struct {
	cfg     *config.Config
	current Session
}

// NewStore loads the persisted session, if any.
func NewStore(cfg *config.Config) (*Store, error) {
	s, err := Load(cfg.SessionPath())
	if err != nil {
		return nil, err
	}
	return &Store{cfg: cfg, current: s}, nil
}

// Current returns the in-memory session.
func (st *Store) Current() Session {
	return st.current
}

// IsAuthenticated reports whether a token is present.
func (st *Store) IsAuthenticated() bool {
	return st.current.IsAuthenticated()
}

// TokenSource supplies the bearer credential for the gateway.
func (st *Store) TokenSource() oauth2.TokenSource {
	return st.current.TokenSource()
}

// Login authenticates against the remote API, decodes the issued token and
// persists the resulting session.
func (st *Store) Login(ctx context.Context, svc service.Service, username, password string) (Session, error) {
	token, err := svc.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}

	sess, err := New(token, username)
	if err != nil {
		return Session{}, err
	}

	if err := st.cfg.EnsureDir(); err != nil {
		return Session{}, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := sess.Save(st.cfg.SessionPath()); err != nil {
		return Session{}, fmt.Errorf("failed to save session: %w", err)
	}

	st.current = sess
	return sess, nil
}

// Register submits a new-user request. It does not establish a session.
func (st *Store) Register(ctx context.Context, svc service.Service, username, password string) error {
	return svc.Register(ctx, username, password)
}

// Logout clears the persisted and in-memory session.
func (st *Store) Logout() error {
	if err := Clear(st.cfg.SessionPath()); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	st.current = Session{}
	return nil
}
