// Package services contains application services for the SellHub client.
// This file defines the session manager: the single owner of the
// authentication state and the only writer of the persisted token and user.
package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/sellhub/internal/client/client"
	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/logging"
)

// SessionStore is the persisted side of a session.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, user *models.User) error
	SaveSession(ctx context.Context, token string, user *models.User) error
	ClearSession(ctx context.Context) error
}

// SessionManager keeps the in-memory Session and the persisted token/user
// consistent.
//
// Operations are not serialized against each other: a RefreshUser racing a
// Logout may interleave. Only the state snapshot itself is guarded.
type SessionManager struct {
	client client.Client
	store  SessionStore
	log    logging.Logger

	mu          sync.RWMutex
	state       models.Session
	subscribers []func(models.Session)
}

// NewSessionManager returns a manager in the loading state; call Initialize
// to resolve it.
func NewSessionManager(c client.Client, s SessionStore, log logging.Logger) *SessionManager {
	return &SessionManager{
		client: c,
		store:  s,
		log:    log,
		state:  models.Loading(),
	}
}

// State returns a snapshot of the current session.
func (m *SessionManager) State() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Subscribe registers fn to be called after every state change.
func (m *SessionManager) Subscribe(fn func(models.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *SessionManager) set(s models.Session) {
	m.mu.Lock()
	m.state = s
	subs := slices.Clone(m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(s.Clone())
	}
}

func (m *SessionManager) setLoading(loading bool) {
	s := m.State()
	s.IsLoading = loading
	m.set(s)
}

// Initialize restores the session from storage. When both a token and a
// user are stored the token is verified against the server; a rejected
// token clears storage. It always resolves to a non-loading state.
func (m *SessionManager) Initialize(ctx context.Context) models.Session {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "reading stored token failed", "error", err)
		token = ""
	}
	user, err := m.store.User(ctx)
	if err != nil {
		m.log.Warn(ctx, "reading stored user failed", "error", err)
		user = nil
	}

	if token == "" || user == nil {
		m.set(models.Anonymous())
		return m.State()
	}

	fresh, err := m.client.GetUser(ctx, token)
	if err != nil {
		m.log.Info(ctx, "stored session rejected, clearing", "error", err)
		if err := m.store.ClearSession(ctx); err != nil {
			m.log.Error(ctx, "clearing stored session failed", "error", err)
		}
		m.set(models.Anonymous())
		return m.State()
	}

	if err := m.store.SetUser(ctx, fresh); err != nil {
		m.log.Warn(ctx, "updating stored user failed", "error", err)
	}
	m.set(models.Authenticated(token, fresh))
	m.log.Info(ctx, "session restored", "user", fresh.Username)
	return m.State()
}

// Login exchanges credentials for a token, fetches the user and persists
// both together. The token is never persisted on its own: if any step
// fails, storage is cleared, the session becomes anonymous and the error is
// returned for display.
func (m *SessionManager) Login(ctx context.Context, creds models.LoginCredentials) error {
	m.setLoading(true)

	user, token, err := m.login(ctx, creds)
	if err != nil {
		if cerr := m.store.ClearSession(ctx); cerr != nil {
			m.log.Error(ctx, "clearing stored session failed", "error", cerr)
		}
		m.set(models.Anonymous())
		m.log.Info(ctx, "login failed", "username", creds.Username, "error", err)
		return err
	}

	m.set(models.Authenticated(token, user))
	m.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

func (m *SessionManager) login(ctx context.Context, creds models.LoginCredentials) (*models.User, string, error) {
	token, err := m.client.Login(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	user, err := m.client.GetUser(ctx, token)
	if err != nil {
		return nil, "", err
	}
	if err := m.store.SaveSession(ctx, token, user); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}
	return user, token, nil
}

// Register creates an account. It does not sign the user in and never
// touches the token or user.
func (m *SessionManager) Register(ctx context.Context, creds models.RegisterCredentials) error {
	m.setLoading(true)
	err := m.client.Register(ctx, creds)
	m.setLoading(false)

	if err != nil {
		m.log.Info(ctx, "registration failed", "username", creds.Username, "error", err)
		return err
	}
	m.log.Info(ctx, "registered", "username", creds.Username)
	return nil
}

// Logout clears the stored token and user and resets to anonymous. It makes
// no network call and is idempotent.
func (m *SessionManager) Logout(ctx context.Context) error {
	err := m.store.ClearSession(ctx)
	m.set(models.Anonymous())
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// RefreshUser re-fetches the profile for the stored token. Without a stored
// token it does nothing. A failed fetch logs out and returns the error.
func (m *SessionManager) RefreshUser(ctx context.Context) error {
	token, err := m.store.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil
	}

	user, err := m.client.GetUser(ctx, token)
	if err != nil {
		if lerr := m.Logout(ctx); lerr != nil {
			m.log.Error(ctx, "logout after failed refresh", "error", lerr)
		}
		return err
	}

	if err := m.store.SetUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	m.set(models.Authenticated(token, user))
	return nil
}

// Verify checks the stored token with the server. It reports false when no
// token is stored. A token the server rejects (or that cannot be checked)
// signs the user out, clearing both the token and the user.
func (m *SessionManager) Verify(ctx context.Context) bool {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "reading stored token failed", "error", err)
		return false
	}
	if token == "" {
		return false
	}

	if _, err := m.client.GetUser(ctx, token); err != nil {
		m.log.Info(ctx, "stored token rejected", "error", err)
		if lerr := m.Logout(ctx); lerr != nil {
			m.log.Error(ctx, "logout after rejected token", "error", lerr)
		}
		return false
	}
	return true
}
