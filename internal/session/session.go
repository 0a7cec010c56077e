// Package session manages the persisted login session: the token lives in
// the OS keyring, and expiry is broadcast through an explicit observer
// registry rather than a module-level callback, so separate instances
// (and tests) do not share state.
package session

import (
	"errors"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	"github.com/rakesh-arrepu/HHH-sub000/internal/logger"
)

var (
	// ErrNotLoggedIn is returned when no session token is stored.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Manager holds the current session token and the expiry listeners. It
// implements api.TokenSource and api.ExpiryNotifier.
type Manager struct {
	mu        sync.Mutex
	token     string
	loaded    bool
	listeners []func()

	// service is the keyring service name; overridable for tests.
	service string
}

// NewManager creates a Manager backed by the default keyring service.
func NewManager() *Manager {
	return &Manager{service: constants.AppName}
}

// Token returns the current session token, loading it from the keyring on
// first use. An empty string means no session.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		m.loaded = true
		tok, err := keyring.Get(m.service, constants.KeyringTokenUser)
		if err == nil {
			m.token = tok
		} else if err != keyring.ErrNotFound {
			logger.Warn("keyring read failed", "error", err)
		}
	}
	return m.token
}

// SetToken stores a new session token in memory and the keyring.
func (m *Manager) SetToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.loaded = true
	m.mu.Unlock()

	if token == "" {
		return m.Clear()
	}
	if err := keyring.Set(m.service, constants.KeyringTokenUser, token); err != nil {
		return errors.Join(ErrKeyringUnavailable, err)
	}
	return nil
}

// Clear forgets the session token in memory and the keyring.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.token = ""
	m.loaded = true
	m.mu.Unlock()

	if err := keyring.Delete(m.service, constants.KeyringTokenUser); err != nil && err != keyring.ErrNotFound {
		return errors.Join(ErrKeyringUnavailable, err)
	}
	return nil
}

// OnExpired registers a listener for the session-expired signal.
func (m *Manager) OnExpired(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// SessionExpired clears the stored token and notifies every listener.
// Called by the API client when a non-auth request comes back 401.
func (m *Manager) SessionExpired() {
	m.mu.Lock()
	m.token = ""
	m.loaded = true
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	// Best effort: the server already rejected the token.
	if err := keyring.Delete(m.service, constants.KeyringTokenUser); err != nil && err != keyring.ErrNotFound {
		logger.Warn("keyring delete failed", "error", err)
	}

	logger.Info("session expired")
	for _, fn := range listeners {
		fn()
	}
}
