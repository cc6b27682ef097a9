// Package session holds the locally authenticated dashboard identity.
// The manager is explicitly constructed and injected; there is no
// package-level state. Credentials are currently checked against two
// hard-coded staff accounts, a stand-in until the backend login flow is
// wired in; the backend never verifies this identity.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"njia-admin/internal/credstore"
	"njia-admin/internal/model"
)

// ErrInvalidCredentials is returned by Login for any pair that is not one
// of the known accounts. The message is part of the UI contract.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// mockAccounts are the stand-in credential pairs.
var mockAccounts = map[string]struct {
	password string
	user     model.SessionUser
}{
	"admin@njiani.com": {
		password: "admin123",
		user:     model.SessionUser{ID: "1", Email: "admin@njiani.com", Role: model.RoleAdmin, Name: "Admin User"},
	},
	"staff@njiani.com": {
		password: "staff123",
		user:     model.SessionUser{ID: "2", Email: "staff@njiani.com", Role: model.RoleStaff, Name: "Staff User"},
	},
}

// Manager owns the session lifecycle: rehydration from persistent
// storage, login against the mock accounts, and teardown. Safe for
// concurrent use.
type Manager struct {
	store credstore.Store

	mu   sync.Mutex
	user *model.SessionUser
}

// NewManager creates a Manager over the given persistent store. Call
// Load to rehydrate a previous session.
func NewManager(store credstore.Store) *Manager {
	return &Manager{store: store}
}

// Load rehydrates the session user from persistent storage. A missing or
// unreadable entry leaves the manager logged out without error; corrupt
// state must not brick the CLI.
func (m *Manager) Load() error {
	raw, err := m.store.Get(credstore.KeySessionUser)
	if err != nil {
		return fmt.Errorf("reading persisted session: %w", err)
	}
	if raw == "" {
		return nil
	}
	var user model.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Stale or corrupt blob: drop it and start logged out.
		m.store.Delete(credstore.KeySessionUser)
		return nil
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Login checks the credentials against the known accounts and, on
// success, sets and persists the session user.
func (m *Manager) Login(email, password string) (*model.SessionUser, error) {
	account, ok := mockAccounts[email]
	if !ok || account.password != password {
		return nil, ErrInvalidCredentials
	}

	user := account.user
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encoding session user: %w", err)
	}
	if err := m.store.Set(credstore.KeySessionUser, string(raw)); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return &user, nil
}

// Logout clears the in-memory and persisted session unconditionally.
// Logging out while already logged out is harmless.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	if err := m.store.Delete(credstore.KeySessionUser); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	return nil
}

// Current returns the session user, or nil when logged out.
func (m *Manager) Current() *model.SessionUser {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAdmin reports whether the current session carries the admin role.
func (m *Manager) IsAdmin() bool {
	u := m.Current()
	return u != nil && u.Role == model.RoleAdmin
}
