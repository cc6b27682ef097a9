package session_test

import (
	"errors"
	"testing"

	"njia-admin/internal/credstore"
	"njia-admin/internal/model"
	"njia-admin/internal/session"
)

func TestManager_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantRole model.SessionRole
		wantErr  bool
	}{
		{"admin pair", "admin@njiani.com", "admin123", model.RoleAdmin, false},
		{"staff pair", "staff@njiani.com", "staff123", model.RoleStaff, false},
		{"wrong password", "admin@njiani.com", "nope", "", true},
		{"unknown account", "someone@example.com", "admin123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := session.NewManager(credstore.NewMemoryStore())
			user, err := m.Login(tt.email, tt.password)

			if tt.wantErr {
				if !errors.Is(err, session.ErrInvalidCredentials) {
					t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
				}
				if err.Error() != "Invalid credentials" {
					t.Errorf("error message = %q, want %q", err.Error(), "Invalid credentials")
				}
				if m.Current() != nil {
					t.Error("failed login left a session behind")
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if user.Role != tt.wantRole {
				t.Errorf("role = %s, want %s", user.Role, tt.wantRole)
			}
			if got := m.Current(); got == nil || got.Email != tt.email {
				t.Errorf("Current() = %+v, want the logged-in user", got)
			}
		})
	}
}

func TestManager_RehydratesFromStore(t *testing.T) {
	t.Parallel()
	store := credstore.NewMemoryStore()

	first := session.NewManager(store)
	if _, err := first.Login("staff@njiani.com", "staff123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// A fresh manager over the same store picks the session back up.
	second := session.NewManager(store)
	if err := second.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	user := second.Current()
	if user == nil || user.Role != model.RoleStaff {
		t.Errorf("Current() after rehydrate = %+v, want staff user", user)
	}
}

func TestManager_LoadIgnoresCorruptState(t *testing.T) {
	t.Parallel()
	store := credstore.NewMemoryStore()
	store.Set(credstore.KeySessionUser, "{not json")

	m := session.NewManager(store)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Current() != nil {
		t.Error("corrupt blob produced a session")
	}
	if v, _ := store.Get(credstore.KeySessionUser); v != "" {
		t.Error("corrupt blob was not cleared")
	}
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	t.Parallel()
	store := credstore.NewMemoryStore()
	m := session.NewManager(store)
	if _, err := m.Login("admin@njiani.com", "admin123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
	if m.Current() != nil {
		t.Error("Current() after logout is not nil")
	}
	if v, _ := store.Get(credstore.KeySessionUser); v != "" {
		t.Error("persisted session survived logout")
	}
}

func TestManager_IsAdmin(t *testing.T) {
	t.Parallel()
	m := session.NewManager(credstore.NewMemoryStore())
	if m.IsAdmin() {
		t.Error("logged-out manager reports admin")
	}
	m.Login("staff@njiani.com", "staff123")
	if m.IsAdmin() {
		t.Error("staff session reports admin")
	}
	m.Login("admin@njiani.com", "admin123")
	if !m.IsAdmin() {
		t.Error("admin session does not report admin")
	}
}
