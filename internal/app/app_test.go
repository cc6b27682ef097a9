package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"njia-admin/internal/config"
	"njia-admin/internal/credstore"
	"njia-admin/internal/model"
)

// testConfig wires the app against the given backend with a memory
// credential store and a throwaway log directory.
func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.NewConfig(t.TempDir())
	cfg.API.BaseURL = baseURL
	cfg.Credstore.Type = "memory"
	cfg.LogDir = t.TempDir()
	return cfg
}

func envelope(data any) map[string]any {
	return map[string]any{
		"success":   true,
		"status":    200,
		"message":   "ok",
		"data":      data,
		"timestamp": "2024-06-15T14:30:45Z",
	}
}

func TestApp_LoginPersistsToken(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(envelope(model.LoginResponse{
				Token:     "tok-abc",
				Type:      "Bearer",
				ExpiresIn: 3600,
				User:      model.User{ID: 7, Email: "admin@njiani.com"},
			}))
		case "/claims":
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(envelope([]model.Claim{}))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a, err := New(testConfig(t, srv.URL), "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	resp, err := a.Login(context.Background(), "admin@njiani.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "tok-abc" {
		t.Errorf("Login() token = %q, want %q", resp.Token, "tok-abc")
	}

	stored, err := a.store.Get(credstore.KeyToken)
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if stored != "tok-abc" {
		t.Errorf("persisted token = %q, want %q", stored, "tok-abc")
	}

	if _, err := a.Claims(context.Background()); err != nil {
		t.Fatalf("Claims() error = %v", err)
	}
	if sawAuth != "Bearer tok-abc" {
		t.Errorf("Authorization header = %q, want %q", sawAuth, "Bearer tok-abc")
	}
}

func TestApp_UnauthorizedClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"status":  401,
			"message": "token expired",
		})
	}))
	defer srv.Close()

	a, err := New(testConfig(t, srv.URL), "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	if err := a.store.Set(credstore.KeyToken, "stale-token"); err != nil {
		t.Fatalf("store.Set() error = %v", err)
	}
	if _, err := a.SessionLogin("admin@njiani.com", "admin123"); err != nil {
		t.Fatalf("SessionLogin() error = %v", err)
	}

	if _, err := a.Claims(context.Background()); err == nil {
		t.Fatal("Claims() expected error on 401, got nil")
	}

	stored, err := a.store.Get(credstore.KeyToken)
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if stored != "" {
		t.Errorf("token after 401 = %q, want cleared", stored)
	}
	if a.SessionUser() != nil {
		t.Error("session user after 401 should be nil")
	}
}

func TestApp_ClaimsCached(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		json.NewEncoder(w).Encode(envelope([]model.Claim{{ID: 1}, {ID: 2}}))
	}))
	defer srv.Close()

	a, err := New(testConfig(t, srv.URL), "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	for i := 0; i < 3; i++ {
		claims, err := a.Claims(context.Background())
		if err != nil {
			t.Fatalf("Claims() error = %v", err)
		}
		if len(claims) != 2 {
			t.Fatalf("Claims() returned %d claims, want 2", len(claims))
		}
	}
	if fetches != 1 {
		t.Errorf("backend fetches = %d, want 1", fetches)
	}
}

func TestApp_StatisticsOverCachedClaims(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope([]model.Claim{
			{ID: 1, Status: model.StatusPending},
			{ID: 2, Status: model.StatusVerified},
			{ID: 3, Status: model.StatusPending},
		}))
	}))
	defer srv.Close()

	a, err := New(testConfig(t, srv.URL), "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	st, err := a.Statistics(context.Background(), 5)
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.Pending != 2 {
		t.Errorf("Pending = %d, want 2", st.Pending)
	}
	if st.Verified != 1 {
		t.Errorf("Verified = %d, want 1", st.Verified)
	}
}
