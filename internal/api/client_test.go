package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"njia-admin/internal/api"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func TestClient_AuthorizationHeader(t *testing.T) {
	t.Run("attaches bearer token when one is persisted", func(t *testing.T) {
		t.Parallel()
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{"success":true,"status":200,"message":"ok","data":{},"timestamp":"t"}`))
		}))
		defer srv.Close()

		c := api.NewClient(srv.URL, api.WithTokenSource(staticToken("tok-123")))
		if err := c.Get(context.Background(), "/claims", nil); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-123")
		}
	})

	t.Run("proceeds unauthenticated when no token is persisted", func(t *testing.T) {
		t.Parallel()
		var got string
		var present bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			_, present = r.Header["Authorization"]
			w.Write([]byte(`{"data":[]}`))
		}))
		defer srv.Close()

		c := api.NewClient(srv.URL, api.WithTokenSource(staticToken("")))
		if err := c.Get(context.Background(), "/claims", nil); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if present || got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
	})
}

func TestClient_EnvelopeUnwrap(t *testing.T) {
	t.Run("caller receives the data field, not the envelope", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"status":200,"message":"found","data":{"id":7,"email":"a@b.c"},"timestamp":"2024-01-01T00:00:00"}`))
		}))
		defer srv.Close()

		var out struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		}
		c := api.NewClient(srv.URL)
		if err := c.Get(context.Background(), "/users/7", &out); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if out.ID != 7 || out.Email != "a@b.c" {
			t.Errorf("got %+v, want id=7 email=a@b.c", out)
		}
	})

	t.Run("body without a data field passes through unchanged", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":3,"email":"x@y.z"}`))
		}))
		defer srv.Close()

		var out struct {
			ID int64 `json:"id"`
		}
		c := api.NewClient(srv.URL)
		if err := c.Get(context.Background(), "/users/3", &out); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if out.ID != 3 {
			t.Errorf("ID = %d, want 3", out.ID)
		}
	})

	t.Run("null data leaves out untouched", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"status":204,"message":"deleted","data":null,"timestamp":"t"}`))
		}))
		defer srv.Close()

		out := map[string]any{"sentinel": true}
		c := api.NewClient(srv.URL)
		if err := c.Get(context.Background(), "/claims/1", &out); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !out["sentinel"].(bool) {
			t.Error("out was overwritten by null data")
		}
	})
}

func TestClient_Unauthorized(t *testing.T) {
	t.Run("401 fires the callback exactly once and still errors", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"status":401,"message":"token expired","timestamp":"t"}`))
		}))
		defer srv.Close()

		var calls atomic.Int64
		c := api.NewClient(srv.URL, api.WithUnauthorizedFunc(func() { calls.Add(1) }))

		err := c.Get(context.Background(), "/claims", nil)
		if !errors.Is(err, api.ErrUnauthorized) {
			t.Fatalf("error = %v, want ErrUnauthorized", err)
		}
		if calls.Load() != 1 {
			t.Errorf("callback fired %d times, want 1", calls.Load())
		}

		// A second failing call fires it again, once.
		c.Get(context.Background(), "/claims", nil)
		if calls.Load() != 2 {
			t.Errorf("callback fired %d times after two calls, want 2", calls.Load())
		}
	})

	t.Run("other error statuses do not fire the callback", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"status":404,"message":"Claim not found with id: 99","timestamp":"t"}`))
		}))
		defer srv.Close()

		var calls atomic.Int64
		c := api.NewClient(srv.URL, api.WithUnauthorizedFunc(func() { calls.Add(1) }))

		err := c.Get(context.Background(), "/claims/99", nil)
		if calls.Load() != 0 {
			t.Errorf("callback fired %d times, want 0", calls.Load())
		}
		if !errors.Is(err, api.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
		var apiErr *api.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *api.Error", err)
		}
		if apiErr.StatusCode != 404 || apiErr.Message != "Claim not found with id: 99" {
			t.Errorf("got %+v, want status 404 with server message", apiErr)
		}
	})
}

func TestClient_RequestDefaults(t *testing.T) {
	t.Parallel()
	var contentType, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL)
	if err := c.Post(context.Background(), "/auth/logout", nil, nil); err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if requestID == "" {
		t.Error("X-Request-ID header missing")
	}
}
