// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const identityID = "0191b0d4-6a5e-7c3a-9d1e-2f3a4b5c6d7e"

func identityJSON(email string) map[string]interface{} {
	return map[string]interface{}{
		"id":         identityID,
		"schema_id":  "default",
		"schema_url": "http://kratos/schemas/default",
		"traits":     map[string]interface{}{"email": email},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(srv.URL, srv.URL, "default", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestCreateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		params   IdentityParams
		expected error
	}{
		{
			name:   "with password",
			status: http.StatusCreated,
			params: IdentityParams{Email: "ana@example.com", Password: "secret123", FullName: "Ana"},
		},
		{
			name:   "invited without password",
			status: http.StatusCreated,
			params: IdentityParams{Email: "ana@example.com"},
		},
		{
			name:     "email taken",
			status:   http.StatusConflict,
			params:   IdentityParams{Email: "ana@example.com", Password: "secret123"},
			expected: ErrIdentityExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]interface{}

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/admin/identities" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				_ = json.NewDecoder(r.Body).Decode(&body)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusCreated {
					_ = json.NewEncoder(w).Encode(identityJSON(tt.params.Email))
					return
				}
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": map[string]interface{}{"code": tt.status, "message": "conflict"}})
			})

			id, err := c.CreateIdentity(context.Background(), tt.params)

			if tt.expected != nil {
				if !errors.Is(err, tt.expected) {
					t.Fatalf("expected error %v, got %v", tt.expected, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if id != identityID {
				t.Errorf("expected id %s, got %s", identityID, id)
			}

			addresses, _ := body["verifiable_addresses"].([]interface{})
			if len(addresses) != 1 {
				t.Fatalf("expected a verified address, got %v", body["verifiable_addresses"])
			}

			_, hasCredentials := body["credentials"]
			if hasCredentials != (tt.params.Password != "") {
				t.Errorf("credentials presence mismatch: %v", body["credentials"])
			}
		})
	}
}

func TestDeleteIdentityNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/admin/identities/"+identityID {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := c.DeleteIdentity(context.Background(), identityID); err != nil {
		t.Fatalf("expected nil for missing identity, got %v", err)
	}
}

func TestGetEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(identityJSON("ana@example.com"))
	})

	email, err := c.GetEmail(context.Background(), identityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if email != "ana@example.com" {
		t.Errorf("unexpected email %q", email)
	}
}

func TestSession(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		active   bool
		expected error
	}{
		{name: "active session", status: http.StatusOK, active: true},
		{name: "inactive session", status: http.StatusOK, active: false, expected: ErrNoSession},
		{name: "unauthorized", status: http.StatusUnauthorized, expected: ErrNoSession},
		{name: "provider failure", status: http.StatusBadGateway, expected: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/sessions/whoami" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.Header.Get("X-Session-Token") != "token" {
					t.Errorf("expected session token header")
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_ = json.NewEncoder(w).Encode(map[string]interface{}{
						"id":       "session-id",
						"active":   tt.active,
						"identity": identityJSON("ana@example.com"),
					})
					return
				}
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": map[string]interface{}{"code": tt.status}})
			})

			id, err := c.SessionFromToken(context.Background(), "token")

			if tt.expected != nil {
				if !errors.Is(err, tt.expected) {
					t.Fatalf("expected %v, got %v", tt.expected, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if id != identityID {
				t.Errorf("expected %s, got %s", identityID, id)
			}
		})
	}
}

func TestEmailFromTraits(t *testing.T) {
	if got := EmailFromTraits(map[string]interface{}{"email": "a@b.c"}); got != "a@b.c" {
		t.Errorf("unexpected email %q", got)
	}

	if got := EmailFromTraits(nil); got != "" {
		t.Errorf("expected empty email, got %q", got)
	}

	if got := EmailFromTraits(map[string]interface{}{"email": 3}); got != "" {
		t.Errorf("expected empty email, got %q", got)
	}
}
