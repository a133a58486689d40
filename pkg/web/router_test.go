// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

func TestNewRouter(t *testing.T) {
	logger := logging.NewNoopLogger()

	var authenticated, resolved bool

	cfg := Config{
		CORSAllowedOrigins: []string{"https://app.example.com"},
		Public: []RegisterFunc{
			func(r chi.Router) {
				r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			},
		},
		Protected: []RegisterFunc{
			func(r chi.Router) {
				r.Get("/api/auth/me", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			},
		},
		Authenticate: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authenticated = true
				if r.Header.Get("Authorization") == "" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
			})
		},
		Resolve: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				resolved = true
				next.ServeHTTP(w, r)
			})
		},
	}

	router := NewRouter(cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedAuthn  bool
		expectedResolv bool
	}{
		{name: "public route skips authentication", path: "/api/health", expectedStatus: http.StatusOK},
		{name: "protected route without credentials", path: "/api/auth/me", expectedStatus: http.StatusUnauthorized, expectedAuthn: true},
		{name: "protected route with credentials", path: "/api/auth/me", header: "Bearer token", expectedStatus: http.StatusOK, expectedAuthn: true, expectedResolv: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticated, resolved = false, false

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if authenticated != tt.expectedAuthn || resolved != tt.expectedResolv {
				t.Errorf("unexpected middleware chain: authenticated=%v resolved=%v", authenticated, resolved)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	logger := logging.NewNoopLogger()
	router := NewRouter(
		Config{CORSAllowedOrigins: []string{"https://app.example.com"}},
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger,
	)

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/clinics", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}
