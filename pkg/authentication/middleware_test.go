// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/fisioapp/clinic-service/internal/kratos"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

const cookieName = "ory_kratos_session"

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		cookie             string
		setupMocks         func(*MockTokenVerifierInterface, *MockSessionClientInterface)
		expectedStatusCode int
		expectedCode       string
		expectedUserID     string
	}{
		{
			name:               "Missing credentials - rejects request",
			setupMocks:         func(*MockTokenVerifierInterface, *MockSessionClientInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface, *MockSessionClientInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionClientInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Verifier returns empty subject - rejects request",
			authHeader: "Bearer odd-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionClientInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "odd-token").Return("", nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionClientInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedUserID:     "user-123",
		},
		{
			name:       "Bearer token wins over cookie",
			authHeader: "Bearer valid-token",
			cookie:     "session-abc",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionClientInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedUserID:     "user-123",
		},
		{
			name:   "Valid session cookie",
			cookie: "session-abc",
			setupMocks: func(_ *MockTokenVerifierInterface, s *MockSessionClientInterface) {
				s.EXPECT().SessionFromCookie(gomock.Any(), cookieName+"=session-abc").Return("user-456", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedUserID:     "user-456",
		},
		{
			name:   "Expired session cookie - rejects request",
			cookie: "session-old",
			setupMocks: func(_ *MockTokenVerifierInterface, s *MockSessionClientInterface) {
				s.EXPECT().SessionFromCookie(gomock.Any(), cookieName+"=session-old").Return("", fmt.Errorf("no active session"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "Identity provider down on cookie - unavailable",
			cookie: "session-abc",
			setupMocks: func(_ *MockTokenVerifierInterface, s *MockSessionClientInterface) {
				s.EXPECT().SessionFromCookie(gomock.Any(), cookieName+"=session-abc").
					Return("", fmt.Errorf("failed to check session: %w: %w", kratos.ErrUnavailable, errors.New("502 Bad Gateway")))
			},
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "IDENTITY_PROVIDER_UNAVAILABLE",
		},
		{
			name:       "Identity provider down on session token - unavailable",
			authHeader: "Bearer session-token",
			setupMocks: func(v *MockTokenVerifierInterface, _ *MockSessionClientInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "session-token").Return("", kratos.ErrUnavailable)
			},
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "IDENTITY_PROVIDER_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockSessions := NewMockSessionClientInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			if tt.expectedStatusCode == http.StatusServiceUnavailable {
				mockLogger.EXPECT().Errorf(gomock.Any(), http.MethodGet, "/test", gomock.Any())
			}

			tt.setupMocks(mockVerifier, mockSessions)

			middleware := NewMiddleware(mockVerifier, mockSessions, cookieName, mockTracer, mockMonitor, mockLogger)

			var userID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Fatalf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedStatusCode == http.StatusUnauthorized && tt.expectedCode == "" {
				tt.expectedCode = "UNAUTHENTICATED"
			}

			if tt.expectedCode != "" {
				var body map[string]string
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("expected JSON error body, got %q", rr.Body.String())
				}
				if body["code"] != tt.expectedCode {
					t.Errorf("expected code %s, got %q", tt.expectedCode, body["code"])
				}
				if body["error"] == "" {
					t.Error("expected an error message")
				}
			}

			if userID != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, userID)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Empty bearer token",
			authHeader:    "Bearer ",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(
				NewMockTokenVerifierInterface(ctrl),
				NewMockSessionClientInterface(ctrl),
				cookieName,
				NewMockTracingInterface(ctrl),
				NewMockMonitorInterface(ctrl),
				NewMockLoggerInterface(ctrl),
			)

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestSessionTokenVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockSessions := NewMockSessionClientInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.SessionTokenVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))
	mockSessions.EXPECT().SessionFromToken(gomock.Any(), "native-token").Return("user-789", nil)

	v := NewSessionTokenVerifier(mockSessions, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	userID, err := v.VerifyToken(ctx, "native-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if userID != "user-789" {
		t.Errorf("expected user-789, got %s", userID)
	}
}

func TestNoopVerifier(t *testing.T) {
	userID, err := NewNoopVerifier().VerifyToken(context.Background(), "dev-user")
	if err != nil || userID != "dev-user" {
		t.Errorf("expected the token to be used as the user id, got %q, %v", userID, err)
	}
}
