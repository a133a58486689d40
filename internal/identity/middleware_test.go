// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/fisioapp/clinic-service/internal/types"
)

type userKey struct{}

func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userKey{}).(string)
	return id, ok
}

func TestMiddleware_Resolve(t *testing.T) {
	caller := &types.CallerContext{UserID: userID, Role: types.RolePatient, ClinicID: "clinic-1", Active: true}

	tests := []struct {
		name           string
		authenticated  bool
		setupMocks     func(*MockResolverInterface, *MockLoggerInterface)
		expectedStatus int
		expectedCaller *types.CallerContext
		expectedCode   string
	}{
		{
			name:           "anonymous request passes through",
			setupMocks:     func(*MockResolverInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "resolved caller is attached",
			authenticated: true,
			setupMocks: func(r *MockResolverInterface, _ *MockLoggerInterface) {
				r.EXPECT().Resolve(gomock.Any(), userID).Return(caller, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCaller: caller,
		},
		{
			name:          "unresolved caller continues without context",
			authenticated: true,
			setupMocks: func(r *MockResolverInterface, _ *MockLoggerInterface) {
				r.EXPECT().Resolve(gomock.Any(), userID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "lookup error is an internal error",
			authenticated: true,
			setupMocks: func(r *MockResolverInterface, l *MockLoggerInterface) {
				r.EXPECT().Resolve(gomock.Any(), userID).Return(nil, errors.New("db down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "CONTEXT_LOOKUP_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockResolver := NewMockResolverInterface(ctrl)

			ctx := context.Background()
			if tt.authenticated {
				ctx = context.WithValue(ctx, userKey{}, userID)
			}

			mockTracer.EXPECT().Start(gomock.Any(), "identity.Middleware.Resolve").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tt.setupMocks(mockResolver, mockLogger)

			var got *types.CallerContext
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got = CallerFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			m := NewMiddleware(mockResolver, userIDFromContext, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			m.Resolve()(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if tt.expectedCode != "" {
				if called {
					t.Error("expected the chain to stop")
				}
				var body map[string]string
				_ = json.Unmarshal(rr.Body.Bytes(), &body)
				if body["code"] != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, body["code"])
				}
				return
			}

			if got != tt.expectedCaller {
				t.Errorf("expected caller %+v, got %+v", tt.expectedCaller, got)
			}
		})
	}
}

func TestCallerFromEmptyContext(t *testing.T) {
	if CallerFrom(context.Background()) != nil {
		t.Error("expected no caller")
	}
}
