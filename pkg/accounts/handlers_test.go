// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/types"
)

func TestAPI_Me(t *testing.T) {
	patient := &types.CallerContext{UserID: userID, Role: types.RolePatient, Active: true}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "no caller",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httptypes.CodeUnauthenticated,
		},
		{
			name:   "patient",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Me(gomock.Any(), patient).Return(&Me{UserID: userID, Role: types.RolePatient, HomePath: "/patient"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.me").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.caller != nil {
				req = req.WithContext(identity.WithCaller(req.Context(), tt.caller))
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedCode != "" {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, body.Code)
				}
				return
			}

			var me Me
			if err := json.NewDecoder(w.Body).Decode(&me); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if me.HomePath != "/patient" {
				t.Errorf("unexpected body %+v", me)
			}
		})
	}
}
