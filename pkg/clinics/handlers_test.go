// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/types"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		span           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "create with short name",
			method:         http.MethodPost,
			path:           "/api/admin/clinics",
			body:           `{"name":"A","address":"Av. Reforma 1","phone":"5550001"}`,
			span:           "clinics.API.createClinic",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/admin/clinics",
			body:   `{"name":"Centro","address":"Av. Reforma 1","phone":"5550001"}`,
			span:   "clinics.API.createClinic",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateClinic(gomock.Any(), scopedAdmin, gomock.Any()).Return(&types.Clinic{ID: clinicID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update with invalid id",
			method:         http.MethodPatch,
			path:           "/api/admin/clinics/nope",
			body:           `{"name":"Centro"}`,
			span:           "clinics.API.updateClinic",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidClinicID,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/api/admin/clinics/" + clinicID,
			body:   `{"active":false}`,
			span:   "clinics.API.updateClinic",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateClinic(gomock.Any(), scopedAdmin, clinicID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.CallerContext, _ string, req *UpdateClinicRequest) (*types.Clinic, error) {
						if req.Active == nil || *req.Active {
							t.Errorf("expected active=false, got %+v", req)
						}
						return &types.Clinic{ID: clinicID}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "dashboard",
			method: http.MethodGet,
			path:   "/api/admin/dashboard",
			span:   "clinics.API.dashboard",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Dashboard(gomock.Any(), scopedAdmin).Return(&Dashboard{Clinics: []*ClinicMetrics{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reports",
			method: http.MethodGet,
			path:   "/api/admin/reports",
			span:   "clinics.API.reports",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Reports(gomock.Any(), scopedAdmin).Return(&Reports{Trend: []*MonthCount{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reports failure",
			method: http.MethodGet,
			path:   "/api/admin/reports",
			span:   "clinics.API.reports",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Reports(gomock.Any(), scopedAdmin).Return(nil, httptypes.BadRequest(CodeReportsFailed, "failed to load reports", nil))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeReportsFailed,
		},
		{
			name:   "master agenda",
			method: http.MethodGet,
			path:   "/api/admin/appointments",
			span:   "clinics.API.masterAgenda",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MasterAgenda(gomock.Any(), scopedAdmin).Return([]*types.AppointmentView{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/admin/clinics",
			span:   "clinics.API.listClinics",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListClinics(gomock.Any(), scopedAdmin).Return(nil, httptypes.NotAuthorized())
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), tt.span).DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(identity.WithCaller(req.Context(), scopedAdmin))
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
			}
		})
	}
}
