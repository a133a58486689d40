// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

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
)

func TestAPI_Reconcile(t *testing.T) {
	tests := []struct {
		name           string
		patientID      string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid patient id",
			patientID:      "nope",
			body:           `{}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidPatientID,
		},
		{
			name:           "duplicate secondaries",
			patientID:      patientID,
			body:           `{"clinicId":"` + clinicID + `","primaryTherapistId":"` + t1 + `","secondaryTherapistIds":["` + t2 + `","` + t2 + `"]}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:           "primary among secondaries",
			patientID:      patientID,
			body:           `{"clinicId":"` + clinicID + `","primaryTherapistId":"` + t1 + `","secondaryTherapistIds":["` + t1 + `"]}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:      "reconciled",
			patientID: patientID,
			body:      `{"clinicId":"` + clinicID + `","primaryTherapistId":"` + t1 + `"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Reconcile(gomock.Any(), admin, patientID, gomock.Any()).Return(
					&ReconcileResponse{Success: true, PatientID: patientID, ClinicID: clinicID, PrimaryTherapistID: t1, SecondaryTherapistIDs: []string{}},
					nil,
				)
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

			mockTracer.EXPECT().Start(gomock.Any(), "assignments.API.reconcile").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/patient-assignments/"+tt.patientID, strings.NewReader(tt.body))
			req = req.WithContext(identity.WithCaller(req.Context(), admin))
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
