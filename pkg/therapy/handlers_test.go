// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

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
		caller         *types.CallerContext
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "pain event with zero intensity",
			method: http.MethodPost,
			path:   "/api/patient/pain-events",
			body:   `{"bodyPart":"knee","intensity":0,"trigger":"sport"}`,
			span:   "therapy.API.createPainEvent",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreatePainEvent(gomock.Any(), patient, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *types.CallerContext, req *CreatePainEventRequest) (*types.PainEvent, error) {
						if req.Intensity == nil || *req.Intensity != 0 {
							t.Errorf("unexpected intensity %v", req.Intensity)
						}
						return &types.PainEvent{ID: "event"}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pain event without intensity",
			method:         http.MethodPost,
			path:           "/api/patient/pain-events",
			body:           `{"bodyPart":"knee","trigger":"sport"}`,
			span:           "therapy.API.createPainEvent",
			caller:         patient,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:           "pain event with unknown body part",
			method:         http.MethodPost,
			path:           "/api/patient/pain-events",
			body:           `{"bodyPart":"elbow","intensity":4,"trigger":"sport"}`,
			span:           "therapy.API.createPainEvent",
			caller:         patient,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "pain events default window",
			method: http.MethodGet,
			path:   "/api/patient/pain-events",
			span:   "therapy.API.listPainEvents",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListPainEvents(gomock.Any(), patient, 28).Return([]*types.PainEvent{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pain events with non numeric days",
			method:         http.MethodGet,
			path:           "/api/patient/pain-events?days=week",
			span:           "therapy.API.listPainEvents",
			caller:         patient,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:           "completion without hadPain",
			method:         http.MethodPost,
			path:           "/api/patient/exercise-completions",
			body:           `{"planItemId":"` + planItemID + `"}`,
			span:           "therapy.API.completeExercise",
			caller:         patient,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "completion of a foreign item",
			method: http.MethodPost,
			path:   "/api/patient/exercise-completions",
			body:   `{"planItemId":"` + planItemID + `","hadPain":false}`,
			span:   "therapy.API.completeExercise",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CompleteExercise(gomock.Any(), patient, gomock.Any()).Return(nil, httptypes.NotFound(CodePlanItemNotFound, "plan item not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodePlanItemNotFound,
		},
		{
			name:           "patient summary with invalid id",
			method:         http.MethodGet,
			path:           "/api/therapist/patients/42",
			span:           "therapy.API.patientSummary",
			caller:         therapist,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidPatientID,
		},
		{
			name:   "patient summary",
			method: http.MethodGet,
			path:   "/api/therapist/patients/" + patientID,
			span:   "therapy.API.patientSummary",
			caller: therapist,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PatientSummary(gomock.Any(), therapist, patientID).Return(&PatientSummary{Profile: &types.Profile{ID: patientID}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "session with malformed date",
			method:         http.MethodPost,
			path:           "/api/therapist/sessions",
			body:           `{"appointmentId":"` + appointmentID + `","patientId":"` + patientID + `","sessionDate":"28/03/2026","notes":"fine"}`,
			span:           "therapy.API.saveSession",
			caller:         therapist,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "therapist home",
			method: http.MethodGet,
			path:   "/api/therapist/home",
			span:   "therapy.API.therapistHome",
			caller: therapist,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().TherapistHome(gomock.Any(), therapist).Return(&TherapistHome{Patients: []*TherapistPatient{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "patient home",
			method: http.MethodGet,
			path:   "/api/patient/home",
			span:   "therapy.API.patientHome",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PatientHome(gomock.Any(), patient).Return(&PatientHome{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "patient evolution refused to therapists",
			method: http.MethodGet,
			path:   "/api/patient/evolution",
			span:   "therapy.API.patientEvolution",
			caller: therapist,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PatientEvolution(gomock.Any(), therapist).Return(nil, httptypes.NotAuthorized())
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "patient evolution",
			method: http.MethodGet,
			path:   "/api/patient/evolution",
			span:   "therapy.API.patientEvolution",
			caller: patient,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PatientEvolution(gomock.Any(), patient).Return(&PatientEvolution{Weeks: []*WeeklyPain{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "exercise without caller",
			method:         http.MethodGet,
			path:           "/api/therapist/exercises",
			span:           "therapy.API.listExercises",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httptypes.CodeUnauthenticated,
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
			}
		})
	}
}

func TestAPI_PatientSummaryRefusesPatientsBeforeIDCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "therapy.API.patientSummary").DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthzFailure(patientID, "privileged")

	mux := chi.NewMux()
	NewAPI(NewMockServiceInterface(ctrl), mockTracer, NewMockMonitorInterface(ctrl), mockLogger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/therapist/patients/42", nil)
	req = req.WithContext(identity.WithCaller(req.Context(), patient))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d: %s", http.StatusForbidden, w.Code, w.Body.String())
	}
}
