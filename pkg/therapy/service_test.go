// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package therapy -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package therapy -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package therapy -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package therapy -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	clinicID      = "0191b0d4-6a5e-7c3a-9d1e-000000000001"
	otherClinicID = "0191b0d4-6a5e-7c3a-9d1e-000000000002"
	adminID       = "0191b0d4-6a5e-7c3a-9d1e-0000000000a1"
	patientID     = "0191b0d4-6a5e-7c3a-9d1e-0000000000b1"
	therapistID   = "0191b0d4-6a5e-7c3a-9d1e-0000000000c1"
	appointmentID = "0191b0d4-6a5e-7c3a-9d1e-0000000000d1"
	exerciseID    = "0191b0d4-6a5e-7c3a-9d1e-0000000000e1"
	planItemID    = "0191b0d4-6a5e-7c3a-9d1e-0000000000f1"
)

var (
	now = time.Date(2026, time.March, 29, 12, 0, 0, 0, time.UTC)

	scopedAdmin = &types.CallerContext{UserID: adminID, Role: types.RoleAdmin, ClinicID: clinicID, Active: true}
	therapist   = &types.CallerContext{UserID: therapistID, Role: types.RoleTherapist, ClinicID: clinicID, Active: true}
	patient     = &types.CallerContext{UserID: patientID, Role: types.RolePatient, ClinicID: clinicID, Active: true}
)

type mocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthorizerInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
	tracer   *MockTracingInterface
}

func newMocks(ctrl *gomock.Controller, span string) *mocks {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	return m
}

func (m *mocks) service(ctrl *gomock.Controller) *Service {
	svc := NewService(m.storage, m.authz, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
	svc.now = func() time.Time { return now }
	return svc
}

func (m *mocks) expectAuthzFailure(resource string, userID string) {
	m.logger.EXPECT().Security().Return(m.security)
	m.security.EXPECT().AuthzFailure(userID, resource)
}

func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *httptypes.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError %s, got %v", code, err)
	}
	if apiErr.Status != status || apiErr.Code != code {
		t.Errorf("expected %d %s, got %d %s", status, code, apiErr.Status, apiErr.Code)
	}
}

func TestService_CreateExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl, "therapy.Service.CreateExercise")
	m.storage.EXPECT().CreateExercise(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.Exercise) (*types.Exercise, error) {
			if e.Difficulty != "medium" || e.ClinicID != clinicID || e.CreatedBy != therapistID || !e.Active {
				t.Errorf("unexpected exercise %+v", e)
			}
			e.ID = exerciseID
			return e, nil
		},
	)

	req := &CreateExerciseRequest{
		Name:             "Bridge",
		YoutubeURL:       "https://youtu.be/abc",
		Instructions:     "Lift the hips slowly",
		Series:           3,
		Reps:             12,
		FrequencyPerWeek: 5,
		Category:         "core",
		BodyPart:         "lower_back",
	}

	exercise, err := m.service(ctrl).CreateExercise(context.Background(), therapist, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exercise.ID != exerciseID {
		t.Errorf("unexpected exercise %+v", exercise)
	}
}

func TestService_CreatePlanItem(t *testing.T) {
	req := &CreatePlanItemRequest{PatientID: patientID, ExerciseID: exerciseID, SortOrder: 1}
	assignment := storage.AssignmentFilter{PatientID: patientID, TherapistID: therapistID}
	profile := &types.Profile{ID: patientID, ClinicID: clinicID, Active: true}
	exercise := func(clinic string, active bool) *types.Exercise {
		return &types.Exercise{ID: exerciseID, ClinicID: clinic, Active: active}
	}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "therapist without assignment",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(false, nil)
				m.expectAuthzFailure("patient:"+patientID, therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodePatientNotAssigned,
		},
		{
			name:   "unknown patient",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodePatientNotFound,
		},
		{
			name:   "admin on a patient of another clinic",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, ClinicID: otherClinicID}, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailureClinicMismatch(adminID, otherClinicID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeClinicForbidden,
		},
		{
			name:   "unknown exercise",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeExerciseNotFound,
		},
		{
			name:   "archived exercise",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise(clinicID, false), nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeExerciseNotFound,
		},
		{
			name:   "exercise lookup failure",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeExerciseLookupFailed,
		},
		{
			name:   "exercise of another clinic is not attached",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise(otherClinicID, true), nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailureClinicMismatch(therapistID, otherClinicID)
				m.storage.EXPECT().CreatePlanItem(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeExerciseClinicMismatch,
		},
		{
			name:   "exercise removed meanwhile",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise(clinicID, true), nil)
				m.storage.EXPECT().CreatePlanItem(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeExerciseNotFound,
		},
		{
			name:   "insert failure",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise(clinicID, true), nil)
				m.storage.EXPECT().CreatePlanItem(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodePlanItemCreateFailed,
		},
		{
			name:   "shared exercise fits any clinic",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise("", true), nil)
				m.storage.EXPECT().CreatePlanItem(gomock.Any(), gomock.Any()).Return(&types.PlanItem{ID: planItemID}, nil)
			},
		},
		{
			name:   "admin skips the assignment check",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().GetExercise(gomock.Any(), exerciseID).Return(exercise(clinicID, true), nil)
				m.storage.EXPECT().CreatePlanItem(gomock.Any(), gomock.Any()).Return(&types.PlanItem{ID: planItemID}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.CreatePlanItem")
			tt.setupMocks(m)

			item, err := m.service(ctrl).CreatePlanItem(context.Background(), tt.caller, req)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.ID != planItemID {
				t.Errorf("unexpected item %+v", item)
			}
		})
	}
}

func TestService_SaveSession(t *testing.T) {
	req := &SaveSessionRequest{AppointmentID: appointmentID, PatientID: patientID, SessionDate: "2026-03-28", Notes: "Good progress"}
	own := &types.Appointment{ID: appointmentID, PatientID: patientID, TherapistID: therapistID, ClinicID: clinicID}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "therapist on a missing appointment",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(nil, storage.ErrNotFound)
				m.expectAuthzFailure("appointment:"+appointmentID, therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeTherapistForbidden,
		},
		{
			name:   "therapist on a colleague's appointment",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(
					&types.Appointment{ID: appointmentID, PatientID: patientID, TherapistID: "someone", ClinicID: clinicID}, nil,
				)
				m.expectAuthzFailure("appointment:"+appointmentID, therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeTherapistForbidden,
		},
		{
			name:   "admin on a missing appointment",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeAppointmentNotFound,
		},
		{
			name:   "patient does not match",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(
					&types.Appointment{ID: appointmentID, PatientID: "other", TherapistID: therapistID, ClinicID: clinicID}, nil,
				)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "saved",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(own, nil)
				m.storage.EXPECT().UpsertSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.SessionNote) (*types.SessionNote, error) {
						if n.TherapistID != therapistID || !n.SessionDate.Equal(time.Date(2026, time.March, 28, 0, 0, 0, 0, time.UTC)) {
							t.Errorf("unexpected session %+v", n)
						}
						n.ID = "note"
						return n, nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.SaveSession")
			tt.setupMocks(m)

			note, err := m.service(ctrl).SaveSession(context.Background(), tt.caller, req)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if note.ID != "note" {
				t.Errorf("unexpected note %+v", note)
			}
		})
	}
}

func TestService_PatientSummary(t *testing.T) {
	profile := &types.Profile{ID: patientID, ClinicID: clinicID, FullName: "Ana Lopez", Active: true}
	assignment := storage.AssignmentFilter{PatientID: patientID, TherapistID: therapistID}

	expectRecord := func(m *mocks) {
		m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, now.AddDate(0, 0, -28)).Return([]*types.PainEvent{{Intensity: 4}}, nil)
		m.storage.EXPECT().ListPlanItems(gomock.Any(), patientID).Return([]*types.PlanItemView{}, nil)
		m.storage.EXPECT().ListSessions(gomock.Any(), patientID).Return([]*types.SessionNote{}, nil)
	}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "unknown patient",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodePatientNotFound,
		},
		{
			name:   "therapist without assignment",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(false, nil)
				m.expectAuthzFailure("patient:"+patientID, therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodePatientNotAssigned,
		},
		{
			name:   "relationship store denies",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.authz.EXPECT().CanViewPatient(gomock.Any(), therapistID, patientID).Return(false, errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), therapistID, patientID, gomock.Any())
				m.expectAuthzFailure("patient:"+patientID, therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodePatientNotAssigned,
		},
		{
			name:   "admin of another clinic",
			caller: &types.CallerContext{UserID: adminID, Role: types.RoleAdmin, ClinicID: otherClinicID},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailureClinicMismatch(adminID, clinicID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeClinicForbidden,
		},
		{
			name:   "assigned therapist",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				m.storage.EXPECT().HasActiveAssignment(gomock.Any(), assignment).Return(true, nil)
				m.authz.EXPECT().CanViewPatient(gomock.Any(), therapistID, patientID).Return(true, nil)
				expectRecord(m)
			},
		},
		{
			name:   "admin of the clinic",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), patientID).Return(profile, nil)
				expectRecord(m)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.PatientSummary")
			tt.setupMocks(m)

			summary, err := m.service(ctrl).PatientSummary(context.Background(), tt.caller, patientID)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if summary.Profile.ID != patientID || len(summary.PainEvents) != 1 || summary.PlanItems == nil || summary.Sessions == nil {
				t.Errorf("unexpected summary %+v", summary)
			}
		})
	}
}
