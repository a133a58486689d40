// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appointments

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

//go:generate mockgen -build_flags=--mod=mod -package appointments -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appointments -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appointments -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package appointments -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	clinicID      = "0191b0d4-6a5e-7c3a-9d1e-000000000001"
	otherClinicID = "0191b0d4-6a5e-7c3a-9d1e-000000000002"
	adminID       = "0191b0d4-6a5e-7c3a-9d1e-0000000000a1"
	patientID     = "0191b0d4-6a5e-7c3a-9d1e-0000000000b1"
	therapistID   = "0191b0d4-6a5e-7c3a-9d1e-0000000000c1"
	otherTherapID = "0191b0d4-6a5e-7c3a-9d1e-0000000000c2"
	appointmentID = "0191b0d4-6a5e-7c3a-9d1e-0000000000d1"
)

var (
	scopedAdmin = &types.CallerContext{UserID: adminID, Role: types.RoleAdmin, ClinicID: clinicID, Active: true}
	therapist   = &types.CallerContext{UserID: therapistID, Role: types.RoleTherapist, ClinicID: clinicID, Active: true}
	patient     = &types.CallerContext{UserID: patientID, Role: types.RolePatient, ClinicID: clinicID, Active: true}
)

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

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_CreateAppointment(t *testing.T) {
	scheduledAt := time.Date(2026, time.March, 10, 16, 0, 0, 0, time.UTC)
	activeTherapist := []*types.ProfileWithRole{
		{Profile: types.Profile{ID: therapistID, ClinicID: clinicID, Active: true}, Role: types.RoleTherapist},
	}
	participants := func(st *MockStorageInterface) {
		st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(true, nil)
		st.EXPECT().ListProfiles(gomock.Any(), clinicID, therapistID).Return(activeTherapist, nil)
	}
	req := func(therapist string) *CreateAppointmentRequest {
		return &CreateAppointmentRequest{
			PatientID:      patientID,
			TherapistID:    therapist,
			ClinicID:       clinicID,
			ScheduledAtUTC: "2026-03-10T10:00:00-06:00",
		}
	}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		req            *CreateAppointmentRequest
		setupMocks     func(*MockStorageInterface, *MockNotifierInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "patient cannot schedule",
			caller: patient,
			req:    req(therapistID),
			setupMocks: func(_ *MockStorageInterface, _ *MockNotifierInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure(patientID, "privileged")
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "therapist of another clinic",
			caller: &types.CallerContext{UserID: therapistID, Role: types.RoleTherapist, ClinicID: otherClinicID},
			req:    req(therapistID),
			setupMocks: func(_ *MockStorageInterface, _ *MockNotifierInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureClinicMismatch(therapistID, clinicID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeClinicForbidden,
		},
		{
			name:   "therapist scheduling for a colleague",
			caller: therapist,
			req:    req(otherTherapID),
			setupMocks: func(_ *MockStorageInterface, _ *MockNotifierInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure(therapistID, "appointment:"+otherTherapID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeTherapistForbidden,
		},
		{
			name:   "timestamp that does not parse",
			caller: scopedAdmin,
			req: &CreateAppointmentRequest{
				PatientID:      patientID,
				TherapistID:    therapistID,
				ClinicID:       clinicID,
				ScheduledAtUTC: "2026-03-10 16:00",
			},
			setupMocks:     func(*MockStorageInterface, *MockNotifierInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httptypes.CodeInvalidPayload,
		},
		{
			name:   "patient lookup failure",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(false, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeParticipantsFailed,
		},
		{
			name:   "patient of another clinic",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(false, nil)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodePatientMismatch,
		},
		{
			name:   "therapist outside the clinic",
			caller: scopedAdmin,
			req:    req(otherTherapID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(true, nil)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, otherTherapID).Return([]*types.ProfileWithRole{}, nil)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeTherapistMismatch,
		},
		{
			name:   "deactivated therapist",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(true, nil)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, therapistID).Return(
					[]*types.ProfileWithRole{{Profile: types.Profile{ID: therapistID, ClinicID: clinicID}, Role: types.RoleTherapist}}, nil,
				)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeTherapistMismatch,
		},
		{
			name:   "therapist slot held by another role",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(true, nil)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, therapistID).Return(
					[]*types.ProfileWithRole{{Profile: types.Profile{ID: therapistID, ClinicID: clinicID, Active: true}, Role: types.RoleAdmin}}, nil,
				)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeTherapistMismatch,
		},
		{
			name:   "therapist lookup failure",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().IsClinicPatient(gomock.Any(), clinicID, patientID).Return(true, nil)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, therapistID).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeParticipantsFailed,
		},
		{
			name:   "overlapping appointment",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				participants(st)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrExclusionViolation)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeOverlap,
		},
		{
			name:   "insert failure",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, _ *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				participants(st)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeCreateFailed,
		},
		{
			name:   "created and confirmed",
			caller: therapist,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, n *MockNotifierInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				participants(st)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Appointment) (*types.Appointment, error) {
						if !a.ScheduledAt.Equal(scheduledAt) || a.DurationMinutes != 30 || a.Status != types.AppointmentScheduled {
							t.Errorf("unexpected appointment %+v", a)
						}
						a.ID = appointmentID
						return a, nil
					},
				)
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, Phone: "+525512345678"}, nil)
				st.EXPECT().GetClinic(gomock.Any(), clinicID).Return(&types.Clinic{ID: clinicID, Timezone: "Europe/Madrid"}, nil)
				n.EXPECT().SendAppointmentConfirmation(gomock.Any(), "+525512345678", scheduledAt, "Europe/Madrid").Return(nil)
			},
		},
		{
			name:   "confirmation failure is only logged",
			caller: scopedAdmin,
			req:    req(therapistID),
			setupMocks: func(st *MockStorageInterface, n *MockNotifierInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				participants(st)
				st.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Appointment) (*types.Appointment, error) {
						a.ID = appointmentID
						return a, nil
					},
				)
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, Phone: "+525512345678"}, nil)
				st.EXPECT().GetClinic(gomock.Any(), clinicID).Return(nil, errors.New("boom"))
				n.EXPECT().SendAppointmentConfirmation(gomock.Any(), "+525512345678", scheduledAt, "America/Mexico_City").Return(errors.New("twilio down"))
				l.EXPECT().Errorf(gomock.Any(), appointmentID, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockNotifier := NewMockNotifierInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			expectSpan(mockTracer, "appointments.Service.CreateAppointment")
			tt.setupMocks(mockStorage, mockNotifier, mockLogger, mockSecurity)

			svc := NewService(mockStorage, mockNotifier, "America/Mexico_City", mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
			appointment, err := svc.CreateAppointment(context.Background(), tt.caller, tt.req)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if appointment.ID != appointmentID {
				t.Errorf("unexpected appointment %+v", appointment)
			}
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	own := &types.Appointment{ID: appointmentID, TherapistID: therapistID, ClinicID: clinicID}
	foreign := &types.Appointment{ID: appointmentID, TherapistID: otherTherapID, ClinicID: otherClinicID}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "lookup failure",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeLookupFailed,
		},
		{
			name:   "admin on a missing appointment",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeNotFound,
		},
		{
			name:   "therapist on a missing appointment",
			caller: therapist,
			setupMocks: func(st *MockStorageInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(nil, storage.ErrNotFound)
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure(therapistID, "appointment:"+appointmentID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeTherapistForbidden,
		},
		{
			name:   "therapist on a colleague's appointment is not mutated",
			caller: therapist,
			setupMocks: func(st *MockStorageInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(foreign, nil)
				st.EXPECT().UpdateAppointmentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure(therapistID, "appointment:"+appointmentID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeTherapistForbidden,
		},
		{
			name:   "scoped admin on another clinic",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(foreign, nil)
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureClinicMismatch(adminID, otherClinicID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeClinicForbidden,
		},
		{
			name:   "update failure",
			caller: therapist,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(own, nil)
				st.EXPECT().UpdateAppointmentStatus(gomock.Any(), appointmentID, types.AppointmentCompleted).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeUpdateFailed,
		},
		{
			name:   "therapist completes their appointment",
			caller: therapist,
			setupMocks: func(st *MockStorageInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetAppointment(gomock.Any(), appointmentID).Return(own, nil)
				st.EXPECT().UpdateAppointmentStatus(gomock.Any(), appointmentID, types.AppointmentCompleted).Return(nil)
				l.EXPECT().Infof(gomock.Any(), appointmentID, types.AppointmentCompleted, therapistID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			expectSpan(mockTracer, "appointments.Service.SetStatus")
			tt.setupMocks(mockStorage, mockLogger, mockSecurity)

			svc := NewService(mockStorage, NewMockNotifierInterface(ctrl), "UTC", mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
			err := svc.SetStatus(context.Background(), tt.caller, appointmentID, types.AppointmentCompleted)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	expectSpan(mockTracer, "appointments.Service.TherapistAgenda")
	expectSpan(mockTracer, "appointments.Service.PatientAppointments")
	expectSpan(mockTracer, "appointments.Service.PatientAppointments")

	mockStorage.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{TherapistID: therapistID, From: from, To: to}).
		Return([]*types.AppointmentView{{PatientName: "Ana"}}, nil)
	mockStorage.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{PatientID: patientID}).
		Return([]*types.AppointmentView{{TherapistName: "Tomas"}}, nil)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthzFailure(therapistID, "patient")

	svc := NewService(mockStorage, NewMockNotifierInterface(ctrl), "UTC", mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

	agenda, err := svc.TherapistAgenda(context.Background(), therapist, from, to)
	if err != nil || len(agenda) != 1 || agenda[0].PatientName != "Ana" {
		t.Errorf("unexpected agenda %v %v", agenda, err)
	}

	own, err := svc.PatientAppointments(context.Background(), patient)
	if err != nil || len(own) != 1 || own[0].TherapistName != "Tomas" {
		t.Errorf("unexpected appointments %v %v", own, err)
	}

	_, err = svc.PatientAppointments(context.Background(), therapist)
	assertAPIError(t, err, http.StatusForbidden, httptypes.CodeUnauthorized)
}
