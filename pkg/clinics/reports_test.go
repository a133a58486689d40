// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

func TestAggregateReports(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	appointment := func(at time.Time, status types.AppointmentStatus) *types.AppointmentView {
		return &types.AppointmentView{Appointment: types.Appointment{ClinicID: clinicID, ScheduledAt: at, Status: status}}
	}

	appointments := []*types.AppointmentView{
		appointment(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), types.AppointmentCompleted),
		appointment(time.Date(2026, time.February, 3, 9, 0, 0, 0, time.UTC), types.AppointmentCompleted),
		appointment(time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC), types.AppointmentNoShow),
		appointment(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), types.AppointmentCompleted),
		appointment(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), types.AppointmentCancelled),
		appointment(time.Date(2026, time.March, 30, 9, 0, 0, 0, time.UTC), types.AppointmentScheduled),
	}

	assignments := []*types.PatientAssignment{
		{PatientID: "p1", TherapistID: "t1", Active: true},
		{PatientID: "p1", TherapistID: "t2", Active: true},
		{PatientID: "p2", TherapistID: "t1", Active: true},
		{PatientID: "p3", TherapistID: "t1", Active: false},
	}

	r := aggregateReports(now, appointments, assignments)

	expectedTrend := []MonthCount{
		{Month: "2025-10", Total: 1},
		{Month: "2025-11"},
		{Month: "2025-12"},
		{Month: "2026-01"},
		{Month: "2026-02", Total: 2},
		{Month: "2026-03", Total: 3},
	}
	if len(r.Trend) != len(expectedTrend) {
		t.Fatalf("expected %d trend months, got %d", len(expectedTrend), len(r.Trend))
	}
	for i, expected := range expectedTrend {
		if *r.Trend[i] != expected {
			t.Errorf("trend %d: expected %+v, got %+v", i, expected, *r.Trend[i])
		}
	}

	if r.AppointmentsThisMonth != 3 || r.AppointmentsPreviousMonth != 2 {
		t.Errorf("unexpected month counts %d/%d", r.AppointmentsThisMonth, r.AppointmentsPreviousMonth)
	}
	if r.MonthOverMonthPercent == nil || *r.MonthOverMonthPercent != 50 {
		t.Errorf("expected 50%% growth, got %v", r.MonthOverMonthPercent)
	}
	if r.Statuses != (StatusCounts{Scheduled: 1, Completed: 1, Cancelled: 1}) {
		t.Errorf("unexpected status distribution %+v", r.Statuses)
	}
	if r.ActivePatients != 2 {
		t.Errorf("expected 2 active patients, got %d", r.ActivePatients)
	}
}

func TestAggregateReportsEmpty(t *testing.T) {
	r := aggregateReports(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), nil, nil)

	if len(r.Trend) != trendMonths || r.Trend[0].Month != "2025-08" || r.Trend[trendMonths-1].Month != "2026-01" {
		t.Errorf("unexpected trend %+v", r.Trend)
	}
	if r.MonthOverMonthPercent != nil || r.ActivePatients != 0 {
		t.Errorf("unexpected report %+v", r)
	}
}

func TestService_Reports(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	from := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "therapist is refused",
			caller: &types.CallerContext{UserID: "t1", Role: types.RoleTherapist, ClinicID: clinicID, Active: true},
			setupMocks: func(_ *MockStorageInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureNotAdmin("t1")
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "scoped admin reads own clinic",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{ClinicID: clinicID, From: from, To: to}).
					Return([]*types.AppointmentView{
						{Appointment: types.Appointment{ScheduledAt: now, Status: types.AppointmentScheduled}},
					}, nil)
				st.EXPECT().ListActiveAssignments(gomock.Any(), storage.AssignmentFilter{ClinicID: clinicID}).
					Return([]*types.PatientAssignment{{PatientID: "p1", Active: true}}, nil)
				st.EXPECT().CountCompletions(gomock.Any(), clinicID).Return(12, nil)
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{ClinicID: clinicID, Limit: recentActivity, Latest: true}).
					Return([]*types.AppointmentView{{Appointment: types.Appointment{ID: "a1"}}}, nil)
			},
		},
		{
			name:   "global admin reads every clinic",
			caller: globalAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{From: from, To: to}).
					Return([]*types.AppointmentView{
						{Appointment: types.Appointment{ScheduledAt: now, Status: types.AppointmentScheduled}},
					}, nil)
				st.EXPECT().ListActiveAssignments(gomock.Any(), storage.AssignmentFilter{}).
					Return([]*types.PatientAssignment{{PatientID: "p1", Active: true}}, nil)
				st.EXPECT().CountCompletions(gomock.Any(), "").Return(12, nil)
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{Limit: recentActivity, Latest: true}).
					Return([]*types.AppointmentView{{Appointment: types.Appointment{ID: "a1"}}}, nil)
			},
		},
		{
			name:   "completion count failure",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				st.EXPECT().ListActiveAssignments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				st.EXPECT().CountCompletions(gomock.Any(), clinicID).Return(0, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeReportsFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			tt.setupMocks(mockStorage, mockLogger, mockSecurity)

			svc := newTestService(ctrl, mockStorage, mockLogger, "clinics.Service.Reports")
			svc.now = func() time.Time { return now }

			r, err := svc.Reports(context.Background(), tt.caller)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if r.AppointmentsThisMonth != 1 || r.Statuses.Scheduled != 1 || r.ActivePatients != 1 || r.Completions != 12 {
				t.Errorf("unexpected report %+v", r)
			}
			if len(r.Recent) != 1 || r.Recent[0].ID != "a1" {
				t.Errorf("unexpected recent activity %+v", r.Recent)
			}
		})
	}
}

func TestService_MasterAgenda(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "patient is refused",
			caller: &types.CallerContext{UserID: "p1", Role: types.RolePatient, ClinicID: clinicID, Active: true},
			setupMocks: func(_ *MockStorageInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureNotAdmin("p1")
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "next appointments of the clinic from today",
			caller: scopedAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{ClinicID: clinicID, From: today, Limit: masterAgendaLimit}).
					Return([]*types.AppointmentView{{Appointment: types.Appointment{ID: "a1"}}}, nil)
			},
		},
		{
			name:   "storage failure",
			caller: globalAdmin,
			setupMocks: func(st *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().ListAppointments(gomock.Any(), storage.AppointmentFilter{From: today, Limit: masterAgendaLimit}).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeAgendaFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			tt.setupMocks(mockStorage, mockLogger, mockSecurity)

			svc := newTestService(ctrl, mockStorage, mockLogger, "clinics.Service.MasterAgenda")
			svc.now = func() time.Time { return now }

			appointments, err := svc.MasterAgenda(context.Background(), tt.caller)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(appointments) != 1 {
				t.Errorf("expected 1 appointment, got %d", len(appointments))
			}
		})
	}
}
