// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

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

const otherPatientID = "0191b0d4-6a5e-7c3a-9d1e-0000000000b2"

func painAt(patientID string, at time.Time, intensity int) *types.PainEvent {
	return &types.PainEvent{PatientID: patientID, RecordedAt: at, Intensity: intensity}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected time.Time
	}{
		{name: "monday", at: time.Date(2026, time.March, 23, 8, 0, 0, 0, time.UTC), expected: time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC)},
		{name: "sunday", at: time.Date(2026, time.March, 29, 23, 0, 0, 0, time.UTC), expected: time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC)},
		{name: "across months", at: time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC), expected: time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC)},
		{name: "offset is read in UTC", at: time.Date(2026, time.March, 22, 20, 0, 0, 0, time.FixedZone("CST", -6*3600)), expected: time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStart(tt.at); !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWeeklyPain(t *testing.T) {
	events := []*types.PainEvent{
		painAt(patientID, time.Date(2026, time.March, 28, 9, 0, 0, 0, time.UTC), 2),
		painAt(patientID, time.Date(2026, time.March, 24, 9, 0, 0, 0, time.UTC), 3),
		painAt(patientID, time.Date(2026, time.March, 23, 9, 0, 0, 0, time.UTC), 3),
		painAt(patientID, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), 7),
	}

	weeks := weeklyPain(events)

	expected := []WeeklyPain{
		{WeekStart: "2026-03-09", AverageIntensity: 7, Events: 1},
		{WeekStart: "2026-03-23", AverageIntensity: 2.67, Events: 3},
	}
	if len(weeks) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(weeks))
	}
	for i, w := range expected {
		if *weeks[i] != w {
			t.Errorf("week %d: expected %+v, got %+v", i, w, *weeks[i])
		}
	}
}

func TestService_PatientEvolution(t *testing.T) {
	since := now.AddDate(0, 0, -evolutionDays)

	events := make([]*types.PainEvent, 0, 12)
	for i := 0; i < 12; i++ {
		events = append(events, painAt(patientID, now.Add(-time.Duration(i)*time.Hour), 4))
	}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		expectedWeeks  int
		expectedRecent int
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "therapist is refused",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.expectAuthzFailure("patient", therapistID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "no events",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return([]*types.PainEvent{}, nil)
			},
		},
		{
			name:   "recent events are capped",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return(events, nil)
			},
			expectedWeeks:  1,
			expectedRecent: recentPainEvents,
		},
		{
			name:   "storage failure",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeEvolutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.PatientEvolution")
			tt.setupMocks(m)

			evolution, err := m.service(ctrl).PatientEvolution(context.Background(), tt.caller)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(evolution.Weeks) != tt.expectedWeeks || len(evolution.Recent) != tt.expectedRecent {
				t.Errorf("expected %d weeks and %d recent, got %d and %d", tt.expectedWeeks, tt.expectedRecent, len(evolution.Weeks), len(evolution.Recent))
			}
			if tt.expectedRecent > 0 && evolution.Recent[0] != events[0] {
				t.Error("expected the newest event first")
			}
		})
	}
}

func TestService_PatientHome(t *testing.T) {
	next := &types.AppointmentView{Appointment: types.Appointment{ID: appointmentID, ScheduledAt: now.Add(48 * time.Hour)}}
	appointments := storage.AppointmentFilter{PatientID: patientID, From: now, Limit: 1}
	since := now.AddDate(0, 0, -homePainDays)

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		expected       *PatientHome
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "admin is refused",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.expectAuthzFailure("patient", adminID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "next appointment and week average",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListAppointments(gomock.Any(), appointments).Return([]*types.AppointmentView{next}, nil)
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return([]*types.PainEvent{
					painAt(patientID, now, 3), painAt(patientID, now, 4), painAt(patientID, now, 4),
				}, nil)
			},
			expected: &PatientHome{NextAppointment: next, WeekAveragePain: 3.7, WeekPainEvents: 3},
		},
		{
			name:   "nothing upcoming and no pain",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListAppointments(gomock.Any(), appointments).Return([]*types.AppointmentView{}, nil)
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return([]*types.PainEvent{}, nil)
			},
			expected: &PatientHome{},
		},
		{
			name:   "appointment failure",
			caller: patient,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListAppointments(gomock.Any(), appointments).Return(nil, errors.New("boom"))
				m.storage.EXPECT().ListPainEvents(gomock.Any(), patientID, since).Return(nil, nil).AnyTimes()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeHomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.PatientHome")
			tt.setupMocks(m)

			home, err := m.service(ctrl).PatientHome(context.Background(), tt.caller)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *home != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, home)
			}
		})
	}
}

func TestService_TherapistHome(t *testing.T) {
	since := now.AddDate(0, 0, -homePainDays)
	upcoming := storage.AppointmentFilter{TherapistID: therapistID, From: now}
	assigned := storage.AssignmentFilter{TherapistID: therapistID}

	first := now.Add(24 * time.Hour)
	later := now.Add(72 * time.Hour)

	profile := func(id, name string) *types.ProfileWithRole {
		return &types.ProfileWithRole{Profile: types.Profile{ID: id, FullName: name, Active: true}, Role: types.RolePatient}
	}

	tests := []struct {
		name           string
		caller         *types.CallerContext
		setupMocks     func(*mocks)
		validate       func(*testing.T, *TherapistHome)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "admin is refused",
			caller: scopedAdmin,
			setupMocks: func(m *mocks) {
				m.expectAuthzFailure("therapist", adminID)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "no assigned patients reads nothing else",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveAssignments(gomock.Any(), assigned).Return([]*types.PatientAssignment{}, nil)
			},
			validate: func(t *testing.T, home *TherapistHome) {
				if home.Patients == nil || len(home.Patients) != 0 {
					t.Errorf("expected an empty list, got %+v", home.Patients)
				}
			},
		},
		{
			name:   "pain average and next appointment per patient",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveAssignments(gomock.Any(), assigned).Return([]*types.PatientAssignment{
					{PatientID: patientID, TherapistID: therapistID, ClinicID: clinicID, Active: true},
					{PatientID: otherPatientID, TherapistID: therapistID, ClinicID: otherClinicID, Active: true},
					{PatientID: patientID, TherapistID: therapistID, ClinicID: otherClinicID, Active: true},
				}, nil)
				m.storage.EXPECT().ListProfiles(gomock.Any(), "", patientID, otherPatientID).Return([]*types.ProfileWithRole{
					profile(patientID, "Ana"), profile(otherPatientID, "Beto"),
				}, nil)
				m.storage.EXPECT().ListAppointments(gomock.Any(), upcoming).Return([]*types.AppointmentView{
					{Appointment: types.Appointment{PatientID: patientID, ScheduledAt: first}},
					{Appointment: types.Appointment{PatientID: "unassigned", ScheduledAt: first}},
					{Appointment: types.Appointment{PatientID: patientID, ScheduledAt: later}},
				}, nil)
				m.storage.EXPECT().ListPainEventsByPatients(gomock.Any(), []string{patientID, otherPatientID}, since).Return([]*types.PainEvent{
					painAt(patientID, now, 5), painAt(patientID, now, 6),
				}, nil)
			},
			validate: func(t *testing.T, home *TherapistHome) {
				if len(home.Patients) != 2 {
					t.Fatalf("expected 2 patients, got %d", len(home.Patients))
				}

				ana, beto := home.Patients[0], home.Patients[1]
				if ana.FullName != "Ana" || ana.AveragePain == nil || *ana.AveragePain != 5.5 {
					t.Errorf("unexpected row %+v", ana)
				}
				if ana.NextAppointment == nil || !ana.NextAppointment.Equal(first) {
					t.Errorf("expected next appointment %v, got %v", first, ana.NextAppointment)
				}
				if beto.AveragePain != nil || beto.NextAppointment != nil {
					t.Errorf("expected no pain and no appointment, got %+v", beto)
				}
			},
		},
		{
			name:   "assignment failure",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveAssignments(gomock.Any(), assigned).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeHomeFailed,
		},
		{
			name:   "pain failure",
			caller: therapist,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveAssignments(gomock.Any(), assigned).Return([]*types.PatientAssignment{
					{PatientID: patientID, TherapistID: therapistID, Active: true},
				}, nil)
				m.storage.EXPECT().ListProfiles(gomock.Any(), "", patientID).Return(nil, nil).AnyTimes()
				m.storage.EXPECT().ListAppointments(gomock.Any(), upcoming).Return(nil, nil).AnyTimes()
				m.storage.EXPECT().ListPainEventsByPatients(gomock.Any(), []string{patientID}, since).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeHomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl, "therapy.Service.TherapistHome")
			tt.setupMocks(m)

			home, err := m.service(ctrl).TherapistHome(context.Background(), tt.caller)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.validate(t, home)
		})
	}
}
