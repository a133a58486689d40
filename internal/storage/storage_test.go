// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fisioapp/clinic-service/internal/db"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	consumeCode    = `UPDATE invitation_codes SET used_count = used_count \+ 1 WHERE active = \$1 AND code = \$2 AND used_count < max_uses AND \(expires_at IS NULL OR expires_at > now\(\)\) RETURNING clinic_id`
	upsertProfile  = `INSERT INTO profiles \(id,clinic_id,full_name,phone,active\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \(id\) DO UPDATE SET`
	upsertRole     = `INSERT INTO user_roles \(user_id,role\) VALUES \(\$1,\$2\) ON CONFLICT \(user_id\) DO UPDATE SET role = EXCLUDED.role`
	linkClinic     = `INSERT INTO patient_clinics \(patient_id,clinic_id,created_by\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(patient_id, clinic_id\) DO NOTHING`
	upsertAssigned = `INSERT INTO patient_assignments \(id,patient_id,therapist_id,clinic_id,is_primary,active\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\),\(\$7,\$8,\$9,\$10,\$11,\$12\) ON CONFLICT \(patient_id, therapist_id, clinic_id\) DO UPDATE SET\s+is_primary = EXCLUDED.is_primary,\s+active = TRUE,\s+updated_at = now\(\)`
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	return NewStorage(db.NewDBClientFromDB(sqlDB, tracer, monitor, logger), tracer, monitor, logger), mock
}

func expectRedeem(mock sqlmock.Sqlmock, code string) {
	mock.ExpectBegin()
	mock.ExpectQuery(consumeCode).
		WithArgs(true, code).
		WillReturnRows(sqlmock.NewRows([]string{"clinic_id"}).AddRow("clinic-1"))
	mock.ExpectExec(upsertProfile).
		WithArgs("patient-1", "clinic-1", "Ana", "+5511999999999", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertRole).
		WithArgs("patient-1", "patient").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(linkClinic).
		WithArgs("patient-1", "clinic-1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func expectExhausted(mock sqlmock.Sqlmock, code string) {
	mock.ExpectBegin()
	mock.ExpectQuery(consumeCode).
		WithArgs(true, code).
		WillReturnRows(sqlmock.NewRows([]string{"clinic_id"}))
	mock.ExpectRollback()
}

func TestStorage_RedeemInvitationCode(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(sqlmock.Sqlmock)
		expected   []error
	}{
		{
			name: "consumes one use and writes the patient records",
			setupMocks: func(mock sqlmock.Sqlmock) {
				expectRedeem(mock, "ABCD1234")
			},
			expected: []error{nil},
		},
		{
			name: "last use is consumed exactly once",
			setupMocks: func(mock sqlmock.Sqlmock) {
				expectRedeem(mock, "ABCD1234")
				expectExhausted(mock, "ABCD1234")
			},
			expected: []error{nil, ErrInvitationUnavailable},
		},
		{
			name: "unavailable code writes nothing",
			setupMocks: func(mock sqlmock.Sqlmock) {
				expectExhausted(mock, "ABCD1234")
			},
			expected: []error{ErrInvitationUnavailable},
		},
		{
			name: "profile failure rolls the use back",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(consumeCode).
					WithArgs(true, "ABCD1234").
					WillReturnRows(sqlmock.NewRows([]string{"clinic_id"}).AddRow("clinic-1"))
				mock.ExpectExec(upsertProfile).
					WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
			expected: []error{ErrForeignKeyViolation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setupMocks(mock)

			for i, expected := range tt.expected {
				clinicID, err := s.RedeemInvitationCode(context.Background(), "ABCD1234", "patient-1", "Ana", "+5511999999999")

				if expected == nil {
					if err != nil {
						t.Fatalf("redeem %d: unexpected error: %v", i+1, err)
					}
					if clinicID != "clinic-1" {
						t.Errorf("redeem %d: expected clinic-1, got %q", i+1, clinicID)
					}
					continue
				}

				if !errors.Is(err, expected) {
					t.Fatalf("redeem %d: expected %v, got %v", i+1, expected, err)
				}
				if clinicID != "" {
					t.Errorf("redeem %d: expected no clinic, got %q", i+1, clinicID)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_UpsertAssignments(t *testing.T) {
	tests := []struct {
		name        string
		assignments []*types.PatientAssignment
		setupMocks  func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name:       "no rows runs no statement",
			setupMocks: func(sqlmock.Sqlmock) {},
		},
		{
			name: "rows are inserted active and reactivated on conflict",
			assignments: []*types.PatientAssignment{
				{PatientID: "patient-1", TherapistID: "therapist-1", ClinicID: "clinic-1", IsPrimary: true},
				{PatientID: "patient-1", TherapistID: "therapist-2", ClinicID: "clinic-1", Active: false},
			},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertAssigned).
					WithArgs(
						sqlmock.AnyArg(), "patient-1", "therapist-1", "clinic-1", true, true,
						sqlmock.AnyArg(), "patient-1", "therapist-2", "clinic-1", false, true,
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name: "foreign key failure",
			assignments: []*types.PatientAssignment{
				{PatientID: "patient-1", TherapistID: "therapist-1", ClinicID: "clinic-1"},
				{PatientID: "patient-1", TherapistID: "therapist-9", ClinicID: "clinic-1"},
			},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertAssigned).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedErr: ErrForeignKeyViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setupMocks(mock)

			err := s.UpsertAssignments(context.Background(), tt.assignments)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_IsClinicPatient(t *testing.T) {
	const query = `SELECT p.id FROM profiles p JOIN user_roles r ON r.user_id = p.id WHERE p.id = \$1 AND r.role = \$2 AND \(p.clinic_id = \$3 OR EXISTS \(SELECT 1 FROM patient_clinics pc WHERE pc.patient_id = p.id AND pc.clinic_id = \$4\)\) LIMIT 1`

	tests := []struct {
		name        string
		setupMocks  func(sqlmock.Sqlmock)
		expected    bool
		expectedErr bool
	}{
		{
			name: "home or linked clinic",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("patient-1", "patient", "clinic-1", "clinic-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("patient-1"))
			},
			expected: true,
		},
		{
			name: "not a patient of the clinic",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("patient-1", "patient", "clinic-1", "clinic-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
		},
		{
			name: "query failure",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setupMocks(mock)

			ok, err := s.IsClinicPatient(context.Background(), "clinic-1", "patient-1")

			if (err != nil) != tt.expectedErr {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if ok != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, ok)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_GetExercise(t *testing.T) {
	const query = `SELECT e.id, .* FROM exercises e WHERE e.id = \$1`

	columns := []string{
		"id", "clinic_id", "name", "youtube_url", "instructions", "series", "reps",
		"frequency_per_week", "category", "body_part", "difficulty", "active", "created_by", "created_at",
	}
	createdAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setupMocks  func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "found",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("exercise-1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(
						"exercise-1", "clinic-1", "Bridge", "", "", 3, 12, 4, "strength", "hip", "easy", true, "", createdAt,
					))
			},
		},
		{
			name: "missing",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("exercise-1").WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setupMocks(mock)

			exercise, err := s.GetExercise(context.Background(), "exercise-1")

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil && (exercise.ClinicID != "clinic-1" || exercise.Series != 3 || !exercise.CreatedAt.Equal(createdAt)) {
				t.Errorf("unexpected exercise %+v", exercise)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_CountCompletions(t *testing.T) {
	tests := []struct {
		name       string
		clinicID   string
		setupMocks func(sqlmock.Sqlmock)
	}{
		{
			name:     "patients assigned in the clinic",
			clinicID: "clinic-1",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM exercise_completions ec WHERE ec.patient_id IN \(SELECT pa.patient_id FROM patient_assignments pa WHERE pa.clinic_id = \$1\)`).
					WithArgs("clinic-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
			},
		},
		{
			name: "every clinic",
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT count\(\*\) FROM exercise_completions ec WHERE ec.patient_id IN \(SELECT pa.patient_id FROM patient_assignments pa WHERE TRUE\)`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setupMocks(mock)

			count, err := s.CountCompletions(context.Background(), tt.clinicID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != 7 {
				t.Errorf("expected 7, got %d", count)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_ListAppointmentsLatest(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`FROM appointments a LEFT JOIN .* WHERE \(TRUE AND TRUE AND a.clinic_id = \$1\) ORDER BY a.scheduled_at DESC LIMIT 8$`).
		WithArgs("clinic-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "patient_id", "therapist_id", "clinic_id", "scheduled_at", "duration_minutes", "status", "created_at", "patient", "therapist",
		}).AddRow("a1", "patient-1", "therapist-1", "clinic-1", time.Now(), 60, "completed", time.Now(), "Ana", "Luis"))

	appointments, err := s.ListAppointments(context.Background(), AppointmentFilter{ClinicID: "clinic-1", Limit: 8, Latest: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appointments) != 1 || appointments[0].PatientName != "Ana" || appointments[0].Status != types.AppointmentCompleted {
		t.Errorf("unexpected appointments %+v", appointments)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListPainEventsByPatientsWithoutPatients(t *testing.T) {
	s, mock := newTestStorage(t)

	events, err := s.ListPainEventsByPatients(context.Background(), nil, time.Now())
	if err != nil || events == nil || len(events) != 0 {
		t.Errorf("expected an empty list, got %v %v", events, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
