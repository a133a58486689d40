// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fisioapp/clinic-service/internal/types"
)

const appointmentReturning = "RETURNING id, patient_id, therapist_id, clinic_id, scheduled_at, duration_minutes, status, created_at"

// AppointmentFilter narrows appointment listings, zero values match everything.
type AppointmentFilter struct {
	PatientID   string
	TherapistID string
	ClinicID    string
	From        time.Time
	To          time.Time
	// Limit caps the rows returned when positive.
	Limit uint64
	// Latest orders newest first.
	Latest bool
}

func scanAppointment(row rowScanner) (*types.Appointment, error) {
	var a types.Appointment
	var status string
	if err := row.Scan(&a.ID, &a.PatientID, &a.TherapistID, &a.ClinicID, &a.ScheduledAt, &a.DurationMinutes, &status, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Status = types.AppointmentStatus(status)
	return &a, nil
}

// CreateAppointment inserts a scheduled appointment. ErrExclusionViolation is returned
// when it overlaps another scheduled appointment of the same therapist.
func (s *Storage) CreateAppointment(ctx context.Context, a *types.Appointment) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAppointment")
	defer span.End()

	id, err := newID("appointment")
	if err != nil {
		return nil, err
	}

	appointment, err := scanAppointment(
		s.db.Statement(ctx).
			Insert("appointments").
			Columns("id", "patient_id", "therapist_id", "clinic_id", "scheduled_at", "duration_minutes", "status").
			Values(id, a.PatientID, a.TherapistID, a.ClinicID, a.ScheduledAt.UTC(), a.DurationMinutes, string(a.Status)).
			Suffix(appointmentReturning).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to insert appointment")
	}

	return appointment, nil
}

func (s *Storage) GetAppointment(ctx context.Context, id string) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAppointment")
	defer span.End()

	appointment, err := scanAppointment(
		s.db.Statement(ctx).
			Select("id", "patient_id", "therapist_id", "clinic_id", "scheduled_at", "duration_minutes", "status", "created_at").
			From("appointments").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to get appointment")
	}

	return appointment, nil
}

func (s *Storage) UpdateAppointmentStatus(ctx context.Context, id string, status types.AppointmentStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAppointmentStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("appointments").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to update appointment")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListAppointments returns matching appointments ordered by time, with both parties' names.
// Filters on the time range apply before the limit.
func (s *Storage) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]*types.AppointmentView, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAppointments")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(
			"a.id", "a.patient_id", "a.therapist_id", "a.clinic_id", "a.scheduled_at", "a.duration_minutes", "a.status", "a.created_at",
			"COALESCE(pp.full_name, '')", "COALESCE(pt.full_name, '')",
		).
		From("appointments a").
		LeftJoin("profiles pp ON pp.id = a.patient_id").
		LeftJoin("profiles pt ON pt.id = a.therapist_id").
		Where(sq.And{
			eqOrAll("a.patient_id", filter.PatientID),
			eqOrAll("a.therapist_id", filter.TherapistID),
			eqOrAll("a.clinic_id", filter.ClinicID),
		})

	if filter.Latest {
		query = query.OrderBy("a.scheduled_at DESC")
	} else {
		query = query.OrderBy("a.scheduled_at")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{"a.scheduled_at": filter.From.UTC()})
	}
	if !filter.To.IsZero() {
		query = query.Where(sq.Lt{"a.scheduled_at": filter.To.UTC()})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list appointments")
	}
	defer rows.Close()

	appointments := make([]*types.AppointmentView, 0)
	for rows.Next() {
		var v types.AppointmentView
		var status string
		err := rows.Scan(
			&v.ID, &v.PatientID, &v.TherapistID, &v.ClinicID, &v.ScheduledAt, &v.DurationMinutes, &status, &v.CreatedAt,
			&v.PatientName, &v.TherapistName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		v.Status = types.AppointmentStatus(status)
		appointments = append(appointments, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}

	return appointments, nil
}
