// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/fisioapp/clinic-service/internal/types"
)

// AssignmentFilter narrows active assignment lookups, empty fields match everything.
type AssignmentFilter struct {
	PatientID   string
	TherapistID string
	ClinicID    string
}

func (f AssignmentFilter) where() sq.And {
	return sq.And{
		sq.Eq{"active": true},
		eqOrAll("patient_id", f.PatientID),
		eqOrAll("therapist_id", f.TherapistID),
		eqOrAll("clinic_id", f.ClinicID),
	}
}

func (s *Storage) ListActiveAssignments(ctx context.Context, filter AssignmentFilter) ([]*types.PatientAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveAssignments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "patient_id", "therapist_id", "clinic_id", "is_primary", "active", "updated_at").
		From("patient_assignments").
		Where(filter.where()).
		OrderBy("is_primary DESC", "updated_at").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list assignments")
	}
	defer rows.Close()

	assignments := make([]*types.PatientAssignment, 0)
	for rows.Next() {
		var a types.PatientAssignment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.TherapistID, &a.ClinicID, &a.IsPrimary, &a.Active, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// HasActiveAssignment reports whether any active assignment matches filter.
func (s *Storage) HasActiveAssignment(ctx context.Context, filter AssignmentFilter) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasActiveAssignment")
	defer span.End()

	return s.exists(ctx, filter.where(), "failed to look up assignments")
}

// HasPrimaryAssignments reports whether the therapist is primary for any active patient
// in clinicID. Deployments whose schema lacks is_primary surface ErrUndefinedColumn.
func (s *Storage) HasPrimaryAssignments(ctx context.Context, therapistID, clinicID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasPrimaryAssignments")
	defer span.End()

	filter := AssignmentFilter{TherapistID: therapistID, ClinicID: clinicID}
	return s.exists(ctx, append(filter.where(), sq.Eq{"is_primary": true}), "failed to look up primary assignments")
}

func (s *Storage) exists(ctx context.Context, where sq.Sqlizer, op string) (bool, error) {
	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("patient_assignments").
		Where(where).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&id)

	switch err = wrapError(err, op); {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	}

	return false, err
}

// DeactivateAssignments clears every active assignment of the patient in the clinic.
func (s *Storage) DeactivateAssignments(ctx context.Context, patientID, clinicID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateAssignments")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("patient_assignments").
		Set("active", false).
		Set("is_primary", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"patient_id": patientID, "clinic_id": clinicID, "active": true}).
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to deactivate assignments")
	}

	return nil
}

// UpsertAssignments activates the given rows, keyed by patient, therapist and clinic.
func (s *Storage) UpsertAssignments(ctx context.Context, assignments []*types.PatientAssignment) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAssignments")
	defer span.End()

	if len(assignments) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("patient_assignments").
		Columns("id", "patient_id", "therapist_id", "clinic_id", "is_primary", "active")

	for _, a := range assignments {
		id, err := newID("assignment")
		if err != nil {
			return err
		}
		query = query.Values(id, a.PatientID, a.TherapistID, a.ClinicID, a.IsPrimary, true)
	}

	_, err := query.
		Suffix(`ON CONFLICT (patient_id, therapist_id, clinic_id) DO UPDATE SET
			is_primary = EXCLUDED.is_primary,
			active = TRUE,
			updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to upsert assignments")
	}

	return nil
}
