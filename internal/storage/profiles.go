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

var profileColumns = []string{
	"p.id", "COALESCE(p.clinic_id::text, '')", "p.full_name", "p.phone", "p.active", "p.created_at",
}

func scanProfileWithRole(row rowScanner) (*types.ProfileWithRole, error) {
	var p types.ProfileWithRole
	var role string
	if err := row.Scan(&p.ID, &p.ClinicID, &p.FullName, &p.Phone, &p.Active, &p.CreatedAt, &role); err != nil {
		return nil, err
	}
	p.Role = types.Role(role)
	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles p").
		Where(sq.Eq{"p.id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.ClinicID, &p.FullName, &p.Phone, &p.Active, &p.CreatedAt)

	if err != nil {
		return nil, wrapError(err, "failed to get profile")
	}

	return &p, nil
}

// GetRole returns ErrNotFound when the user holds no role.
func (s *Storage) GetRole(ctx context.Context, userID string) (types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRole")
	defer span.End()

	var role string
	err := s.db.Statement(ctx).
		Select("role").
		From("user_roles").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&role)

	if err != nil {
		return "", wrapError(err, "failed to get role")
	}

	return types.Role(role), nil
}

// UpsertProfile creates the profile or overwrites its editable fields.
func (s *Storage) UpsertProfile(ctx context.Context, p *types.Profile) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "clinic_id", "full_name", "phone", "active").
		Values(p.ID, nullable(p.ClinicID), p.FullName, p.Phone, p.Active).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			clinic_id = EXCLUDED.clinic_id,
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			active = EXCLUDED.active,
			updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to upsert profile")
	}

	return nil
}

func (s *Storage) UpsertRole(ctx context.Context, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, string(role)).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role").
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to upsert role")
	}

	return nil
}

func (s *Storage) SetProfileActive(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProfileActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		Set("active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to update profile")
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

// ListProfiles returns profiles joined with their role, an empty role means none is assigned.
// clinicID and ids narrow the result when set.
func (s *Storage) ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProfiles")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(append(profileColumns, "COALESCE(r.role, '')")...).
		From("profiles p").
		LeftJoin("user_roles r ON r.user_id = p.id").
		Where(eqOrAll("p.clinic_id", clinicID)).
		OrderBy("p.full_name")

	if len(ids) > 0 {
		query = query.Where(sq.Eq{"p.id": ids})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list profiles")
	}
	defer rows.Close()

	profiles := make([]*types.ProfileWithRole, 0)
	for rows.Next() {
		p, err := scanProfileWithRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// IsClinicPatient reports whether patientID holds the patient role and belongs to clinicID,
// either as its primary clinic or through patient_clinics.
func (s *Storage) IsClinicPatient(ctx context.Context, clinicID, patientID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsClinicPatient")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("p.id").
		From("profiles p").
		Join("user_roles r ON r.user_id = p.id").
		Where(sq.Eq{"p.id": patientID, "r.role": types.RolePatient}).
		Where(sq.Or{
			sq.Eq{"p.clinic_id": clinicID},
			sq.Expr("EXISTS (SELECT 1 FROM patient_clinics pc WHERE pc.patient_id = p.id AND pc.clinic_id = ?)", clinicID),
		}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&id)

	switch err = wrapError(err, "failed to look up clinic patient"); {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	}

	return false, err
}

// AddPatientClinics links a patient to every clinic in clinicIDs, existing links are kept.
func (s *Storage) AddPatientClinics(ctx context.Context, patientID string, clinicIDs []string, createdBy string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddPatientClinics")
	defer span.End()

	if len(clinicIDs) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("patient_clinics").
		Columns("patient_id", "clinic_id", "created_by")

	for _, clinicID := range clinicIDs {
		query = query.Values(patientID, clinicID, nullable(createdBy))
	}

	_, err := query.
		Suffix("ON CONFLICT (patient_id, clinic_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return wrapError(err, "failed to insert patient clinics")
	}

	return nil
}
