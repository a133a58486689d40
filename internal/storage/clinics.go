// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/fisioapp/clinic-service/internal/types"
)

var clinicColumns = []string{"id", "name", "address", "phone", "timezone", "active", "created_at"}

type rowScanner interface {
	Scan(...interface{}) error
}

func scanClinic(row rowScanner) (*types.Clinic, error) {
	var c types.Clinic
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Timezone, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateClinic(ctx context.Context, c *types.Clinic) (*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClinic")
	defer span.End()

	id, err := newID("clinic")
	if err != nil {
		return nil, err
	}

	clinic, err := scanClinic(
		s.db.Statement(ctx).
			Insert("clinics").
			Columns("id", "name", "address", "phone", "timezone", "active").
			Values(id, c.Name, c.Address, c.Phone, c.Timezone, c.Active).
			Suffix("RETURNING id, name, address, phone, timezone, active, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to insert clinic")
	}

	return clinic, nil
}

func (s *Storage) GetClinic(ctx context.Context, id string) (*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClinic")
	defer span.End()

	clinic, err := scanClinic(
		s.db.Statement(ctx).
			Select(clinicColumns...).
			From("clinics").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to get clinic")
	}

	return clinic, nil
}

// ListClinics returns every clinic when ids is empty, otherwise only the requested ones.
func (s *Storage) ListClinics(ctx context.Context, ids ...string) ([]*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClinics")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(clinicColumns...).
		From("clinics").
		OrderBy("name")

	if len(ids) > 0 {
		query = query.Where(sq.Eq{"id": ids})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, wrapError(err, "failed to list clinics")
	}
	defer rows.Close()

	clinics := make([]*types.Clinic, 0)
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clinic: %w", err)
		}
		clinics = append(clinics, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clinic rows: %w", err)
	}

	return clinics, nil
}

// UpdateClinic applies the non nil fields of u and returns the updated row.
func (s *Storage) UpdateClinic(ctx context.Context, id string, u types.ClinicUpdate) (*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClinic")
	defer span.End()

	updateMap := make(map[string]interface{})
	if u.Name != nil {
		updateMap["name"] = *u.Name
	}
	if u.Address != nil {
		updateMap["address"] = *u.Address
	}
	if u.Phone != nil {
		updateMap["phone"] = *u.Phone
	}
	if u.Timezone != nil {
		updateMap["timezone"] = *u.Timezone
	}
	if u.Active != nil {
		updateMap["active"] = *u.Active
	}

	if len(updateMap) == 0 {
		return s.GetClinic(ctx, id)
	}

	clinic, err := scanClinic(
		s.db.Statement(ctx).
			Update("clinics").
			SetMap(updateMap).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING id, name, address, phone, timezone, active, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to update clinic")
	}

	return clinic, nil
}
