// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fisioapp/clinic-service/internal/types"
)

var invitationColumns = []string{
	"id", "code", "clinic_id", "max_uses", "used_count", "expires_at", "active", "COALESCE(created_by::text, '')", "created_at",
}

func scanInvitationCode(row rowScanner) (*types.InvitationCode, error) {
	var c types.InvitationCode
	if err := row.Scan(&c.ID, &c.Code, &c.ClinicID, &c.MaxUses, &c.UsedCount, &c.ExpiresAt, &c.Active, &c.CreatedBy, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateInvitationCode(ctx context.Context, c *types.InvitationCode) (*types.InvitationCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitationCode")
	defer span.End()

	id, err := newID("invitation code")
	if err != nil {
		return nil, err
	}

	code, err := scanInvitationCode(
		s.db.Statement(ctx).
			Insert("invitation_codes").
			Columns("id", "code", "clinic_id", "max_uses", "used_count", "expires_at", "active", "created_by").
			Values(id, c.Code, c.ClinicID, c.MaxUses, 0, c.ExpiresAt, true, nullable(c.CreatedBy)).
			Suffix("RETURNING id, code, clinic_id, max_uses, used_count, expires_at, active, COALESCE(created_by::text, ''), created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to insert invitation code")
	}

	return code, nil
}

// ListInvitationCodes returns codes newest first, every clinic when clinicID is empty.
func (s *Storage) ListInvitationCodes(ctx context.Context, clinicID string) ([]*types.InvitationCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationCodes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitation_codes").
		Where(eqOrAll("clinic_id", clinicID)).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list invitation codes")
	}
	defer rows.Close()

	codes := make([]*types.InvitationCode, 0)
	for rows.Next() {
		c, err := scanInvitationCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation code: %w", err)
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invitation code rows: %w", err)
	}

	return codes, nil
}

func (s *Storage) GetInvitationCode(ctx context.Context, code string) (*types.InvitationCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationCode")
	defer span.End()

	c, err := scanInvitationCode(
		s.db.Statement(ctx).
			Select(invitationColumns...).
			From("invitation_codes").
			Where(sq.Eq{"code": code}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapError(err, "failed to get invitation code")
	}

	return c, nil
}

// CheckInvitationCode reports whether code can be redeemed at now. It does not consume it.
func (s *Storage) CheckInvitationCode(ctx context.Context, code string, now time.Time) (*types.InvitationCheck, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CheckInvitationCode")
	defer span.End()

	c, err := s.GetInvitationCode(ctx, code)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	check := c.Check(now)
	return &check, nil
}

// RedeemInvitationCode consumes one use of code and materializes the patient records for
// userID, all in one transaction. ErrInvitationUnavailable is returned when the code could
// not be consumed.
func (s *Storage) RedeemInvitationCode(ctx context.Context, code, userID, fullName, phone string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedeemInvitationCode")
	defer span.End()

	var clinicID string

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		err := s.db.Statement(ctx).
			Update("invitation_codes").
			Set("used_count", sq.Expr("used_count + 1")).
			Where(sq.Eq{"code": code, "active": true}).
			Where("used_count < max_uses").
			Where("(expires_at IS NULL OR expires_at > now())").
			Suffix("RETURNING clinic_id").
			QueryRowContext(ctx).
			Scan(&clinicID)

		if err != nil {
			if errors.Is(wrapError(err, ""), ErrNotFound) {
				return ErrInvitationUnavailable
			}
			return wrapError(err, "failed to consume invitation code")
		}

		profile := &types.Profile{ID: userID, ClinicID: clinicID, FullName: fullName, Phone: phone, Active: true}
		if err := s.UpsertProfile(ctx, profile); err != nil {
			return err
		}

		if err := s.UpsertRole(ctx, userID, types.RolePatient); err != nil {
			return err
		}

		return s.AddPatientClinics(ctx, userID, []string{clinicID}, "")
	})

	if err != nil {
		return "", err
	}

	return clinicID, nil
}
