// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrDuplicateKey          = errors.New("duplicate key violation")
	ErrForeignKeyViolation   = errors.New("foreign key violation")
	ErrExclusionViolation    = errors.New("exclusion constraint violation")
	ErrUndefinedTable        = errors.New("undefined table")
	ErrUndefinedColumn       = errors.New("undefined column")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	// ErrInvitationUnavailable is returned when a code could not be consumed, it was
	// used up, expired or deactivated between the check and the redemption.
	ErrInvitationUnavailable = errors.New("invitation code is no longer available")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation       = "23505"
	pgErrCodeForeignKeyViolation   = "23503"
	pgErrCodeExclusionViolation    = "23P01"
	pgErrCodeUndefinedTable        = "42P01"
	pgErrCodeUndefinedColumn       = "42703"
	pgErrCodeInsufficientPrivilege = "42501"
)

var sentinels = map[string]error{
	pgErrCodeUniqueViolation:       ErrDuplicateKey,
	pgErrCodeForeignKeyViolation:   ErrForeignKeyViolation,
	pgErrCodeExclusionViolation:    ErrExclusionViolation,
	pgErrCodeUndefinedTable:        ErrUndefinedTable,
	pgErrCodeUndefinedColumn:       ErrUndefinedColumn,
	pgErrCodeInsufficientPrivilege: ErrInsufficientPrivilege,
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError reports a unique constraint violation, raw or already wrapped.
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || pgCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation reports a foreign key violation, raw or already wrapped.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, ErrForeignKeyViolation) || pgCode(err) == pgErrCodeForeignKeyViolation
}

// IsExclusionViolation reports an exclusion constraint violation, raw or already wrapped.
func IsExclusionViolation(err error) bool {
	return errors.Is(err, ErrExclusionViolation) || pgCode(err) == pgErrCodeExclusionViolation
}

// IsInsufficientPrivilege reports that the database role may not run the statement.
func IsInsufficientPrivilege(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) || pgCode(err) == pgErrCodeInsufficientPrivilege
}

// wrapError annotates err with op and, when the driver reported a known condition,
// with the matching sentinel so callers can use errors.Is.
func wrapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if sentinel, ok := sentinels[pgCode(err)]; ok {
		return fmt.Errorf("%s: %w: %w", op, sentinel, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
