// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "no rows", err: pgx.ErrNoRows, expected: ErrNotFound},
		{name: "sql no rows", err: sql.ErrNoRows, expected: ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), expected: ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, expected: ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, expected: ErrForeignKeyViolation},
		{name: "exclusion", err: &pgconn.PgError{Code: "23P01"}, expected: ErrExclusionViolation},
		{name: "undefined table", err: &pgconn.PgError{Code: "42P01"}, expected: ErrUndefinedTable},
		{name: "undefined column", err: &pgconn.PgError{Code: "42703"}, expected: ErrUndefinedColumn},
		{name: "insufficient privilege", err: &pgconn.PgError{Code: "42501"}, expected: ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError(tt.err, "op")

			if tt.expected == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}

	err := wrapError(cause, "insert appointment")

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("expected the driver error to stay reachable, got %v", err)
	}

	if pgErr.ConstraintName != "appointments_no_overlap" {
		t.Errorf("unexpected constraint %q", pgErr.ConstraintName)
	}

	if !IsExclusionViolation(err) {
		t.Error("expected an exclusion violation")
	}
}

func TestWrapErrorUnknown(t *testing.T) {
	cause := errors.New("connection reset")

	err := wrapError(cause, "list clinics")

	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped, got %v", err)
	}

	for _, sentinel := range []error{ErrNotFound, ErrDuplicateKey, ErrUndefinedColumn} {
		if errors.Is(err, sentinel) {
			t.Errorf("unexpected sentinel %v", sentinel)
		}
	}

	if IsDuplicateKeyError(err) || IsForeignKeyViolation(err) {
		t.Error("unexpected pg classification")
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		classify func(error) bool
		expected bool
	}{
		{name: "raw unique", err: &pgconn.PgError{Code: "23505"}, classify: IsDuplicateKeyError, expected: true},
		{name: "sentinel unique", err: ErrDuplicateKey, classify: IsDuplicateKeyError, expected: true},
		{name: "raw foreign key", err: &pgconn.PgError{Code: "23503"}, classify: IsForeignKeyViolation, expected: true},
		{name: "wrapped foreign key", err: fmt.Errorf("insert: %w", ErrForeignKeyViolation), classify: IsForeignKeyViolation, expected: true},
		{name: "sentinel exclusion", err: ErrExclusionViolation, classify: IsExclusionViolation, expected: true},
		{name: "raw privilege", err: &pgconn.PgError{Code: "42501"}, classify: IsInsufficientPrivilege, expected: true},
		{name: "wrapped privilege", err: wrapError(&pgconn.PgError{Code: "42501"}, "select"), classify: IsInsufficientPrivilege, expected: true},
		{name: "other code", err: &pgconn.PgError{Code: "23505"}, classify: IsExclusionViolation, expected: false},
		{name: "nil", err: nil, classify: IsInsufficientPrivilege, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.classify(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
