// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/fisioapp/clinic-service/internal/db"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

// TableExists reports whether the relation is visible to the current role.
func (s *Storage) TableExists(ctx context.Context, name string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TableExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("to_regclass(?) IS NOT NULL", name)).
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, wrapError(err, "failed to look up table")
	}

	return exists, nil
}

func newID(kind string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s ID: %w", kind, err)
	}
	return id.String(), nil
}

// nullable maps the empty string to NULL for optional foreign keys.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// eqOrAll filters on column only when value is set.
func eqOrAll(column, value string) sq.Sqlizer {
	if value == "" {
		return sq.Expr("TRUE")
	}
	return sq.Eq{column: value}
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
