// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver builds the caller context from the role and profile records. It fails closed:
// a caller without a role, without a profile or with an inactive profile resolves to nil.
type Resolver struct {
	primary  ReaderInterface
	fallback ReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve reads through the primary reader and, when that fails or finds nothing, tries
// the fallback reader once. Row level policies can hide a caller's own records from the
// primary connection, the fallback connects with a role that is not subject to them.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*types.CallerContext, error) {
	ctx, span := r.tracer.Start(ctx, "identity.Resolver.Resolve")
	defer span.End()

	caller, found, err := r.read(ctx, r.primary, userID)
	if err == nil && found {
		return caller, nil
	}

	if r.fallback == nil {
		return nil, err
	}

	if err != nil {
		r.logger.Debugf("primary caller lookup failed for %s, using fallback reader: %v", userID, err)
	} else {
		r.logger.Debugf("caller %s not visible to primary reader, using fallback reader", userID)
	}

	caller, _, err = r.read(ctx, r.fallback, userID)
	return caller, err
}

// read reports found=false when either record is missing, an inactive profile is a
// definitive answer and reports found=true with a nil caller.
func (r *Resolver) read(ctx context.Context, reader ReaderInterface, userID string) (*types.CallerContext, bool, error) {
	role, err := reader.GetRole(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !role.Valid() {
		r.logger.Warnf("caller %s holds unknown role %q", userID, role)
		return nil, true, nil
	}

	profile, err := reader.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !profile.Active {
		return nil, true, nil
	}

	return &types.CallerContext{
		UserID:   userID,
		Role:     role,
		ClinicID: profile.ClinicID,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		Active:   true,
	}, true, nil
}

// NewResolver creates a resolver, fallback may be nil.
func NewResolver(primary, fallback ReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.primary = primary
	r.fallback = fallback

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
