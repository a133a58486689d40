// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	defaultTimezone string
	now             func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateClinic(ctx context.Context, caller *types.CallerContext, req *CreateClinicRequest) (*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.CreateClinic")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	clinic := &types.Clinic{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Timezone: req.Timezone,
		Active:   true,
	}

	if clinic.Timezone == "" {
		clinic.Timezone = s.defaultTimezone
	}

	if req.Active != nil {
		clinic.Active = *req.Active
	}

	created, err := s.storage.CreateClinic(ctx, clinic)
	if err != nil {
		return nil, httptypes.BadRequest(CodeCreateFailed, "failed to create clinic", err)
	}

	s.logger.Security().AdminAction(caller.UserID, "clinic.create", created.ID)

	return created, nil
}

func (s *Service) UpdateClinic(ctx context.Context, caller *types.CallerContext, clinicID string, req *UpdateClinicRequest) (*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.UpdateClinic")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	update := req.Update()
	if update.Empty() {
		return nil, httptypes.InvalidPayload("at least one field is required")
	}

	if err := identity.RequireAdminClinic(caller, clinicID, s.logger); err != nil {
		return nil, err
	}

	_, err := s.storage.GetClinic(ctx, clinicID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, httptypes.NotFound(CodeNotFound, "clinic not found")
	}
	if err != nil {
		return nil, httptypes.BadRequest(CodeLookupFailed, "failed to load clinic", err)
	}

	clinic, err := s.storage.UpdateClinic(ctx, clinicID, update)
	if err != nil {
		return nil, httptypes.BadRequest(CodeUpdateFailed, "failed to update clinic", err)
	}

	s.logger.Security().AdminAction(caller.UserID, "clinic.update", clinicID)

	return clinic, nil
}

func (s *Service) ListClinics(ctx context.Context, caller *types.CallerContext) ([]*types.Clinic, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.ListClinics")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	clinics, err := s.listScoped(ctx, caller)
	if err != nil {
		return nil, httptypes.BadRequest(CodeListFailed, "failed to list clinics", err)
	}

	return clinics, nil
}

// Dashboard aggregates the clinic metrics from the previous month onward.
func (s *Service) Dashboard(ctx context.Context, caller *types.CallerContext) (*Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "clinics.Service.Dashboard")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	now := s.now()
	previous, _, next := monthBounds(now)
	scope := caller.AdminClinicScope()

	var (
		clinics      []*types.Clinic
		profiles     []*types.ProfileWithRole
		appointments []*types.AppointmentView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clinics, err = s.listScoped(gctx, caller)
		return err
	})
	g.Go(func() (err error) {
		profiles, err = s.storage.ListProfiles(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.storage.ListAppointments(
			gctx,
			storage.AppointmentFilter{ClinicID: scope, From: previous, To: next},
		)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeDashboardFailed, "failed to load dashboard", err)
	}

	return aggregate(now, clinics, profiles, appointments), nil
}

func (s *Service) listScoped(ctx context.Context, caller *types.CallerContext) ([]*types.Clinic, error) {
	if scope := caller.AdminClinicScope(); scope != "" {
		return s.storage.ListClinics(ctx, scope)
	}
	return s.storage.ListClinics(ctx)
}

func NewService(
	storage StorageInterface,
	defaultTimezone string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		defaultTimezone: defaultTimezone,
		now:             time.Now,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
