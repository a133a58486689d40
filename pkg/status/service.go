// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	kratos  KratosClientInterface
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RuntimeCheck checks the identity provider and the patient_clinics table. Check failures
// are reported in the result, never as an error.
func (s *Service) RuntimeCheck(ctx context.Context, caller *types.CallerContext) (*RuntimeCheck, error) {
	ctx, span := s.tracer.Start(ctx, "status.Service.RuntimeCheck")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	var kratosUp, tableUp bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.kratos.IsAlive(gctx); err != nil {
			s.logger.Warnf("identity provider check failed: %v", err)
			return nil
		}
		kratosUp = true
		return nil
	})
	g.Go(func() error {
		exists, err := s.storage.TableExists(gctx, patientClinicsTable)
		if err != nil {
			s.logger.Warnf("table check failed: %v", err)
			return nil
		}
		tableUp = exists
		return nil
	})
	_ = g.Wait()

	check := &RuntimeCheck{Missing: []string{}}
	if !kratosUp {
		check.Missing = append(check.Missing, componentIdentityProvider)
	}
	if !tableUp {
		check.Missing = append(check.Missing, componentPatientClinics)
	}
	check.CanCreateUsers = len(check.Missing) == 0

	s.setAvailability(componentIdentityProvider, kratosUp)
	s.setAvailability(componentPatientClinics, tableUp)

	return check, nil
}

func (s *Service) setAvailability(component string, up bool) {
	value := 0.0
	if up {
		value = 1
	}

	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": component}, value); err != nil {
		s.logger.Debugf("failed to record availability of %s: %v", component, err)
	}
}

func NewService(
	kratos KratosClientInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.kratos = kratos
	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
