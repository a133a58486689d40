// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	kratos KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Me never fails on the email lookup, the field is left empty instead.
func (s *Service) Me(ctx context.Context, caller *types.CallerContext) (*Me, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Me")
	defer span.End()

	me := &Me{
		UserID:   caller.UserID,
		Role:     caller.Role,
		HomePath: types.HomePath(caller.Role),
		ClinicID: caller.ClinicID,
		FullName: caller.FullName,
	}

	email, err := s.kratos.GetEmail(ctx, caller.UserID)
	if err != nil {
		s.logger.Warnf("failed to read email of %s: %v", caller.UserID, err)
		return me, nil
	}
	me.Email = email

	return me, nil
}

func NewService(kratos KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.kratos = kratos
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
