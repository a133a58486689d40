// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

// SessionTokenVerifier accepts identity provider session tokens as bearer tokens, it is
// used for native clients when JWT authentication is disabled.
type SessionTokenVerifier struct {
	sessions SessionClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *SessionTokenVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.SessionTokenVerifier.VerifyToken")
	defer span.End()

	return v.sessions.SessionFromToken(ctx, rawToken)
}

func NewSessionTokenVerifier(sessions SessionClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionTokenVerifier {
	return &SessionTokenVerifier{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
