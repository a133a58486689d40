// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	resolver ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleTokenHook adds the role and clinic of the session subject to both tokens. A subject
// that does not resolve to an active caller gets no claims.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	subject := subjectOf(req)
	if subject == "" {
		return nil, httptypes.BadRequest(CodeMissingSubject, "token hook session has no subject", nil)
	}

	response := new(TokenHookResponse)

	caller, err := s.resolver.Resolve(ctx, subject)
	if err != nil {
		s.logger.Errorf("failed to resolve token subject %s: %v", subject, err)
		return response, nil
	}

	if caller == nil {
		s.logger.Debugf("token subject %s has no active profile", subject)
		return response, nil
	}

	claims := map[string]interface{}{
		claimRole:     string(caller.Role),
		claimClinicID: caller.ClinicID,
	}
	response.Session.IDToken = claims
	response.Session.AccessToken = claims

	return response, nil
}

func subjectOf(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}

	if req.Session.DefaultSession.Subject != "" {
		return req.Session.DefaultSession.Subject
	}

	if req.Session.DefaultSession.Claims != nil {
		return req.Session.DefaultSession.Claims.Subject
	}

	return ""
}
