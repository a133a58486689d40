// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

// UserIDFunc extracts the authenticated identity id placed in the context by the
// authentication layer.
type UserIDFunc func(context.Context) (string, bool)

type Middleware struct {
	resolver ResolverInterface
	userID   UserIDFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve attaches the caller context to authenticated requests. Callers that do not
// resolve continue without one, handlers decide what that means for them.
func (m *Middleware) Resolve() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.Resolve")
			defer span.End()

			userID, ok := m.userID(ctx)
			if !ok || userID == "" {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			caller, err := m.resolver.Resolve(ctx, userID)
			if err != nil {
				types.WriteError(
					w, r,
					types.Internal(types.CodeContextLookupFailed, "failed to load user context", err),
					m.logger,
				)
				return
			}

			if caller != nil {
				ctx = WithCaller(ctx, caller)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(resolver ResolverInterface, userID UserIDFunc, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		userID:   userID,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
