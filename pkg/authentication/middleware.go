// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

type Middleware struct {
	verifier   TokenVerifierInterface
	sessions   SessionClientInterface
	cookieName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller from a bearer token or, failing that, from the
// browser session cookie. Requests carrying neither are rejected. An unreachable
// identity provider answers 503 instead of 401.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			var userID string
			var err error

			if token, found := m.getBearerToken(r.Header); found {
				userID, err = m.verifier.VerifyToken(ctx, token)
			} else if cookie, found := m.getSessionCookie(r); found {
				userID, err = m.sessions.SessionFromCookie(ctx, cookie)
			} else {
				m.unauthorizedResponse(w, r, "missing credentials")
				return
			}

			if errors.Is(err, kratos.ErrUnavailable) {
				types.WriteError(w, r, types.Unavailable(types.CodeIdentityUnavailable, "identity provider unavailable", err), m.logger)
				return
			}

			if err != nil || userID == "" {
				m.logger.Debugf("credential verification failed: %v", err)
				m.unauthorizedResponse(w, r, "invalid credentials")
				return
			}

			ctx = WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(bearer, "Bearer ")
	return token, token != ""
}

// getSessionCookie returns the cookie in Cookie header form, as the identity provider expects it.
func (m *Middleware) getSessionCookie(r *http.Request) (string, bool) {
	if m.sessions == nil || m.cookieName == "" {
		return "", false
	}

	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	return c.String(), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	types.WriteError(w, r, types.Unauthenticated(message), m.logger)
}

func NewMiddleware(verifier TokenVerifierInterface, sessions SessionClientInterface, cookieName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:   verifier,
		sessions:   sessions,
		cookieName: cookieName,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
