// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

// RegisterFunc mounts a group of endpoints, usually an API's RegisterEndpoints method.
type RegisterFunc func(chi.Router)

type Config struct {
	CORSAllowedOrigins []string

	// Public endpoints are reachable without credentials.
	Public []RegisterFunc
	// Protected endpoints run behind Authenticate and then Resolve.
	Protected []RegisterFunc

	Authenticate func(http.Handler) http.Handler
	Resolve      func(http.Handler) http.Handler
}

func NewRouter(
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	for _, register := range cfg.Public {
		register(router)
	}

	router.Group(func(r chi.Router) {
		if cfg.Authenticate != nil {
			r.Use(cfg.Authenticate)
		}
		if cfg.Resolve != nil {
			r.Use(cfg.Resolve)
		}

		for _, register := range cfg.Protected {
			register(r)
		}
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
