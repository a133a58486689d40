// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/version"
)

type API struct {
	service ServiceInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the unauthenticated health routes.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/health", a.health)
	mux.Get("/api/v0/version", a.version)
}

// RegisterAdminEndpoints mounts the health routes that need a caller.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Get("/api/admin/runtime-check", a.runtimeCheck)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, Health{OK: true, Ts: a.now().UTC()})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, r, http.StatusOK, BuildInfo{Version: version.Version})
}

func (a *API) runtimeCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.runtimeCheck")
	defer span.End()

	httptypes.NoCache(w)

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	check, err := a.service.RuntimeCheck(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, check)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.now = time.Now
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
