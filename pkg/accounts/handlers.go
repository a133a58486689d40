// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/auth/me", a.me)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.me")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	me, err := a.service.Me(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, me)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
