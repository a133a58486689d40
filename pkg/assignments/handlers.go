// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

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
	mux.Put("/api/admin/patient-assignments/{patientId}", a.reconcile)
	mux.Get("/api/admin/patient-assignments/{patientId}", a.list)
}

func (a *API) reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignments.API.reconcile")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := identity.RequireAdmin(caller, a.logger); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	patientID, err := httptypes.ParseID(chi.URLParam(r, "patientId"), CodeInvalidPatientID, "invalid patient id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req := new(ReconcileRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := req.Check(); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	res, err := a.service.Reconcile(ctx, caller, patientID, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, res)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assignments.API.list")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := identity.RequireAdmin(caller, a.logger); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	patientID, err := httptypes.ParseID(chi.URLParam(r, "patientId"), CodeInvalidPatientID, "invalid patient id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	rows, err := a.service.List(ctx, caller, patientID, r.URL.Query().Get("clinicId"))
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, rows)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
