// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

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
	mux.Get("/api/admin/clinics", a.listClinics)
	mux.Post("/api/admin/clinics", a.createClinic)
	mux.Patch("/api/admin/clinics/{id}", a.updateClinic)
	mux.Get("/api/admin/dashboard", a.dashboard)
	mux.Get("/api/admin/reports", a.reports)
	mux.Get("/api/admin/appointments", a.masterAgenda)
}

func (a *API) createClinic(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.createClinic")
	defer span.End()

	req := new(CreateClinicRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	clinic, err := a.service.CreateClinic(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, ClinicResponse{Success: true, Clinic: clinic})
}

func (a *API) updateClinic(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.updateClinic")
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

	clinicID, err := httptypes.ParseID(chi.URLParam(r, "id"), CodeInvalidClinicID, "invalid clinic id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req := new(UpdateClinicRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	clinic, err := a.service.UpdateClinic(ctx, caller, clinicID, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, ClinicResponse{Success: true, Clinic: clinic})
}

func (a *API) listClinics(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.listClinics")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	clinics, err := a.service.ListClinics(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, clinics)
}

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.dashboard")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	dashboard, err := a.service.Dashboard(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, dashboard)
}

func (a *API) reports(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.reports")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	reports, err := a.service.Reports(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, reports)
}

func (a *API) masterAgenda(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clinics.API.masterAgenda")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	appointments, err := a.service.MasterAgenda(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, appointments)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
