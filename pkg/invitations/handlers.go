// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/http"
	"strings"

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

// RegisterPublicEndpoints mounts the routes reachable without a session.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Post("/api/auth/patient-register", a.registerPatient)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/admin/invitation-codes", a.createCode)
	mux.Get("/api/admin/invitation-codes", a.listCodes)
}

func (a *API) createCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.createCode")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req := new(CreateCodeRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	code, err := a.service.CreateCode(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(
		w, r, http.StatusOK,
		CreateCodeResponse{
			Success:        true,
			InvitationCode: code.Code,
			ID:             code.ID,
		},
	)
}

func (a *API) listCodes(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listCodes")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	codes, err := a.service.ListCodes(ctx, caller, r.URL.Query().Get("clinicId"))
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, codes)
}

func (a *API) registerPatient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.registerPatient")
	defer span.End()

	req := new(RegisterPatientRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req.InvitationCode = strings.ToUpper(strings.TrimSpace(req.InvitationCode))
	req.Email = strings.TrimSpace(req.Email)

	if err := httptypes.Validate(req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := a.service.RegisterPatient(ctx, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
