// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/admin/users", a.listUsers)
	mux.Post("/api/admin/users", a.createUser)
	mux.Post("/api/admin/users/invite", a.inviteUser)
	mux.Patch("/api/admin/users/{id}/status", a.setStatus)
}

func (a *API) createUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.createUser")
	defer span.End()

	req := new(CreateUserRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := httptypes.Validate(req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	res, err := a.service.CreateUser(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, res)
}

func (a *API) inviteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.inviteUser")
	defer span.End()

	req := new(InviteUserRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if err := httptypes.Validate(req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	res, err := a.service.InviteUser(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, res)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.setStatus")
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

	userID, err := httptypes.ParseID(chi.URLParam(r, "id"), CodeInvalidUserID, "invalid user id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req := new(SetStatusRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := a.service.SetStatus(ctx, caller, userID, *req.Active); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SetStatusResponse{Success: true, UserID: userID, Active: *req.Active})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.listUsers")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	users, err := a.service.ListUsers(ctx, caller, r.URL.Query().Get("clinicId"))
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, users)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
