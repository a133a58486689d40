// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"net/http"
	"strconv"

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
	mux.Get("/api/therapist/exercises", a.listExercises)
	mux.Post("/api/therapist/exercises", a.createExercise)
	mux.Post("/api/therapist/plan-items", a.createPlanItem)
	mux.Post("/api/therapist/sessions", a.saveSession)
	mux.Get("/api/therapist/patients/{id}", a.patientSummary)
	mux.Get("/api/therapist/home", a.therapistHome)

	mux.Get("/api/patient/pain-events", a.listPainEvents)
	mux.Post("/api/patient/pain-events", a.createPainEvent)
	mux.Get("/api/patient/exercises", a.listPlan)
	mux.Post("/api/patient/exercise-completions", a.completeExercise)
	mux.Get("/api/patient/evolution", a.patientEvolution)
	mux.Get("/api/patient/home", a.patientHome)
}

func (a *API) createExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.createExercise")
	defer span.End()

	req := new(CreateExerciseRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	exercise, err := a.service.CreateExercise(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true, ID: exercise.ID})
}

func (a *API) listExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.listExercises")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	exercises, err := a.service.ListExercises(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, exercises)
}

func (a *API) createPlanItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.createPlanItem")
	defer span.End()

	req := new(CreatePlanItemRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	item, err := a.service.CreatePlanItem(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true, ID: item.ID})
}

func (a *API) saveSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.saveSession")
	defer span.End()

	req := new(SaveSessionRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	note, err := a.service.SaveSession(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true, ID: note.ID})
}

func (a *API) patientSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.patientSummary")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := identity.RequirePrivileged(caller, a.logger); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	patientID, err := httptypes.ParseID(chi.URLParam(r, "id"), CodeInvalidPatientID, "invalid patient id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	summary, err := a.service.PatientSummary(ctx, caller, patientID)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, summary)
}

func (a *API) createPainEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.createPainEvent")
	defer span.End()

	req := new(CreatePainEventRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	event, err := a.service.CreatePainEvent(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true, ID: event.ID})
}

func (a *API) listPainEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.listPainEvents")
	defer span.End()

	days := defaultPainDays
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			httptypes.WriteError(w, r, httptypes.InvalidPayload("days must be a number"), a.logger)
			return
		}
		days = parsed
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	events, err := a.service.ListPainEvents(ctx, caller, days)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, events)
}

func (a *API) listPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.listPlan")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	items, err := a.service.ListPlan(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, items)
}

func (a *API) completeExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.completeExercise")
	defer span.End()

	req := new(CompleteExerciseRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	completion, err := a.service.CompleteExercise(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SuccessResponse{Success: true, ID: completion.ID})
}

func (a *API) therapistHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.therapistHome")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	home, err := a.service.TherapistHome(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, home)
}

func (a *API) patientEvolution(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.patientEvolution")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	evolution, err := a.service.PatientEvolution(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, evolution)
}

func (a *API) patientHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "therapy.API.patientHome")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	home, err := a.service.PatientHome(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.NoCache(w)
	httptypes.WriteJSON(w, r, http.StatusOK, home)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
