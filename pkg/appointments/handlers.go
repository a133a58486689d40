// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appointments

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

type API struct {
	service ServiceInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/appointments", a.createAppointment)
	mux.Patch("/api/appointments/{id}/status", a.setStatus)
	mux.Get("/api/therapist/agenda", a.therapistAgenda)
	mux.Get("/api/patient/appointments", a.patientAppointments)
}

func (a *API) createAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "appointments.API.createAppointment")
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

	req := new(CreateAppointmentRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	appointment, err := a.service.CreateAppointment(ctx, caller, req)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, CreateAppointmentResponse{Success: true, ID: appointment.ID})
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "appointments.API.setStatus")
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

	appointmentID, err := httptypes.ParseID(chi.URLParam(r, "id"), CodeInvalidAppointmentID, "invalid appointment id")
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	req := new(SetStatusRequest)
	if err := httptypes.Bind(r, req); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	if err := a.service.SetStatus(ctx, caller, appointmentID, req.Status); err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, SetStatusResponse{Success: true, ID: appointmentID, Status: req.Status})
}

func (a *API) therapistAgenda(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "appointments.API.therapistAgenda")
	defer span.End()

	from, to, err := a.agendaRange(r)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	appointments, err := a.service.TherapistAgenda(ctx, caller, from, to)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, appointments)
}

// agendaRange reads from and to as dates or RFC3339 timestamps. A date given as to covers
// that whole day, a timestamp is an exclusive bound. The range defaults to the start of the
// current UTC day plus agendaDays.
func (a *API) agendaRange(r *http.Request) (time.Time, time.Time, error) {
	now := a.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if v := r.URL.Query().Get("from"); v != "" {
		t, _, err := parseBound(v)
		if err != nil {
			return time.Time{}, time.Time{}, httptypes.BadRequest(CodeInvalidRange, "from must be a date or an RFC3339 timestamp", err)
		}
		from = t
	}

	to := from.AddDate(0, 0, agendaDays)
	if v := r.URL.Query().Get("to"); v != "" {
		t, dateOnly, err := parseBound(v)
		if err != nil {
			return time.Time{}, time.Time{}, httptypes.BadRequest(CodeInvalidRange, "to must be a date or an RFC3339 timestamp", err)
		}

		to = t
		if dateOnly {
			to = t.AddDate(0, 0, 1)
		}
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, httptypes.BadRequest(CodeInvalidRange, "to must be after from", nil)
	}

	return from, to, nil
}

// parseBound reports whether v was a plain date.
func parseBound(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, true, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	return t, false, err
}

func (a *API) patientAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "appointments.API.patientAppointments")
	defer span.End()

	caller, err := identity.RequireCaller(ctx)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	appointments, err := a.service.PatientAppointments(ctx, caller)
	if err != nil {
		httptypes.WriteError(w, r, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, r, http.StatusOK, appointments)
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
