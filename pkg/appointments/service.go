// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appointments

import (
	"context"
	"errors"
	"time"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	notifier NotifierInterface

	defaultTimezone string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateAppointment(ctx context.Context, caller *types.CallerContext, req *CreateAppointmentRequest) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "appointments.Service.CreateAppointment")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	if err := identity.RequireClinic(caller, req.ClinicID, s.logger); err != nil {
		return nil, err
	}

	if caller.IsTherapist() && caller.UserID != req.TherapistID {
		s.logger.Security().AuthzFailure(caller.UserID, "appointment:"+req.TherapistID)
		return nil, httptypes.Forbidden(CodeTherapistForbidden, "therapists can only schedule their own appointments")
	}

	scheduledAt, err := req.ScheduledAt()
	if err != nil {
		return nil, httptypes.InvalidPayload("scheduledAtUtc must be an RFC3339 timestamp")
	}

	if err := s.validateParticipants(ctx, req); err != nil {
		return nil, err
	}

	appointment, err := s.storage.CreateAppointment(
		ctx,
		&types.Appointment{
			PatientID:       req.PatientID,
			TherapistID:     req.TherapistID,
			ClinicID:        req.ClinicID,
			ScheduledAt:     scheduledAt,
			DurationMinutes: types.DefaultAppointmentDuration,
			Status:          types.AppointmentScheduled,
		},
	)
	if storage.IsExclusionViolation(err) {
		return nil, httptypes.Conflict(CodeOverlap, "the appointment overlaps an existing one")
	}
	if err != nil {
		return nil, httptypes.BadRequest(CodeCreateFailed, "failed to create appointment", err)
	}

	s.confirm(ctx, appointment)

	return appointment, nil
}

// validateParticipants requires a patient of the clinic and one of its active therapists.
func (s *Service) validateParticipants(ctx context.Context, req *CreateAppointmentRequest) error {
	isPatient, err := s.storage.IsClinicPatient(ctx, req.ClinicID, req.PatientID)
	if err != nil {
		return httptypes.BadRequest(CodeParticipantsFailed, "failed to validate patient", err)
	}

	if !isPatient {
		return httptypes.BadRequest(CodePatientMismatch, "patient does not belong to the selected clinic", nil)
	}

	therapists, err := s.storage.ListProfiles(ctx, req.ClinicID, req.TherapistID)
	if err != nil {
		return httptypes.BadRequest(CodeParticipantsFailed, "failed to validate therapist", err)
	}

	if len(therapists) != 1 || therapists[0].Role != types.RoleTherapist || !therapists[0].Active {
		return httptypes.BadRequest(CodeTherapistMismatch, "therapist is not active in the selected clinic", nil)
	}

	return nil
}

// confirm texts the patient, failures never fail the request.
func (s *Service) confirm(ctx context.Context, a *types.Appointment) {
	patient, err := s.storage.GetProfile(ctx, a.PatientID)
	if err != nil {
		s.logger.Warnf("skipping confirmation of appointment %s, patient lookup failed: %v", a.ID, err)
		return
	}

	timezone := s.defaultTimezone
	if clinic, err := s.storage.GetClinic(ctx, a.ClinicID); err == nil && clinic.Timezone != "" {
		timezone = clinic.Timezone
	}

	if err := s.notifier.SendAppointmentConfirmation(ctx, patient.Phone, a.ScheduledAt, timezone); err != nil {
		s.logger.Errorf("failed to send confirmation of appointment %s: %v", a.ID, err)
	}
}

// SetStatus changes the status of an appointment. Any status may be set, therapists only
// on their own appointments.
func (s *Service) SetStatus(ctx context.Context, caller *types.CallerContext, appointmentID string, status types.AppointmentStatus) error {
	ctx, span := s.tracer.Start(ctx, "appointments.Service.SetStatus")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return err
	}

	appointment, err := s.storage.GetAppointment(ctx, appointmentID)
	switch {
	case errors.Is(err, storage.ErrNotFound) && caller.IsTherapist():
		return s.therapistForbidden(caller, appointmentID)
	case errors.Is(err, storage.ErrNotFound):
		return httptypes.NotFound(CodeNotFound, "appointment not found")
	case err != nil:
		return httptypes.BadRequest(CodeLookupFailed, "failed to load appointment", err)
	}

	if caller.IsTherapist() && appointment.TherapistID != caller.UserID {
		return s.therapistForbidden(caller, appointmentID)
	}

	if err := identity.RequireAdminClinic(caller, appointment.ClinicID, s.logger); err != nil {
		return err
	}

	if err := s.storage.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		return httptypes.BadRequest(CodeUpdateFailed, "failed to update appointment", err)
	}

	s.logger.Infof("appointment %s set to %s by %s", appointmentID, status, caller.UserID)

	return nil
}

func (s *Service) therapistForbidden(caller *types.CallerContext, appointmentID string) error {
	s.logger.Security().AuthzFailure(caller.UserID, "appointment:"+appointmentID)
	return httptypes.Forbidden(CodeTherapistForbidden, "you are not the therapist of this appointment")
}

func (s *Service) TherapistAgenda(ctx context.Context, caller *types.CallerContext, from, to time.Time) ([]*types.AppointmentView, error) {
	ctx, span := s.tracer.Start(ctx, "appointments.Service.TherapistAgenda")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	appointments, err := s.storage.ListAppointments(
		ctx,
		storage.AppointmentFilter{TherapistID: caller.UserID, From: from, To: to},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeListFailed, "failed to load agenda", err)
	}

	return appointments, nil
}

func (s *Service) PatientAppointments(ctx context.Context, caller *types.CallerContext) ([]*types.AppointmentView, error) {
	ctx, span := s.tracer.Start(ctx, "appointments.Service.PatientAppointments")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	appointments, err := s.storage.ListAppointments(ctx, storage.AppointmentFilter{PatientID: caller.UserID})
	if err != nil {
		return nil, httptypes.BadRequest(CodeListFailed, "failed to load appointments", err)
	}

	return appointments, nil
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	defaultTimezone string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         storage,
		notifier:        notifier,
		defaultTimezone: defaultTimezone,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
