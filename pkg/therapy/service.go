// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

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
	storage StorageInterface
	authz   AuthorizerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateExercise(ctx context.Context, caller *types.CallerContext, req *CreateExerciseRequest) (*types.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.CreateExercise")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	exercise, err := s.storage.CreateExercise(
		ctx,
		&types.Exercise{
			ClinicID:         caller.ClinicID,
			Name:             req.Name,
			YoutubeURL:       req.YoutubeURL,
			Instructions:     req.Instructions,
			Series:           req.Series,
			Reps:             req.Reps,
			FrequencyPerWeek: req.FrequencyPerWeek,
			Category:         req.Category,
			BodyPart:         req.BodyPart,
			Difficulty:       difficulty,
			Active:           true,
			CreatedBy:        caller.UserID,
		},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeExerciseCreateFailed, "failed to create exercise", err)
	}

	return exercise, nil
}

func (s *Service) ListExercises(ctx context.Context, caller *types.CallerContext) ([]*types.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.ListExercises")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	exercises, err := s.storage.ListExercises(ctx, caller.ClinicID)
	if err != nil {
		return nil, httptypes.BadRequest(CodeExerciseListFailed, "failed to list exercises", err)
	}

	return exercises, nil
}

func (s *Service) CreatePlanItem(ctx context.Context, caller *types.CallerContext, req *CreatePlanItemRequest) (*types.PlanItem, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.CreatePlanItem")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	if caller.IsTherapist() {
		if err := s.requireAssigned(ctx, caller, req.PatientID); err != nil {
			return nil, err
		}
	}

	if err := s.validateExercise(ctx, caller, req.PatientID, req.ExerciseID); err != nil {
		return nil, err
	}

	item, err := s.storage.CreatePlanItem(
		ctx,
		&types.PlanItem{
			PatientID:          req.PatientID,
			ExerciseID:         req.ExerciseID,
			CustomInstructions: req.CustomInstructions,
			SortOrder:          req.SortOrder,
			Active:             true,
			CreatedBy:          caller.UserID,
		},
	)
	if storage.IsForeignKeyViolation(err) {
		return nil, httptypes.NotFound(CodeExerciseNotFound, "exercise or patient no longer exists")
	}
	if err != nil {
		return nil, httptypes.BadRequest(CodePlanItemCreateFailed, "failed to create plan item", err)
	}

	return item, nil
}

// validateExercise accepts shared exercises and those owned by the patient's clinic.
func (s *Service) validateExercise(ctx context.Context, caller *types.CallerContext, patientID, exerciseID string) error {
	patient, err := s.storage.GetProfile(ctx, patientID)
	if errors.Is(err, storage.ErrNotFound) {
		return httptypes.NotFound(CodePatientNotFound, "patient not found")
	}
	if err != nil {
		return httptypes.BadRequest(CodePatientLookupFailed, "failed to load patient", err)
	}

	if caller.IsAdmin() {
		if err := identity.RequireClinic(caller, patient.ClinicID, s.logger); err != nil {
			return err
		}
	}

	exercise, err := s.storage.GetExercise(ctx, exerciseID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && !exercise.Active) {
		return httptypes.NotFound(CodeExerciseNotFound, "exercise not found")
	}
	if err != nil {
		return httptypes.BadRequest(CodeExerciseLookupFailed, "failed to load exercise", err)
	}

	if exercise.ClinicID != "" && exercise.ClinicID != patient.ClinicID {
		s.logger.Security().AuthzFailureClinicMismatch(caller.UserID, exercise.ClinicID)
		return httptypes.BadRequest(CodeExerciseClinicMismatch, "exercise belongs to another clinic", nil)
	}

	return nil
}

// SaveSession writes the notes of an appointment, a second save replaces the first.
func (s *Service) SaveSession(ctx context.Context, caller *types.CallerContext, req *SaveSessionRequest) (*types.SessionNote, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.SaveSession")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	appointment, err := s.storage.GetAppointment(ctx, req.AppointmentID)
	switch {
	case errors.Is(err, storage.ErrNotFound) && caller.IsTherapist():
		return nil, s.therapistForbidden(caller, req.AppointmentID)
	case errors.Is(err, storage.ErrNotFound):
		return nil, httptypes.NotFound(CodeAppointmentNotFound, "appointment not found")
	case err != nil:
		return nil, httptypes.BadRequest(CodeAppointmentLookup, "failed to load appointment", err)
	}

	if caller.IsTherapist() && appointment.TherapistID != caller.UserID {
		return nil, s.therapistForbidden(caller, req.AppointmentID)
	}

	if err := identity.RequireAdminClinic(caller, appointment.ClinicID, s.logger); err != nil {
		return nil, err
	}

	if appointment.PatientID != req.PatientID {
		return nil, httptypes.InvalidPayload("patientId does not match the appointment")
	}

	note, err := s.storage.UpsertSession(
		ctx,
		&types.SessionNote{
			AppointmentID: req.AppointmentID,
			PatientID:     req.PatientID,
			TherapistID:   caller.UserID,
			SessionDate:   req.Date(),
			Notes:         req.Notes,
		},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeSessionSaveFailed, "failed to save session notes", err)
	}

	return note, nil
}

// PatientSummary loads the clinical record of a patient. Therapists need an active
// assignment confirmed by the relationship store.
func (s *Service) PatientSummary(ctx context.Context, caller *types.CallerContext, patientID string) (*PatientSummary, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.PatientSummary")
	defer span.End()

	if err := identity.RequirePrivileged(caller, s.logger); err != nil {
		return nil, err
	}

	profile, err := s.storage.GetProfile(ctx, patientID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, httptypes.NotFound(CodePatientNotFound, "patient not found")
	}
	if err != nil {
		return nil, httptypes.BadRequest(CodePatientLookupFailed, "failed to load patient", err)
	}

	if caller.IsAdmin() {
		if err := identity.RequireClinic(caller, profile.ClinicID, s.logger); err != nil {
			return nil, err
		}
	} else {
		if err := s.requireAssigned(ctx, caller, patientID); err != nil {
			return nil, err
		}

		allowed, err := s.authz.CanViewPatient(ctx, caller.UserID, patientID)
		if err != nil {
			s.logger.Errorf("failed to check access of %s to patient %s: %v", caller.UserID, patientID, err)
		}
		if !allowed {
			return nil, s.notAssigned(caller, patientID)
		}
	}

	summary := &PatientSummary{Profile: profile}
	since := s.now().AddDate(0, 0, -summaryPainDays)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.PainEvents, err = s.storage.ListPainEvents(gctx, patientID, since)
		return err
	})
	g.Go(func() (err error) {
		summary.PlanItems, err = s.storage.ListPlanItems(gctx, patientID)
		return err
	})
	g.Go(func() (err error) {
		summary.Sessions, err = s.storage.ListSessions(gctx, patientID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeSummaryFailed, "failed to load patient record", err)
	}

	return summary, nil
}

func (s *Service) requireAssigned(ctx context.Context, caller *types.CallerContext, patientID string) error {
	assigned, err := s.storage.HasActiveAssignment(
		ctx,
		storage.AssignmentFilter{PatientID: patientID, TherapistID: caller.UserID},
	)
	if err != nil {
		return httptypes.BadRequest(CodeAssignmentLookupFailed, "failed to check patient assignment", err)
	}

	if !assigned {
		return s.notAssigned(caller, patientID)
	}

	return nil
}

func (s *Service) notAssigned(caller *types.CallerContext, patientID string) error {
	s.logger.Security().AuthzFailure(caller.UserID, "patient:"+patientID)
	return httptypes.Forbidden(CodePatientNotAssigned, "patient is not assigned to you")
}

func (s *Service) therapistForbidden(caller *types.CallerContext, appointmentID string) error {
	s.logger.Security().AuthzFailure(caller.UserID, "appointment:"+appointmentID)
	return httptypes.Forbidden(CodeTherapistForbidden, "you are not the therapist of this appointment")
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
