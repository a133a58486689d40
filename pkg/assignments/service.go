// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

import (
	"context"
	"errors"

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

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Reconcile replaces the care team of a patient within a clinic. The previous rows are
// deactivated and the requested ones upserted as two separate statements, a failure
// in between leaves the patient without active assignments until the call is retried.
func (s *Service) Reconcile(ctx context.Context, caller *types.CallerContext, patientID string, req *ReconcileRequest) (*ReconcileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assignments.Service.Reconcile")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	if err := identity.RequireAdminClinic(caller, req.ClinicID, s.logger); err != nil {
		return nil, err
	}

	if err := s.validatePatient(ctx, patientID, req.ClinicID); err != nil {
		return nil, err
	}

	if err := s.validateTherapists(ctx, req.ClinicID, req.TherapistIDs()); err != nil {
		return nil, err
	}

	if err := s.storage.DeactivateAssignments(ctx, patientID, req.ClinicID); err != nil {
		return nil, httptypes.BadRequest(CodeAssignmentResetFailed, "failed to reset current assignments", err)
	}

	rows := make([]*types.PatientAssignment, 0, len(req.SecondaryTherapistIDs)+1)
	for _, therapistID := range req.TherapistIDs() {
		rows = append(
			rows,
			&types.PatientAssignment{
				PatientID:   patientID,
				TherapistID: therapistID,
				ClinicID:    req.ClinicID,
				IsPrimary:   therapistID == req.PrimaryTherapistID,
				Active:      true,
			},
		)
	}

	if err := s.storage.UpsertAssignments(ctx, rows); err != nil {
		return nil, httptypes.BadRequest(CodeAssignmentSaveFailed, "failed to save assignments", err)
	}

	if err := s.authz.SetCareTeam(ctx, patientID, req.ClinicID, req.PrimaryTherapistID, req.SecondaryTherapistIDs); err != nil {
		s.logger.Errorf("failed to mirror care team of patient %s: %v", patientID, err)
	}

	s.logger.Security().AdminAction(caller.UserID, "assignments.reconcile", patientID)

	return &ReconcileResponse{
		Success:               true,
		PatientID:             patientID,
		ClinicID:              req.ClinicID,
		PrimaryTherapistID:    req.PrimaryTherapistID,
		SecondaryTherapistIDs: req.SecondaryTherapistIDs,
	}, nil
}

func (s *Service) validatePatient(ctx context.Context, patientID, clinicID string) error {
	profile, err := s.storage.GetProfile(ctx, patientID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return httptypes.BadRequest(CodePatientValidationFailed, "failed to validate patient", err)
	}

	if profile == nil || profile.ClinicID != clinicID {
		return httptypes.BadRequest(CodePatientClinicMismatch, "patient does not belong to the selected clinic", nil)
	}

	role, err := s.storage.GetRole(ctx, patientID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return httptypes.BadRequest(CodePatientValidationFailed, "failed to validate patient", err)
	}

	if role != types.RolePatient {
		return httptypes.BadRequest(CodeInvalidPatientRole, "selected user is not a patient", nil)
	}

	return nil
}

func (s *Service) validateTherapists(ctx context.Context, clinicID string, ids []string) error {
	therapists, err := s.storage.ListProfiles(ctx, clinicID, ids...)
	if err != nil {
		return httptypes.BadRequest(CodeTherapistValidationFailed, "failed to validate therapists", err)
	}

	if len(therapists) != len(ids) {
		return httptypes.BadRequest(CodeTherapistClinicMismatch, "all therapists must belong to the selected clinic", nil)
	}

	for _, t := range therapists {
		if t.Role != types.RoleTherapist || !t.Active {
			return httptypes.BadRequest(CodeInvalidTherapistSelection, "all selected users must be active therapists", nil)
		}
	}

	return nil
}

func (s *Service) List(ctx context.Context, caller *types.CallerContext, patientID, clinicID string) ([]*types.PatientAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "assignments.Service.List")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	if scope := caller.AdminClinicScope(); scope != "" {
		if clinicID != "" {
			if err := identity.RequireAdminClinic(caller, clinicID, s.logger); err != nil {
				return nil, err
			}
		}
		clinicID = scope
	}

	rows, err := s.storage.ListActiveAssignments(ctx, storage.AssignmentFilter{PatientID: patientID, ClinicID: clinicID})
	if err != nil {
		return nil, httptypes.BadRequest(CodeAssignmentLookupFailed, "failed to load assignments", err)
	}

	return rows, nil
}

func NewService(storage StorageInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
