// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

// emailLookupConcurrency bounds the identity provider reads of a listing.
const emailLookupConcurrency = 8

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	authz   AuthorizerInterface

	invitationLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateUser(ctx context.Context, caller *types.CallerContext, req *CreateUserRequest) (*CreateUserResponse, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	clinicIDs := req.Clinics()
	if len(clinicIDs) == 0 {
		return nil, httptypes.BadRequest(CodeClinicRequired, "at least one clinic is required", nil)
	}

	scope := caller.AdminClinicScope()
	if scope != "" && !slices.Contains(clinicIDs, scope) {
		s.logger.Security().AuthzFailureClinicMismatch(caller.UserID, clinicIDs[0])
		return nil, httptypes.ClinicForbidden()
	}

	clinics, err := s.storage.ListClinics(ctx, clinicIDs...)
	if err != nil {
		return nil, httptypes.BadRequest(CodeClinicLookupFailed, "failed to validate clinics", err)
	}

	if len(clinics) != len(clinicIDs) {
		return nil, httptypes.NotFound(CodeClinicNotFound, "one or more clinics do not exist")
	}

	primaryClinicID := clinicIDs[0]
	if scope != "" {
		primaryClinicID = scope
	}

	if err := s.requireUnregistered(ctx, req.Email); err != nil {
		return nil, err
	}

	userID, err := s.kratos.CreateIdentity(
		ctx,
		kratos.IdentityParams{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		},
	)
	if err != nil {
		return nil, authCreateError(err)
	}

	if err := s.saveProfile(ctx, userID, primaryClinicID, req.FullName, req.Phone, req.Role); err != nil {
		s.deleteIdentity(ctx, userID)
		return nil, httptypes.BadRequest(CodeProfileSaveFailed, "failed to save profile", err)
	}

	if req.Role == types.RolePatient {
		if err := s.storage.AddPatientClinics(ctx, userID, clinicIDs, caller.UserID); err != nil {
			s.deleteIdentity(ctx, userID)

			if errors.Is(err, storage.ErrUndefinedTable) {
				return nil, httptypes.Internal(CodePatientClinicsTableMissing, "patient clinics table is missing, run the database migrations", err)
			}
			return nil, httptypes.BadRequest(CodePatientClinicsSaveFailed, "failed to link patient to clinics", err)
		}
	}

	mirrored := []string{primaryClinicID}
	if req.Role == types.RolePatient {
		mirrored = clinicIDs
	}

	for _, clinicID := range mirrored {
		if err := s.authz.AssignClinicRole(ctx, clinicID, userID, req.Role); err != nil {
			s.logger.Errorf("failed to mirror %s %s into clinic %s: %v", req.Role, userID, clinicID, err)
		}
	}

	s.logger.Security().AdminAction(caller.UserID, "user.create", userID)

	return &CreateUserResponse{Success: true, UserID: userID, ClinicIDs: clinicIDs}, nil
}

// InviteUser creates a password-less identity and returns a recovery link for it. A
// profile failure after the identity exists is reported but not rolled back.
func (s *Service) InviteUser(ctx context.Context, caller *types.CallerContext, req *InviteUserRequest) (*InviteUserResponse, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.InviteUser")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	if err := identity.RequireAdminClinic(caller, req.ClinicID, s.logger); err != nil {
		return nil, err
	}

	userID, err := s.kratos.CreateIdentity(
		ctx,
		kratos.IdentityParams{
			Email:    req.Email,
			FullName: req.FullName,
			Phone:    req.Phone,
		},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeInviteFailed, inviteMessage(err), err)
	}

	link, _, err := s.kratos.CreateRecoveryLink(ctx, userID, s.invitationLifetime)
	if err != nil {
		return nil, httptypes.BadRequest(CodeInviteFailed, "failed to create invitation link", err)
	}

	if err := s.saveProfile(ctx, userID, req.ClinicID, req.FullName, req.Phone, req.Role); err != nil {
		return nil, httptypes.BadRequest(CodeProfileSaveFailed, "failed to save profile", err)
	}

	if err := s.authz.AssignClinicRole(ctx, req.ClinicID, userID, req.Role); err != nil {
		s.logger.Errorf("failed to mirror %s %s into clinic %s: %v", req.Role, userID, req.ClinicID, err)
	}

	s.logger.Security().AdminAction(caller.UserID, "user.invite", userID)

	return &InviteUserResponse{Success: true, UserID: userID, RecoveryLink: link}, nil
}

// SetStatus enables or disables a profile. Therapists still acting as primary therapist
// of a patient cannot be disabled.
func (s *Service) SetStatus(ctx context.Context, caller *types.CallerContext, userID string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.SetStatus")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return err
	}

	if userID == caller.UserID && !active {
		return httptypes.BadRequest(CodeSelfDeactivationBlocked, "you cannot deactivate your own account", nil)
	}

	profile, err := s.storage.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return httptypes.NotFound(CodeUserNotFound, "user not found")
	}
	if err != nil {
		return httptypes.BadRequest(CodeProfileLookupFailed, "failed to load user profile", err)
	}

	if err := identity.RequireAdminClinic(caller, profile.ClinicID, s.logger); err != nil {
		return err
	}

	role, err := s.storage.GetRole(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return httptypes.BadRequest(CodeRoleNotFound, "user has no role", nil)
	}
	if err != nil {
		return httptypes.BadRequest(CodeRoleLookupFailed, "failed to load user role", err)
	}

	if role == types.RoleTherapist && !active {
		busy, err := s.hasPrimaryAssignments(ctx, userID, profile.ClinicID)
		if err != nil {
			return httptypes.BadRequest(CodeAssignmentLookupFailed, "failed to check therapist assignments", err)
		}

		if busy {
			return httptypes.Conflict(
				CodeTherapistHasPrimaryAssignments,
				"reassign the patients of this therapist before deactivating the account",
			)
		}
	}

	if err := s.storage.SetProfileActive(ctx, userID, active); err != nil {
		return httptypes.BadRequest(CodeProfileUpdateFailed, "failed to update user status", err)
	}

	s.logger.Security().AdminAction(caller.UserID, fmt.Sprintf("user.status.%t", active), userID)

	return nil
}

// hasPrimaryAssignments falls back to any active assignment on schemas that predate the
// is_primary column.
func (s *Service) hasPrimaryAssignments(ctx context.Context, therapistID, clinicID string) (bool, error) {
	busy, err := s.storage.HasPrimaryAssignments(ctx, therapistID, clinicID)
	if !errors.Is(err, storage.ErrUndefinedColumn) {
		return busy, err
	}

	s.logger.Warnf("is_primary column missing, checking any active assignment of therapist %s", therapistID)

	return s.storage.HasActiveAssignment(ctx, storage.AssignmentFilter{TherapistID: therapistID, ClinicID: clinicID})
}

func (s *Service) ListUsers(ctx context.Context, caller *types.CallerContext, clinicID string) ([]*UserView, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
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

	var (
		profiles    []*types.ProfileWithRole
		assignments []*types.PatientAssignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profiles, err = s.storage.ListProfiles(gctx, clinicID)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = s.storage.ListActiveAssignments(gctx, storage.AssignmentFilter{ClinicID: clinicID})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, httptypes.BadRequest(CodeUserListFailed, "failed to list users", err)
	}

	views := make([]*UserView, len(profiles))
	for i, p := range profiles {
		views[i] = &UserView{ProfileWithRole: *p, Assignments: make([]*types.PatientAssignment, 0)}

		for _, a := range assignments {
			if a.PatientID == p.ID || a.TherapistID == p.ID {
				views[i].Assignments = append(views[i].Assignments, a)
			}
		}
	}

	s.loadEmails(ctx, views)

	return views, nil
}

// loadEmails fills in the login email of each user, failures leave the email empty.
func (s *Service) loadEmails(ctx context.Context, views []*UserView) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(emailLookupConcurrency)

	for _, v := range views {
		g.Go(func() error {
			email, err := s.kratos.GetEmail(gctx, v.ID)
			if err != nil {
				s.logger.Warnf("failed to load email of user %s: %v", v.ID, err)
				return nil
			}
			v.Email = email
			return nil
		})
	}

	_ = g.Wait()
}

func (s *Service) saveProfile(ctx context.Context, userID, clinicID, fullName, phone string, role types.Role) error {
	profile := &types.Profile{
		ID:       userID,
		ClinicID: clinicID,
		FullName: fullName,
		Phone:    phone,
		Active:   true,
	}

	if err := s.storage.UpsertProfile(ctx, profile); err != nil {
		return err
	}

	return s.storage.UpsertRole(ctx, userID, role)
}

func (s *Service) deleteIdentity(ctx context.Context, userID string) {
	if err := s.kratos.DeleteIdentity(ctx, userID); err != nil {
		s.logger.Errorf("failed to delete identity %s after failed user creation: %v", userID, err)
	}
}

// requireUnregistered fails with a conflict when an identity already owns email.
func (s *Service) requireUnregistered(ctx context.Context, email string) error {
	existing, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return httptypes.BadRequest(CodeAuthCreateFailed, "failed to check email", err)
	}
	if existing != "" {
		return httptypes.Conflict(CodeAuthCreateFailed, "email already registered")
	}
	return nil
}

func authCreateError(err error) error {
	if errors.Is(err, kratos.ErrIdentityExists) {
		return httptypes.Conflict(CodeAuthCreateFailed, "email already registered")
	}
	return httptypes.BadRequest(CodeAuthCreateFailed, "failed to create account", err)
}

func inviteMessage(err error) string {
	if errors.Is(err, kratos.ErrIdentityExists) {
		return "email already registered"
	}
	return "failed to invite user"
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	authz AuthorizerInterface,
	invitationLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		kratos:             kratos,
		authz:              authz,
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}
