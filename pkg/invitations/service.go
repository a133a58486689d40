// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"time"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface
	authz   AuthorizerInterface

	generateCode func() (string, error)

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateCode(ctx context.Context, caller *types.CallerContext, req *CreateCodeRequest) (*types.InvitationCode, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateCode")
	defer span.End()

	if err := identity.RequireAdmin(caller, s.logger); err != nil {
		return nil, err
	}

	if err := identity.RequireAdminClinic(caller, req.ClinicID, s.logger); err != nil {
		return nil, err
	}

	code := &types.InvitationCode{
		ClinicID:  req.ClinicID,
		MaxUses:   defaultMaxUses,
		Active:    true,
		CreatedBy: caller.UserID,
	}

	if req.MaxUses != nil {
		code.MaxUses = *req.MaxUses
	}

	if req.ExpiresAt != nil {
		expiresAt, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			return nil, httptypes.InvalidPayload("expiresAt must be an RFC3339 timestamp")
		}
		code.ExpiresAt = &expiresAt
	}

	var created *types.InvitationCode
	for attempt := 1; ; attempt++ {
		value, err := s.generateCode()
		if err != nil {
			return nil, httptypes.BadRequest(CodeCreateFailed, "failed to generate invitation code", err)
		}
		code.Code = value

		created, err = s.storage.CreateInvitationCode(ctx, code)
		if err == nil {
			break
		}

		// a colliding code is regenerated, anything else fails the request
		if storage.IsDuplicateKeyError(err) && attempt < codeAttempts {
			s.logger.Debugf("invitation code collision on attempt %d, regenerating", attempt)
			continue
		}

		s.logger.Errorf("failed to create invitation code for clinic %s: %v", req.ClinicID, err)
		return nil, httptypes.BadRequest(CodeCreateFailed, "failed to create invitation code", err)
	}

	s.logger.Security().AdminAction(caller.UserID, "invitation_code.create", created.Code)

	return created, nil
}

func (s *Service) ListCodes(ctx context.Context, caller *types.CallerContext, clinicID string) ([]*types.InvitationCodeView, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListCodes")
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

	codes, err := s.storage.ListInvitationCodes(ctx, clinicID)
	if err != nil {
		return nil, httptypes.BadRequest(CodeListFailed, "failed to list invitation codes", err)
	}

	now := time.Now()
	views := make([]*types.InvitationCodeView, 0, len(codes))
	for _, c := range codes {
		views = append(views, &types.InvitationCodeView{InvitationCode: *c, Status: c.Status(now)})
	}

	return views, nil
}

// RegisterPatient creates a patient account from an invitation code. The identity is
// created before the code is consumed, it is deleted again when consumption fails.
func (s *Service) RegisterPatient(ctx context.Context, req *RegisterPatientRequest) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.RegisterPatient")
	defer span.End()

	check, err := s.storage.CheckInvitationCode(ctx, req.InvitationCode, time.Now())
	if err != nil {
		return httptypes.BadRequest(CodeCheckFailed, "failed to validate invitation code", err)
	}

	if !check.Valid {
		return httptypes.BadRequest(CodeInvalid, check.Reason, nil)
	}

	existing, err := s.kratos.GetIdentityIDByEmail(ctx, req.Email)
	if err != nil {
		return httptypes.BadRequest(CodeAuthCreateFailed, "failed to check email", err)
	}
	if existing != "" {
		return httptypes.Conflict(CodeAuthCreateFailed, "email already registered")
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
	if errors.Is(err, kratos.ErrIdentityExists) {
		return httptypes.Conflict(CodeAuthCreateFailed, "email already registered")
	}
	if err != nil {
		return httptypes.BadRequest(CodeAuthCreateFailed, "failed to create account", err)
	}

	clinicID, err := s.storage.RedeemInvitationCode(ctx, req.InvitationCode, userID, req.FullName, req.Phone)
	if err != nil {
		if derr := s.kratos.DeleteIdentity(ctx, userID); derr != nil {
			s.logger.Errorf("failed to delete identity %s after failed registration: %v", userID, derr)
		}

		if errors.Is(err, storage.ErrInvitationUnavailable) {
			return httptypes.BadRequest(CodeInvalid, err.Error(), err)
		}
		return httptypes.BadRequest(CodeRegistrationFailed, "failed to complete registration", err)
	}

	if err := s.authz.AssignClinicRole(ctx, clinicID, userID, types.RolePatient); err != nil {
		s.logger.Errorf("failed to mirror patient %s into clinic %s: %v", userID, clinicID, err)
	}

	s.logger.Infof("patient %s registered into clinic %s", userID, clinicID)

	return nil
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:      storage,
		kratos:       kratos,
		authz:        authz,
		generateCode: GenerateCode,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
