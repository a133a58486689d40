// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	CreateCode(ctx context.Context, caller *types.CallerContext, req *CreateCodeRequest) (*types.InvitationCode, error)
	ListCodes(ctx context.Context, caller *types.CallerContext, clinicID string) ([]*types.InvitationCodeView, error)
	RegisterPatient(ctx context.Context, req *RegisterPatientRequest) error
}

// StorageInterface is the subset of internal/storage used by invitations.
type StorageInterface interface {
	CreateInvitationCode(ctx context.Context, c *types.InvitationCode) (*types.InvitationCode, error)
	ListInvitationCodes(ctx context.Context, clinicID string) ([]*types.InvitationCode, error)
	CheckInvitationCode(ctx context.Context, code string, now time.Time) (*types.InvitationCheck, error)
	RedeemInvitationCode(ctx context.Context, code, userID, fullName, phone string) (string, error)
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, params kratos.IdentityParams) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	AssignClinicRole(ctx context.Context, clinicID, userID string, role types.Role) error
}
