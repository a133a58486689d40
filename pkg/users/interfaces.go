// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, caller *types.CallerContext, req *CreateUserRequest) (*CreateUserResponse, error)
	InviteUser(ctx context.Context, caller *types.CallerContext, req *InviteUserRequest) (*InviteUserResponse, error)
	SetStatus(ctx context.Context, caller *types.CallerContext, userID string, active bool) error
	ListUsers(ctx context.Context, caller *types.CallerContext, clinicID string) ([]*UserView, error)
}

type StorageInterface interface {
	ListClinics(ctx context.Context, ids ...string) ([]*types.Clinic, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetRole(ctx context.Context, userID string) (types.Role, error)
	UpsertProfile(ctx context.Context, p *types.Profile) error
	UpsertRole(ctx context.Context, userID string, role types.Role) error
	SetProfileActive(ctx context.Context, id string, active bool) error
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	AddPatientClinics(ctx context.Context, patientID string, clinicIDs []string, createdBy string) error
	HasPrimaryAssignments(ctx context.Context, therapistID, clinicID string) (bool, error)
	HasActiveAssignment(ctx context.Context, filter storage.AssignmentFilter) (bool, error)
	ListActiveAssignments(ctx context.Context, filter storage.AssignmentFilter) ([]*types.PatientAssignment, error)
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, params kratos.IdentityParams) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
	GetEmail(ctx context.Context, id string) (string, error)
}

type AuthorizerInterface interface {
	AssignClinicRole(ctx context.Context, clinicID, userID string, role types.Role) error
}
