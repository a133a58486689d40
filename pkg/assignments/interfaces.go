// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	Reconcile(ctx context.Context, caller *types.CallerContext, patientID string, req *ReconcileRequest) (*ReconcileResponse, error)
	List(ctx context.Context, caller *types.CallerContext, patientID, clinicID string) ([]*types.PatientAssignment, error)
}

type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetRole(ctx context.Context, userID string) (types.Role, error)
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	ListActiveAssignments(ctx context.Context, filter storage.AssignmentFilter) ([]*types.PatientAssignment, error)
	DeactivateAssignments(ctx context.Context, patientID, clinicID string) error
	UpsertAssignments(ctx context.Context, assignments []*types.PatientAssignment) error
}

type AuthorizerInterface interface {
	SetCareTeam(ctx context.Context, patientID, clinicID, primaryTherapistID string, secondaryTherapistIDs []string) error
}
