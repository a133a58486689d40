// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clinics

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	CreateClinic(ctx context.Context, caller *types.CallerContext, req *CreateClinicRequest) (*types.Clinic, error)
	UpdateClinic(ctx context.Context, caller *types.CallerContext, clinicID string, req *UpdateClinicRequest) (*types.Clinic, error)
	ListClinics(ctx context.Context, caller *types.CallerContext) ([]*types.Clinic, error)
	Dashboard(ctx context.Context, caller *types.CallerContext) (*Dashboard, error)
	Reports(ctx context.Context, caller *types.CallerContext) (*Reports, error)
	MasterAgenda(ctx context.Context, caller *types.CallerContext) ([]*types.AppointmentView, error)
}

type StorageInterface interface {
	CreateClinic(ctx context.Context, c *types.Clinic) (*types.Clinic, error)
	GetClinic(ctx context.Context, id string) (*types.Clinic, error)
	ListClinics(ctx context.Context, ids ...string) ([]*types.Clinic, error)
	UpdateClinic(ctx context.Context, id string, u types.ClinicUpdate) (*types.Clinic, error)
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	ListAppointments(ctx context.Context, filter storage.AppointmentFilter) ([]*types.AppointmentView, error)
	ListActiveAssignments(ctx context.Context, filter storage.AssignmentFilter) ([]*types.PatientAssignment, error)
	CountCompletions(ctx context.Context, clinicID string) (int, error)
}
