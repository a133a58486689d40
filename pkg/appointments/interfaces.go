// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appointments

import (
	"context"
	"time"

	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	CreateAppointment(ctx context.Context, caller *types.CallerContext, req *CreateAppointmentRequest) (*types.Appointment, error)
	SetStatus(ctx context.Context, caller *types.CallerContext, appointmentID string, status types.AppointmentStatus) error
	TherapistAgenda(ctx context.Context, caller *types.CallerContext, from, to time.Time) ([]*types.AppointmentView, error)
	PatientAppointments(ctx context.Context, caller *types.CallerContext) ([]*types.AppointmentView, error)
}

type StorageInterface interface {
	CreateAppointment(ctx context.Context, a *types.Appointment) (*types.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*types.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status types.AppointmentStatus) error
	ListAppointments(ctx context.Context, filter storage.AppointmentFilter) ([]*types.AppointmentView, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	IsClinicPatient(ctx context.Context, clinicID, patientID string) (bool, error)
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	GetClinic(ctx context.Context, id string) (*types.Clinic, error)
}

type NotifierInterface interface {
	SendAppointmentConfirmation(ctx context.Context, to string, when time.Time, timezone string) error
}
