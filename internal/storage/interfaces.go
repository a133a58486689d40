// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/fisioapp/clinic-service/internal/types"
)

type ClinicStorageInterface interface {
	CreateClinic(ctx context.Context, c *types.Clinic) (*types.Clinic, error)
	GetClinic(ctx context.Context, id string) (*types.Clinic, error)
	ListClinics(ctx context.Context, ids ...string) ([]*types.Clinic, error)
	UpdateClinic(ctx context.Context, id string, u types.ClinicUpdate) (*types.Clinic, error)
}

type ProfileStorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetRole(ctx context.Context, userID string) (types.Role, error)
	UpsertProfile(ctx context.Context, p *types.Profile) error
	UpsertRole(ctx context.Context, userID string, role types.Role) error
	SetProfileActive(ctx context.Context, id string, active bool) error
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	IsClinicPatient(ctx context.Context, clinicID, patientID string) (bool, error)
	AddPatientClinics(ctx context.Context, patientID string, clinicIDs []string, createdBy string) error
}

type InvitationStorageInterface interface {
	CreateInvitationCode(ctx context.Context, c *types.InvitationCode) (*types.InvitationCode, error)
	ListInvitationCodes(ctx context.Context, clinicID string) ([]*types.InvitationCode, error)
	GetInvitationCode(ctx context.Context, code string) (*types.InvitationCode, error)
	CheckInvitationCode(ctx context.Context, code string, now time.Time) (*types.InvitationCheck, error)
	RedeemInvitationCode(ctx context.Context, code, userID, fullName, phone string) (string, error)
}

type AssignmentStorageInterface interface {
	ListActiveAssignments(ctx context.Context, filter AssignmentFilter) ([]*types.PatientAssignment, error)
	HasActiveAssignment(ctx context.Context, filter AssignmentFilter) (bool, error)
	HasPrimaryAssignments(ctx context.Context, therapistID, clinicID string) (bool, error)
	DeactivateAssignments(ctx context.Context, patientID, clinicID string) error
	UpsertAssignments(ctx context.Context, assignments []*types.PatientAssignment) error
}

type AppointmentStorageInterface interface {
	CreateAppointment(ctx context.Context, a *types.Appointment) (*types.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*types.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status types.AppointmentStatus) error
	ListAppointments(ctx context.Context, filter AppointmentFilter) ([]*types.AppointmentView, error)
}

type TherapyStorageInterface interface {
	CreateExercise(ctx context.Context, e *types.Exercise) (*types.Exercise, error)
	ListExercises(ctx context.Context, clinicID string) ([]*types.Exercise, error)
	GetExercise(ctx context.Context, id string) (*types.Exercise, error)
	CreatePlanItem(ctx context.Context, p *types.PlanItem) (*types.PlanItem, error)
	GetPlanItem(ctx context.Context, id string) (*types.PlanItem, error)
	ListPlanItems(ctx context.Context, patientID string) ([]*types.PlanItemView, error)
	CreateCompletion(ctx context.Context, c *types.ExerciseCompletion) (*types.ExerciseCompletion, error)
	CountCompletions(ctx context.Context, clinicID string) (int, error)
	CreatePainEvent(ctx context.Context, e *types.PainEvent) (*types.PainEvent, error)
	ListPainEvents(ctx context.Context, patientID string, since time.Time) ([]*types.PainEvent, error)
	ListPainEventsByPatients(ctx context.Context, patientIDs []string, since time.Time) ([]*types.PainEvent, error)
	UpsertSession(ctx context.Context, n *types.SessionNote) (*types.SessionNote, error)
	ListSessions(ctx context.Context, patientID string) ([]*types.SessionNote, error)
}

type StorageInterface interface {
	ClinicStorageInterface
	ProfileStorageInterface
	InvitationStorageInterface
	AssignmentStorageInterface
	AppointmentStorageInterface
	TherapyStorageInterface

	TableExists(ctx context.Context, name string) (bool, error)
}
