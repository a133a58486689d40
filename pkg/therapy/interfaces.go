// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"context"
	"time"

	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

type ServiceInterface interface {
	CreateExercise(ctx context.Context, caller *types.CallerContext, req *CreateExerciseRequest) (*types.Exercise, error)
	ListExercises(ctx context.Context, caller *types.CallerContext) ([]*types.Exercise, error)
	CreatePlanItem(ctx context.Context, caller *types.CallerContext, req *CreatePlanItemRequest) (*types.PlanItem, error)
	SaveSession(ctx context.Context, caller *types.CallerContext, req *SaveSessionRequest) (*types.SessionNote, error)
	PatientSummary(ctx context.Context, caller *types.CallerContext, patientID string) (*PatientSummary, error)

	CreatePainEvent(ctx context.Context, caller *types.CallerContext, req *CreatePainEventRequest) (*types.PainEvent, error)
	ListPainEvents(ctx context.Context, caller *types.CallerContext, days int) ([]*types.PainEvent, error)
	ListPlan(ctx context.Context, caller *types.CallerContext) ([]*types.PlanItemView, error)
	CompleteExercise(ctx context.Context, caller *types.CallerContext, req *CompleteExerciseRequest) (*types.ExerciseCompletion, error)

	PatientEvolution(ctx context.Context, caller *types.CallerContext) (*PatientEvolution, error)
	PatientHome(ctx context.Context, caller *types.CallerContext) (*PatientHome, error)
	TherapistHome(ctx context.Context, caller *types.CallerContext) (*TherapistHome, error)
}

type StorageInterface interface {
	CreateExercise(ctx context.Context, e *types.Exercise) (*types.Exercise, error)
	ListExercises(ctx context.Context, clinicID string) ([]*types.Exercise, error)
	GetExercise(ctx context.Context, id string) (*types.Exercise, error)
	CreatePlanItem(ctx context.Context, p *types.PlanItem) (*types.PlanItem, error)
	GetPlanItem(ctx context.Context, id string) (*types.PlanItem, error)
	ListPlanItems(ctx context.Context, patientID string) ([]*types.PlanItemView, error)
	CreateCompletion(ctx context.Context, c *types.ExerciseCompletion) (*types.ExerciseCompletion, error)
	CreatePainEvent(ctx context.Context, e *types.PainEvent) (*types.PainEvent, error)
	ListPainEvents(ctx context.Context, patientID string, since time.Time) ([]*types.PainEvent, error)
	ListPainEventsByPatients(ctx context.Context, patientIDs []string, since time.Time) ([]*types.PainEvent, error)
	UpsertSession(ctx context.Context, n *types.SessionNote) (*types.SessionNote, error)
	ListSessions(ctx context.Context, patientID string) ([]*types.SessionNote, error)
	GetAppointment(ctx context.Context, id string) (*types.Appointment, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	HasActiveAssignment(ctx context.Context, filter storage.AssignmentFilter) (bool, error)
	ListActiveAssignments(ctx context.Context, filter storage.AssignmentFilter) ([]*types.PatientAssignment, error)
	ListProfiles(ctx context.Context, clinicID string, ids ...string) ([]*types.ProfileWithRole, error)
	ListAppointments(ctx context.Context, filter storage.AppointmentFilter) ([]*types.AppointmentView, error)
}

type AuthorizerInterface interface {
	CanViewPatient(ctx context.Context, userID, patientID string) (bool, error)
}
