// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"context"
	"errors"
	"time"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

func (s *Service) CreatePainEvent(ctx context.Context, caller *types.CallerContext, req *CreatePainEventRequest) (*types.PainEvent, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.CreatePainEvent")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	recordedAt := s.now().UTC()
	if req.RecordedAt != nil {
		t, err := time.Parse(time.RFC3339, *req.RecordedAt)
		if err != nil {
			return nil, httptypes.InvalidPayload("recordedAt must be an RFC3339 timestamp")
		}
		recordedAt = t.UTC()
	}

	event, err := s.storage.CreatePainEvent(
		ctx,
		&types.PainEvent{
			PatientID:  caller.UserID,
			ClinicID:   caller.ClinicID,
			RecordedAt: recordedAt,
			BodyPart:   req.BodyPart,
			Intensity:  *req.Intensity,
			Trigger:    req.Trigger,
			Notes:      req.Notes,
		},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodePainEventCreateFailed, "failed to record pain event", err)
	}

	return event, nil
}

// ListPainEvents returns the caller's events of the last days, newest first.
func (s *Service) ListPainEvents(ctx context.Context, caller *types.CallerContext, days int) ([]*types.PainEvent, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.ListPainEvents")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	if days < 1 || days > maxPainDays {
		return nil, httptypes.InvalidPayload("days must be between 1 and 365")
	}

	events, err := s.storage.ListPainEvents(ctx, caller.UserID, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, httptypes.BadRequest(CodePainEventListFailed, "failed to list pain events", err)
	}

	return events, nil
}

func (s *Service) ListPlan(ctx context.Context, caller *types.CallerContext) ([]*types.PlanItemView, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.ListPlan")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	items, err := s.storage.ListPlanItems(ctx, caller.UserID)
	if err != nil {
		return nil, httptypes.BadRequest(CodePlanListFailed, "failed to load exercise plan", err)
	}

	return items, nil
}

// CompleteExercise records a completion of one of the caller's active plan items.
func (s *Service) CompleteExercise(ctx context.Context, caller *types.CallerContext, req *CompleteExerciseRequest) (*types.ExerciseCompletion, error) {
	ctx, span := s.tracer.Start(ctx, "therapy.Service.CompleteExercise")
	defer span.End()

	if err := identity.RequirePatient(caller, s.logger); err != nil {
		return nil, err
	}

	item, err := s.storage.GetPlanItem(ctx, req.PlanItemID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, httptypes.BadRequest(CodePlanItemLookupFailed, "failed to load plan item", err)
	}

	if item == nil || item.PatientID != caller.UserID || !item.Active {
		return nil, httptypes.NotFound(CodePlanItemNotFound, "plan item not found")
	}

	completion, err := s.storage.CreateCompletion(
		ctx,
		&types.ExerciseCompletion{
			PlanItemID:  item.ID,
			PatientID:   caller.UserID,
			CompletedAt: s.now().UTC(),
			HadPain:     *req.HadPain,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		return nil, httptypes.BadRequest(CodeCompletionCreateFailed, "failed to record completion", err)
	}

	return completion, nil
}
