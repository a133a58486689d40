// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fisioapp/clinic-service/internal/types"
)

var exerciseColumns = []string{
	"e.id", "COALESCE(e.clinic_id::text, '')", "e.name", "e.youtube_url", "e.instructions", "e.series", "e.reps",
	"e.frequency_per_week", "e.category", "e.body_part", "e.difficulty", "e.active", "COALESCE(e.created_by::text, '')", "e.created_at",
}

func exerciseDest(e *types.Exercise) []interface{} {
	return []interface{}{
		&e.ID, &e.ClinicID, &e.Name, &e.YoutubeURL, &e.Instructions, &e.Series, &e.Reps,
		&e.FrequencyPerWeek, &e.Category, &e.BodyPart, &e.Difficulty, &e.Active, &e.CreatedBy, &e.CreatedAt,
	}
}

func (s *Storage) CreateExercise(ctx context.Context, e *types.Exercise) (*types.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateExercise")
	defer span.End()

	id, err := newID("exercise")
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("exercises").
		Columns(
			"id", "clinic_id", "name", "youtube_url", "instructions", "series", "reps",
			"frequency_per_week", "category", "body_part", "difficulty", "active", "created_by",
		).
		Values(
			id, nullable(e.ClinicID), e.Name, e.YoutubeURL, e.Instructions, e.Series, e.Reps,
			e.FrequencyPerWeek, e.Category, e.BodyPart, e.Difficulty, true, nullable(e.CreatedBy),
		).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to insert exercise")
	}

	created := *e
	created.ID = id
	created.Active = true
	created.CreatedAt = time.Now().UTC()

	return &created, nil
}

// ListExercises returns the active exercises of the clinic, shared exercises have no clinic.
func (s *Storage) ListExercises(ctx context.Context, clinicID string) ([]*types.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExercises")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(exerciseColumns...).
		From("exercises e").
		Where(sq.Eq{"e.active": true}).
		Where(sq.Or{sq.Eq{"e.clinic_id": nil}, eqOrAll("e.clinic_id", clinicID)}).
		OrderBy("e.name").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list exercises")
	}
	defer rows.Close()

	exercises := make([]*types.Exercise, 0)
	for rows.Next() {
		var e types.Exercise
		if err := rows.Scan(exerciseDest(&e)...); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercise rows: %w", err)
	}

	return exercises, nil
}

func (s *Storage) GetExercise(ctx context.Context, id string) (*types.Exercise, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetExercise")
	defer span.End()

	var e types.Exercise
	err := s.db.Statement(ctx).
		Select(exerciseColumns...).
		From("exercises e").
		Where(sq.Eq{"e.id": id}).
		QueryRowContext(ctx).
		Scan(exerciseDest(&e)...)

	if err != nil {
		return nil, wrapError(err, "failed to get exercise")
	}

	return &e, nil
}

func (s *Storage) CreatePlanItem(ctx context.Context, p *types.PlanItem) (*types.PlanItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePlanItem")
	defer span.End()

	id, err := newID("plan item")
	if err != nil {
		return nil, err
	}

	var item types.PlanItem
	err = s.db.Statement(ctx).
		Insert("exercise_plan_items").
		Columns("id", "patient_id", "exercise_id", "custom_instructions", "sort_order", "active", "created_by").
		Values(id, p.PatientID, p.ExerciseID, p.CustomInstructions, p.SortOrder, true, nullable(p.CreatedBy)).
		Suffix("RETURNING id, patient_id, exercise_id, custom_instructions, sort_order, active, COALESCE(created_by::text, ''), created_at").
		QueryRowContext(ctx).
		Scan(&item.ID, &item.PatientID, &item.ExerciseID, &item.CustomInstructions, &item.SortOrder, &item.Active, &item.CreatedBy, &item.CreatedAt)

	if err != nil {
		return nil, wrapError(err, "failed to insert plan item")
	}

	return &item, nil
}

func (s *Storage) GetPlanItem(ctx context.Context, id string) (*types.PlanItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanItem")
	defer span.End()

	var item types.PlanItem
	err := s.db.Statement(ctx).
		Select("id", "patient_id", "exercise_id", "custom_instructions", "sort_order", "active", "COALESCE(created_by::text, '')", "created_at").
		From("exercise_plan_items").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&item.ID, &item.PatientID, &item.ExerciseID, &item.CustomInstructions, &item.SortOrder, &item.Active, &item.CreatedBy, &item.CreatedAt)

	if err != nil {
		return nil, wrapError(err, "failed to get plan item")
	}

	return &item, nil
}

// ListPlanItems returns the patient's active plan joined with each exercise, in plan order.
func (s *Storage) ListPlanItems(ctx context.Context, patientID string) ([]*types.PlanItemView, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlanItems")
	defer span.End()

	columns := append([]string{
		"i.id", "i.patient_id", "i.exercise_id", "i.custom_instructions", "i.sort_order", "i.active",
		"COALESCE(i.created_by::text, '')", "i.created_at",
	}, exerciseColumns...)

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("exercise_plan_items i").
		Join("exercises e ON e.id = i.exercise_id").
		Where(sq.Eq{"i.patient_id": patientID, "i.active": true}).
		OrderBy("i.sort_order", "i.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list plan items")
	}
	defer rows.Close()

	items := make([]*types.PlanItemView, 0)
	for rows.Next() {
		var v types.PlanItemView
		dest := append([]interface{}{
			&v.ID, &v.PatientID, &v.ExerciseID, &v.CustomInstructions, &v.SortOrder, &v.Active, &v.CreatedBy, &v.CreatedAt,
		}, exerciseDest(&v.Exercise)...)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan plan item: %w", err)
		}
		items = append(items, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan item rows: %w", err)
	}

	return items, nil
}

func (s *Storage) CreateCompletion(ctx context.Context, c *types.ExerciseCompletion) (*types.ExerciseCompletion, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompletion")
	defer span.End()

	id, err := newID("completion")
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("exercise_completions").
		Columns("id", "plan_item_id", "patient_id", "completed_at", "had_pain", "notes").
		Values(id, c.PlanItemID, c.PatientID, c.CompletedAt.UTC(), c.HadPain, c.Notes).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to insert completion")
	}

	created := *c
	created.ID = id

	return &created, nil
}

// CountCompletions counts the completions of every patient ever assigned in clinicID,
// an empty clinicID counts across clinics.
func (s *Storage) CountCompletions(ctx context.Context, clinicID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCompletions")
	defer span.End()

	assigned := sq.Select("pa.patient_id").
		From("patient_assignments pa").
		Where(eqOrAll("pa.clinic_id", clinicID))

	inner, args, err := assigned.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build assignment query: %w", err)
	}

	var count int
	err = s.db.Statement(ctx).
		Select("count(*)").
		From("exercise_completions ec").
		Where(sq.Expr("ec.patient_id IN ("+inner+")", args...)).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, wrapError(err, "failed to count completions")
	}

	return count, nil
}

func (s *Storage) CreatePainEvent(ctx context.Context, e *types.PainEvent) (*types.PainEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePainEvent")
	defer span.End()

	id, err := newID("pain event")
	if err != nil {
		return nil, err
	}

	_, err = s.db.Statement(ctx).
		Insert("pain_events").
		Columns("id", "patient_id", "clinic_id", "recorded_at", "body_part", "intensity", "trigger", "notes").
		Values(id, e.PatientID, nullable(e.ClinicID), e.RecordedAt.UTC(), e.BodyPart, e.Intensity, e.Trigger, e.Notes).
		ExecContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to insert pain event")
	}

	created := *e
	created.ID = id

	return &created, nil
}

// ListPainEvents returns the patient's events recorded at or after since, newest first.
func (s *Storage) ListPainEvents(ctx context.Context, patientID string, since time.Time) ([]*types.PainEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPainEvents")
	defer span.End()

	return s.listPainEvents(ctx, sq.Eq{"patient_id": patientID}, since)
}

// ListPainEventsByPatients is ListPainEvents over several patients, no ids match nothing.
func (s *Storage) ListPainEventsByPatients(ctx context.Context, patientIDs []string, since time.Time) ([]*types.PainEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPainEventsByPatients")
	defer span.End()

	if len(patientIDs) == 0 {
		return make([]*types.PainEvent, 0), nil
	}

	return s.listPainEvents(ctx, sq.Eq{"patient_id": patientIDs}, since)
}

func (s *Storage) listPainEvents(ctx context.Context, patients sq.Eq, since time.Time) ([]*types.PainEvent, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "patient_id", "COALESCE(clinic_id::text, '')", "recorded_at", "body_part", "intensity", "trigger", "notes").
		From("pain_events").
		Where(patients).
		Where(sq.GtOrEq{"recorded_at": since.UTC()}).
		OrderBy("recorded_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list pain events")
	}
	defer rows.Close()

	events := make([]*types.PainEvent, 0)
	for rows.Next() {
		var e types.PainEvent
		if err := rows.Scan(&e.ID, &e.PatientID, &e.ClinicID, &e.RecordedAt, &e.BodyPart, &e.Intensity, &e.Trigger, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan pain event: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pain event rows: %w", err)
	}

	return events, nil
}

// UpsertSession stores the notes of an appointment, one row per appointment.
func (s *Storage) UpsertSession(ctx context.Context, n *types.SessionNote) (*types.SessionNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSession")
	defer span.End()

	id, err := newID("session")
	if err != nil {
		return nil, err
	}

	var note types.SessionNote
	err = s.db.Statement(ctx).
		Insert("sessions").
		Columns("id", "appointment_id", "patient_id", "therapist_id", "session_date", "notes").
		Values(id, n.AppointmentID, n.PatientID, n.TherapistID, n.SessionDate, n.Notes).
		Suffix(`ON CONFLICT (appointment_id) DO UPDATE SET
			patient_id = EXCLUDED.patient_id,
			therapist_id = EXCLUDED.therapist_id,
			session_date = EXCLUDED.session_date,
			notes = EXCLUDED.notes,
			updated_at = now()
			RETURNING id, appointment_id, patient_id, therapist_id, session_date, notes, updated_at`).
		QueryRowContext(ctx).
		Scan(&note.ID, &note.AppointmentID, &note.PatientID, &note.TherapistID, &note.SessionDate, &note.Notes, &note.UpdatedAt)

	if err != nil {
		return nil, wrapError(err, "failed to upsert session")
	}

	return &note, nil
}

func (s *Storage) ListSessions(ctx context.Context, patientID string) ([]*types.SessionNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSessions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "appointment_id", "patient_id", "therapist_id", "session_date", "notes", "updated_at").
		From("sessions").
		Where(sq.Eq{"patient_id": patientID}).
		OrderBy("session_date DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, wrapError(err, "failed to list sessions")
	}
	defer rows.Close()

	notes := make([]*types.SessionNote, 0)
	for rows.Next() {
		var n types.SessionNote
		if err := rows.Scan(&n.ID, &n.AppointmentID, &n.PatientID, &n.TherapistID, &n.SessionDate, &n.Notes, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return notes, nil
}
