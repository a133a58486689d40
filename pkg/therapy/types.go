// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package therapy

import (
	"time"

	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	CodeExerciseCreateFailed   = "EXERCISE_CREATE_FAILED"
	CodeExerciseListFailed     = "EXERCISE_LIST_FAILED"
	CodePatientNotAssigned     = "PATIENT_NOT_ASSIGNED"
	CodeAssignmentLookupFailed = "ASSIGNMENT_LOOKUP_FAILED"
	CodePlanItemCreateFailed   = "PLAN_ITEM_CREATE_FAILED"
	CodeTherapistForbidden     = "THERAPIST_FORBIDDEN"
	CodeAppointmentNotFound    = "APPOINTMENT_NOT_FOUND"
	CodeAppointmentLookup      = "APPOINTMENT_LOOKUP_FAILED"
	CodeSessionSaveFailed      = "SESSION_SAVE_FAILED"
	CodeInvalidPatientID       = "INVALID_PATIENT_ID"
	CodePatientNotFound        = "PATIENT_NOT_FOUND"
	CodePatientLookupFailed    = "PATIENT_LOOKUP_FAILED"
	CodeSummaryFailed          = "PATIENT_SUMMARY_FAILED"
	CodePainEventCreateFailed  = "PAIN_EVENT_CREATE_FAILED"
	CodePainEventListFailed    = "PAIN_EVENT_LIST_FAILED"
	CodePlanListFailed         = "PLAN_LIST_FAILED"
	CodePlanItemNotFound       = "PLAN_ITEM_NOT_FOUND"
	CodePlanItemLookupFailed   = "PLAN_ITEM_LOOKUP_FAILED"
	CodeCompletionCreateFailed = "COMPLETION_CREATE_FAILED"
	CodeExerciseNotFound       = "EXERCISE_NOT_FOUND"
	CodeExerciseLookupFailed   = "EXERCISE_LOOKUP_FAILED"
	CodeExerciseClinicMismatch = "EXERCISE_CLINIC_MISMATCH"
	CodeEvolutionFailed        = "PAIN_EVOLUTION_FAILED"
	CodeHomeFailed             = "HOME_FAILED"
)

const (
	defaultDifficulty = "medium"

	// summaryPainDays is the pain history window of the therapist patient view.
	summaryPainDays = 28

	defaultPainDays = 28
	maxPainDays     = 365

	evolutionDays    = 28
	homePainDays     = 7
	recentPainEvents = 10
)

type CreateExerciseRequest struct {
	Name             string `json:"name" validate:"required,min=3"`
	YoutubeURL       string `json:"youtubeUrl" validate:"required,url"`
	Instructions     string `json:"instructions" validate:"required,min=5"`
	Series           int    `json:"series" validate:"required,min=1,max=20"`
	Reps             int    `json:"reps" validate:"required,min=1,max=100"`
	FrequencyPerWeek int    `json:"frequencyPerWeek" validate:"required,min=1,max=14"`
	Category         string `json:"category" validate:"required,min=2"`
	BodyPart         string `json:"bodyPart" validate:"required,oneof=neck upper_back lower_back shoulder knee other"`
	Difficulty       string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type CreatePlanItemRequest struct {
	PatientID          string `json:"patientId" validate:"required,uuid"`
	ExerciseID         string `json:"exerciseId" validate:"required,uuid"`
	CustomInstructions string `json:"customInstructions"`
	SortOrder          int    `json:"sortOrder" validate:"min=0"`
}

type SaveSessionRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
	PatientID     string `json:"patientId" validate:"required,uuid"`
	SessionDate   string `json:"sessionDate" validate:"required,date"`
	Notes         string `json:"notes" validate:"required,min=3"`
}

func (r *SaveSessionRequest) Date() time.Time {
	d, _ := time.Parse(time.DateOnly, r.SessionDate)
	return d
}

type CreatePainEventRequest struct {
	RecordedAt *string `json:"recordedAt" validate:"omitempty,rfc3339"`
	BodyPart   string  `json:"bodyPart" validate:"required,oneof=neck upper_back lower_back shoulder knee other"`
	Intensity  *int    `json:"intensity" validate:"required,min=0,max=10"`
	Trigger    string  `json:"trigger" validate:"required,oneof=exercise sitting sport lifting sleep stress other"`
	Notes      string  `json:"notes" validate:"max=500"`
}

type CompleteExerciseRequest struct {
	PlanItemID string `json:"planItemId" validate:"required,uuid"`
	HadPain    *bool  `json:"hadPain" validate:"required"`
	Notes      string `json:"notes" validate:"max=300"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

// PatientSummary is the therapist view of a patient.
type PatientSummary struct {
	Profile    *types.Profile        `json:"profile"`
	PainEvents []*types.PainEvent    `json:"painEvents"`
	PlanItems  []*types.PlanItemView `json:"planItems"`
	Sessions   []*types.SessionNote  `json:"sessions"`
}

type WeeklyPain struct {
	// WeekStart is the Monday of the week, formatted as YYYY-MM-DD.
	WeekStart        string  `json:"weekStart"`
	AverageIntensity float64 `json:"averageIntensity"`
	Events           int     `json:"events"`
}

type PatientEvolution struct {
	Weeks  []*WeeklyPain      `json:"weeks"`
	Recent []*types.PainEvent `json:"recent"`
}

type PatientHome struct {
	NextAppointment *types.AppointmentView `json:"nextAppointment"`
	WeekAveragePain float64                `json:"weekAveragePain"`
	WeekPainEvents  int                    `json:"weekPainEvents"`
}

type TherapistPatient struct {
	PatientID       string     `json:"patientId"`
	FullName        string     `json:"fullName"`
	AveragePain     *float64   `json:"averagePain"`
	NextAppointment *time.Time `json:"nextAppointment"`
}

type TherapistHome struct {
	Patients []*TherapistPatient `json:"patients"`
}
