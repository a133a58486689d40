// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTherapist, RolePatient:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// DefaultAppointmentDuration is applied to every appointment created through the API.
const DefaultAppointmentDuration = 30

type Clinic struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Timezone  string    `db:"timezone" json:"timezone"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ClinicUpdate carries a partial clinic update, nil fields are left untouched.
type ClinicUpdate struct {
	Name     *string
	Address  *string
	Phone    *string
	Timezone *string
	Active   *bool
}

func (u ClinicUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.Phone == nil && u.Timezone == nil && u.Active == nil
}

type Profile struct {
	ID        string    `db:"id" json:"id"`
	ClinicID  string    `db:"clinic_id" json:"clinicId"`
	FullName  string    `db:"full_name" json:"fullName"`
	Phone     string    `db:"phone" json:"phone"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ProfileWithRole joins a profile with its role assignment.
type ProfileWithRole struct {
	Profile
	Role Role `db:"role" json:"role"`
}

type PatientAssignment struct {
	ID          string    `db:"id" json:"id"`
	PatientID   string    `db:"patient_id" json:"patientId"`
	TherapistID string    `db:"therapist_id" json:"therapistId"`
	ClinicID    string    `db:"clinic_id" json:"clinicId"`
	IsPrimary   bool      `db:"is_primary" json:"isPrimary"`
	Active      bool      `db:"active" json:"active"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Appointment struct {
	ID              string            `db:"id" json:"id"`
	PatientID       string            `db:"patient_id" json:"patientId"`
	TherapistID     string            `db:"therapist_id" json:"therapistId"`
	ClinicID        string            `db:"clinic_id" json:"clinicId"`
	ScheduledAt     time.Time         `db:"scheduled_at" json:"scheduledAt"`
	DurationMinutes int               `db:"duration_minutes" json:"durationMinutes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
}

// AppointmentView is an appointment joined with the counterpart's display name.
type AppointmentView struct {
	Appointment
	PatientName   string `json:"patientName,omitempty"`
	TherapistName string `json:"therapistName,omitempty"`
}

type Exercise struct {
	ID               string    `db:"id" json:"id"`
	ClinicID         string    `db:"clinic_id" json:"clinicId"`
	Name             string    `db:"name" json:"name"`
	YoutubeURL       string    `db:"youtube_url" json:"youtubeUrl"`
	Instructions     string    `db:"instructions" json:"instructions"`
	Series           int       `db:"series" json:"series"`
	Reps             int       `db:"reps" json:"reps"`
	FrequencyPerWeek int       `db:"frequency_per_week" json:"frequencyPerWeek"`
	Category         string    `db:"category" json:"category"`
	BodyPart         string    `db:"body_part" json:"bodyPart"`
	Difficulty       string    `db:"difficulty" json:"difficulty"`
	Active           bool      `db:"active" json:"active"`
	CreatedBy        string    `db:"created_by" json:"createdBy"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

type PlanItem struct {
	ID                 string    `db:"id" json:"id"`
	PatientID          string    `db:"patient_id" json:"patientId"`
	ExerciseID         string    `db:"exercise_id" json:"exerciseId"`
	CustomInstructions string    `db:"custom_instructions" json:"customInstructions,omitempty"`
	SortOrder          int       `db:"sort_order" json:"sortOrder"`
	Active             bool      `db:"active" json:"active"`
	CreatedBy          string    `db:"created_by" json:"createdBy"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// PlanItemView is a plan item joined with its exercise.
type PlanItemView struct {
	PlanItem
	Exercise Exercise `json:"exercise"`
}

type ExerciseCompletion struct {
	ID          string    `db:"id" json:"id"`
	PlanItemID  string    `db:"plan_item_id" json:"planItemId"`
	PatientID   string    `db:"patient_id" json:"patientId"`
	CompletedAt time.Time `db:"completed_at" json:"completedAt"`
	HadPain     bool      `db:"had_pain" json:"hadPain"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
}

type PainEvent struct {
	ID         string    `db:"id" json:"id"`
	PatientID  string    `db:"patient_id" json:"patientId"`
	ClinicID   string    `db:"clinic_id" json:"clinicId"`
	RecordedAt time.Time `db:"recorded_at" json:"recordedAt"`
	BodyPart   string    `db:"body_part" json:"bodyPart"`
	Intensity  int       `db:"intensity" json:"intensity"`
	Trigger    string    `db:"trigger" json:"trigger"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
}

type SessionNote struct {
	ID            string    `db:"id" json:"id"`
	AppointmentID string    `db:"appointment_id" json:"appointmentId"`
	PatientID     string    `db:"patient_id" json:"patientId"`
	TherapistID   string    `db:"therapist_id" json:"therapistId"`
	SessionDate   time.Time `db:"session_date" json:"sessionDate"`
	Notes         string    `db:"notes" json:"notes"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// CallerContext is the resolved identity of an authenticated, active caller.
type CallerContext struct {
	UserID   string
	Role     Role
	ClinicID string
	FullName string
	Phone    string
	Active   bool
}

func (c *CallerContext) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

func (c *CallerContext) IsTherapist() bool {
	return c != nil && c.Role == RoleTherapist
}

func (c *CallerContext) IsPatient() bool {
	return c != nil && c.Role == RolePatient
}

// IsPrivileged reports whether the caller is staff.
func (c *CallerContext) IsPrivileged() bool {
	return c.IsAdmin() || c.IsTherapist()
}

// InClinic reports whether the caller may act on clinicID. A staff member without a clinic
// affiliation is global and may act on any clinic.
func (c *CallerContext) InClinic(clinicID string) bool {
	if c == nil {
		return false
	}
	return c.ClinicID == "" || c.ClinicID == clinicID
}

// AdminClinicScope is the clinic an admin is restricted to, empty for a global admin
// and for every other role.
func (c *CallerContext) AdminClinicScope() string {
	if !c.IsAdmin() {
		return ""
	}
	return c.ClinicID
}

// HomePath is the landing route of each portal.
func HomePath(role Role) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleTherapist:
		return "/therapist"
	case RolePatient:
		return "/patient"
	}
	return "/login"
}
