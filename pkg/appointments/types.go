// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appointments

import (
	"time"

	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	CodeTherapistForbidden   = "THERAPIST_FORBIDDEN"
	CodeOverlap              = "APPOINTMENT_OVERLAP"
	CodeCreateFailed         = "APPOINTMENT_CREATE_FAILED"
	CodeInvalidAppointmentID = "INVALID_APPOINTMENT_ID"
	CodeLookupFailed         = "APPOINTMENT_LOOKUP_FAILED"
	CodeNotFound             = "APPOINTMENT_NOT_FOUND"
	CodeUpdateFailed         = "APPOINTMENT_UPDATE_FAILED"
	CodeListFailed           = "APPOINTMENT_LIST_FAILED"
	CodeInvalidRange         = "INVALID_DATE_RANGE"
	CodeParticipantsFailed   = "PARTICIPANT_VALIDATION_FAILED"
	CodePatientMismatch      = "PATIENT_CLINIC_MISMATCH"
	CodeTherapistMismatch    = "THERAPIST_CLINIC_MISMATCH"
)

// agendaDays is the default window of the therapist agenda.
const agendaDays = 7

type CreateAppointmentRequest struct {
	PatientID      string `json:"patientId" validate:"required,uuid"`
	TherapistID    string `json:"therapistId" validate:"required,uuid"`
	ClinicID       string `json:"clinicId" validate:"required,uuid"`
	ScheduledAtUTC string `json:"scheduledAtUtc" validate:"required,rfc3339"`
}

// ScheduledAt returns the requested start in UTC.
func (r *CreateAppointmentRequest) ScheduledAt() (time.Time, error) {
	at, err := time.Parse(time.RFC3339, r.ScheduledAtUTC)
	if err != nil {
		return time.Time{}, err
	}
	return at.UTC(), nil
}

type CreateAppointmentResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type SetStatusRequest struct {
	Status types.AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed cancelled no_show"`
}

type SetStatusResponse struct {
	Success bool                    `json:"success"`
	ID      string                  `json:"id"`
	Status  types.AppointmentStatus `json:"status"`
}
