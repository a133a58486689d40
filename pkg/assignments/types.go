// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

import (
	"slices"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
)

const (
	CodeInvalidPatientID          = "INVALID_PATIENT_ID"
	CodePatientValidationFailed   = "PATIENT_VALIDATION_FAILED"
	CodePatientClinicMismatch     = "PATIENT_CLINIC_MISMATCH"
	CodeInvalidPatientRole        = "INVALID_PATIENT_ROLE"
	CodeTherapistValidationFailed = "THERAPIST_VALIDATION_FAILED"
	CodeTherapistClinicMismatch   = "THERAPIST_CLINIC_MISMATCH"
	CodeInvalidTherapistSelection = "INVALID_THERAPIST_SELECTION"
	CodeAssignmentResetFailed     = "ASSIGNMENT_RESET_FAILED"
	CodeAssignmentSaveFailed      = "ASSIGNMENT_SAVE_FAILED"
	CodeAssignmentLookupFailed    = "ASSIGNMENT_LOOKUP_FAILED"
)

type ReconcileRequest struct {
	ClinicID              string   `json:"clinicId" validate:"required,uuid"`
	PrimaryTherapistID    string   `json:"primaryTherapistId" validate:"required,uuid"`
	SecondaryTherapistIDs []string `json:"secondaryTherapistIds" validate:"unique,dive,uuid"`
}

// Check enforces the rules the struct tags cannot express.
func (r *ReconcileRequest) Check() error {
	if r.SecondaryTherapistIDs == nil {
		r.SecondaryTherapistIDs = []string{}
	}

	if slices.Contains(r.SecondaryTherapistIDs, r.PrimaryTherapistID) {
		return httptypes.InvalidPayload("primaryTherapistId must not be listed as a secondary therapist")
	}

	return nil
}

// TherapistIDs returns the primary followed by the secondaries.
func (r *ReconcileRequest) TherapistIDs() []string {
	return append([]string{r.PrimaryTherapistID}, r.SecondaryTherapistIDs...)
}

type ReconcileResponse struct {
	Success               bool     `json:"success"`
	PatientID             string   `json:"patientId"`
	ClinicID              string   `json:"clinicId"`
	PrimaryTherapistID    string   `json:"primaryTherapistId"`
	SecondaryTherapistIDs []string `json:"secondaryTherapistIds"`
}
