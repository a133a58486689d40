// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"slices"

	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	CodeClinicRequired                 = "CLINIC_REQUIRED"
	CodeClinicLookupFailed             = "CLINIC_LOOKUP_FAILED"
	CodeClinicNotFound                 = "CLINIC_NOT_FOUND"
	CodeAuthCreateFailed               = "AUTH_CREATE_FAILED"
	CodeProfileSaveFailed              = "PROFILE_SAVE_FAILED"
	CodePatientClinicsTableMissing     = "PATIENT_CLINICS_TABLE_MISSING"
	CodePatientClinicsSaveFailed       = "PATIENT_CLINICS_SAVE_FAILED"
	CodeInviteFailed                   = "INVITE_FAILED"
	CodeInvalidUserID                  = "INVALID_USER_ID"
	CodeSelfDeactivationBlocked        = "SELF_DEACTIVATION_BLOCKED"
	CodeProfileLookupFailed            = "PROFILE_LOOKUP_FAILED"
	CodeUserNotFound                   = "USER_NOT_FOUND"
	CodeRoleLookupFailed               = "ROLE_LOOKUP_FAILED"
	CodeRoleNotFound                   = "ROLE_NOT_FOUND"
	CodeAssignmentLookupFailed         = "ASSIGNMENT_LOOKUP_FAILED"
	CodeTherapistHasPrimaryAssignments = "THERAPIST_HAS_PRIMARY_ASSIGNMENTS"
	CodeProfileUpdateFailed            = "PROFILE_UPDATE_FAILED"
	CodeUserListFailed                 = "USER_LIST_FAILED"
)

type CreateUserRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,password"`
	Role      types.Role `json:"role" validate:"required,oneof=admin therapist patient"`
	FullName  string     `json:"fullName" validate:"required,min=3"`
	Phone     string     `json:"phone" validate:"required,min=8"`
	ClinicID  string     `json:"clinicId" validate:"omitempty,uuid"`
	ClinicIDs []string   `json:"clinicIds" validate:"omitempty,dive,uuid"`
}

// Clinics returns the deduplicated clinic set the user joins. Patients may join several
// clinics, staff belong to exactly the one in clinicId.
func (r *CreateUserRequest) Clinics() []string {
	candidates := []string{r.ClinicID}
	if r.Role == types.RolePatient {
		candidates = append(slices.Clone(r.ClinicIDs), r.ClinicID)
	}

	seen := make(map[string]bool, len(candidates))
	clinics := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		clinics = append(clinics, id)
	}

	return clinics
}

type CreateUserResponse struct {
	Success   bool     `json:"success"`
	UserID    string   `json:"userId"`
	ClinicIDs []string `json:"clinicIds"`
}

type InviteUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Role     types.Role `json:"role" validate:"required,oneof=admin therapist patient"`
	FullName string     `json:"fullName" validate:"required,min=3"`
	Phone    string     `json:"phone" validate:"required,min=8"`
	ClinicID string     `json:"clinicId" validate:"required,uuid"`
}

type InviteUserResponse struct {
	Success      bool   `json:"success"`
	UserID       string `json:"userId"`
	RecoveryLink string `json:"recoveryLink"`
}

type SetStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type SetStatusResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Active  bool   `json:"active"`
}

// UserView is a row of the user administration listing.
type UserView struct {
	types.ProfileWithRole

	Email       string                     `json:"email"`
	Assignments []*types.PatientAssignment `json:"assignments"`
}
