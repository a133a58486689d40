// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

const (
	CodeCreateFailed       = "INVITATION_CODE_CREATE_FAILED"
	CodeListFailed         = "INVITATION_CODE_LIST_FAILED"
	CodeCheckFailed        = "INVITATION_CODE_CHECK_FAILED"
	CodeInvalid            = "INVITATION_CODE_INVALID"
	CodeAuthCreateFailed   = "AUTH_CREATE_FAILED"
	CodeRegistrationFailed = "REGISTRATION_FAILED"

	defaultMaxUses = 50
	codeAttempts   = 3
)

type CreateCodeRequest struct {
	ClinicID  string  `json:"clinicId" validate:"required,uuid"`
	MaxUses   *int    `json:"maxUses" validate:"omitempty,min=1,max=500"`
	ExpiresAt *string `json:"expiresAt" validate:"omitempty,rfc3339"`
}

type CreateCodeResponse struct {
	Success        bool   `json:"success"`
	InvitationCode string `json:"invitationCode"`
	ID             string `json:"id"`
}

type RegisterPatientRequest struct {
	FullName       string `json:"fullName" validate:"required,min=3"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=8"`
	Password       string `json:"password" validate:"required,min=8"`
	InvitationCode string `json:"invitationCode" validate:"required,len=8"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
