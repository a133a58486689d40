// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/fisioapp/clinic-service/internal/types"
)

const (
	ADMIN_RELATION     = "admin"
	THERAPIST_RELATION = "therapist"
	PATIENT_RELATION   = "patient"
	MEMBER_RELATION    = "member"

	CLINIC_RELATION            = "clinic"
	PRIMARY_THERAPIST_RELATION = "primary_therapist"

	CAN_VIEW_PERMISSION = "can_view"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func ClinicTuple(clinicId string) string {
	return "clinic:" + clinicId
}

func PatientTuple(patientId string) string {
	return "patient:" + patientId
}

// ClinicRelation maps an application role to its relation on the clinic type.
func ClinicRelation(role types.Role) string {
	switch role {
	case types.RoleAdmin:
		return ADMIN_RELATION
	case types.RoleTherapist:
		return THERAPIST_RELATION
	}
	return PATIENT_RELATION
}
