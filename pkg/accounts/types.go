// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"github.com/fisioapp/clinic-service/internal/types"
)

// Me describes the authenticated caller and the portal it lands on.
type Me struct {
	UserID   string     `json:"userId"`
	Role     types.Role `json:"role"`
	HomePath string     `json:"homePath"`
	ClinicID string     `json:"clinicId"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
}
