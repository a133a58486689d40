// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"time"
)

const (
	componentIdentityProvider = "identity_provider"
	componentPatientClinics   = "patient_clinics"

	patientClinicsTable = "patient_clinics"
)

type Health struct {
	OK bool      `json:"ok"`
	Ts time.Time `json:"ts"`
}

type BuildInfo struct {
	Version string `json:"version"`
}

// RuntimeCheck lists the dependencies user creation relies on that are not reachable.
type RuntimeCheck struct {
	CanCreateUsers bool     `json:"canCreateUsers"`
	Missing        []string `json:"missing"`
}
