// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/types"
)

// RequireCaller returns the resolved caller or an UNAUTHENTICATED error. A session whose
// role or profile could not be resolved counts as unauthenticated.
func RequireCaller(ctx context.Context) (*types.CallerContext, error) {
	caller := CallerFrom(ctx)
	if caller == nil {
		return nil, httptypes.Unauthenticated("authentication required")
	}
	return caller, nil
}

func RequireAdmin(caller *types.CallerContext, logger logging.LoggerInterface) error {
	if caller.IsAdmin() {
		return nil
	}

	logger.Security().AuthzFailureNotAdmin(userIDOf(caller))
	return httptypes.NotAuthorized()
}

// RequirePrivileged admits admins and therapists.
func RequirePrivileged(caller *types.CallerContext, logger logging.LoggerInterface) error {
	if caller.IsPrivileged() {
		return nil
	}

	logger.Security().AuthzFailure(userIDOf(caller), "privileged")
	return httptypes.NotAuthorized()
}

func RequireTherapist(caller *types.CallerContext, logger logging.LoggerInterface) error {
	if caller.IsTherapist() {
		return nil
	}

	logger.Security().AuthzFailure(userIDOf(caller), "therapist")
	return httptypes.NotAuthorized()
}

func RequirePatient(caller *types.CallerContext, logger logging.LoggerInterface) error {
	if caller.IsPatient() {
		return nil
	}

	logger.Security().AuthzFailure(userIDOf(caller), "patient")
	return httptypes.NotAuthorized()
}

// RequireClinic rejects callers bound to a clinic other than clinicID. Callers without a
// clinic affiliation pass.
func RequireClinic(caller *types.CallerContext, clinicID string, logger logging.LoggerInterface) error {
	if caller.InClinic(clinicID) {
		return nil
	}

	logger.Security().AuthzFailureClinicMismatch(userIDOf(caller), clinicID)
	return httptypes.ClinicForbidden()
}

// RequireAdminClinic rejects clinic scoped admins acting on another clinic.
func RequireAdminClinic(caller *types.CallerContext, clinicID string, logger logging.LoggerInterface) error {
	scope := caller.AdminClinicScope()
	if scope == "" || scope == clinicID {
		return nil
	}

	logger.Security().AuthzFailureClinicMismatch(userIDOf(caller), clinicID)
	return httptypes.ClinicForbidden()
}

func userIDOf(caller *types.CallerContext) string {
	if caller == nil {
		return ""
	}
	return caller.UserID
}
