// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/fisioapp/clinic-service/internal/openfga"
	"github.com/fisioapp/clinic-service/internal/types"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	// AssignClinicRole records the user as admin, therapist or patient of the clinic.
	AssignClinicRole(ctx context.Context, clinicID, userID string, role types.Role) error
	// SetCareTeam replaces every relation held on the patient with the given care team.
	SetCareTeam(ctx context.Context, patientID, clinicID, primaryTherapistID string, secondaryTherapistIDs []string) error
	CanViewPatient(ctx context.Context, userID, patientID string) (bool, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
