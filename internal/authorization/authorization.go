// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/openfga"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignClinicRole(ctx context.Context, clinicID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignClinicRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), ClinicRelation(role), ClinicTuple(clinicID))
}

func (a *Authorizer) SetCareTeam(ctx context.Context, patientID, clinicID, primaryTherapistID string, secondaryTherapistIDs []string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.SetCareTeam")
	defer span.End()

	if err := a.clearObject(ctx, PatientTuple(patientID)); err != nil {
		return err
	}

	patient := PatientTuple(patientID)
	tuples := []openfga.Tuple{
		*openfga.NewTuple(ClinicTuple(clinicID), CLINIC_RELATION, patient),
		*openfga.NewTuple(UserTuple(primaryTherapistID), PRIMARY_THERAPIST_RELATION, patient),
	}

	for _, id := range secondaryTherapistIDs {
		tuples = append(tuples, *openfga.NewTuple(UserTuple(id), THERAPIST_RELATION, patient))
	}

	return a.client.WriteTuples(ctx, tuples...)
}

func (a *Authorizer) CanViewPatient(ctx context.Context, userID, patientID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanViewPatient")
	defer span.End()

	return a.Check(ctx, UserTuple(userID), CAN_VIEW_PERMISSION, PatientTuple(patientID))
}

// clearObject deletes every tuple whose object is object, one page at a time.
func (a *Authorizer) clearObject(ctx context.Context, object string) error {
	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", object, cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
