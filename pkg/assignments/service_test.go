// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assignments

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/fisioapp/clinic-service/internal/http/types"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package assignments -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assignments -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assignments -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assignments -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	clinicID  = "0191b0d4-6a5e-7c3a-9d1e-000000000001"
	adminID   = "0191b0d4-6a5e-7c3a-9d1e-0000000000a1"
	patientID = "0191b0d4-6a5e-7c3a-9d1e-0000000000b1"
	t1        = "0191b0d4-6a5e-7c3a-9d1e-0000000000c1"
	t2        = "0191b0d4-6a5e-7c3a-9d1e-0000000000c2"
)

var admin = &types.CallerContext{UserID: adminID, Role: types.RoleAdmin, ClinicID: clinicID, Active: true}

func therapist(id string) *types.ProfileWithRole {
	return &types.ProfileWithRole{
		Profile: types.Profile{ID: id, ClinicID: clinicID, Active: true},
		Role:    types.RoleTherapist,
	}
}

func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *httptypes.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError %s, got %v", code, err)
	}
	if apiErr.Status != status || apiErr.Code != code {
		t.Errorf("expected %d %s, got %d %s", status, code, apiErr.Status, apiErr.Code)
	}
}

// expectValidPatient sets up a patient profile that passes every check.
func expectValidPatient(mockStorage *MockStorageInterface) {
	mockStorage.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, ClinicID: clinicID, Active: true}, nil)
	mockStorage.EXPECT().GetRole(gomock.Any(), patientID).Return(types.RolePatient, nil)
}

// assertCareTeam checks the upserted rows hold exactly one primary equal to primary and
// every other requested therapist as secondary.
func assertCareTeam(t *testing.T, rows []*types.PatientAssignment, primary string, secondaries ...string) {
	t.Helper()

	if len(rows) != len(secondaries)+1 {
		t.Fatalf("expected %d rows, got %d", len(secondaries)+1, len(rows))
	}

	primaries := 0
	for _, row := range rows {
		if !row.Active || row.PatientID != patientID || row.ClinicID != clinicID {
			t.Errorf("unexpected row %+v", row)
		}
		if row.IsPrimary {
			primaries++
			if row.TherapistID != primary {
				t.Errorf("expected primary %s, got %s", primary, row.TherapistID)
			}
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly one primary row, got %d", primaries)
	}

	for _, s := range secondaries {
		found := false
		for _, row := range rows {
			if row.TherapistID == s && !row.IsPrimary {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s as secondary", s)
		}
	}
}

func TestService_Reconcile(t *testing.T) {
	tests := []struct {
		name           string
		caller         *types.CallerContext
		req            *ReconcileRequest
		setupMocks     func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "therapist cannot reconcile",
			caller: &types.CallerContext{UserID: t1, Role: types.RoleTherapist, ClinicID: clinicID},
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(_ *MockStorageInterface, _ *MockAuthorizerInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureNotAdmin(t1)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeUnauthorized,
		},
		{
			name:   "scoped admin on another clinic",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: "other", PrimaryTherapistID: t1},
			setupMocks: func(_ *MockStorageInterface, _ *MockAuthorizerInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailureClinicMismatch(adminID, "other")
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeClinicForbidden,
		},
		{
			name:   "patient lookup failure",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodePatientValidationFailed,
		},
		{
			name:   "patient missing",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodePatientClinicMismatch,
		},
		{
			name:   "patient in another clinic",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, ClinicID: "other"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodePatientClinicMismatch,
		},
		{
			name:   "user is not a patient",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				st.EXPECT().GetProfile(gomock.Any(), patientID).Return(&types.Profile{ID: patientID, ClinicID: clinicID}, nil)
				st.EXPECT().GetRole(gomock.Any(), patientID).Return(types.RoleTherapist, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidPatientRole,
		},
		{
			name:   "therapist lookup failure",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeTherapistValidationFailed,
		},
		{
			name:   "therapist from another clinic",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1, SecondaryTherapistIDs: []string{t2}},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1, t2).Return([]*types.ProfileWithRole{therapist(t1)}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeTherapistClinicMismatch,
		},
		{
			name:   "inactive therapist",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				inactive := therapist(t1)
				inactive.Active = false
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1).Return([]*types.ProfileWithRole{inactive}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeInvalidTherapistSelection,
		},
		{
			name:   "reset failure stops before saving",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1).Return([]*types.ProfileWithRole{therapist(t1)}, nil)
				st.EXPECT().DeactivateAssignments(gomock.Any(), patientID, clinicID).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeAssignmentResetFailed,
		},
		{
			name:   "save failure",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1},
			setupMocks: func(st *MockStorageInterface, _ *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1).Return([]*types.ProfileWithRole{therapist(t1)}, nil)
				st.EXPECT().DeactivateAssignments(gomock.Any(), patientID, clinicID).Return(nil)
				st.EXPECT().UpsertAssignments(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   CodeAssignmentSaveFailed,
		},
		{
			name:   "primary with one secondary",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1, SecondaryTherapistIDs: []string{t2}},
			setupMocks: func(st *MockStorageInterface, a *MockAuthorizerInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t1, t2).Return([]*types.ProfileWithRole{therapist(t1), therapist(t2)}, nil)
				gomock.InOrder(
					st.EXPECT().DeactivateAssignments(gomock.Any(), patientID, clinicID).Return(nil),
					st.EXPECT().UpsertAssignments(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, rows []*types.PatientAssignment) error {
							assertCareTeam(t, rows, t1, t2)
							return nil
						},
					),
				)
				a.EXPECT().SetCareTeam(gomock.Any(), patientID, clinicID, t1, []string{t2}).Return(nil)
				l.EXPECT().Security().Return(s)
				s.EXPECT().AdminAction(adminID, "assignments.reconcile", patientID)
			},
		},
		{
			name:   "primary moved to former secondary",
			caller: admin,
			req:    &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t2, SecondaryTherapistIDs: []string{}},
			setupMocks: func(st *MockStorageInterface, a *MockAuthorizerInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				expectValidPatient(st)
				st.EXPECT().ListProfiles(gomock.Any(), clinicID, t2).Return([]*types.ProfileWithRole{therapist(t2)}, nil)
				gomock.InOrder(
					st.EXPECT().DeactivateAssignments(gomock.Any(), patientID, clinicID).Return(nil),
					st.EXPECT().UpsertAssignments(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, rows []*types.PatientAssignment) error {
							assertCareTeam(t, rows, t2)
							for _, row := range rows {
								if row.TherapistID == t1 {
									t.Errorf("former primary %s must not be upserted", t1)
								}
							}
							return nil
						},
					),
				)
				a.EXPECT().SetCareTeam(gomock.Any(), patientID, clinicID, t2, []string{}).Return(errors.New("fga down"))
				l.EXPECT().Errorf(gomock.Any(), patientID, gomock.Any())
				l.EXPECT().Security().Return(s)
				s.EXPECT().AdminAction(adminID, "assignments.reconcile", patientID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "assignments.Service.Reconcile").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStorage, mockAuthz, mockLogger, mockSecurity)

			svc := NewService(mockStorage, mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)
			if err := tt.req.Check(); err != nil {
				t.Fatalf("unexpected request error: %v", err)
			}

			res, err := svc.Reconcile(context.Background(), tt.caller, patientID, tt.req)

			if tt.expectedCode != "" {
				assertAPIError(t, err, tt.expectedStatus, tt.expectedCode)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.Success || res.PrimaryTherapistID != tt.req.PrimaryTherapistID || res.SecondaryTherapistIDs == nil {
				t.Errorf("unexpected response %+v", res)
			}
		})
	}
}

func TestReconcileRequest_Check(t *testing.T) {
	req := &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1, SecondaryTherapistIDs: []string{t2, t1}}
	if err := req.Check(); err == nil {
		t.Error("expected primary listed as secondary to be rejected")
	}

	req = &ReconcileRequest{ClinicID: clinicID, PrimaryTherapistID: t1}
	if err := req.Check(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SecondaryTherapistIDs == nil || len(req.TherapistIDs()) != 1 {
		t.Errorf("expected secondaries to default to empty, got %v", req.SecondaryTherapistIDs)
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "assignments.Service.List").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListActiveAssignments(gomock.Any(), storage.AssignmentFilter{PatientID: patientID, ClinicID: clinicID}).
		Return([]*types.PatientAssignment{{PatientID: patientID, TherapistID: t1, IsPrimary: true, Active: true}}, nil)

	svc := NewService(mockStorage, NewMockAuthorizerInterface(ctrl), mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	rows, err := svc.List(context.Background(), admin, patientID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || !rows[0].IsPrimary {
		t.Errorf("unexpected rows %v", rows)
	}
}
