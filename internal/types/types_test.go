// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestInvitationCodeCheck(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		name           string
		code           *InvitationCode
		expectedValid  bool
		expectedReason string
		expectedStatus InvitationStatus
	}{
		{
			name:           "active with uses left and no expiry",
			code:           &InvitationCode{ClinicID: "c1", Active: true, MaxUses: 50, UsedCount: 3},
			expectedValid:  true,
			expectedStatus: InvitationActive,
		},
		{
			name:           "future expiry",
			code:           &InvitationCode{ClinicID: "c1", Active: true, MaxUses: 2, UsedCount: 1, ExpiresAt: &future},
			expectedValid:  true,
			expectedStatus: InvitationActive,
		},
		{
			name:           "used count equals max uses",
			code:           &InvitationCode{ClinicID: "c1", Active: true, MaxUses: 5, UsedCount: 5},
			expectedReason: ReasonInvitationExhausted,
			expectedStatus: InvitationExhausted,
		},
		{
			name:           "expired",
			code:           &InvitationCode{ClinicID: "c1", Active: true, MaxUses: 5, ExpiresAt: &past},
			expectedReason: ReasonInvitationExpired,
			expectedStatus: InvitationExpired,
		},
		{
			name:           "expiring exactly now",
			code:           &InvitationCode{ClinicID: "c1", Active: true, MaxUses: 5, ExpiresAt: &now},
			expectedReason: ReasonInvitationExpired,
			expectedStatus: InvitationExpired,
		},
		{
			name:           "inactive wins over exhaustion",
			code:           &InvitationCode{ClinicID: "c1", Active: false, MaxUses: 1, UsedCount: 1},
			expectedReason: ReasonInvitationInactive,
			expectedStatus: InvitationInactive,
		},
		{
			name:           "missing code",
			code:           nil,
			expectedReason: ReasonInvitationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := tt.code.Check(now)

			if check.Valid != tt.expectedValid {
				t.Errorf("expected valid %v, got %v", tt.expectedValid, check.Valid)
			}

			if check.Reason != tt.expectedReason {
				t.Errorf("expected reason %q, got %q", tt.expectedReason, check.Reason)
			}

			if tt.code != nil && tt.code.Status(now) != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, tt.code.Status(now))
			}

			if tt.expectedValid && check.ClinicID != tt.code.ClinicID {
				t.Errorf("expected clinic %s, got %s", tt.code.ClinicID, check.ClinicID)
			}
		})
	}
}

func TestHomePath(t *testing.T) {
	tests := map[Role]string{
		RoleAdmin:     "/admin",
		RoleTherapist: "/therapist",
		RolePatient:   "/patient",
		Role("other"): "/login",
	}

	for role, expected := range tests {
		if got := HomePath(role); got != expected {
			t.Errorf("role %s: expected %s, got %s", role, expected, got)
		}
	}
}

func TestCallerContext(t *testing.T) {
	var nilCaller *CallerContext

	if nilCaller.IsAdmin() || nilCaller.IsPrivileged() || nilCaller.InClinic("c1") {
		t.Error("expected nil caller to hold no privileges")
	}

	scopedAdmin := &CallerContext{Role: RoleAdmin, ClinicID: "c1"}
	if !scopedAdmin.InClinic("c1") || scopedAdmin.InClinic("c2") {
		t.Error("expected scoped admin to be limited to its clinic")
	}

	globalAdmin := &CallerContext{Role: RoleAdmin}
	if !globalAdmin.InClinic("c2") {
		t.Error("expected global admin to reach any clinic")
	}

	therapist := &CallerContext{Role: RoleTherapist, ClinicID: "c1"}
	if !therapist.IsPrivileged() || therapist.IsAdmin() {
		t.Error("expected therapist to be privileged but not admin")
	}

	patient := &CallerContext{Role: RolePatient}
	if patient.IsPrivileged() || !patient.IsPatient() {
		t.Error("expected patient not to be privileged")
	}

	if scopedAdmin.AdminClinicScope() != "c1" || globalAdmin.AdminClinicScope() != "" {
		t.Error("unexpected admin clinic scope")
	}

	if therapist.AdminClinicScope() != "" || nilCaller.AdminClinicScope() != "" {
		t.Error("expected non admins to have no admin scope")
	}
}

func TestClinicUpdateEmpty(t *testing.T) {
	if !(ClinicUpdate{}).Empty() {
		t.Error("expected zero update to be empty")
	}

	name := "Centro"
	if (ClinicUpdate{Name: &name}).Empty() {
		t.Error("expected update with name not to be empty")
	}
}
