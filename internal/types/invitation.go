// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type InvitationStatus string

const (
	InvitationActive    InvitationStatus = "active"
	InvitationInactive  InvitationStatus = "inactive"
	InvitationExpired   InvitationStatus = "expired"
	InvitationExhausted InvitationStatus = "exhausted"
)

const (
	ReasonInvitationNotFound  = "invitation code not found"
	ReasonInvitationInactive  = "invitation code is inactive"
	ReasonInvitationExpired   = "invitation code has expired"
	ReasonInvitationExhausted = "invitation code has no remaining uses"
)

type InvitationCode struct {
	ID        string     `db:"id" json:"id"`
	Code      string     `db:"code" json:"code"`
	ClinicID  string     `db:"clinic_id" json:"clinicId"`
	MaxUses   int        `db:"max_uses" json:"maxUses"`
	UsedCount int        `db:"used_count" json:"usedCount"`
	ExpiresAt *time.Time `db:"expires_at" json:"expiresAt"`
	Active    bool       `db:"active" json:"active"`
	CreatedBy string     `db:"created_by" json:"createdBy"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// Status derives the logical state of the code at now. An explicitly cleared flag wins over
// expiry, which wins over exhaustion.
func (c *InvitationCode) Status(now time.Time) InvitationStatus {
	switch {
	case !c.Active:
		return InvitationInactive
	case c.ExpiresAt != nil && !c.ExpiresAt.After(now):
		return InvitationExpired
	case c.UsedCount >= c.MaxUses:
		return InvitationExhausted
	}
	return InvitationActive
}

// InvitationCheck is the outcome of validating a code before redemption.
type InvitationCheck struct {
	Valid    bool
	ClinicID string
	Reason   string
}

// Check evaluates the code at now, a nil code is reported as not found.
func (c *InvitationCode) Check(now time.Time) InvitationCheck {
	if c == nil {
		return InvitationCheck{Reason: ReasonInvitationNotFound}
	}

	switch c.Status(now) {
	case InvitationInactive:
		return InvitationCheck{ClinicID: c.ClinicID, Reason: ReasonInvitationInactive}
	case InvitationExpired:
		return InvitationCheck{ClinicID: c.ClinicID, Reason: ReasonInvitationExpired}
	case InvitationExhausted:
		return InvitationCheck{ClinicID: c.ClinicID, Reason: ReasonInvitationExhausted}
	}

	return InvitationCheck{Valid: true, ClinicID: c.ClinicID}
}

// InvitationCodeView adds the derived status for listings.
type InvitationCodeView struct {
	InvitationCode
	Status InvitationStatus `json:"status"`
}
