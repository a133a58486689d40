// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sms

import (
	"context"
	"time"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type NotifierInterface interface {
	SendAppointmentConfirmation(ctx context.Context, to string, when time.Time, timezone string) error
}

// MessageAPIInterface is the slice of the Twilio REST API the notifier uses.
type MessageAPIInterface interface {
	CreateMessage(*twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}
