// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sms

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const confirmationLayout = "Monday 02 Jan 2006 15:04"

var _ NotifierInterface = (*Notifier)(nil)

type Notifier struct {
	api  MessageAPIInterface
	from string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *Notifier) SendAppointmentConfirmation(ctx context.Context, to string, when time.Time, timezone string) error {
	_, span := n.tracer.Start(ctx, "sms.Notifier.SendAppointmentConfirmation")
	defer span.End()

	if to == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(ConfirmationText(when, timezone))

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send appointment confirmation: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		n.logger.Debugf("appointment confirmation sent, sid %s", *resp.Sid)
	}

	return nil
}

// ConfirmationText renders the confirmation in the clinic's local time, UTC when the zone is unknown.
func ConfirmationText(when time.Time, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}

	local := when.In(loc)

	return fmt.Sprintf(
		"Your physiotherapy appointment is confirmed for %s (%s)",
		local.Format(confirmationLayout),
		loc.String(),
	)
}

func NewNotifier(api MessageAPIInterface, from string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	n := new(Notifier)

	n.api = api
	n.from = from

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}

// NewTwilioNotifier builds a notifier backed by the Twilio REST client.
func NewTwilioNotifier(accountSID, authToken, from string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	client := twilio.NewRestClientWithParams(
		twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		},
	)

	return NewNotifier(client.Api, from, tracer, monitor, logger)
}
