// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sms

import (
	"context"
	"time"

	"github.com/fisioapp/clinic-service/internal/logging"
)

type NoopNotifier struct {
	logger logging.LoggerInterface
}

func (n *NoopNotifier) SendAppointmentConfirmation(_ context.Context, to string, when time.Time, _ string) error {
	n.logger.Debugf("sms disabled, skipping confirmation to %s for %s", to, when.Format(time.RFC3339))
	return nil
}

func NewNoopNotifier(logger logging.LoggerInterface) *NoopNotifier {
	n := new(NoopNotifier)
	n.logger = logger

	return n
}
