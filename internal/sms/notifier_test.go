// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package sms -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sms -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sms -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sms -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestConfirmationText(t *testing.T) {
	when := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		timezone string
		expected string
	}{
		{
			name:     "clinic timezone",
			timezone: "America/Mexico_City",
			expected: "Your physiotherapy appointment is confirmed for Monday 02 Mar 2026 10:30 (America/Mexico_City)",
		},
		{
			name:     "unknown timezone falls back to UTC",
			timezone: "Mars/Olympus",
			expected: "Your physiotherapy appointment is confirmed for Monday 02 Mar 2026 16:30 (UTC)",
		},
		{
			name:     "empty timezone",
			expected: "Your physiotherapy appointment is confirmed for Monday 02 Mar 2026 16:30 (UTC)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConfirmationText(when, tc.timezone); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNotifier_SendAppointmentConfirmation(t *testing.T) {
	when := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	sid := "SM123"

	testCases := []struct {
		name        string
		to          string
		setupMocks  func(*MockMessageAPIInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "sends message",
			to:   "+5215512345678",
			setupMocks: func(api *MockMessageAPIInterface, logger *MockLoggerInterface) {
				api.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(
					func(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
						if *p.To != "+5215512345678" || *p.From != "+15550000000" {
							t.Errorf("unexpected recipients %s -> %s", *p.From, *p.To)
						}
						if !strings.HasPrefix(*p.Body, "Your physiotherapy appointment is confirmed for") {
							t.Errorf("unexpected body %q", *p.Body)
						}
						return &twilioApi.ApiV2010Message{Sid: &sid}, nil
					},
				)
				logger.EXPECT().Debugf(gomock.Any(), sid)
			},
		},
		{
			name:       "empty phone is skipped",
			setupMocks: func(*MockMessageAPIInterface, *MockLoggerInterface) {},
		},
		{
			name: "api error",
			to:   "+5215512345678",
			setupMocks: func(api *MockMessageAPIInterface, _ *MockLoggerInterface) {
				api.EXPECT().CreateMessage(gomock.Any()).Return(nil, errors.New("twilio down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAPI := NewMockMessageAPIInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "sms.Notifier.SendAppointmentConfirmation").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockAPI, mockLogger)

			n := NewNotifier(mockAPI, "+15550000000", mockTracer, mockMonitor, mockLogger)
			err := n.SendAppointmentConfirmation(context.Background(), tc.to, when, "America/Mexico_City")

			if tc.expectedErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
