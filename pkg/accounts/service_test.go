// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/fisioapp/clinic-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const userID = "0191b0d4-6a5e-7c3a-9d1e-0000000000c1"

func TestService_Me(t *testing.T) {
	caller := &types.CallerContext{
		UserID:   userID,
		Role:     types.RoleTherapist,
		ClinicID: "0191b0d4-6a5e-7c3a-9d1e-000000000001",
		FullName: "Luis Perez",
		Active:   true,
	}

	tests := []struct {
		name          string
		setupMocks    func(*MockKratosClientInterface, *MockLoggerInterface)
		expectedEmail string
	}{
		{
			name: "with email",
			setupMocks: func(k *MockKratosClientInterface, _ *MockLoggerInterface) {
				k.EXPECT().GetEmail(gomock.Any(), userID).Return("luis@example.com", nil)
			},
			expectedEmail: "luis@example.com",
		},
		{
			name: "identity provider unavailable",
			setupMocks: func(k *MockKratosClientInterface, l *MockLoggerInterface) {
				k.EXPECT().GetEmail(gomock.Any(), userID).Return("", errors.New("kratos down"))
				l.EXPECT().Warnf(gomock.Any(), userID, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockKratos := NewMockKratosClientInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "accounts.Service.Me").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockKratos, mockLogger)

			me, err := NewService(mockKratos, mockTracer, NewMockMonitorInterface(ctrl), mockLogger).Me(context.Background(), caller)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if me.HomePath != "/therapist" || me.Role != types.RoleTherapist || me.FullName != "Luis Perez" {
				t.Errorf("unexpected account %+v", me)
			}
			if me.Email != tt.expectedEmail {
				t.Errorf("expected email %q, got %q", tt.expectedEmail, me.Email)
			}
		})
	}
}
