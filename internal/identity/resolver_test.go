// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_interfaces.go -source=./interfaces.go

const userID = "0191b0d4-6a5e-7c3a-9d1e-2f3a4b5c6d7e"

func activeProfile() *types.Profile {
	return &types.Profile{ID: userID, ClinicID: "clinic-1", FullName: "Ana Ruiz", Phone: "5512345678", Active: true}
}

func TestResolver_Resolve(t *testing.T) {
	lookupErr := errors.New("permission denied for table user_roles")

	tests := []struct {
		name        string
		withBackup  bool
		setupMocks  func(primary, fallback *MockReaderInterface)
		expected    *types.CallerContext
		expectedErr error
	}{
		{
			name:       "primary resolves active caller",
			withBackup: true,
			setupMocks: func(primary, _ *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.RoleTherapist, nil)
				primary.EXPECT().GetProfile(gomock.Any(), userID).Return(activeProfile(), nil)
			},
			expected: &types.CallerContext{
				UserID: userID, Role: types.RoleTherapist, ClinicID: "clinic-1", FullName: "Ana Ruiz", Phone: "5512345678", Active: true,
			},
		},
		{
			name:       "inactive profile fails closed without fallback",
			withBackup: true,
			setupMocks: func(primary, _ *MockReaderInterface) {
				p := activeProfile()
				p.Active = false
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.RolePatient, nil)
				primary.EXPECT().GetProfile(gomock.Any(), userID).Return(p, nil)
			},
		},
		{
			name:       "missing role on both readers fails closed",
			withBackup: true,
			setupMocks: func(primary, fallback *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), storage.ErrNotFound)
				fallback.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), storage.ErrNotFound)
			},
		},
		{
			name:       "missing profile on fallback fails closed",
			withBackup: true,
			setupMocks: func(primary, fallback *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.RoleAdmin, nil)
				primary.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				fallback.EXPECT().GetRole(gomock.Any(), userID).Return(types.RoleAdmin, nil)
				fallback.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:       "primary error recovered by fallback",
			withBackup: true,
			setupMocks: func(primary, fallback *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), lookupErr)
				fallback.EXPECT().GetRole(gomock.Any(), userID).Return(types.RoleAdmin, nil)
				fallback.EXPECT().GetProfile(gomock.Any(), userID).Return(activeProfile(), nil)
			},
			expected: &types.CallerContext{
				UserID: userID, Role: types.RoleAdmin, ClinicID: "clinic-1", FullName: "Ana Ruiz", Phone: "5512345678", Active: true,
			},
		},
		{
			name:       "fallback error is surfaced",
			withBackup: true,
			setupMocks: func(primary, fallback *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), lookupErr)
				fallback.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), lookupErr)
			},
			expectedErr: lookupErr,
		},
		{
			name: "primary error without fallback is surfaced",
			setupMocks: func(primary, _ *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), lookupErr)
			},
			expectedErr: lookupErr,
		},
		{
			name: "missing role without fallback fails closed",
			setupMocks: func(primary, _ *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role(""), storage.ErrNotFound)
			},
		},
		{
			name:       "unknown role fails closed",
			withBackup: true,
			setupMocks: func(primary, _ *MockReaderInterface) {
				primary.EXPECT().GetRole(gomock.Any(), userID).Return(types.Role("owner"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			primary := NewMockReaderInterface(ctrl)
			fallback := NewMockReaderInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "identity.Resolver.Resolve").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

			tt.setupMocks(primary, fallback)

			var backup ReaderInterface
			if tt.withBackup {
				backup = fallback
			}

			resolver := NewResolver(primary, backup, mockTracer, mockMonitor, mockLogger)

			caller, err := resolver.Resolve(ctx, userID)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				if caller != nil {
					t.Errorf("expected no caller on error, got %+v", caller)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expected == nil {
				if caller != nil {
					t.Fatalf("expected no caller, got %+v", caller)
				}
				return
			}

			if caller == nil || *caller != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, caller)
			}
		})
	}
}
