// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/types"
)

type KratosClientInterface interface {
	IsAlive(ctx context.Context) error
}

type StorageInterface interface {
	TableExists(ctx context.Context, name string) (bool, error)
}

type ServiceInterface interface {
	RuntimeCheck(ctx context.Context, caller *types.CallerContext) (*RuntimeCheck, error)
}
