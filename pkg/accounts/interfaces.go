// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/types"
)

type KratosClientInterface interface {
	GetEmail(ctx context.Context, id string) (string, error)
}

type ServiceInterface interface {
	Me(ctx context.Context, caller *types.CallerContext) (*Me, error)
}
