// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/types"
)

// ReaderInterface reads the records a caller context is built from.
type ReaderInterface interface {
	GetRole(ctx context.Context, userID string) (types.Role, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, userID string) (*types.CallerContext, error)
}
