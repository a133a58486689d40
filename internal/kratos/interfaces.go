// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, params IdentityParams) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	GetEmail(ctx context.Context, id string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
	SessionFromCookie(ctx context.Context, cookie string) (string, error)
	SessionFromToken(ctx context.Context, token string) (string, error)
	IsAlive(ctx context.Context) error
}

var _ ClientInterface = (*Client)(nil)
