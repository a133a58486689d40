// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/fisioapp/clinic-service/internal/types"
)

// ResolverInterface is the subset of the caller resolver the token hook needs.
type ResolverInterface interface {
	Resolve(ctx context.Context, userID string) (*types.CallerContext, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
