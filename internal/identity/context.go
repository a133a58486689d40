// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/fisioapp/clinic-service/internal/types"
)

type callerContextKey struct{}

// WithCaller returns a copy of ctx carrying the resolved caller.
func WithCaller(ctx context.Context, caller *types.CallerContext) context.Context {
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// CallerFrom returns the caller resolved for the request, nil when there is none.
func CallerFrom(ctx context.Context) *types.CallerContext {
	caller, _ := ctx.Value(callerContextKey{}).(*types.CallerContext)
	return caller
}
