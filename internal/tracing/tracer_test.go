// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected no-op span to carry an invalid span context")
	}
}

func TestNewConfig(t *testing.T) {
	c := NewConfig(true, "otel:4317", "", nil)

	if !c.Enabled {
		t.Error("expected config to be enabled")
	}

	if c.OtelGRPCEndpoint != "otel:4317" {
		t.Errorf("unexpected grpc endpoint %s", c.OtelGRPCEndpoint)
	}

	if c.ServiceName != "clinic-service" {
		t.Errorf("unexpected service name %s", c.ServiceName)
	}

	if NewNoopConfig().Enabled {
		t.Error("expected noop config to be disabled")
	}

	if (&Config{}).service() != "clinic-service" {
		t.Error("expected the default service name when none is set")
	}
}
