// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/version"
)

const serviceName = "clinic-service"

// Config selects the span exporter: OTLP over gRPC wins over OTLP over HTTP, stdout is
// used when neither endpoint is set.
type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string

	// ServiceName and ServiceVersion are attached to every span as resource attributes
	ServiceName    string
	ServiceVersion string

	Logger logging.LoggerInterface

	Enabled bool
}

func (c *Config) service() string {
	if c.ServiceName == "" {
		return serviceName
	}
	return c.ServiceName
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.ServiceName = serviceName
	c.ServiceVersion = version.Version
	c.Logger = logger
	c.Enabled = enabled

	return c
}

func NewNoopConfig() *Config {
	return &Config{ServiceName: serviceName}
}
