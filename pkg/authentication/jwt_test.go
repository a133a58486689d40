// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func TestAccessPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   accessPolicy
		claims   jwtClaims
		expected error
	}{
		{
			name:     "missing subject",
			policy:   accessPolicy{scope: "clinic"},
			claims:   jwtClaims{Scope: "clinic"},
			expected: errNoSubject,
		},
		{
			name:     "no policy refuses every token",
			claims:   jwtClaims{Subject: "therapist-1", Scope: "clinic"},
			expected: errNoPolicy,
		},
		{
			name:   "allow-listed subject",
			policy: accessPolicy{subjects: []string{"cli-client"}},
			claims: jwtClaims{Subject: "cli-client"},
		},
		{
			name:   "scope in space separated claim",
			policy: accessPolicy{scope: "clinic"},
			claims: jwtClaims{Subject: "patient-1", Scope: "openid clinic offline"},
		},
		{
			name:   "scope in scp list",
			policy: accessPolicy{scope: "clinic"},
			claims: jwtClaims{Subject: "patient-1", Scopes: []string{"openid", "clinic"}},
		},
		{
			name:     "scope prefix does not match",
			policy:   accessPolicy{scope: "clinic"},
			claims:   jwtClaims{Subject: "patient-1", Scope: "clinical"},
			expected: errPolicyRefused,
		},
		{
			name:     "subject not allowed and scope missing",
			policy:   accessPolicy{subjects: []string{"cli-client"}, scope: "clinic"},
			claims:   jwtClaims{Subject: "someone-else", Scope: "openid"},
			expected: errPolicyRefused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.check(tt.claims); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestJWTVerifierRejectsMalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.JWTVerifier.VerifyToken").Return(context.Background(), trace.SpanFromContext(context.Background()))

	keySet := &oidc.StaticKeySet{}
	verifier := newJWTVerifier(
		oidc.NewVerifier("https://auth.fisioapp.test", keySet, verifierConfig()),
		nil,
		"clinic",
		mockTracer,
		mockMonitor,
		mockLogger,
	)

	if _, err := verifier.VerifyToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestNewJWTAuthenticatorRequiresIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewJWTAuthenticator(
		context.Background(),
		"",
		"",
		nil,
		"clinic",
		NewMockTracingInterface(ctrl),
		NewMockMonitorInterface(ctrl),
		NewMockLoggerInterface(ctrl),
	)
	if err == nil {
		t.Fatal("expected error without issuer")
	}
}

func TestNewJWTAuthenticatorWithJWKS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).Times(1)

	verifier, err := NewJWTAuthenticator(
		context.Background(),
		"https://auth.fisioapp.test",
		"https://auth.fisioapp.test/.well-known/jwks.json",
		nil,
		"",
		NewMockTracingInterface(ctrl),
		NewMockMonitorInterface(ctrl),
		mockLogger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := verifier.(*JWTVerifier); !ok {
		t.Errorf("expected a *JWTVerifier, got %T", verifier)
	}
}
