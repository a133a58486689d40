// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const jwtAccessResource = "jwt_api_access"

var (
	otelHTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	errNoSubject     = errors.New("token has no subject")
	errNoPolicy      = errors.New("unauthorized: no access policy configured")
	errPolicyRefused = errors.New("unauthorized: missing required scope or subject not allowed")
)

type jwtClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

// hasScope checks both the space separated scope claim and the scp list.
func (c jwtClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// accessPolicy admits a verified token whose subject is allow-listed or which carries the
// required scope. With neither configured every token is refused.
type accessPolicy struct {
	subjects []string
	scope    string
}

func (p accessPolicy) configured() bool {
	return len(p.subjects) > 0 || p.scope != ""
}

func (p accessPolicy) check(c jwtClaims) error {
	switch {
	case c.Subject == "":
		return errNoSubject
	case !p.configured():
		return errNoPolicy
	case slices.Contains(p.subjects, c.Subject):
		return nil
	case p.scope != "" && c.hasScope(p.scope):
		return nil
	}
	return errPolicyRefused
}

// JWTVerifier accepts bearer JWTs signed by the configured issuer. The subject is the
// identity id of the caller.
type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   accessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	claims := jwtClaims{}
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return "", err
	}

	if err := v.policy.check(claims); err != nil {
		if !errors.Is(err, errNoSubject) {
			v.logger.Security().AuthzFailure(claims.Subject, jwtAccessResource)
		}
		return "", err
	}

	return claims.Subject, nil
}

// NewJWTVerifier builds a verifier from a discovered provider, the audience is not checked.
func NewJWTVerifier(
	provider ProviderInterface,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return newJWTVerifier(provider.Verifier(verifierConfig()), allowedSubjects, requiredScope, tracer, monitor, logger)
}

func newJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.policy = accessPolicy{subjects: allowedSubjects, scope: requiredScope}

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}

func verifierConfig() *oidc.Config {
	return &oidc.Config{SkipClientIDCheck: true}
}

// NewJWTAuthenticator verifies tokens against jwksURL when set, otherwise the keys are found
// through OIDC discovery on issuer. Outbound calls are traced.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if !(accessPolicy{subjects: allowedSubjects, scope: requiredScope}).configured() {
		logger.Warn("JWT authentication has no allowed subjects nor required scope, every token will be refused")
	}

	ctx = oidc.ClientContext(ctx, otelHTTPClient)

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
		keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
		return newJWTVerifier(oidc.NewVerifier(issuer, keySet, verifierConfig()), allowedSubjects, requiredScope, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return NewJWTVerifier(provider, allowedSubjects, requiredScope, tracer, monitor, logger), nil
}
