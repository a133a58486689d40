// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

var (
	ErrIdentityExists = errors.New("email already registered")
	ErrNoSession      = errors.New("no active session")
	ErrUnavailable    = errors.New("identity provider unavailable")
)

// IdentityParams describes an identity to create. An empty Password creates an identity
// that can only sign in through a recovery link.
type IdentityParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

func (p IdentityParams) traits() map[string]interface{} {
	traits := map[string]interface{}{
		"email": p.Email,
	}
	if p.FullName != "" {
		traits["name"] = p.FullName
	}
	if p.Phone != "" {
		traits["phone"] = p.Phone
	}
	return traits
}

type Client struct {
	admin    *ory.APIClient
	public   *ory.APIClient
	schemaID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// CreateIdentity creates an identity with a verified email address, so it can sign in
// immediately. ErrIdentityExists is returned when the email is taken.
func (c *Client) CreateIdentity(ctx context.Context, params IdentityParams) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: c.schemaID,
		Traits:   params.traits(),
		VerifiableAddresses: []ory.VerifiableIdentityAddress{
			{
				Value:    params.Email,
				Verified: true,
				Via:      "email",
				Status:   "completed",
			},
		},
	}

	if params.Password != "" {
		password := params.Password
		body.Credentials = &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{Password: &password},
			},
		}
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return "", ErrIdentityExists
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

// DeleteIdentity removes the identity, a missing identity is not an error.
func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.DeleteIdentity")
	defer span.End()

	r, err := c.admin.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

// GetEmail reads the email trait of the identity.
func (c *Client) GetEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetEmail")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	return EmailFromTraits(identity.Traits), nil
}

func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, _, err := c.admin.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}

// SessionFromCookie resolves a browser session cookie to the identity id.
func (c *Client) SessionFromCookie(ctx context.Context, cookie string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SessionFromCookie")
	defer span.End()

	return c.whoami(c.public.FrontendAPI.ToSession(ctx).Cookie(cookie))
}

// SessionFromToken resolves a native session token to the identity id.
func (c *Client) SessionFromToken(ctx context.Context, token string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.SessionFromToken")
	defer span.End()

	return c.whoami(c.public.FrontendAPI.ToSession(ctx).XSessionToken(token))
}

func (c *Client) whoami(req ory.FrontendAPIToSessionRequest) (string, error) {
	session, r, err := req.Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to check session: %w: %w", ErrUnavailable, err)
	}

	if !session.GetActive() {
		return "", ErrNoSession
	}

	identity := session.GetIdentity()
	if identity.Id == "" {
		return "", ErrNoSession
	}

	return identity.Id, nil
}

// IsAlive checks that the admin API answers.
func (c *Client) IsAlive(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.IsAlive")
	defer span.End()

	_, _, err := c.admin.MetadataAPI.IsAlive(ctx).Execute()
	if err != nil {
		return fmt.Errorf("identity provider is not reachable: %w", err)
	}

	return nil
}

// EmailFromTraits extracts the email trait, the empty string is returned when missing.
func EmailFromTraits(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := m["email"].(string)
	return email
}

func newAPIClient(url string) *ory.APIClient {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: url}}
	return ory.NewAPIClient(conf)
}

func NewClient(adminURL, publicURL, schemaID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.admin = newAPIClient(adminURL)
	c.public = newAPIClient(publicURL)
	c.schemaID = schemaID

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
