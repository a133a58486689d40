// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

//go:embed schema.openfga
var v0Schema string

var schemas = map[string]string{
	"v0": v0Schema,
}

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel returns the authorization model for the provider version, it panics on an
// unknown version or a schema that does not compile since both are build time errors.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := a.parse()
	if err != nil {
		panic(err)
	}
	return model
}

func (a *AuthorizationModelProvider) parse() (*fga.AuthorizationModel, error) {
	dsl, ok := schemas[a.apiVersion]
	if !ok {
		return nil, fmt.Errorf("unknown authorization model version %q", a.apiVersion)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{apiVersion: apiVersion}
}
