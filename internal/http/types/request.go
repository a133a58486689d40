// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fisioapp/clinic-service/internal/validation"
)

// Validate runs the struct rules on v, the error is ready to be written back.
func Validate(v interface{}) error {
	if err := validation.Struct(v); err != nil {
		return InvalidPayload(err.Error())
	}
	return nil
}

// Bind decodes the JSON body into v and validates it.
func Bind(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return Validate(v)
}

// ParseID validates a path identifier, code is returned on malformed input.
func ParseID(value, code, message string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", BadRequest(code, message, err)
	}
	return id.String(), nil
}
