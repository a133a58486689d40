// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBind(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{name: "valid", body: `{"email": "ana@example.com"}`},
		{name: "invalid email", body: `{"email": "nope"}`, expectedMessage: "email must be a valid email address"},
		{name: "missing field", body: `{}`, expectedMessage: "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			err := Bind(req, new(payload))
			if tt.expectedMessage == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			apiErr := AsAPIError(err)
			if apiErr.Code != CodeInvalidPayload || apiErr.Message != tt.expectedMessage {
				t.Errorf("expected %s %q, got %s %q", CodeInvalidPayload, tt.expectedMessage, apiErr.Code, apiErr.Message)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("0191B0D4-6A5E-7C3A-9D1E-2F3A4B5C6D7E", "INVALID_USER_ID", "invalid user id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "0191b0d4-6a5e-7c3a-9d1e-2f3a4b5c6d7e" {
		t.Errorf("expected normalized id, got %s", id)
	}

	_, err = ParseID("not-a-uuid", "INVALID_USER_ID", "invalid user id")
	if apiErr := AsAPIError(err); apiErr.Status != http.StatusBadRequest || apiErr.Code != "INVALID_USER_ID" {
		t.Errorf("expected 400 INVALID_USER_ID, got %d %s", apiErr.Status, apiErr.Code)
	}
}
