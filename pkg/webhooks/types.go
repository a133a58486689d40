// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

const (
	CodeMissingSubject = "MISSING_SUBJECT"

	claimRole     = "role"
	claimClinicID = "clinic_id"
)

// TokenHookResponse is the body Hydra merges into the issued tokens.
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}

type TokenHookSession struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}
