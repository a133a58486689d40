// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/fisioapp/clinic-service/internal/logging"
)

// WriteJSON renders v with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// WriteError renders err as an ErrorResponse. Internal errors and database privilege refusals
// are logged with their cause.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger logging.LoggerInterface) {
	apiErr := AsAPIError(err)

	if (apiErr.Status >= http.StatusInternalServerError || apiErr.Code == CodeInsufficientPrivilege) && logger != nil {
		logger.Errorf("request %s %s failed: %v", r.Method, r.URL.Path, err)
	}

	WriteJSON(w, r, apiErr.Status, apiErr.Response())
}

// DecodeJSON decodes the request body into v, the error is ready to be written back.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return InvalidPayload("request body is required")
	}

	if err := render.DecodeJSON(r.Body, v); err != nil {
		return InvalidPayload(fmt.Sprintf("invalid request body: %v", err))
	}

	return nil
}

// NoCache marks the response as non cacheable.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
