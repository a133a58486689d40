// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fisioapp/clinic-service/internal/storage"
)

// Codes shared across handlers, domain specific codes live with their package.
const (
	CodeInvalidPayload        = "INVALID_PAYLOAD"
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeClinicForbidden       = "CLINIC_FORBIDDEN"
	CodeContextLookupFailed   = "CONTEXT_LOOKUP_FAILED"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeInsufficientPrivilege = "INSUFFICIENT_PRIVILEGE"
	CodeIdentityUnavailable   = "IDENTITY_PROVIDER_UNAVAILABLE"
	defaultInternalErrMessage = "unexpected error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// APIError is a failure with a known cause, it maps one to one to an ErrorResponse.
type APIError struct {
	Status  int
	Code    string
	Message string

	err error
}

func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// Response returns the wire representation, the wrapped cause is never exposed.
func (e *APIError) Response() ErrorResponse {
	return ErrorResponse{Error: e.Message, Code: e.Code}
}

func NewAPIError(status int, code, message string, cause error) *APIError {
	return &APIError{Status: status, Code: code, Message: message, err: cause}
}

func BadRequest(code, message string, cause error) *APIError {
	return NewAPIError(http.StatusBadRequest, code, message, cause)
}

func Unauthenticated(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, CodeUnauthenticated, message, nil)
}

func Forbidden(code, message string) *APIError {
	return NewAPIError(http.StatusForbidden, code, message, nil)
}

func NotFound(code, message string) *APIError {
	return NewAPIError(http.StatusNotFound, code, message, nil)
}

func Conflict(code, message string) *APIError {
	return NewAPIError(http.StatusConflict, code, message, nil)
}

func Internal(code, message string, cause error) *APIError {
	return NewAPIError(http.StatusInternalServerError, code, message, cause)
}

func Unavailable(code, message string, cause error) *APIError {
	return NewAPIError(http.StatusServiceUnavailable, code, message, cause)
}

// InvalidPayload is returned by handlers when decoding or validation fails.
func InvalidPayload(message string) *APIError {
	return BadRequest(CodeInvalidPayload, message, nil)
}

// NotAuthorized is returned when the caller lacks the role an operation requires.
func NotAuthorized() *APIError {
	return Forbidden(CodeUnauthorized, "not authorized")
}

// ClinicForbidden is returned when a clinic scoped caller targets another clinic.
func ClinicForbidden() *APIError {
	return Forbidden(CodeClinicForbidden, "you cannot operate on another clinic")
}

// AsAPIError unwraps err into an APIError, anything unknown becomes a generic internal error.
// A database privilege refusal anywhere in the chain is reported as 403.
func AsAPIError(err error) *APIError {
	if storage.IsInsufficientPrivilege(err) {
		return NewAPIError(http.StatusForbidden, CodeInsufficientPrivilege, "not allowed to access this data", err)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(CodeInternalError, defaultInternalErrMessage, err)
}
