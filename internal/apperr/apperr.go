// Package apperr defines the request-level error taxonomy. Every error that
// escapes a service method is one of these, and each code maps to exactly
// one HTTP status.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Code identifies an error category
type Code string

const (
	CodeMalformedID  Code = "malformed_id"
	CodeValidation   Code = "validation_failed"
	CodeReference    Code = "reference_not_found"
	CodeDuplicate    Code = "duplicate"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeInvalidLimit Code = "invalid_limit"
	CodeDeleteBlock  Code = "delete_blocked"
	CodeInternal     Code = "internal"
)

// Error is a categorized request error. Message is user-visible; Details
// carries the accumulated per-field violations for validation failures; Err
// holds the underlying cause for internal errors and is never rendered to
// clients unless debug mode is on.
type Error struct {
	Code    Code
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code this error renders as
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeMalformedID, CodeValidation, CodeReference, CodeInvalidLimit, CodeDeleteBlock:
		return http.StatusBadRequest
	case CodeDuplicate:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MalformedID reports an identifier that does not satisfy ObjectID syntax
func MalformedID(entity string) *Error {
	return &Error{
		Code:    CodeMalformedID,
		Message: "Invalid " + entity + " ID format",
	}
}

// NotFound reports a missing document
func NotFound(entity string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: capitalize(entity) + " not found",
	}
}

// Validation reports accumulated field-constraint violations
func Validation(details []string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// Reference reports a well-formed reference whose target does not exist
func Reference(entity string) *Error {
	return &Error{
		Code:    CodeReference,
		Message: "Referenced " + entity + " does not exist",
	}
}

// Duplicate reports a uniqueness violation
func Duplicate(message string) *Error {
	return &Error{
		Code:    CodeDuplicate,
		Message: message,
	}
}

// InvalidLimit reports a pagination limit above the hard cap
func InvalidLimit() *Error {
	return &Error{
		Code:    CodeInvalidLimit,
		Message: "Invalid limit",
	}
}

// DeleteBlocked reports a delete refused by a referential-integrity guard
func DeleteBlocked(message string) *Error {
	return &Error{
		Code:    CodeDeleteBlock,
		Message: message,
	}
}

// Unauthorized reports a write attempt without valid credentials
func Unauthorized() *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: "Authentication required",
	}
}

// Internal wraps a store or unexpected failure
func Internal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// From coerces any error into an *Error, wrapping unknown errors as internal
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
