package api

import (
	"errors"
	"net/http"

	"github.com/storygen/storygen-api/internal/generation"
	"github.com/storygen/storygen-api/internal/redact"
	"github.com/storygen/storygen-api/internal/story"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case story.IsValidationError(err):
		return http.StatusBadRequest

	// Every generation failure, configuration included, is a server-side
	// problem from the caller's point of view.
	case errors.Is(err, generation.ErrNotConfigured),
		errors.Is(err, generation.ErrNoCompatibleModel),
		errors.Is(err, generation.ErrEmptyOutput),
		errors.Is(err, generation.ErrUpstream):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Generation failures carry a human-readable
// detail, but the detail is redacted first so the credential can never
// appear in a response.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case story.IsValidationError(err):
		// Validation messages name the violated constraint and contain
		// no user-supplied content.
		return err.Error()

	case errors.Is(err, generation.ErrNotConfigured):
		return "Story generation is not configured"

	case errors.Is(err, generation.ErrNoCompatibleModel),
		errors.Is(err, generation.ErrEmptyOutput),
		errors.Is(err, generation.ErrUpstream):
		return redact.Error(err)

	default:
		return "An unexpected error occurred"
	}
}
