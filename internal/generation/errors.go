package generation

import "errors"

// Common errors returned by generation clients.
var (
	// ErrNotConfigured is returned when no API credential is configured.
	// No upstream call is attempted in that case.
	ErrNotConfigured = errors.New("generation credential is not configured")

	// ErrModelUnavailable is returned for a single candidate model that
	// the upstream service does not recognize or no longer serves. The
	// client recovers from it locally by trying the next candidate.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrNoCompatibleModel is returned when every candidate model has
	// been tried and rejected.
	ErrNoCompatibleModel = errors.New("no compatible model found")

	// ErrEmptyOutput is returned when the service responds successfully
	// but yields no usable text.
	ErrEmptyOutput = errors.New("model returned no text")

	// ErrUpstream wraps any other failure from the generation service.
	// It is terminal: no further candidates are attempted.
	ErrUpstream = errors.New("generation service error")
)
