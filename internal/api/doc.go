// Package api contains the HTTP handlers for the story generation
// endpoint, plus the error-to-status mapping that keeps internal error
// detail out of client responses.
package api
