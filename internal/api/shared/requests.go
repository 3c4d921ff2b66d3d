package shared

import (
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies well above any valid payload
// (25 names of 40 characters is under 2KB even with generous escaping).
const maxBodyBytes = 64 * 1024

// ReadBody reads and returns the request body, capped at maxBodyBytes.
func ReadBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}
