package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/storygen/storygen-api/internal/api/shared"
)

// RequireSharedSecret returns middleware that requires requests to carry
// "Authorization: Bearer <secret>". An empty secret disables the check
// entirely; the comparison is constant-time.
func RequireSharedSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					"missing or invalid authorization")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
