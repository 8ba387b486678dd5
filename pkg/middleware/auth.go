package middleware

import (
	"net/http"
	"strings"

	"github.com/sweetdelights/bakery/pkg/auth"
	"github.com/sweetdelights/bakery/pkg/response"
)

// Auth guards admin surfaces. It expects "Authorization: Bearer <jwt>" and
// rejects missing, malformed, or expired tokens with a 401 envelope.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w, "Authorization token required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
