package middleware

import (
	"net/http"
	"strings"

	"traction/internal/auth"
	"traction/internal/httputil"
)

// AuthMiddleware validates the Bearer token on every request and attaches the
// authenticated identity to the request context. Requests without a valid
// token are rejected before reaching any handler.
func AuthMiddleware(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health check stays reachable without a token
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			r = httputil.WithIdentity(r, claims.GetUserID(), claims.Email)
			next.ServeHTTP(w, r)
		})
	}
}
