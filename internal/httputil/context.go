package httputil

import (
	"net/http"

	"traction/internal/auth"
)

// WithIdentity attaches the authenticated identity to the request context.
func WithIdentity(r *http.Request, userID, email string) *http.Request {
	return r.WithContext(auth.WithIdentity(r.Context(), userID, email))
}

// GetUserID retrieves the user ID from the request, or empty string if unset.
func GetUserID(r *http.Request) string {
	return auth.UserIDFromContext(r.Context())
}

// GetUserEmail retrieves the user email from the request, or empty string if unset.
func GetUserEmail(r *http.Request) string {
	return auth.EmailFromContext(r.Context())
}
