package httpx

import (
	"net/http"
	"strings"
)

// BearerToken extracts the raw token from an "Authorization: Bearer <token>"
// header. The second return value is false when the header is absent or not
// using the bearer scheme.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}

	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	if raw == "" {
		return "", false
	}
	return raw, true
}

// WriteBearerError writes an RFC 6750-compliant 401 response for bearer auth
// failures. The description must not leak internal error detail.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
