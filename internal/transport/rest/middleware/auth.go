package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const AccessTokenKey contextKey = "accessToken"

// WithAccessToken stores the caller's bearer token, if any, in the request
// context. Verification happens later, when the token is used.
func WithAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// WebSocket clients cannot set headers
			token = r.URL.Query().Get("token")
		}
		if token != "" {
			r = r.WithContext(context.WithValue(r.Context(), AccessTokenKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

// GetAccessToken extracts the bearer token from context
func GetAccessToken(ctx context.Context) string {
	if v, ok := ctx.Value(AccessTokenKey).(string); ok {
		return v
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
