package middleware

import (
	"context"
	"net/http"
	"strings"

	"app/internal/logger"
	"app/internal/util"
)

// Injected key type to avoid context collisions
type contextKey string

const (
	// UserContextKey holds the authenticated user's ID (string).
	UserContextKey = contextKey("user")
	// ClaimsContextKey holds the full *util.Claims of the token.
	ClaimsContextKey = contextKey("claims")
)

// AuthMiddleware requires a valid Bearer token and injects the user ID
// and claims into the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.New()
			claims, err := claimsFromRequest(r, jwtSecret)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected unauthenticated request")
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuthMiddleware injects identity when a valid Bearer token is
// present but lets anonymous requests through untouched. Used on public
// pages that render differently for enrolled users.
func OptionalAuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := claimsFromRequest(r, jwtSecret); err == nil {
				r = r.WithContext(contextWithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StaffMiddleware denies any identity without the staff capability.
// It must be chained after AuthMiddleware.
func StaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ClaimsContextKey).(*util.Claims)
			if !ok || !claims.IsStaff {
				http.Error(w, "Forbidden: staff capability required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromRequest(r *http.Request, jwtSecret string) (*util.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingAuthHeader
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errMalformedAuthHeader
	}
	return util.ValidateJWT(parts[1], jwtSecret)
}

func contextWithClaims(ctx context.Context, claims *util.Claims) context.Context {
	ctx = context.WithValue(ctx, UserContextKey, claims.Subject)
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

var (
	errMissingAuthHeader   = authError("authorization header missing")
	errMalformedAuthHeader = authError("invalid authorization header")
)

type authError string

func (e authError) Error() string { return string(e) }
