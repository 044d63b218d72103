package http

import (
	"context"
	"net/http"
	"strings"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/security"
)

type contextKey string

const staffClaimsKey contextKey = "staff_claims"

// AuthMiddleware validates the staff bearer token and stores the claims on
// the request context.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tm.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), staffClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StaffFromContext returns the authenticated staff claims, if any.
func StaffFromContext(ctx context.Context) (*security.StaffClaims, bool) {
	claims, ok := ctx.Value(staffClaimsKey).(*security.StaffClaims)
	return claims, ok
}

// RequireRole rejects requests whose staff token does not carry the role.
// ADMIN passes every role check.
func RequireRole(role domain.StaffRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := StaffFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if claims.Role != role && claims.Role != domain.StaffRoleAdmin {
			writeError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r)
	}
}
