package http

import (
	"context"
	"net/http"
	"strings"

	"fleethire-backend/internal/security"
)

type contextKey string

const userContextKey contextKey = "user"

// AuthMiddleware validates the bearer token on every back-office request.
// Token issuance is the identity provider's job; this is the whole auth
// surface of the service.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user's claims, if any.
func UserFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(userContextKey).(*security.UserClaims)
	return claims, ok
}
