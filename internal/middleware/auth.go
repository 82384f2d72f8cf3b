package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	"github.com/goaltrack-dev/goaltrack/internal/token"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

// Key to store the resolved identity in the request context
type key int

const identityKey key = 0

// Auth resolves the caller's identity from the Authorization header.
// It only decodes the credential; it deliberately does not check that
// the identity still maps to an account. That check belongs to the
// services, which evaluate authorization against the current store.
type Auth struct {
	tokens token.Service
}

func NewAuth(tokens token.Service) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth returns middleware that rejects requests without a valid
// bearer credential. Missing header, missing prefix, and undecodable
// token all produce the same 401.
func (a *Auth) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenStr == "" {
				utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			email, err := a.tokens.DecodeEmail(tokenStr)
			if err != nil {
				utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// WithEmail returns a context carrying the resolved identity. Used by
// RequireAuth and by tests that bypass it.
func WithEmail(ctx context.Context, email domain.Email) context.Context {
	return context.WithValue(ctx, identityKey, email)
}

// EmailFromContext retrieves the identity resolved by RequireAuth.
func EmailFromContext(r *http.Request) (domain.Email, bool) {
	email, ok := r.Context().Value(identityKey).(domain.Email)
	return email, ok
}
