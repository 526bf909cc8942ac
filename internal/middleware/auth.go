package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/raddit-dev/raddit/internal/domain"
	"github.com/raddit-dev/raddit/internal/identity"
)

// Key to store the user in the request context
type key int

const userKey key = 0

// Auth resolves the current user from the identity provider's token.
type Auth struct {
	identity identity.Service
}

func NewAuth(identitySvc identity.Service) *Auth {
	return &Auth{identity: identitySvc}
}

// WithUser always lets the request through; a valid token puts the
// signed-in user into the context, anything else leaves the anonymous
// user there. Posting endpoints fall back to "Unknown User" exactly
// like the browser client does.
func (a *Auth) WithUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := domain.Anonymous()
			if tokenString := extractToken(r); tokenString != "" {
				if decoded, err := a.identity.DecodeUser(tokenString); err == nil {
					user = decoded
				}
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	// Cookie first (browser clients), Authorization header second.
	if accessCookie, err := r.Cookie("accessToken"); err == nil {
		return accessCookie.Value
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

// GetUserFromContext retrieves the user from the context; requests that
// skipped the middleware count as anonymous.
func GetUserFromContext(r *http.Request) domain.User {
	user, ok := r.Context().Value(userKey).(domain.User)
	if !ok {
		return domain.Anonymous()
	}
	return user
}
