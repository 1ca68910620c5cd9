package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext returns the authenticated user attached by RequireAuth.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

type AuthMiddleware struct {
	tokens ports.TokenService
	users  ports.UserRepository
}

func NewAuthMiddleware(tokens ports.TokenService, users ports.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireAuth verifies the bearer token, resolves its subject to a live
// user and attaches it to the request context. Missing, invalid and
// expired tokens, as well as a subject that no longer exists, all yield
// the same 401 so the response never explains which check failed.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		claims, err := m.tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				log.Printf("auth: expired token rejected")
			} else {
				log.Printf("auth: invalid token rejected")
			}
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeServerError(w, err)
			return
		}
		if user == nil {
			// Token outlived its subject; indistinguishable from any
			// other unauthenticated request.
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
