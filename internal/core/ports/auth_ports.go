package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify returns false for a wrong password and for a malformed or
	// absent digest. It never fails loudly: "no password set" must look
	// exactly like "wrong password" to callers.
	Verify(plain, digest string) bool
}

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrTokenExpired when the signature is valid
	// but the token is past its window, and domain.ErrInvalidToken for
	// everything else.
	Verify(raw string) (*Claims, error)
}

// GoogleProfile is the asserted identity from a verified Google id_token.
type GoogleProfile struct {
	Subject string
	Name    string
	Email   string
}

type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	LoginWithGoogle(ctx context.Context, profile *GoogleProfile) (string, *domain.User, error)
}
