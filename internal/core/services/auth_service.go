package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type authService struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
}

func NewAuthService(userRepo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) ports.AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.NewValidationError("name, email and password are required")
	}

	email := normalizeEmail(input.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-check; the
		// unique index on email is the authoritative arbiter.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Unknown email, OAuth-only account and wrong password all collapse
	// to the same error so the response never reveals which one it was.
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, profile *ports.GoogleProfile) (string, *domain.User, error) {
	if profile == nil || profile.Subject == "" || profile.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.resolveGoogleUser(ctx, profile)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// resolveGoogleUser maps a verified Google profile to a local user,
// creating one on first sign-in. An existing record is returned as-is:
// the provider's current name/email never overwrite what was linked
// first.
func (s *authService) resolveGoogleUser(ctx context.Context, profile *ports.GoogleProfile) (*domain.User, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, profile.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{
		Name:     profile.Name,
		Email:    normalizeEmail(profile.Email),
		GoogleID: profile.Subject,
	}
	err = s.userRepo.Create(ctx, user)
	if err == nil {
		return user, nil
	}

	// Two first-time callbacks for the same account can race; the
	// unique index lets exactly one insert win. The loser re-resolves.
	if errors.Is(err, domain.ErrDuplicateGoogleID) || errors.Is(err, domain.ErrDuplicateEmail) {
		user, lookupErr := s.userRepo.GetByGoogleID(ctx, profile.Subject)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to re-resolve google user: %w", lookupErr)
		}
		if user != nil {
			return user, nil
		}
	}
	return nil, fmt.Errorf("failed to create user: %w", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
