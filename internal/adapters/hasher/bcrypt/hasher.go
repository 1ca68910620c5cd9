package bcrypt

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

// DefaultCost matches the interactive-login baseline: expensive enough
// against offline brute force, fast enough for a login request.
const DefaultCost = 10

type Hasher struct {
	cost int
}

func NewHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify returns false for mismatches and for malformed or empty
// digests, so an account without a password verifies like any wrong
// password.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
