package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticatable principal. PasswordHash is empty for
// accounts created through Google sign-in; GoogleID is empty for
// accounts created through local registration.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	GoogleID     string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// HasPassword reports whether local login is possible for this user.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
