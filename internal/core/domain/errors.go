package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrDuplicateGoogleID  = errors.New("google account already linked")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrHabitNotFound = errors.New("habit not found")
	ErrLogNotFound   = errors.New("log not found")
	ErrStatsNotFound = errors.New("no stats for habit")

	ErrInternal = errors.New("internal server error")
)

// ValidationError marks input rejected by a service before it reaches
// storage. Handlers map it to a 400 with the reason as the client
// message; everything else unclassified is a 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
