package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
)

type HabitRepository interface {
	Save(ctx context.Context, habit *domain.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	GetAll(ctx context.Context) ([]domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateHabitInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Frequency   string
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateHabitInput carries only the fields present in the request;
// nil means "leave unchanged".
type UpdateHabitInput struct {
	Title       *string
	Description *string
	Frequency   *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (in UpdateHabitInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Frequency == nil &&
		in.StartDate == nil && in.EndDate == nil
}

type HabitService interface {
	Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateHabitInput) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Stats(ctx context.Context, userID, id uuid.UUID) (*domain.HabitStats, error)
}
