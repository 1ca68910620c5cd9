package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
)

type HabitLogRepository interface {
	Save(ctx context.Context, log *domain.HabitLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HabitLog, error)
	GetAllByHabit(ctx context.Context, habitID uuid.UUID) ([]domain.HabitLog, error)
	Update(ctx context.Context, log *domain.HabitLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateLogInput struct {
	HabitID uuid.UUID
	Date    time.Time
	Notes   string
}

type UpdateLogInput struct {
	Date  *time.Time
	Notes *string
}

func (in UpdateLogInput) Empty() bool {
	return in.Date == nil && in.Notes == nil
}

type HabitLogService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateLogInput) (*domain.HabitLog, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.HabitLog, error)
	ListByHabit(ctx context.Context, userID, habitID uuid.UUID) ([]domain.HabitLog, error)
	Update(ctx context.Context, userID, id uuid.UUID, input UpdateLogInput) (*domain.HabitLog, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
