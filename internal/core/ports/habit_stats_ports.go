package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
)

type HabitStatsRepository interface {
	SummarizeLogs(ctx context.Context, habitID uuid.UUID) error
	GetByHabit(ctx context.Context, habitID uuid.UUID) (*domain.HabitStats, error)
}

type SummaryService interface {
	SummarizeAllHabits(ctx context.Context) error
}
