package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type habitStatsRepository struct {
	db *sql.DB
}

func NewHabitStatsRepository(db *sql.DB) ports.HabitStatsRepository {
	return &habitStatsRepository{
		db: db,
	}
}

func (r *habitStatsRepository) SummarizeLogs(ctx context.Context, habitID uuid.UUID) error {
	query := `
		INSERT INTO habit_stats (habit_id, log_count, last_logged_at, last_updated_at)
		SELECT habit_id, COUNT(*), MAX(date), NOW()
		FROM habit_logs
		WHERE habit_id = $1
		GROUP BY habit_id
		ON CONFLICT (habit_id) DO UPDATE
		SET log_count = EXCLUDED.log_count,
		    last_logged_at = EXCLUDED.last_logged_at,
		    last_updated_at = NOW();
	`
	_, err := r.db.ExecContext(ctx, query, habitID)
	if err != nil {
		return fmt.Errorf("failed to summarize logs for habit %s: %w", habitID, err)
	}
	return nil
}

func (r *habitStatsRepository) GetByHabit(ctx context.Context, habitID uuid.UUID) (*domain.HabitStats, error) {
	query := `
		SELECT habit_id, log_count, last_logged_at, last_updated_at
		FROM habit_stats
		WHERE habit_id = $1
	`
	stats := &domain.HabitStats{}
	err := r.db.QueryRowContext(ctx, query, habitID).Scan(
		&stats.HabitID, &stats.LogCount, &stats.LastLoggedAt, &stats.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch habit stats: %w", err)
	}
	return stats, nil
}
