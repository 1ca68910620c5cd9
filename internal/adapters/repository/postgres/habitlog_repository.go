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

type habitLogRepository struct {
	db *sql.DB
}

func NewHabitLogRepository(db *sql.DB) ports.HabitLogRepository {
	return &habitLogRepository{
		db: db,
	}
}

func (r *habitLogRepository) Save(ctx context.Context, log *domain.HabitLog) error {
	query := `
		INSERT INTO habit_logs (id, habit_id, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.ExecContext(ctx, query,
		log.ID, log.HabitID, log.Date, log.Notes, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *habitLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.HabitLog, error) {
	query := `
		SELECT id, habit_id, date, notes, created_at, updated_at
		FROM habit_logs
		WHERE id = $1
	`
	log := &domain.HabitLog{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&log.ID, &log.HabitID, &log.Date, &log.Notes, &log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return log, nil
}

func (r *habitLogRepository) GetAllByHabit(ctx context.Context, habitID uuid.UUID) ([]domain.HabitLog, error) {
	query := `
		SELECT id, habit_id, date, notes, created_at, updated_at
		FROM habit_logs
		WHERE habit_id = $1
		ORDER BY date
	`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.HabitLog
	for rows.Next() {
		var log domain.HabitLog
		if err := rows.Scan(&log.ID, &log.HabitID, &log.Date, &log.Notes, &log.CreatedAt, &log.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *habitLogRepository) Update(ctx context.Context, log *domain.HabitLog) error {
	query := `
		UPDATE habit_logs
		SET date = $2, notes = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, log.ID, log.Date, log.Notes, log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return nil
}

func (r *habitLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM habit_logs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	if affected == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}
