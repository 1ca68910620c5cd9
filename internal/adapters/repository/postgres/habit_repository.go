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

type habitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) ports.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

func (r *habitRepository) Save(ctx context.Context, habit *domain.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, title, description, frequency, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.ExecContext(ctx, query,
		habit.ID, habit.UserID, habit.Title, habit.Description,
		habit.Frequency, habit.StartDate, habit.EndDate,
		habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	query := `
		SELECT id, user_id, title, description, frequency, start_date, end_date, created_at, updated_at
		FROM habits
		WHERE id = $1
	`
	habit := &domain.Habit{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&habit.ID, &habit.UserID, &habit.Title, &habit.Description,
		&habit.Frequency, &habit.StartDate, &habit.EndDate,
		&habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return habit, nil
}

func (r *habitRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	query := `
		SELECT id, user_id, title, description, frequency, start_date, end_date, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}
	return collectHabits(rows)
}

func (r *habitRepository) GetAll(ctx context.Context) ([]domain.Habit, error) {
	query := `
		SELECT id, user_id, title, description, frequency, start_date, end_date, created_at, updated_at
		FROM habits
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}
	return collectHabits(rows)
}

func (r *habitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	query := `
		UPDATE habits
		SET title = $2, description = $3, frequency = $4, start_date = $5, end_date = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		habit.ID, habit.Title, habit.Description, habit.Frequency,
		habit.StartDate, habit.EndDate, habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM habits WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func collectHabits(rows *sql.Rows) ([]domain.Habit, error) {
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		var habit domain.Habit
		if err := rows.Scan(
			&habit.ID, &habit.UserID, &habit.Title, &habit.Description,
			&habit.Frequency, &habit.StartDate, &habit.EndDate,
			&habit.CreatedAt, &habit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}
	return habits, rows.Err()
}
