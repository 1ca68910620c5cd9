package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type habitService struct {
	repo      ports.HabitRepository
	statsRepo ports.HabitStatsRepository
}

func NewHabitService(repo ports.HabitRepository, statsRepo ports.HabitStatsRepository) ports.HabitService {
	return &habitService{
		repo:      repo,
		statsRepo: statsRepo,
	}
}

func (s *habitService) Create(ctx context.Context, input ports.CreateHabitInput) (*domain.Habit, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if len(input.Title) > domain.MaxHabitTitleLen {
		return nil, domain.NewValidationError("title must be at most %d characters", domain.MaxHabitTitleLen)
	}
	if len(input.Description) > domain.MaxHabitDescriptionLen {
		return nil, domain.NewValidationError("description must be at most %d characters", domain.MaxHabitDescriptionLen)
	}
	frequency := domain.Frequency(input.Frequency)
	if !frequency.Valid() {
		return nil, domain.NewValidationError("frequency must be one of daily, weekly, monthly")
	}

	now := time.Now()
	startDate := now
	if input.StartDate != nil {
		startDate = *input.StartDate
	}

	habit := &domain.Habit{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Frequency:   frequency,
		StartDate:   startDate,
		EndDate:     input.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Save(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to save habit: %w", err)
	}
	return habit, nil
}

func (s *habitService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *habitService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	return s.repo.GetAllByUser(ctx, userID)
}

func (s *habitService) Update(ctx context.Context, userID, id uuid.UUID, input ports.UpdateHabitInput) error {
	if input.Empty() {
		return domain.NewValidationError("at least one field must be provided for update")
	}

	habit, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if input.Title != nil {
		if *input.Title == "" || len(*input.Title) > domain.MaxHabitTitleLen {
			return domain.NewValidationError("title must be 1 to %d characters", domain.MaxHabitTitleLen)
		}
		habit.Title = *input.Title
	}
	if input.Description != nil {
		if len(*input.Description) > domain.MaxHabitDescriptionLen {
			return domain.NewValidationError("description must be at most %d characters", domain.MaxHabitDescriptionLen)
		}
		habit.Description = *input.Description
	}
	if input.Frequency != nil {
		frequency := domain.Frequency(*input.Frequency)
		if !frequency.Valid() {
			return domain.NewValidationError("frequency must be one of daily, weekly, monthly")
		}
		habit.Frequency = frequency
	}
	if input.StartDate != nil {
		habit.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		habit.EndDate = input.EndDate
	}
	habit.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, habit); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	return nil
}

func (s *habitService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}

func (s *habitService) Stats(ctx context.Context, userID, id uuid.UUID) (*domain.HabitStats, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetByHabit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit stats: %w", err)
	}
	if stats == nil {
		// Job has not run for this habit yet; report zeros rather than 404.
		return &domain.HabitStats{HabitID: id}, nil
	}
	return stats, nil
}

// getOwned hides other users' habits behind ErrHabitNotFound instead of
// a distinct forbidden error.
func (s *habitService) getOwned(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	if habit == nil || habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}
