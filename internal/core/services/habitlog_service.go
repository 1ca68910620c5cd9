package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type habitLogService struct {
	logRepo   ports.HabitLogRepository
	habitRepo ports.HabitRepository
}

func NewHabitLogService(logRepo ports.HabitLogRepository, habitRepo ports.HabitRepository) ports.HabitLogService {
	return &habitLogService{
		logRepo:   logRepo,
		habitRepo: habitRepo,
	}
}

func (s *habitLogService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateLogInput) (*domain.HabitLog, error) {
	if input.HabitID == uuid.Nil {
		return nil, domain.NewValidationError("habitId is required")
	}
	if input.Date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}
	if err := s.checkHabitOwned(ctx, userID, input.HabitID); err != nil {
		return nil, err
	}

	now := time.Now()
	log := &domain.HabitLog{
		ID:        uuid.New(),
		HabitID:   input.HabitID,
		Date:      input.Date,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.logRepo.Save(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save log: %w", err)
	}
	return log, nil
}

func (s *habitLogService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.HabitLog, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *habitLogService) ListByHabit(ctx context.Context, userID, habitID uuid.UUID) ([]domain.HabitLog, error) {
	if err := s.checkHabitOwned(ctx, userID, habitID); err != nil {
		return nil, err
	}
	return s.logRepo.GetAllByHabit(ctx, habitID)
}

func (s *habitLogService) Update(ctx context.Context, userID, id uuid.UUID, input ports.UpdateLogInput) (*domain.HabitLog, error) {
	if input.Empty() {
		return nil, domain.NewValidationError("at least one field must be provided for update")
	}

	log, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		log.Date = *input.Date
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}
	log.UpdatedAt = time.Now()

	if err := s.logRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update log: %w", err)
	}
	return log, nil
}

func (s *habitLogService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.logRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

// getOwned resolves a log and verifies the parent habit belongs to the
// caller. Logs under someone else's habit look like ErrLogNotFound.
func (s *habitLogService) getOwned(ctx context.Context, userID, id uuid.UUID) (*domain.HabitLog, error) {
	log, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	if log == nil {
		return nil, domain.ErrLogNotFound
	}
	if err := s.checkHabitOwned(ctx, userID, log.HabitID); err != nil {
		return nil, domain.ErrLogNotFound
	}
	return log, nil
}

func (s *habitLogService) checkHabitOwned(ctx context.Context, userID, habitID uuid.UUID) error {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return fmt.Errorf("failed to get habit: %w", err)
	}
	if habit == nil || habit.UserID != userID {
		return domain.ErrHabitNotFound
	}
	return nil
}
