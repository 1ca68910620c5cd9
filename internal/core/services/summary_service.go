package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type summaryService struct {
	habitRepo ports.HabitRepository
	statsRepo ports.HabitStatsRepository
}

func NewSummaryService(habitRepo ports.HabitRepository, statsRepo ports.HabitStatsRepository) ports.SummaryService {
	return &summaryService{
		habitRepo: habitRepo,
		statsRepo: statsRepo,
	}
}

func (s *summaryService) SummarizeAllHabits(ctx context.Context) error {
	habits, err := s.habitRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all habits: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(habits))

	for _, habit := range habits {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if err := s.statsRepo.SummarizeLogs(ctx, id); err != nil {
				errChan <- fmt.Errorf("failed to summarize habit %s: %w", id, err)
			}
		}(habit.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
