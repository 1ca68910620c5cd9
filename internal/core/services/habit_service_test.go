package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type fakeHabitRepo struct {
	mu     sync.Mutex
	habits map[uuid.UUID]*domain.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*domain.Habit)}
}

func (r *fakeHabitRepo) Save(_ context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *habit
	r.habits[habit.ID] = &stored
	return nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok {
		return nil, nil
	}
	stored := *h
	return &stored, nil
}

func (r *fakeHabitRepo) GetAllByUser(_ context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) GetAll(_ context.Context) ([]domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Habit
	for _, h := range r.habits {
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	stored := *habit
	r.habits[habit.ID] = &stored
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.habits, id)
	return nil
}

type fakeStatsRepo struct {
	stats map[uuid.UUID]*domain.HabitStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[uuid.UUID]*domain.HabitStats)}
}

func (r *fakeStatsRepo) SummarizeLogs(_ context.Context, habitID uuid.UUID) error {
	s, ok := r.stats[habitID]
	if !ok {
		s = &domain.HabitStats{HabitID: habitID}
		r.stats[habitID] = s
	}
	s.LogCount++
	return nil
}

func (r *fakeStatsRepo) GetByHabit(_ context.Context, habitID uuid.UUID) (*domain.HabitStats, error) {
	s, ok := r.stats[habitID]
	if !ok {
		return nil, nil
	}
	stored := *s
	return &stored, nil
}

func TestCreateHabitValidation(t *testing.T) {
	svc := NewHabitService(newFakeHabitRepo(), newFakeStatsRepo())
	ctx := context.Background()
	userID := uuid.New()

	var vErr *domain.ValidationError

	_, err := svc.Create(ctx, ports.CreateHabitInput{UserID: userID, Title: "", Frequency: "daily"})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Create(ctx, ports.CreateHabitInput{UserID: userID, Title: "Jog", Frequency: "hourly"})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Create(ctx, ports.CreateHabitInput{
		UserID:    userID,
		Title:     strings.Repeat("x", domain.MaxHabitTitleLen+1),
		Frequency: "daily",
	})
	assert.ErrorAs(t, err, &vErr)

	habit, err := svc.Create(ctx, ports.CreateHabitInput{
		UserID:      userID,
		Title:       "Morning Jog",
		Description: "Jog for 30 minutes",
		Frequency:   "daily",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, habit.UserID)
	assert.Equal(t, domain.FrequencyDaily, habit.Frequency)
	assert.False(t, habit.StartDate.IsZero())
}

func TestHabitOwnershipHiddenAsNotFound(t *testing.T) {
	svc := NewHabitService(newFakeHabitRepo(), newFakeStatsRepo())
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	habit, err := svc.Create(ctx, ports.CreateHabitInput{UserID: owner, Title: "Jog", Frequency: "daily"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other, habit.ID)
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)

	err = svc.Delete(ctx, other, habit.ID)
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)

	got, err := svc.Get(ctx, owner, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, habit.ID, got.ID)
}

func TestUpdateHabitRequiresField(t *testing.T) {
	svc := NewHabitService(newFakeHabitRepo(), newFakeStatsRepo())
	ctx := context.Background()
	owner := uuid.New()

	habit, err := svc.Create(ctx, ports.CreateHabitInput{UserID: owner, Title: "Jog", Frequency: "daily"})
	require.NoError(t, err)

	err = svc.Update(ctx, owner, habit.ID, ports.UpdateHabitInput{})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	title := "Evening Jog"
	frequency := "weekly"
	err = svc.Update(ctx, owner, habit.ID, ports.UpdateHabitInput{Title: &title, Frequency: &frequency})
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening Jog", got.Title)
	assert.Equal(t, domain.FrequencyWeekly, got.Frequency)
}

func TestHabitStatsZeroBeforeSummarization(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	svc := NewHabitService(newFakeHabitRepo(), statsRepo)
	ctx := context.Background()
	owner := uuid.New()

	habit, err := svc.Create(ctx, ports.CreateHabitInput{UserID: owner, Title: "Jog", Frequency: "daily"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, owner, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.LogCount)

	require.NoError(t, statsRepo.SummarizeLogs(ctx, habit.ID))

	stats, err = svc.Stats(ctx, owner, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.LogCount)
}
