package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

// failingLogService returns the configured error from every method.
type failingLogService struct {
	err error
}

func (s *failingLogService) Create(context.Context, uuid.UUID, ports.CreateLogInput) (*domain.HabitLog, error) {
	return nil, s.err
}

func (s *failingLogService) Get(context.Context, uuid.UUID, uuid.UUID) (*domain.HabitLog, error) {
	return nil, s.err
}

func (s *failingLogService) ListByHabit(context.Context, uuid.UUID, uuid.UUID) ([]domain.HabitLog, error) {
	return nil, s.err
}

func (s *failingLogService) Update(context.Context, uuid.UUID, uuid.UUID, ports.UpdateLogInput) (*domain.HabitLog, error) {
	return nil, s.err
}

func (s *failingLogService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func TestCreateLogStoreFailureIsServerError(t *testing.T) {
	storeErr := errors.New("failed to save log: pq: connection refused")
	handler := NewHabitLogHandler(&failingLogService{err: storeErr})

	req := authedRequest(t, http.MethodPost, "/api/logs", map[string]any{
		"habitId": uuid.NewString(),
		"date":    "2025-05-22T00:00:00Z",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestCreateLogValidationFailureIsBadRequest(t *testing.T) {
	handler := NewHabitLogHandler(&failingLogService{
		err: domain.NewValidationError("date is required"),
	})

	req := authedRequest(t, http.MethodPost, "/api/logs", map[string]any{
		"habitId": uuid.NewString(),
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date is required", decodeMessage(t, rec))
}

func TestCreateLogMissingHabitIsNotFound(t *testing.T) {
	handler := NewHabitLogHandler(&failingLogService{err: domain.ErrHabitNotFound})

	req := authedRequest(t, http.MethodPost, "/api/logs", map[string]any{
		"habitId": uuid.NewString(),
		"date":    "2025-05-22T00:00:00Z",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Habit not found", decodeMessage(t, rec))
}
