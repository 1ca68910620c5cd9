package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := createUserAndToken(t, app.DB)

	// Create
	status, body := app.Client.do(t, http.MethodPost, "/api/habits", token, map[string]any{
		"title":       "Morning Jog",
		"description": "Jog for 30 minutes",
		"frequency":   "daily",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Habit created successfully", body["message"])

	habit, ok := body["habit"].(map[string]any)
	require.True(t, ok)
	habitID, _ := habit["id"].(string)
	require.NotEmpty(t, habitID)

	// List shows it
	status, habits := app.Client.doList(t, http.MethodGet, "/api/habits", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, habits, 1)
	assert.Equal(t, "Morning Jog", habits[0]["title"])

	// Get by id
	status, body = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "daily", body["frequency"])

	// Update returns 204 with no body
	status, _ = app.Client.do(t, http.MethodPut, "/api/habits/"+habitID, token, map[string]any{
		"title":     "Evening Jog",
		"frequency": "weekly",
	})
	require.Equal(t, http.StatusNoContent, status)

	status, body = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Evening Jog", body["title"])
	assert.Equal(t, "weekly", body["frequency"])

	// Update with nothing to change
	status, _ = app.Client.do(t, http.MethodPut, "/api/habits/"+habitID, token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)

	// Delete, then 404
	status, body = app.Client.do(t, http.MethodDelete, "/api/habits/"+habitID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Habit deleted successfully", body["message"])

	status, _ = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHabitValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := createUserAndToken(t, app.DB)

	status, body := app.Client.do(t, http.MethodPost, "/api/habits", token, map[string]any{
		"description": "no title or frequency",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title and frequency are required", body["message"])

	status, _ = app.Client.do(t, http.MethodPost, "/api/habits", token, map[string]any{
		"title":     "Jog",
		"frequency": "hourly",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHabitsAreOwnerScoped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := createUserAndToken(t, app.DB)
	_, strangerToken := createUserAndToken(t, app.DB)

	status, body := app.Client.do(t, http.MethodPost, "/api/habits", ownerToken, map[string]any{
		"title":     "Read",
		"frequency": "daily",
	})
	require.Equal(t, http.StatusCreated, status)
	habit := body["habit"].(map[string]any)
	habitID := habit["id"].(string)

	// Another user's view: empty list, habit hidden as 404.
	status, habits := app.Client.doList(t, http.MethodGet, "/api/habits", strangerToken)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, habits)

	status, _ = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = app.Client.do(t, http.MethodDelete, "/api/habits/"+habitID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHabitStats(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := createUserAndToken(t, app.DB)

	status, body := app.Client.do(t, http.MethodPost, "/api/habits", token, map[string]any{
		"title":     "Meditate",
		"frequency": "daily",
	})
	require.Equal(t, http.StatusCreated, status)
	habit := body["habit"].(map[string]any)
	habitID := habit["id"].(string)

	for i := 0; i < 3; i++ {
		status, _ = app.Client.do(t, http.MethodPost, "/api/logs", token, map[string]any{
			"habitId": habitID,
			"date":    fmt.Sprintf("2025-05-%02dT00:00:00Z", 20+i),
		})
		require.Equal(t, http.StatusCreated, status)
	}

	// Before the job runs the stats read as zero.
	status, body = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["log_count"])

	require.NoError(t, app.SummarySvc.SummarizeAllHabits(context.Background()))

	status, body = app.Client.do(t, http.MethodGet, "/api/habits/"+habitID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["log_count"])
}
