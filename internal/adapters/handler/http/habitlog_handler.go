package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

type HabitLogHandler struct {
	service ports.HabitLogService
}

func NewHabitLogHandler(service ports.HabitLogService) *HabitLogHandler {
	return &HabitLogHandler{
		service: service,
	}
}

type createLogRequest struct {
	HabitID uuid.UUID `json:"habitId"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes"`
}

type logResponse struct {
	Message string           `json:"message"`
	Log     *domain.HabitLog `json:"log"`
}

// Create godoc
// @Summary      Create a new log entry for a habit
// @Tags         logs
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /api/logs [post]
func (h *HabitLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.service.Create(r.Context(), user.ID, ports.CreateLogInput{
		HabitID: req.HabitID,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if err != nil {
		h.writeLogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, logResponse{Message: "Log created successfully", Log: log})
}

func (h *HabitLogHandler) ListByHabit(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "habitId"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid habit id")
		return
	}

	logs, err := h.service.ListByHabit(r.Context(), user.ID, habitID)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			writeMessage(w, http.StatusNotFound, "Habit not found")
			return
		}
		writeServerError(w, err)
		return
	}
	if logs == nil {
		logs = []domain.HabitLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *HabitLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, logID, ok := logRequestIDs(w, r)
	if !ok {
		return
	}

	log, err := h.service.Get(r.Context(), user.ID, logID)
	if err != nil {
		h.writeLogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

type updateLogRequest struct {
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes"`
}

func (h *HabitLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, logID, ok := logRequestIDs(w, r)
	if !ok {
		return
	}

	var req updateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.UpdateLogInput{Date: req.Date, Notes: req.Notes}
	if input.Empty() {
		writeMessage(w, http.StatusBadRequest, "At least one field must be provided for update")
		return
	}

	log, err := h.service.Update(r.Context(), user.ID, logID, input)
	if err != nil {
		h.writeLogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logResponse{Message: "Log updated successfully", Log: log})
}

func (h *HabitLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, logID, ok := logRequestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, logID); err != nil {
		h.writeLogError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Log deleted successfully")
}

func (h *HabitLogHandler) writeLogError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeMessage(w, http.StatusBadRequest, vErr.Error())
		return
	}
	if errors.Is(err, domain.ErrLogNotFound) {
		writeMessage(w, http.StatusNotFound, "Log not found")
		return
	}
	if errors.Is(err, domain.ErrHabitNotFound) {
		writeMessage(w, http.StatusNotFound, "Habit not found")
		return
	}
	writeServerError(w, err)
}

func logRequestIDs(w http.ResponseWriter, r *http.Request) (*domain.User, uuid.UUID, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return nil, uuid.Nil, false
	}

	logID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid log id")
		return nil, uuid.Nil, false
	}
	return user, logID, true
}
