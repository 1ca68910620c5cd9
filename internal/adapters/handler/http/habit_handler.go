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

type HabitHandler struct {
	service ports.HabitService
}

func NewHabitHandler(service ports.HabitService) *HabitHandler {
	return &HabitHandler{
		service: service,
	}
}

type createHabitRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Frequency   string     `json:"frequency"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type habitResponse struct {
	Message string        `json:"message"`
	Habit   *domain.Habit `json:"habit"`
}

// Create godoc
// @Summary      Create a new habit
// @Tags         habits
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /api/habits [post]
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Frequency == "" {
		writeMessage(w, http.StatusBadRequest, "Title and frequency are required")
		return
	}

	habit, err := h.service.Create(r.Context(), ports.CreateHabitInput{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.writeHabitError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, habitResponse{Message: "Habit created successfully", Habit: habit})
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	habits, err := h.service.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if habits == nil {
		habits = []domain.Habit{}
	}
	writeJSON(w, http.StatusOK, habits)
}

func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}

	habit, err := h.service.Get(r.Context(), user.ID, habitID)
	if err != nil {
		h.writeHabitError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

type updateHabitRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Frequency   *string    `json:"frequency"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Update godoc
// @Summary      Update a habit by ID
// @Tags         habits
// @Accept       json
// @Success      204
// @Failure      400
// @Failure      404
// @Router       /api/habits/{id} [put]
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}

	var req updateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.UpdateHabitInput{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if input.Empty() {
		writeMessage(w, http.StatusBadRequest, "At least one field must be provided for update")
		return
	}

	if err := h.service.Update(r.Context(), user.ID, habitID, input); err != nil {
		h.writeHabitError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, habitID); err != nil {
		h.writeHabitError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Habit deleted successfully")
}

func (h *HabitHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), user.ID, habitID)
	if err != nil {
		h.writeHabitError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// writeHabitError maps service errors onto the response taxonomy:
// rejected input is a 400 with the reason, a missing or foreign habit
// is a 404, and anything else is a 500 that leaks no detail.
func (h *HabitHandler) writeHabitError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeMessage(w, http.StatusBadRequest, vErr.Error())
		return
	}
	if errors.Is(err, domain.ErrHabitNotFound) {
		writeMessage(w, http.StatusNotFound, "Habit not found")
		return
	}
	writeServerError(w, err)
}

// habitRequestIDs pulls the authenticated user and the habit id path
// parameter; it writes the error response itself when either is missing.
func habitRequestIDs(w http.ResponseWriter, r *http.Request) (*domain.User, uuid.UUID, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return nil, uuid.Nil, false
	}

	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid habit id")
		return nil, uuid.Nil, false
	}
	return user, habitID, true
}
