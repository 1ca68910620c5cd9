package domain

import (
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

const (
	MaxHabitTitleLen       = 100
	MaxHabitDescriptionLen = 500
)

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Frequency   Frequency  `json:"frequency"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HabitStats is the per-habit aggregate maintained by the summary job.
type HabitStats struct {
	HabitID       uuid.UUID  `json:"habit_id"`
	LogCount      int64      `json:"log_count"`
	LastLoggedAt  *time.Time `json:"last_logged_at,omitempty"`
	LastUpdatedAt time.Time  `json:"last_updated_at"`
}
