package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderRecord is one append-only ledger entry: "a reminder was sent
// for habit H to user U on day D". Completed flips true exactly once,
// when the praise job observes the completion. Records are never
// deleted within the day; aged records move to the cold archive.
type ReminderRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	HabitID    string    `json:"habit_id"`
	HabitName  string    `json:"habit_name"`
	RemindedAt time.Time `json:"reminded_at"`
	Completed  bool      `json:"completed"`
}

// Day returns the calendar-day key the reminder belongs to.
func (r *ReminderRecord) Day() string {
	return DayKey(r.RemindedAt)
}
