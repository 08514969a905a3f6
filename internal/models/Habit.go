package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Habit is one entry of a synced snapshot. CompletedDates holds
// day keys ("2006-01-02") in the order the client sent them.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Emoji          string   `json:"emoji,omitempty"`
	CompletedDates []string `json:"completedDates"`
}

// Valid reports whether the habit carries the fields the jobs need.
// Malformed entries are skipped, never fatal to a batch.
func (h *Habit) Valid() bool {
	return h.ID != "" && h.Name != ""
}

// CompletedOn checks membership of a day key in CompletedDates.
func (h *Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// DisplayName is the habit label used in notifications. A missing
// emoji falls back to a checkmark, as the chat client does.
func (h *Habit) DisplayName() string {
	emoji := h.Emoji
	if emoji == "" {
		emoji = "✅"
	}
	return emoji + " " + h.Name
}

// Transaction is a single financial operation from a synced snapshot.
// Date is kept as the client's string form; day membership is a
// prefix match against the day key.
type Transaction struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Category string          `json:"category,omitempty"`
}

const TransactionExpense = "expense"

// UserData is the latest synced snapshot for one user: current truth
// as of the last sync, wholly replaced every time, no history.
type UserData struct {
	Habits       []Habit       `json:"habits"`
	Transactions []Transaction `json:"transactions"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
