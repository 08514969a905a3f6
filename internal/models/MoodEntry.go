package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MoodScoreMin = 1
	MoodScoreMax = 5
)

// MoodEntry is one score per user per calendar day. Date is truncated
// to midnight; the (user, date) pair is unique with upsert semantics.
type MoodEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"user_id"`
	Date   time.Time `json:"date"`
	Score  int       `json:"score"`
	Note   string    `json:"note,omitempty"`
}

// ValidMoodScore reports whether score is one of the five options.
func ValidMoodScore(score int) bool {
	return score >= MoodScoreMin && score <= MoodScoreMax
}

// MoodEmoji maps a score to its chat label.
func MoodEmoji(score int) string {
	switch score {
	case 1:
		return "😫"
	case 2:
		return "😕"
	case 3:
		return "😐"
	case 4:
		return "🙂"
	case 5:
		return "🤩"
	}
	return ""
}
