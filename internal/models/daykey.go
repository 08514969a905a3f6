package models

import "time"

const DayKeyLayout = "2006-01-02"

// DayKey renders the calendar-day key used across the ledgers
// ("2006-01-02" in the scheduler's reference time zone).
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// Midnight truncates a timestamp to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
