package models

// Storage is the at-rest aggregate of the four ledgers, marshalled as
// one compressed JSON document by the file manager.
type Storage struct {
	Users     map[string]User     `json:"users"`
	Snapshots map[string]UserData `json:"snapshots"`
	Reminders []ReminderRecord    `json:"reminders"`
	Moods     []MoodEntry         `json:"moods"`
}
