package services

import (
	"time"

	"github.com/google/uuid"

	"lifetracker/internal/models"
)

// TrackerServiceInterface is the façade the controllers, jobs and the
// file manager share over the four ledger stores.
type TrackerServiceInterface interface {
	EnsureUser(id string) models.User
	GetUser(id string) (*models.User, bool)
	SetNotifications(id string, enabled bool) bool
	SetLanguage(id, lang string) bool
	TouchSync(id string, offsetMinutes int, at time.Time) bool
	NotifiableUsers() []models.User

	PutSnapshot(userID string, data models.UserData)
	GetSnapshot(userID string) (*models.UserData, bool)

	ClaimReminder(userID, habitID, habitName string, now time.Time) (*models.ReminderRecord, bool)
	ReleaseReminder(id uuid.UUID)
	HasReminder(userID, habitID, day string) bool
	PendingReminders(day string) []models.ReminderRecord
	CompleteReminder(id uuid.UUID) bool
	PruneReminders(cutoff time.Time) []models.ReminderRecord

	UpsertMood(userID string, at time.Time, score int, note string) models.MoodEntry
	MoodsSince(userID string, from time.Time) []models.MoodEntry

	UserCount() int
	ReminderCount() int

	GetStorage() *models.Storage
	PutStorage(st *models.Storage)
}

type TrackerService struct {
	users     *models.UserStore
	snapshots *models.SnapshotStore
	reminders *models.ReminderStore
	moods     *models.MoodStore
}

func NewTrackerService() TrackerServiceInterface {
	return &TrackerService{
		users:     models.NewUserStore(),
		snapshots: models.NewSnapshotStore(),
		reminders: models.NewReminderStore(),
		moods:     models.NewMoodStore(),
	}
}

func (ts *TrackerService) EnsureUser(id string) models.User {
	return ts.users.Ensure(id)
}

func (ts *TrackerService) GetUser(id string) (*models.User, bool) {
	return ts.users.Get(id)
}

func (ts *TrackerService) SetNotifications(id string, enabled bool) bool {
	return ts.users.SetNotifications(id, enabled)
}

func (ts *TrackerService) SetLanguage(id, lang string) bool {
	return ts.users.SetLanguage(id, lang)
}

func (ts *TrackerService) TouchSync(id string, offsetMinutes int, at time.Time) bool {
	return ts.users.TouchSync(id, offsetMinutes, at)
}

func (ts *TrackerService) NotifiableUsers() []models.User {
	return ts.users.ListNotifiable()
}

func (ts *TrackerService) PutSnapshot(userID string, data models.UserData) {
	ts.snapshots.Put(userID, data)
}

func (ts *TrackerService) GetSnapshot(userID string) (*models.UserData, bool) {
	return ts.snapshots.Get(userID)
}

func (ts *TrackerService) ClaimReminder(userID, habitID, habitName string, now time.Time) (*models.ReminderRecord, bool) {
	return ts.reminders.Claim(userID, habitID, habitName, now)
}

func (ts *TrackerService) ReleaseReminder(id uuid.UUID) {
	ts.reminders.Release(id)
}

func (ts *TrackerService) HasReminder(userID, habitID, day string) bool {
	return ts.reminders.Has(userID, habitID, day)
}

func (ts *TrackerService) PendingReminders(day string) []models.ReminderRecord {
	return ts.reminders.PendingForDay(day)
}

func (ts *TrackerService) CompleteReminder(id uuid.UUID) bool {
	return ts.reminders.CompleteOnce(id)
}

func (ts *TrackerService) PruneReminders(cutoff time.Time) []models.ReminderRecord {
	return ts.reminders.PruneBefore(cutoff)
}

func (ts *TrackerService) UpsertMood(userID string, at time.Time, score int, note string) models.MoodEntry {
	return ts.moods.Upsert(userID, at, score, note)
}

func (ts *TrackerService) MoodsSince(userID string, from time.Time) []models.MoodEntry {
	return ts.moods.ListSince(userID, from)
}

func (ts *TrackerService) UserCount() int {
	return ts.users.Len()
}

func (ts *TrackerService) ReminderCount() int {
	return ts.reminders.Len()
}

func (ts *TrackerService) GetStorage() *models.Storage {
	return &models.Storage{
		Users:     ts.users.GetData(),
		Snapshots: ts.snapshots.GetData(),
		Reminders: ts.reminders.GetData(),
		Moods:     ts.moods.GetData(),
	}
}

func (ts *TrackerService) PutStorage(st *models.Storage) {
	if st == nil {
		return
	}
	if st.Users != nil {
		ts.users.PutData(st.Users)
	}
	if st.Snapshots != nil {
		ts.snapshots.PutData(st.Snapshots)
	}
	if st.Reminders != nil {
		ts.reminders.PutData(st.Reminders)
	}
	if st.Moods != nil {
		ts.moods.PutData(st.Moods)
	}
}
