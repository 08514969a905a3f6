package models

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReminderStore enforces the ledger's sole idempotence guard: for a
// given (user, habit, calendar day) at most one record ever exists.
// Claim/Release/CompleteOnce are atomic under the store lock, so the
// guard holds even when job firings overlap.
type ReminderStore struct {
	mu   sync.RWMutex
	data map[string]ReminderRecord // reminderKey → record
	byID map[uuid.UUID]string      // record ID → reminderKey
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		data: make(map[string]ReminderRecord),
		byID: make(map[uuid.UUID]string),
	}
}

func reminderKey(userID, habitID, day string) string {
	return userID + "\x00" + habitID + "\x00" + day
}

// Claim inserts a new incomplete record for (user, habit, day-of-now)
// iff none exists yet. The second return is false when the key was
// already claimed — the caller must not send.
func (s *ReminderStore) Claim(userID, habitID, habitName string, now time.Time) (*ReminderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := reminderKey(userID, habitID, DayKey(now))
	if _, ok := s.data[key]; ok {
		return nil, false
	}

	rec := ReminderRecord{
		ID:         uuid.New(),
		UserID:     userID,
		HabitID:    habitID,
		HabitName:  habitName,
		RemindedAt: now,
	}
	s.data[key] = rec
	s.byID[rec.ID] = key
	copy := rec
	return &copy, true
}

// Release drops a claimed record after a failed delivery so the next
// firing can claim the key again.
func (s *ReminderStore) Release(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	delete(s.data, key)
}

// Has reports whether a record exists for (user, habit, day).
func (s *ReminderStore) Has(userID, habitID, day string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[reminderKey(userID, habitID, day)]
	return ok
}

// PendingForDay returns copies of incomplete records reminded on the
// given day, oldest first. Records from prior days never show up here.
func (s *ReminderStore) PendingForDay(day string) []ReminderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ReminderRecord, 0)
	for _, rec := range s.data {
		if !rec.Completed && rec.Day() == day {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindedAt.Before(out[j].RemindedAt) })
	return out
}

// CompleteOnce flips Completed false→true for the record. Returns false
// if the record is unknown or already complete, so two concurrent
// evaluations can't both win.
func (s *ReminderStore) CompleteOnce(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.byID[id]
	if !ok {
		return false
	}
	rec := s.data[key]
	if rec.Completed {
		return false
	}
	rec.Completed = true
	s.data[key] = rec
	return true
}

// PruneBefore removes records reminded before the cutoff and returns
// them for archival, oldest first.
func (s *ReminderStore) PruneBefore(cutoff time.Time) []ReminderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ReminderRecord, 0)
	for key, rec := range s.data {
		if rec.RemindedAt.Before(cutoff) {
			out = append(out, rec)
			delete(s.data, key)
			delete(s.byID, rec.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindedAt.Before(out[j].RemindedAt) })
	return out
}

func (s *ReminderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *ReminderStore) GetData() []ReminderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReminderRecord, 0, len(s.data))
	for _, rec := range s.data {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindedAt.Before(out[j].RemindedAt) })
	return out
}

func (s *ReminderStore) PutData(records []ReminderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]ReminderRecord, len(records))
	s.byID = make(map[uuid.UUID]string, len(records))
	for _, rec := range records {
		key := reminderKey(rec.UserID, rec.HabitID, rec.Day())
		s.data[key] = rec
		s.byID[rec.ID] = key
	}
}
