package models

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MoodStore keeps at most one entry per (user, day). Upsert is atomic
// under the store lock: two concurrent submissions for the same day
// end up as a single entry holding the later score.
type MoodStore struct {
	mu   sync.RWMutex
	data map[string]MoodEntry // userID+day → entry
}

func NewMoodStore() *MoodStore {
	return &MoodStore{
		data: make(map[string]MoodEntry),
	}
}

func moodKey(userID, day string) string {
	return userID + "\x00" + day
}

// Upsert stores the score for (user, day-of-at): overwrite if an entry
// exists, insert otherwise. Returns the stored entry.
func (s *MoodStore) Upsert(userID string, at time.Time, score int, note string) MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := Midnight(at)
	key := moodKey(userID, DayKey(at))
	if entry, ok := s.data[key]; ok {
		entry.Score = score
		if note != "" {
			entry.Note = note
		}
		s.data[key] = entry
		return entry
	}

	entry := MoodEntry{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Score:  score,
		Note:   note,
	}
	s.data[key] = entry
	return entry
}

// Get returns the entry for (user, day-of-at), if any.
func (s *MoodStore) Get(userID string, at time.Time) (*MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.data[moodKey(userID, DayKey(at))]
	if !ok {
		return nil, false
	}
	copy := entry
	return &copy, true
}

// ListSince returns the user's entries on or after from, date order.
func (s *MoodStore) ListSince(userID string, from time.Time) []MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MoodEntry, 0)
	for _, entry := range s.data {
		if entry.UserID == userID && !entry.Date.Before(from) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *MoodStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MoodStore) GetData() []MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MoodEntry, 0, len(s.data))
	for _, entry := range s.data {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *MoodStore) PutData(entries []MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]MoodEntry, len(entries))
	for _, entry := range entries {
		s.data[moodKey(entry.UserID, DayKey(entry.Date))] = entry
	}
}
