package models

import (
	"sync"
	"time"
)

// SnapshotStore holds the latest synced UserData per user. The sync
// endpoint is its sole writer; jobs only read. A snapshot may be stale
// by up to one sync interval, which the jobs tolerate.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[string]UserData
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		data: make(map[string]UserData),
	}
}

// Put replaces the user's snapshot wholesale. No merging.
func (s *SnapshotStore) Put(userID string, data UserData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.UpdatedAt = time.Now()
	s.data[userID] = data
}

// Get returns a deep copy of the user's snapshot. Users that never
// synced have no snapshot; callers skip them silently.
func (s *SnapshotStore) Get(userID string) (*UserData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.data[userID]
	if !ok {
		return nil, false
	}
	out := copyUserData(d)
	return &out, true
}

func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *SnapshotStore) GetData() map[string]UserData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]UserData, len(s.data))
	for k, v := range s.data {
		out[k] = copyUserData(v)
	}
	return out
}

func (s *SnapshotStore) PutData(data map[string]UserData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]UserData, len(data))
	for k, v := range data {
		s.data[k] = copyUserData(v)
	}
}

func copyUserData(d UserData) UserData {
	out := UserData{UpdatedAt: d.UpdatedAt}
	if d.Habits != nil {
		out.Habits = make([]Habit, len(d.Habits))
		for i, h := range d.Habits {
			out.Habits[i] = h
			if h.CompletedDates != nil {
				out.Habits[i].CompletedDates = append([]string(nil), h.CompletedDates...)
			}
		}
	}
	if d.Transactions != nil {
		out.Transactions = append([]Transaction(nil), d.Transactions...)
	}
	return out
}
