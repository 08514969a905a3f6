package models

import (
	"sort"
	"sync"
	"time"
)

// UserStore is the in-memory user directory.
// Thread-safe: all public methods acquire s.mu internally.
type UserStore struct {
	mu   sync.RWMutex
	data map[string]User
}

func NewUserStore() *UserStore {
	return &UserStore{
		data: make(map[string]User),
	}
}

// Ensure returns the stored user, creating one with defaults on first
// contact (notifications on, language ru).
func (s *UserStore) Ensure(id string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.data[id]; ok {
		return u
	}
	u := User{
		ID:                   id,
		Language:             LangRU,
		NotificationsEnabled: true,
		CreatedAt:            time.Now(),
	}
	s.data[id] = u
	return u
}

func (s *UserStore) Get(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.data[id]
	if !ok {
		return nil, false
	}
	copy := u
	return &copy, true
}

func (s *UserStore) SetNotifications(id string, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[id]
	if !ok {
		return false
	}
	u.NotificationsEnabled = enabled
	s.data[id] = u
	return true
}

func (s *UserStore) SetLanguage(id, lang string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[id]
	if !ok || !KnownLanguage(lang) {
		return false
	}
	u.Language = lang
	s.data[id] = u
	return true
}

// TouchSync records a successful sync: last-sync timestamp and the
// client-reported timezone offset (minutes).
func (s *UserStore) TouchSync(id string, offsetMinutes int, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.data[id]
	if !ok {
		return false
	}
	u.LastSyncAt = &at
	u.TimezoneOffset = offsetMinutes
	s.data[id] = u
	return true
}

// ListNotifiable returns a stable-ordered copy of all users with
// notifications enabled. Disabled users are filtered here so jobs
// never touch their ledgers at all.
func (s *UserStore) ListNotifiable() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.data))
	for _, u := range s.data {
		if u.NotificationsEnabled {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *UserStore) GetData() map[string]User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]User, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

func (s *UserStore) PutData(data map[string]User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]User, len(data))
	for k, v := range data {
		s.data[k] = v
	}
}
