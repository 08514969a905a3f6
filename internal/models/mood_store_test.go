package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodStore_UpsertInsert(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()

	entry := s.Upsert("u1", now, 4, "")
	assert.Equal(t, 4, entry.Score)
	assert.Equal(t, Midnight(now), entry.Date)
	assert.Equal(t, 1, s.Len())
}

func TestMoodStore_UpsertOverwritesSameDay(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()

	first := s.Upsert("u1", now, 2, "")
	second := s.Upsert("u1", now.Add(time.Minute), 5, "")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, first.ID, second.ID)

	got, ok := s.Get("u1", now)
	require.True(t, ok)
	assert.Equal(t, 5, got.Score)
}

func TestMoodStore_UpsertKeepsNoteWhenEmpty(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()

	s.Upsert("u1", now, 3, "long day")
	s.Upsert("u1", now, 4, "")

	got, _ := s.Get("u1", now)
	assert.Equal(t, "long day", got.Note)
}

func TestMoodStore_SeparateDaysSeparateEntries(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()

	s.Upsert("u1", now.AddDate(0, 0, -1), 2, "")
	s.Upsert("u1", now, 5, "")

	assert.Equal(t, 2, s.Len())
}

func TestMoodStore_GetMissing(t *testing.T) {
	s := NewMoodStore()
	_, ok := s.Get("u1", time.Now())
	assert.False(t, ok)
}

func TestMoodStore_ListSince(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()

	s.Upsert("u1", now.AddDate(0, 0, -40), 1, "")
	s.Upsert("u1", now.AddDate(0, 0, -2), 3, "")
	s.Upsert("u1", now, 5, "")
	s.Upsert("u2", now, 4, "")

	entries := s.ListSince("u1", now.AddDate(0, 0, -30))
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Score)
	assert.Equal(t, 5, entries[1].Score)
}

func TestMoodStore_PutDataRoundtrip(t *testing.T) {
	s := NewMoodStore()
	now := time.Now()
	s.Upsert("u1", now, 4, "note")

	restored := NewMoodStore()
	restored.PutData(s.GetData())

	got, ok := restored.Get("u1", now)
	require.True(t, ok)
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, "note", got.Note)
}

func TestValidMoodScore(t *testing.T) {
	assert.False(t, ValidMoodScore(0))
	assert.True(t, ValidMoodScore(1))
	assert.True(t, ValidMoodScore(5))
	assert.False(t, ValidMoodScore(6))
}
