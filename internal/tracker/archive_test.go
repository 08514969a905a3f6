package tracker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetracker/internal/models"
	"lifetracker/internal/services"
	"lifetracker/internal/structures"
	"lifetracker/internal/testutil"
)

func newArchiveFixture(t *testing.T, dir string, retention time.Duration) (*Archive, services.TrackerServiceInterface) {
	t.Helper()
	conf := &structures.Config{}
	conf.Archive.Dir = dir
	conf.Archive.Retention = retention
	svc := services.NewTrackerService()
	a := NewArchive(conf, svc, &testutil.MockCompressor{}, &testutil.MockLogger{})
	return a, svc
}

func readArchiveFile(t *testing.T, path string) ArchiveFile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var af ArchiveFile
	require.NoError(t, json.Unmarshal(data, &af))
	return af
}

func TestArchive_MovesAgedRecordsOut(t *testing.T) {
	dir := t.TempDir()
	a, svc := newArchiveFixture(t, dir, 72*time.Hour)

	old := time.Now().Add(-7 * 24 * time.Hour)
	svc.ClaimReminder("u1", "h1", "Read", old)
	svc.ClaimReminder("u1", "h2", "Run", old)
	svc.ClaimReminder("u1", "h1", "Read", time.Now())

	a.Run()

	assert.Equal(t, 1, svc.ReminderCount())

	day := models.DayKey(old)
	af := readArchiveFile(t, filepath.Join(dir, "reminders-"+day+".json.zst"))
	assert.Equal(t, day, af.Day)
	assert.Len(t, af.Records, 2)
}

func TestArchive_KeepsRecordsWithinRetention(t *testing.T) {
	dir := t.TempDir()
	a, svc := newArchiveFixture(t, dir, 72*time.Hour)

	svc.ClaimReminder("u1", "h1", "Read", time.Now().Add(-24*time.Hour))
	svc.ClaimReminder("u1", "h2", "Run", time.Now())

	a.Run()

	assert.Equal(t, 2, svc.ReminderCount())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchive_AppendsToExistingDayFile(t *testing.T) {
	dir := t.TempDir()
	a, svc := newArchiveFixture(t, dir, time.Hour)

	old := time.Now().Add(-48 * time.Hour)
	svc.ClaimReminder("u1", "h1", "Read", old)
	a.Run()

	svc.ClaimReminder("u1", "h2", "Run", old)
	a.Run()

	day := models.DayKey(old)
	af := readArchiveFile(t, filepath.Join(dir, "reminders-"+day+".json.zst"))
	assert.Len(t, af.Records, 2)
}

func TestArchive_SplitsRecordsByDay(t *testing.T) {
	dir := t.TempDir()
	a, svc := newArchiveFixture(t, dir, time.Hour)

	d1 := time.Now().Add(-5 * 24 * time.Hour)
	d2 := time.Now().Add(-6 * 24 * time.Hour)
	svc.ClaimReminder("u1", "h1", "Read", d1)
	svc.ClaimReminder("u1", "h1", "Read", d2)

	a.Run()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestArchive_DisabledWithoutDir(t *testing.T) {
	a, svc := newArchiveFixture(t, "", 72*time.Hour)

	svc.ClaimReminder("u1", "h1", "Read", time.Now().Add(-7*24*time.Hour))
	a.Run()

	// Nothing pruned when archival is off.
	assert.Equal(t, 1, svc.ReminderCount())
}
