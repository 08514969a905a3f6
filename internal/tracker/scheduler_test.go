package tracker

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetracker/internal/services"
	"lifetracker/internal/structures"
	"lifetracker/internal/testutil"
)

func newSchedulerFixture(t *testing.T) (*Scheduler, services.TrackerServiceInterface, *testutil.MockMetrics) {
	t.Helper()
	conf := &structures.Config{}
	conf.Persistence.FilePath = filepath.Join(t.TempDir(), "storage.dat")
	conf.Persistence.SaveInterval = time.Hour
	conf.Notifications.ReminderAt = "20:00"
	conf.Notifications.MoodCheckinAt = "21:00"
	conf.Notifications.CompletionInterval = 30 * time.Minute

	svc := services.NewTrackerService()
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}
	notifier := testutil.NewMockNotifier()
	fm := NewFileManager(&testutil.MockCompressor{}, svc, logger)

	s := NewScheduler(conf, logger, metrics, fm,
		NewReminderJob(svc, notifier, logger, metrics),
		NewPraiseJob(svc, notifier, logger, metrics),
		NewMoodJob(svc, notifier, logger, metrics),
		NewArchive(conf, svc, &testutil.MockCompressor{}, logger),
	).(*Scheduler)
	return s, svc, metrics
}

func TestScheduler_PersistAndRestore(t *testing.T) {
	s, svc, _ := newSchedulerFixture(t)
	svc.EnsureUser("u1")
	svc.EnsureUser("u2")

	require.NoError(t, s.Persist())

	s2, svc2, _ := newSchedulerFixture(t)
	s2.config.Persistence.FilePath = s.config.Persistence.FilePath
	require.NoError(t, s2.Restore())

	assert.Equal(t, 2, svc2.UserCount())
}

func TestScheduler_RestoreWithoutFile(t *testing.T) {
	s, svc, _ := newSchedulerFixture(t)
	require.NoError(t, s.Restore())
	assert.Zero(t, svc.UserCount())
}

func TestScheduler_GuardedSkipsOverlappingRun(t *testing.T) {
	s, _, metrics := newSchedulerFixture(t)

	block := make(chan struct{})
	started := make(chan struct{})
	runs := 0
	fn := s.guarded("test_job", func(_ context.Context) {
		runs++
		close(started)
		<-block
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()
	}()
	<-started

	// Fires while the first run is still in flight.
	fn()
	close(block)
	wg.Wait()

	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, metrics.Skipped["test_job"])
}

func TestScheduler_GuardedRunsAgainAfterCompletion(t *testing.T) {
	s, _, metrics := newSchedulerFixture(t)

	runs := 0
	fn := s.guarded("test_job", func(_ context.Context) { runs++ })

	fn()
	fn()

	assert.Equal(t, 2, runs)
	assert.Zero(t, metrics.Skipped["test_job"])
}

func TestScheduler_InitAndStop(t *testing.T) {
	s, _, _ := newSchedulerFixture(t)
	s.Init()
	defer s.Stop()
	assert.NotNil(t, s.cron)
}
