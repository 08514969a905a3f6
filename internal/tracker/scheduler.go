package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"github.com/roylee0704/gron/xtime"
	"go.uber.org/atomic"

	"lifetracker/internal/providers"
	"lifetracker/internal/structures"
	"lifetracker/internal/tracker/interfaces"
)

// Scheduler drives the cron cadences: daily reminder and mood
// broadcasts, the completion check loop, the archive sweep and the
// persistence save. A firing that overlaps a still-running previous
// one is skipped; idempotence rests on the ledger guards, not here.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	fileManager *FileManager
	reminder    *ReminderJob
	praise      *PraiseJob
	mood        *MoodJob
	archive     *Archive
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, fileManager *FileManager, reminder *ReminderJob, praise *PraiseJob, mood *MoodJob, archive *Archive) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		metrics:     metrics,
		fileManager: fileManager,
		reminder:    reminder,
		praise:      praise,
		mood:        mood,
		archive:     archive,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	notif := s.config.Notifications

	s.cron.AddFunc(gron.Every(1*xtime.Day).At(notif.ReminderAt),
		s.guarded(JobReminder, s.reminder.Run))

	s.cron.AddFunc(gron.Every(notif.CompletionInterval),
		s.guarded(JobPraise, s.praise.Run))

	s.cron.AddFunc(gron.Every(1*xtime.Day).At(notif.MoodCheckinAt),
		s.guarded(JobMood, s.mood.Run))

	archiveAt := s.config.Archive.RunAt
	if archiveAt == "" {
		archiveAt = "03:00"
	}
	s.cron.AddFunc(gron.Every(1*xtime.Day).At(archiveAt),
		s.guarded(JobArchive, func(_ context.Context) { s.archive.Run() }))

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

// guarded wraps a job with the skip-if-running policy and duration
// metrics. No queuing: a skipped firing is simply gone.
func (s *Scheduler) guarded(name string, run func(ctx context.Context)) func() {
	inflight := atomic.NewBool(false)
	return func() {
		if !inflight.CompareAndSwap(false, true) {
			s.metrics.IncJobSkipped(name)
			s.logger.Warnf(providers.TypeJob, "Skipping %s: previous run still in flight", name)
			return
		}
		defer inflight.Store(false)

		start := time.Now()
		s.logger.Infof(providers.TypeJob, "Running %s job...", name)
		run(context.Background())
		s.metrics.ObserveJobDuration(name, time.Since(start))
		s.logger.Infof(providers.TypeJob, "Finished %s job", name)
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting ledgers to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}
