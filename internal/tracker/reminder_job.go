package tracker

import (
	"context"
	"time"

	"lifetracker/internal/messaging"
	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
)

const JobReminder = "habit_reminder"

// ReminderJob nags users about habits not yet completed today.
// The ledger Claim is the only idempotence guard: one record and one
// message per (user, habit, day), no matter how often the job fires.
type ReminderJob struct {
	service  services.TrackerServiceInterface
	notifier messaging.NotifierInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewReminderJob(service services.TrackerServiceInterface, notifier messaging.NotifierInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *ReminderJob {
	return &ReminderJob{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (j *ReminderJob) Run(ctx context.Context) {
	for _, user := range j.service.NotifiableUsers() {
		j.runUser(ctx, user)
	}
}

func (j *ReminderJob) runUser(ctx context.Context, user models.User) {
	snapshot, ok := j.service.GetSnapshot(user.ID)
	if !ok || len(snapshot.Habits) == 0 {
		// Never synced: nothing to remind about.
		return
	}

	now := j.now()
	today := models.DayKey(now)

	for i := range snapshot.Habits {
		habit := &snapshot.Habits[i]
		if !habit.Valid() {
			j.logger.Warnf(providers.TypeJob, "Skipping malformed habit for %s", user.ID)
			continue
		}
		if habit.CompletedOn(today) {
			continue
		}

		rec, claimed := j.service.ClaimReminder(user.ID, habit.ID, habit.Name, now)
		if !claimed {
			// Already reminded today.
			continue
		}

		err := j.notifier.Send(ctx, messaging.Notification{
			RecipientID: user.ID,
			TemplateKey: messaging.KeyHabitReminder,
			Params:      map[string]string{"habit": habit.DisplayName()},
			Language:    user.Language,
		})
		if err != nil {
			// Give the key back so the next firing retries delivery.
			j.service.ReleaseReminder(rec.ID)
			j.metrics.IncNotificationErrors(JobReminder)
			j.logger.Errorf(providers.TypeJob, "Reminder delivery failed for %s habit %s: %s", user.ID, habit.ID, err)
			continue
		}

		j.metrics.IncNotificationsSent(JobReminder)
		j.logger.Infof(providers.TypeJob, "Sent reminder to %s for habit %s", user.ID, habit.Name)
	}
}
