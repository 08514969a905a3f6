package tracker

import (
	"context"
	"time"

	"lifetracker/internal/messaging"
	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
)

const JobPraise = "habit_praise"

// PraiseJob scans today's incomplete reminder records and praises the
// user once the habit shows up as completed in the current snapshot.
// CompleteOnce flips the record before the send, so overlapping runs
// can't praise the same record twice.
type PraiseJob struct {
	service  services.TrackerServiceInterface
	notifier messaging.NotifierInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewPraiseJob(service services.TrackerServiceInterface, notifier messaging.NotifierInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *PraiseJob {
	return &PraiseJob{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (j *PraiseJob) Run(ctx context.Context) {
	today := models.DayKey(j.now())

	for _, rec := range j.service.PendingReminders(today) {
		if err := j.checkRecord(ctx, rec, today); err != nil {
			// Record stays pending for the next pass.
			j.logger.Errorf(providers.TypeJob, "Error checking completion for %s: %s", rec.UserID, err)
		}
	}
}

func (j *PraiseJob) checkRecord(ctx context.Context, rec models.ReminderRecord, today string) error {
	snapshot, ok := j.service.GetSnapshot(rec.UserID)
	if !ok {
		return nil
	}

	var habit *models.Habit
	for i := range snapshot.Habits {
		if snapshot.Habits[i].ID == rec.HabitID {
			habit = &snapshot.Habits[i]
			break
		}
	}
	if habit == nil || !habit.CompletedOn(today) {
		return nil
	}

	if !j.service.CompleteReminder(rec.ID) {
		// Lost the race to a concurrent evaluation.
		return nil
	}

	user, ok := j.service.GetUser(rec.UserID)
	if !ok {
		return nil
	}

	err := j.notifier.Send(ctx, messaging.Notification{
		RecipientID: user.ID,
		TemplateKey: messaging.KeyHabitCompleted,
		Params:      map[string]string{"habit": habit.DisplayName()},
		Language:    user.Language,
	})
	if err != nil {
		j.metrics.IncNotificationErrors(JobPraise)
		return err
	}

	j.metrics.IncNotificationsSent(JobPraise)
	j.logger.Infof(providers.TypeJob, "Sent praise to %s for habit %s", user.ID, habit.Name)
	return nil
}
