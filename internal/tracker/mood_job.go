package tracker

import (
	"context"

	"lifetracker/internal/messaging"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
)

const JobMood = "mood_checkin"

// MoodJob broadcasts the evening mood prompt with the five score
// options. It reads nothing but the user directory; the upsert guard
// lives in the response handler, not here.
type MoodJob struct {
	service  services.TrackerServiceInterface
	notifier messaging.NotifierInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewMoodJob(service services.TrackerServiceInterface, notifier messaging.NotifierInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *MoodJob {
	return &MoodJob{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

func (j *MoodJob) Run(ctx context.Context) {
	options := messaging.MoodOptions()

	for _, user := range j.service.NotifiableUsers() {
		err := j.notifier.Send(ctx, messaging.Notification{
			RecipientID: user.ID,
			TemplateKey: messaging.KeyAskMood,
			Language:    user.Language,
			Options:     options,
		})
		if err != nil {
			j.metrics.IncNotificationErrors(JobMood)
			j.logger.Errorf(providers.TypeJob, "Error sending mood checkin to %s: %s", user.ID, err)
			continue
		}
		j.metrics.IncNotificationsSent(JobMood)
		j.logger.Infof(providers.TypeJob, "Sent mood checkin to %s", user.ID)
	}
}
