package providers

import (
	"fmt"
	"time"

	"github.com/gookit/validate"

	"lifetracker/internal/structures"
)

// CnfValidator checks a loaded config against the struct tags in
// structures plus the cross-field rules the tags can't express.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	if _, err := time.Parse("15:04", cv.conf.Notifications.ReminderAt); err != nil {
		return fmt.Errorf("notifications.reminderAt: want HH:MM, got %q", cv.conf.Notifications.ReminderAt)
	}
	if _, err := time.Parse("15:04", cv.conf.Notifications.MoodCheckinAt); err != nil {
		return fmt.Errorf("notifications.moodCheckinAt: want HH:MM, got %q", cv.conf.Notifications.MoodCheckinAt)
	}
	if cv.conf.Archive.RunAt != "" {
		if _, err := time.Parse("15:04", cv.conf.Archive.RunAt); err != nil {
			return fmt.Errorf("archive.runAt: want HH:MM, got %q", cv.conf.Archive.RunAt)
		}
	}
	return nil
}
