package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"lifetracker/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "LT_LOG_LEVEL")
	viper.BindEnv("notifications.reminderAt", "LT_REMINDER_AT")
	viper.BindEnv("notifications.moodCheckinAt", "LT_MOOD_CHECKIN_AT")
	viper.BindEnv("notifications.completionInterval", "LT_COMPLETION_INTERVAL")
	viper.BindEnv("notifier.url", "LT_NOTIFIER_URL")
	viper.BindEnv("persistence.saveInterval", "LT_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "LT_CACHE_ENABLED")
	viper.BindEnv("cache.size", "LT_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	applyNotificationDefaults(&conf)

	conf.AppName = "LifeTrackerDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

// applyNotificationDefaults fills the threshold knobs the config may
// omit: the legacy $50 floor, 1.5× ratio and 30-day window.
func applyNotificationDefaults(conf *structures.Config) {
	if conf.Notifications.SpendFloor <= 0 {
		conf.Notifications.SpendFloor = 50
	}
	if conf.Notifications.SpendRatio <= 0 {
		conf.Notifications.SpendRatio = 1.5
	}
	if conf.Notifications.SpendWindowDays <= 0 {
		conf.Notifications.SpendWindowDays = 30
	}
}
