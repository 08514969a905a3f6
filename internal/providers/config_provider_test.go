package providers_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifetracker/internal/providers"
	"lifetracker/internal/structures"
)

const configYAML = `webServer:
  host: 127.0.0.1
  port: 8080
persistence:
  filePath: /tmp/storage.dat
  saveInterval: 1m
logger:
  level: info
  mode: 420
  dir: /tmp
notifications:
  reminderAt: "20:00"
  moodCheckinAt: "21:00"
  completionInterval: 30m
notifier:
  url: http://localhost:9000/notify
  timeout: 5s
`

func TestNewConfigProvider_LoadsAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

	conf, err := providers.NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 8080, conf.WebServer.Port)
	assert.Equal(t, "20:00", conf.Notifications.ReminderAt)
	assert.Equal(t, 30*time.Minute, conf.Notifications.CompletionInterval)
	assert.Equal(t, "http://localhost:9000/notify", conf.Notifier.URL)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "LifeTrackerDaemon", conf.AppName)

	// Threshold knobs absent from the file get the legacy defaults.
	assert.Equal(t, float64(50), conf.Notifications.SpendFloor)
	assert.Equal(t, 1.5, conf.Notifications.SpendRatio)
	assert.Equal(t, 30, conf.Notifications.SpendWindowDays)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := providers.NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
