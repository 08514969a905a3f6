package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type NotificationsConfig struct {
	ReminderAt         string        `yaml:"reminderAt" validate:"required"`
	MoodCheckinAt      string        `yaml:"moodCheckinAt" validate:"required"`
	CompletionInterval time.Duration `yaml:"completionInterval" validate:"required|min:1"`
	SpendFloor         float64       `yaml:"spendFloor"`
	SpendRatio         float64       `yaml:"spendRatio"`
	SpendWindowDays    int           `yaml:"spendWindowDays"`
}

type NotifierConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ArchiveConfig struct {
	Dir       string        `yaml:"dir"`
	Retention time.Duration `yaml:"retention"`
	RunAt     string        `yaml:"runAt"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName       string
	Debug         bool
	Path          string
	WebServer     Server              `yaml:"webServer"`
	Persistence   Persistence         `yaml:"persistence"`
	Logger        LoggerConfig        `yaml:"logger"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Notifier      NotifierConfig      `yaml:"notifier"`
	Archive       ArchiveConfig       `yaml:"archive"`
	Cache         CacheConfig         `yaml:"cache"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}
