package testutil

import (
	"context"
	"sync"
	"time"

	"lifetracker/internal/messaging"
	"lifetracker/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Errors returns the recorded error-level entries.
func (m *MockLogger) Errors() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, 0)
	for _, e := range m.Logs {
		if e.Level == "error" {
			out = append(out, e)
		}
	}
	return out
}

// MockNotifier implements messaging.NotifierInterface, recording every
// send. FailFor makes sends to the listed recipients fail.
type MockNotifier struct {
	mu      sync.Mutex
	Sent    []messaging.Notification
	FailFor map[string]error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{FailFor: make(map[string]error)}
}

func (m *MockNotifier) Send(_ context.Context, n messaging.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailFor[n.RecipientID]; ok {
		return err
	}
	m.Sent = append(m.Sent, n)
	return nil
}

// SentTo returns the notifications delivered to one recipient.
func (m *MockNotifier) SentTo(recipientID string) []messaging.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]messaging.Notification, 0)
	for _, n := range m.Sent {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}

func (m *MockNotifier) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// the notification-level calls the tests assert on.
type MockMetrics struct {
	mu         sync.Mutex
	Sent       map[string]int
	SendErrors map[string]int
	Skipped    map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Sent:       make(map[string]int),
		SendErrors: make(map[string]int),
		Skipped:    make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveJobDuration(_ string, _ time.Duration)     {}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration)       {}

func (m *MockMetrics) IncNotificationsSent(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent[kind]++
}

func (m *MockMetrics) IncNotificationErrors(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendErrors[kind]++
}

func (m *MockMetrics) IncJobSkipped(job string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Skipped[job]++
}

// MockCompressor implements interfaces.CompressorInterface with
// injectable behavior; defaults to identity.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}
