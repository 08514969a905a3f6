package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lifetracker/internal/services"
	"lifetracker/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncNotificationsSent(kind string)
	IncNotificationErrors(kind string)
	ObserveJobDuration(job string, duration time.Duration)
	IncJobSkipped(job string)
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	notificationsSent   *prometheus.CounterVec
	notificationErrors  *prometheus.CounterVec
	jobDuration         *prometheus.HistogramVec
	jobsSkipped         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncNotificationsSent(kind string) {
	m.notificationsSent.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) IncNotificationErrors(kind string) {
	m.notificationErrors.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObserveJobDuration(job string, duration time.Duration) {
	m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncJobSkipped(job string) {
	m.jobsSkipped.WithLabelValues(job).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.TrackerServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lt_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lt_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lt_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lt_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		notificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lt_notifications_sent_total",
			Help: "Outbound notifications delivered, by kind",
		}, []string{"kind"}),

		notificationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lt_notification_errors_total",
			Help: "Outbound notification delivery failures, by kind",
		}, []string{"kind"}),

		jobDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lt_job_duration_seconds",
			Help:    "Scheduled job duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),

		jobsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lt_jobs_skipped_total",
			Help: "Job firings skipped because the previous run was still in flight",
		}, []string{"job"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lt_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "lt_users_total",
		Help: "Total number of registered users",
	}, func() float64 {
		return float64(service.UserCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "lt_reminder_records",
		Help: "Reminder records currently in the live ledger",
	}, func() float64 {
		return float64(service.ReminderCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncNotificationsSent(_ string)                     {}
func (n *noopMetrics) IncNotificationErrors(_ string)                    {}
func (n *noopMetrics) ObserveJobDuration(_ string, _ time.Duration)      {}
func (n *noopMetrics) IncJobSkipped(_ string)                            {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
