package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricAlertsGenerated      = "alerts.generated"
	MetricDetectionFailed      = "detection.failed"
	MetricDispatches           = "notifications.dispatched"
	MetricAlertsDelivered      = "notifications.alerts"
	MetricHistoryWriteFailed   = "notifications.history_failed"
	MetricCircuitBreakerState  = "circuit_breaker.state"
	MetricSchedulerRuns        = "scheduler.runs"
	MetricSchedulerUsers       = "scheduler.users"
	MetricGenerateDuration     = "notifications.generate"
	MetricSchedulerRunDuration = "scheduler.run"
)

const detectionDurationMetricPrefix = "detection."

// DetectionDurationMetric names the duration metric of one detector
func DetectionDurationMetric(detector string) string {
	return detectionDurationMetricPrefix + detector
}

type PrometheusMetrics struct {
	alertsGenerated     *prometheus.CounterVec
	detectionFailures   *prometheus.CounterVec
	detectionDuration   *prometheus.HistogramVec
	generateDuration    prometheus.Histogram
	dispatches          *prometheus.CounterVec
	alertsDelivered     *prometheus.CounterVec
	historyWriteFailed  prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	schedulerRuns       *prometheus.CounterVec
	schedulerDuration   prometheus.Histogram
	schedulerUsers      prometheus.Gauge
}

func NewPrometheusMetricsWithRegistry(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)
	return &PrometheusMetrics{
		alertsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_generated_total",
				Help: "Total number of alerts produced by the detectors",
			},
			[]string{"type", "severity"},
		),
		detectionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detection_failures_total",
				Help: "Total number of detector runs that failed to read their snapshot",
			},
			[]string{"detector"},
		),
		detectionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "detection_duration_milliseconds",
				Help:    "Detector duration in milliseconds, snapshot fetch included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"detector"},
		),
		generateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notification_generation_duration_milliseconds",
				Help:    "Duration of building one user's notification package",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_dispatches_total",
				Help: "Total number of channel deliveries attempted",
			},
			[]string{"channel", "status"},
		),
		alertsDelivered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_alerts_total",
				Help: "Total number of alerts counted as sent or failed per channel",
			},
			[]string{"channel", "status"},
		),
		historyWriteFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notification_history_write_failures_total",
				Help: "Total number of delivery history rows that could not be stored",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"channel"},
		),
		schedulerRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_scheduler_runs_total",
				Help: "Total number of scheduled notification runs",
			},
			[]string{"status"},
		),
		schedulerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "notification_scheduler_run_duration_seconds",
				Help:    "Duration of one scheduled run over all users",
				Buckets: prometheus.DefBuckets,
			},
		),
		schedulerUsers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "notification_scheduler_users",
				Help: "Number of users processed by the last scheduled run",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAlertsGenerated:
		m.alertsGenerated.WithLabelValues(tags["type"], tags["severity"]).Inc()
	case MetricDetectionFailed:
		m.detectionFailures.WithLabelValues(tags["detector"]).Inc()
	case MetricDispatches:
		m.dispatches.WithLabelValues(tags["channel"], tags["status"]).Inc()
	case MetricHistoryWriteFailed:
		m.historyWriteFailed.Inc()
	case MetricSchedulerRuns:
		m.schedulerRuns.WithLabelValues(tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricGenerateDuration:
		m.generateDuration.Observe(float64(duration.Milliseconds()))
	case MetricSchedulerRunDuration:
		m.schedulerDuration.Observe(duration.Seconds())
	default:
		if detector, ok := strings.CutPrefix(name, detectionDurationMetricPrefix); ok {
			m.detectionDuration.WithLabelValues(detector).Observe(float64(duration.Milliseconds()))
		}
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAlertsDelivered:
		if value > 0 {
			m.alertsDelivered.WithLabelValues(tags["channel"], tags["status"]).Add(value)
		}
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["channel"]).Set(value)
	case MetricSchedulerUsers:
		m.schedulerUsers.Set(value)
	}
}
