package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// Methods are nil-safe so unit tests can pass a zero value or nil.
type Metrics struct {
	EligibilityChecks *prometheus.CounterVec
	StudentsCreated   prometheus.Counter
	StudentsDeleted   prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
// Call once per process.
func New() *Metrics {
	return &Metrics{
		EligibilityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admission_eligibility_checks_total",
			Help: "Total number of eligibility evaluations, labeled by resulting status",
		}, []string{"status"}),
		StudentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admission_students_created_total",
			Help: "Total number of student admission records persisted",
		}),
		StudentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admission_students_deleted_total",
			Help: "Total number of student admission records deleted",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admission_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// IncEligibilityCheck records one engine evaluation with its final status.
func (m *Metrics) IncEligibilityCheck(status string) {
	if m == nil || m.EligibilityChecks == nil {
		return
	}
	m.EligibilityChecks.WithLabelValues(status).Inc()
}

// IncStudentsCreated increments the persisted-records counter by 1.
func (m *Metrics) IncStudentsCreated() {
	if m == nil || m.StudentsCreated == nil {
		return
	}
	m.StudentsCreated.Inc()
}

// IncStudentsDeleted increments the deleted-records counter by 1.
func (m *Metrics) IncStudentsDeleted() {
	if m == nil || m.StudentsDeleted == nil {
		return
	}
	m.StudentsDeleted.Inc()
}

// ObserveRequestDuration records one request's latency.
func (m *Metrics) ObserveRequestDuration(method, route string, d time.Duration) {
	if m == nil || m.RequestDuration == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
