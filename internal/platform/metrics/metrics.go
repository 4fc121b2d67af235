package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersCreated         prometheus.Counter
	AssessmentsSubmitted *prometheus.CounterVec
	ComplianceToggles    *prometheus.CounterVec
	RequestLatency       *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmguard_users_created_total",
			Help: "Total number of users created in the system",
		}),
		AssessmentsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "farmguard_assessments_submitted_total",
			Help: "Total assessments submitted, labelled by derived risk level",
		}, []string{"risk_level"}),
		ComplianceToggles: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "farmguard_compliance_toggles_total",
			Help: "Total compliance item toggles, labelled by resulting status",
		}, []string{"status"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "farmguard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
	}
}

// IncrementUsersCreated increments the users created counter by 1.
func (m *Metrics) IncrementUsersCreated() {
	if m != nil {
		m.UsersCreated.Inc()
	}
}

// ObserveAssessment records a submitted assessment and its risk level.
func (m *Metrics) ObserveAssessment(riskLevel string) {
	if m != nil {
		m.AssessmentsSubmitted.WithLabelValues(riskLevel).Inc()
	}
}

// ObserveComplianceToggle records a compliance state change.
func (m *Metrics) ObserveComplianceToggle(status bool) {
	if m != nil {
		label := "false"
		if status {
			label = "true"
		}
		m.ComplianceToggles.WithLabelValues(label).Inc()
	}
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
