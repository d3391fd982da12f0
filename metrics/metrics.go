package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "esantiye"

// Metrics holds every collector the server exports
type Metrics struct {
	Requests   *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	Statements *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_statements_total",
			Help:      "SQL statements executed by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	reg.MustRegister(m.Requests, m.Latency, m.Statements)
	return m
}

// ObserveStatement records one DAL statement. It satisfies
// database.StatementObserver.
func (m *Metrics) ObserveStatement(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Statements.WithLabelValues(kind, outcome).Inc()
}
