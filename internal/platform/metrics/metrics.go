package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"transport-management-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal     *prometheus.CounterVec
	ResponseTimeHistogram *prometheus.HistogramVec
	TransitionsTotal      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tms_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		ResponseTimeHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tms_http_response_time_seconds",
				Help:    "Histogram of response times",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tms_document_transitions_total",
				Help: "Document creations and status changes by resource and target status",
			},
			[]string{"resource", "to"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.ResponseTimeHistogram,
		m.TransitionsTotal,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, path string, status int, dur time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.ResponseTimeHistogram.WithLabelValues(method, path).Observe(dur.Seconds())
}

// RecordTransition counts a transition. It never fails.
func (m *Metrics) RecordTransition(_ context.Context, t domain.Transition) error {
	m.TransitionsTotal.WithLabelValues(string(t.Resource), string(t.To)).Inc()
	return nil
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
