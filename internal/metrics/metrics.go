package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Metrics records section and skeleton activity on a private Prometheus registry.
type Metrics struct {
	resolutions  *prometheus.CounterVec
	renderErrors *prometheus.CounterVec
	skeletons    prometheus.Counter
	placeholders prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var _ interfaces.SectionMetrics = (*Metrics)(nil)

// New creates the storefront metrics under namespace.
func New(namespace string) *Metrics {
	namespace = strings.TrimSpace(namespace)
	registry := prometheus.NewRegistry()

	m := &Metrics{
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "section_resolutions_total",
				Help:      "Section resolutions by section and renderer source",
			},
			[]string{"section", "source"},
		),
		renderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "section_render_errors_total",
				Help:      "Section renders that failed",
			},
			[]string{"section"},
		),
		skeletons: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "product_grid_skeleton_renders_total",
				Help:      "Loading placeholders rendered for the product grid",
			},
		),
		placeholders: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "product_grid_skeleton_placeholders",
				Help:      "Placeholder cards per skeleton render",
				Buckets:   []float64{0, 4, 8, 12, 16, 24, 32, 48},
			},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Preview server requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Preview server request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.resolutions,
		m.renderErrors,
		m.skeletons,
		m.placeholders,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)
	return m
}

// ObserveResolution implements interfaces.SectionMetrics.
func (m *Metrics) ObserveResolution(section, source string) {
	m.resolutions.WithLabelValues(section, source).Inc()
}

// IncrementRenderError implements interfaces.SectionMetrics.
func (m *Metrics) IncrementRenderError(section string) {
	m.renderErrors.WithLabelValues(section).Inc()
}

// ObserveSkeleton implements interfaces.SectionMetrics.
func (m *Metrics) ObserveSkeleton(placeholders int) {
	m.skeletons.Inc()
	m.placeholders.Observe(float64(placeholders))
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
