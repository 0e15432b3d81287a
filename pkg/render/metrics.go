package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "verso").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "verso",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics observes render passes. Attach one to a Renderer via
// RendererConfig.Metrics; a single Metrics may be shared by several
// renderers.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	nodesTotal     prometheus.Counter
	asyncTotal     prometheus.Counter
}

// NewMetrics creates and registers the render metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Synchronous render walk duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		nodesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_total",
			Help:        "Total number of nodes serialized",
			ConstLabels: config.ConstLabels,
		}),

		asyncTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "async_segments_total",
			Help:        "Total number of asynchronous segments opened",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) observeRender(d time.Duration, buf *buffer, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(status).Inc()
	m.renderDuration.Observe(d.Seconds())
	m.nodesTotal.Add(float64(buf.nodes))
	m.asyncTotal.Add(float64(buf.asyncs))
}
