package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the router's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "waymark").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for parse/render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the router's Prometheus metrics.
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

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "waymark",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for one router.
type metrics struct {
	parsesTotal    *prometheus.CounterVec
	parseDuration  prometheus.Histogram
	rendersTotal   prometheus.Counter
	renderDuration prometheus.Histogram
}

// WithMetrics enables Prometheus instrumentation on the router.
//
// Metrics collected:
//   - waymark_parses_total: Counter of FromPath calls by status
//     (match, no_match)
//   - waymark_parse_duration_seconds: Histogram of parse duration
//   - waymark_renders_total: Counter of ToPath calls
//   - waymark_render_duration_seconds: Histogram of render duration
//
// Metric registration happens once per router. Two instrumented
// routers sharing one registry need distinct namespaces or subsystems.
//
// Example:
//
//	r, err := router.New(endpointShape,
//	    router.WithMetrics(router.WithNamespace("myapp")),
//	)
func WithMetrics(opts ...MetricsOption) Option {
	return func(c *config) {
		c.metricsOn = true
		c.metricsOpts = opts
	}
}

// newMetrics registers and returns the router metrics.
func newMetrics(opts ...MetricsOption) *metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &metrics{
		parsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parses_total",
			Help:        "Total number of FromPath calls by match status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parse_duration_seconds",
			Help:        "FromPath duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of ToPath calls",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "ToPath duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}
