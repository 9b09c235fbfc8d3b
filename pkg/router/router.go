package router

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/waymark-dev/waymark/pkg/pathcodec"
	"github.com/waymark-dev/waymark/pkg/shape"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Router renders endpoint values to paths and parses paths back.
// Built once per endpoint shape; read-only and safe for concurrent
// use afterwards.
type Router struct {
	root    *pathcodec.Codec
	log     *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
}

// Option configures a Router.
type Option func(*config)

type config struct {
	log         *slog.Logger
	metricsOn   bool
	metricsOpts []MetricsOption
	tracingOn   bool
	tracerName  string
}

// WithLogger sets the logger for debug output (shape resolution,
// no-match parses). Without it, logging is disabled.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// New compiles the endpoint shape into a router.
//
// Resolution errors mean the shape declaration itself is invalid and
// are returned here, never from ToPath/FromPath.
func New(endpoint shape.Shape, opts ...Option) (*Router, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	log := cfg.log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root, err := pathcodec.NewResolver(log).Resolve(endpoint)
	if err != nil {
		return nil, err
	}

	r := &Router{root: root, log: log}
	if cfg.metricsOn {
		r.metrics = newMetrics(cfg.metricsOpts...)
	}
	if cfg.tracingOn {
		name := cfg.tracerName
		if name == "" {
			name = defaultTracerName
		}
		r.tracer = otel.Tracer(name)
	}
	return r, nil
}

// MustNew is New panicking on error, for shapes that are compile-time
// constants of the program.
func MustNew(endpoint shape.Shape, opts ...Option) *Router {
	r, err := New(endpoint, opts...)
	if err != nil {
		panic("waymark: " + err.Error())
	}
	return r
}

// Codec exposes the compiled root codec, mainly for tests and for
// callers that need the raw candidate stream.
func (r *Router) Codec() *pathcodec.Codec {
	return r.root
}

// ToPath renders an endpoint value into a path string. There is no
// leading slash; an endpoint that renders to zero segments yields "".
func (r *Router) ToPath(endpoint any) string {
	return r.ToPathCtx(context.Background(), endpoint)
}

// ToPathCtx is ToPath with an OpenTelemetry span when tracing is
// enabled; without WithTracing it behaves exactly like ToPath.
func (r *Router) ToPathCtx(ctx context.Context, endpoint any) string {
	var span trace.Span
	if r.tracer != nil {
		_, span = r.tracer.Start(ctx, "waymark.render",
			trace.WithSpanKind(trace.SpanKindInternal))
		defer span.End()
	}

	start := time.Now()
	path := joinPath(r.root.Render(endpoint))
	if r.metrics != nil {
		r.metrics.rendersTotal.Inc()
		r.metrics.renderDuration.Observe(time.Since(start).Seconds())
	}
	if span != nil {
		span.SetAttributes(attribute.String("waymark.path", path))
	}
	return path
}

// FromPath parses a path into an endpoint value. Leading and trailing
// slashes are ignored. Among all candidate parses, the first one (in
// case-declaration order) that consumes the entire path wins; if none
// does, the second return is false.
func (r *Router) FromPath(path string) (any, bool) {
	return r.FromPathCtx(context.Background(), path)
}

// FromPathCtx is FromPath with an OpenTelemetry span when tracing is
// enabled; without WithTracing it behaves exactly like FromPath.
func (r *Router) FromPathCtx(ctx context.Context, path string) (any, bool) {
	var span trace.Span
	if r.tracer != nil {
		_, span = r.tracer.Start(ctx, "waymark.parse",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attribute.String("waymark.path", path)))
		defer span.End()
	}

	start := time.Now()
	segs := splitPath(path)
	for v, rest := range r.root.Parse(segs) {
		if len(rest) == 0 {
			r.observeParse(start, "match")
			if span != nil {
				span.SetAttributes(attribute.Bool("waymark.matched", true))
			}
			return v, true
		}
	}

	r.observeParse(start, "no_match")
	if span != nil {
		span.SetAttributes(attribute.Bool("waymark.matched", false))
	}
	r.log.Debug("no fully-consuming parse", "path", path)
	return nil, false
}

// observeParse records parse metrics when metrics are enabled.
func (r *Router) observeParse(start time.Time, status string) {
	if r.metrics == nil {
		return
	}
	r.metrics.parsesTotal.WithLabelValues(status).Inc()
	r.metrics.parseDuration.Observe(time.Since(start).Seconds())
}
