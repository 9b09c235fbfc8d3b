package router

// Default tracer name for waymark routers.
const defaultTracerName = "waymark"

// WithTracing enables OpenTelemetry spans on ToPathCtx and
// FromPathCtx. An empty name uses the default tracer name "waymark".
//
// The tracer comes from the global OpenTelemetry tracer provider;
// configure it in main() before constructing the router:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
//	r, err := router.New(endpointShape, router.WithTracing("my-app"))
//
// Spans carry the rendered/parsed path and, for parses, whether a
// fully-consuming match was found.
func WithTracing(name string) Option {
	return func(c *config) {
		c.tracingOn = true
		c.tracerName = name
	}
}
