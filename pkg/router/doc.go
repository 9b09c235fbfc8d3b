// Package router is the public façade over the path codec engine.
//
// A Router is built once from an endpoint shape and is read-only
// afterwards; it is safe for concurrent use. It exposes the two
// navigation operations:
//
//   - ToPath renders a well-typed endpoint value into a path string.
//   - FromPath parses a path back into an endpoint value, taking the
//     first parse that consumes the entire path; anything less is
//     "no match", reported as a false second return, never an error.
//
// # Usage
//
//	r, err := router.New(endpointShape)
//	if err != nil {
//	    // the shape declaration itself is invalid
//	}
//
//	path := r.ToPath(User{ID: 42})      // "user/42"
//	v, ok := r.FromPath("/user/42")     // User{ID: 42}, true
//	_, ok = r.FromPath("user/abc")      // false
//
// Bind attaches the application's model→endpoint projection and
// endpoint→message constructor, which is the contract the UI layer
// consumes:
//
//	nav := router.Bind(r,
//	    func(m AppModel) any { return m.Page },
//	    func(v any) AppMsg { return SetPage{To: v} },
//	)
//	path := nav.PathFor(model)
//	msg, ok := nav.Dispatch("/user/42")
//
// Observability is opt-in through options: WithLogger for slog
// debug output, WithMetrics for Prometheus counters and durations,
// WithTracing for OpenTelemetry spans on the Ctx variants.
package router
