// Package waymark provides the public API for the waymark router.
//
// waymark derives a bidirectional codec between an application's typed
// endpoint values and URL path strings from a declared shape
// descriptor, with no per-endpoint hand-written parsing code.
//
// This is the recommended import for most applications:
//
//	import "github.com/waymark-dev/waymark"
//
// Usage:
//
//	endpoint := waymark.SumOf(homeCase, userCase)
//	r, err := waymark.New(endpoint)
//	path := r.ToPath(User{ID: 42})   // "user/42"
//	v, ok := r.FromPath("/user/42")  // User{ID: 42}, true
package waymark

import (
	"github.com/waymark-dev/waymark/pkg/router"
	"github.com/waymark-dev/waymark/pkg/shape"
)

// =============================================================================
// Router (re-export from pkg/router)
// =============================================================================

// Router renders endpoint values to paths and parses paths back.
type Router = router.Router

// Option configures a Router.
type Option = router.Option

// New compiles an endpoint shape into a router.
var New = router.New

// MustNew is New panicking on error.
var MustNew = router.MustNew

// WithLogger sets the router's slog logger.
var WithLogger = router.WithLogger

// WithMetrics enables Prometheus instrumentation.
var WithMetrics = router.WithMetrics

// WithTracing enables OpenTelemetry spans on the Ctx call variants.
var WithTracing = router.WithTracing

// Bind attaches the application's model→endpoint projection and
// endpoint→message constructor to a router.
//
// Example:
//
//	nav := waymark.Bind(r,
//	    func(m AppModel) any { return m.Page },
//	    func(v any) AppMsg { return SetPage{To: v} },
//	)
func Bind[Model any, Msg any](r *Router, project func(Model) any, message func(any) Msg) *router.Bound[Model, Msg] {
	return router.Bind(r, project, message)
}

// =============================================================================
// Shapes (re-export from pkg/shape)
// =============================================================================

// Shape describes the structure of endpoint values.
type Shape = shape.Shape

// Case describes one alternative of a sum shape.
type Case = shape.Case

// Primitive shape constructors.
var (
	String  = shape.String
	Bool    = shape.Bool
	Int     = shape.Int
	Int8    = shape.Int8
	Int16   = shape.Int16
	Int32   = shape.Int32
	Int64   = shape.Int64
	Uint    = shape.Uint
	Uint8   = shape.Uint8
	Uint16  = shape.Uint16
	Uint32  = shape.Uint32
	Uint64  = shape.Uint64
	Float32 = shape.Float32
	Float64 = shape.Float64
	Decimal = shape.Decimal
)

// Seq describes a sequence shape with a leading count segment.
var Seq = shape.Seq

// TupleOf describes a positional product shape.
var TupleOf = shape.TupleOf

// RecordOf describes a named-field product shape.
var RecordOf = shape.RecordOf

// SumOf describes a tagged union shape.
var SumOf = shape.SumOf

// NewCase builds a sum case with an optional literal prefix.
var NewCase = shape.NewCase

// Defer describes a late-bound reference for recursive shapes.
var Defer = shape.Defer
