// Package shape describes the structure of endpoint values.
//
// A Shape is a declared, immutable description of an algebraic data
// shape: primitives, sequences, tuples, records, and sums with named
// cases. The application builds one Shape per endpoint type and hands
// it to the router, which compiles it into a path codec.
//
// Shapes are plain data. They carry no parsing or rendering behavior
// themselves; the pathcodec package compiles them.
//
// # Declaring a shape
//
//	userCase := shape.NewCase("User", "user",
//	    func(fields []any) any { return User{ID: fields[0].(int)} },
//	    func(v any) ([]any, bool) {
//	        u, ok := v.(User)
//	        if !ok {
//	            return nil, false
//	        }
//	        return []any{u.ID}, true
//	    },
//	    shape.Int(),
//	)
//
//	endpoint := shape.SumOf(homeCase, userCase)
//
// # Recursive shapes
//
// A shape that refers to itself uses Defer to break the cycle at
// declaration time:
//
//	var tree shape.Shape
//	tree = shape.SumOf(
//	    leafCase,
//	    shape.NewCase("Node", "node", makeNode, splitNode,
//	        shape.Defer(func() shape.Shape { return tree })),
//	)
//
// The deferred function is invoked once, when the shape is resolved
// into a codec, not at declaration time.
package shape
