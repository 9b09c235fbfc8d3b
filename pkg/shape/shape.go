package shape

// Kind identifies a primitive shape.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	"string", "bool",
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "decimal",
}

// String returns the kind's name (e.g. "int64").
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Shape is a declared description of a data shape.
//
// Implementations are the descriptor types in this package; the
// interface is sealed. Every constructor returns a fresh pointer, and
// pointer identity is what the codec cache keys on, so a shape that is
// meant to be shared (or to refer to itself) must be declared once and
// reused, not re-declared.
type Shape interface {
	shapeNode()
}

// Primitive describes a single-segment primitive value.
type Primitive struct {
	Kind Kind
}

// Sequence describes a homogeneous, variable-length sequence.
// Values are carried as []any.
type Sequence struct {
	Elem Shape
}

// Tuple describes a fixed-arity positional product.
//
// Make builds the composite value from the field values in order;
// Fields is its inverse. Either may be nil, in which case the value is
// carried as a plain []any.
type Tuple struct {
	Elems  []Shape
	Make   func(fields []any) any
	Fields func(v any) []any
}

// Record describes a fixed-shape product with named fields. The names
// do not appear on the wire; field order does. Make and Fields behave
// as for Tuple.
type Record struct {
	Names  []string
	Elems  []Shape
	Make   func(fields []any) any
	Fields func(v any) []any
}

// Case describes one alternative of a Sum.
type Case struct {
	// Name identifies the case in diagnostics.
	Name string

	// Prefix is the literal path segment that discriminates this case.
	// An empty prefix marks the unlabeled (fallback) case; a sum may
	// have at most one.
	Prefix string

	// Fields are the case's field shapes in order.
	Fields []Shape

	// Make builds the case value from its field values.
	Make func(fields []any) any

	// Deconstruct reports whether v belongs to this case and, if so,
	// returns its field values in order.
	Deconstruct func(v any) ([]any, bool)
}

// Sum describes a tagged union. Cases are tried in declaration order;
// that order is the documented tie-break when parses are ambiguous.
type Sum struct {
	Cases []Case
}

// Deferred is a late-bound reference to another shape, used for
// recursive declarations. Target is invoked once, at resolution time.
type Deferred struct {
	Target func() Shape
}

func (*Primitive) shapeNode() {}
func (*Sequence) shapeNode()  {}
func (*Tuple) shapeNode()     {}
func (*Record) shapeNode()    {}
func (*Sum) shapeNode()       {}
func (*Deferred) shapeNode()  {}

// String describes a free-form string segment.
func String() Shape { return &Primitive{Kind: KindString} }

// Bool describes a boolean segment, rendered as "true"/"false".
func Bool() Shape { return &Primitive{Kind: KindBool} }

// Int describes a platform-sized signed integer segment.
func Int() Shape { return &Primitive{Kind: KindInt} }

// Int8 describes an int8 segment.
func Int8() Shape { return &Primitive{Kind: KindInt8} }

// Int16 describes an int16 segment.
func Int16() Shape { return &Primitive{Kind: KindInt16} }

// Int32 describes an int32 segment.
func Int32() Shape { return &Primitive{Kind: KindInt32} }

// Int64 describes an int64 segment.
func Int64() Shape { return &Primitive{Kind: KindInt64} }

// Uint describes a platform-sized unsigned integer segment.
func Uint() Shape { return &Primitive{Kind: KindUint} }

// Uint8 describes a uint8 segment.
func Uint8() Shape { return &Primitive{Kind: KindUint8} }

// Uint16 describes a uint16 segment.
func Uint16() Shape { return &Primitive{Kind: KindUint16} }

// Uint32 describes a uint32 segment.
func Uint32() Shape { return &Primitive{Kind: KindUint32} }

// Uint64 describes a uint64 segment.
func Uint64() Shape { return &Primitive{Kind: KindUint64} }

// Float32 describes a float32 segment.
func Float32() Shape { return &Primitive{Kind: KindFloat32} }

// Float64 describes a float64 segment.
func Float64() Shape { return &Primitive{Kind: KindFloat64} }

// Decimal describes an exact decimal segment, carried as a
// shopspring/decimal value.
func Decimal() Shape { return &Primitive{Kind: KindDecimal} }

// Seq describes a sequence of elem, rendered as a count segment
// followed by each element's segments.
func Seq(elem Shape) Shape { return &Sequence{Elem: elem} }

// TupleOf describes a positional product of the given element shapes.
// make and fields may be nil to carry values as []any.
func TupleOf(elems []Shape, make func([]any) any, fields func(any) []any) Shape {
	return &Tuple{Elems: elems, Make: make, Fields: fields}
}

// RecordOf describes a named-field product. names and elems must have
// equal length; make and fields behave as for TupleOf.
func RecordOf(names []string, elems []Shape, make func([]any) any, fields func(any) []any) Shape {
	return &Record{Names: names, Elems: elems, Make: make, Fields: fields}
}

// SumOf describes a tagged union of the given cases, in order.
func SumOf(cases ...Case) Shape {
	return &Sum{Cases: cases}
}

// NewCase builds a sum case. prefix may be empty for the unlabeled
// case. make and deconstruct are required.
func NewCase(name, prefix string, make func([]any) any, deconstruct func(any) ([]any, bool), fields ...Shape) Case {
	return Case{
		Name:        name,
		Prefix:      prefix,
		Fields:      fields,
		Make:        make,
		Deconstruct: deconstruct,
	}
}

// Defer describes a late-bound reference for recursive shapes.
func Defer(target func() Shape) Shape {
	return &Deferred{Target: target}
}
