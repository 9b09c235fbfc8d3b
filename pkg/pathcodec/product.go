package pathcodec

// productCodec builds the codec for an ordered field list paired with
// a constructor and destructor. construct and split may be nil, in
// which case the composite value is carried as a plain []any.
//
// Parsing consumes fields strictly left to right as a depth-first
// search over the Cartesian product of per-field candidate sets. The
// search is required, not an optimization: an earlier field's segment
// boundary (how much a nested sequence or unlabeled sum consumes) is
// only knowable by trying each of its valid consumptions.
func productCodec(fields []*Codec, construct func([]any) any, split func(any) []any) *Codec {
	if construct == nil {
		construct = func(vals []any) any { return vals }
	}
	if split == nil {
		split = func(v any) []any { return v.([]any) }
	}
	return &Codec{
		parse: func(segs []string) Candidates {
			return func(yield func(any, []string) bool) {
				parseFields(fields, segs, nil, func(vals []any, rest []string) bool {
					return yield(construct(vals), rest)
				})
			}
		},
		render: func(v any) []string {
			vals := split(v)
			var segs []string
			for i, f := range fields {
				segs = append(segs, f.Render(vals[i])...)
			}
			return segs
		},
	}
}

// parseFields walks the field codecs left to right, handing every
// end-to-end assignment to sink together with the tail left after the
// last field. Zero fields succeed once with the input unchanged.
// Returns false once the consumer stops.
func parseFields(fields []*Codec, segs []string, acc []any, sink func([]any, []string) bool) bool {
	if len(fields) == 0 {
		vals := make([]any, len(acc))
		copy(vals, acc)
		return sink(vals, segs)
	}
	for v, rest := range fields[0].Parse(segs) {
		if !parseFields(fields[1:], rest, append(acc, v), sink) {
			return false
		}
	}
	return true
}
