package pathcodec

import "strconv"

// sequenceCodec builds the codec for a homogeneous sequence of elem.
// Sequence values are carried as []any.
//
// The wire form is a leading decimal count segment followed by each
// element's segments in order. Parsing requires exactly count elements;
// an element with zero candidates kills the whole parse, there is no
// partial fallback.
func sequenceCodec(elem *Codec) *Codec {
	return &Codec{
		parse: func(segs []string) Candidates {
			return func(yield func(any, []string) bool) {
				if len(segs) == 0 {
					return
				}
				// ParseUint rejects signs, so "+3" and "-0" are not
				// valid counts.
				n, err := strconv.ParseUint(segs[0], 10, strconv.IntSize-1)
				if err != nil {
					return
				}
				parseCount(elem, int(n), segs[1:], nil, yield)
			}
		},
		render: func(v any) []string {
			items := v.([]any)
			segs := make([]string, 0, len(items)+1)
			segs = append(segs, strconv.Itoa(len(items)))
			for _, item := range items {
				segs = append(segs, elem.Render(item)...)
			}
			return segs
		},
	}
}

// parseCount consumes exactly n elements, threading the remaining
// segments through each step and exploring every per-element candidate
// depth first. Enumeration is lazy: a failing element short-circuits
// before any downstream combination is built. Returns false once the
// consumer stops.
func parseCount(elem *Codec, n int, segs []string, acc []any, yield func(any, []string) bool) bool {
	if n == 0 {
		items := make([]any, len(acc))
		copy(items, acc)
		return yield(items, segs)
	}
	for v, rest := range elem.Parse(segs) {
		if !parseCount(elem, n-1, rest, append(acc, v), yield) {
			return false
		}
	}
	return true
}
