package pathcodec

import (
	"fmt"

	"github.com/waymark-dev/waymark/internal/errors"
)

// sumCase is one compiled alternative of a sum codec.
type sumCase struct {
	name        string
	prefix      string
	fields      []*Codec
	construct   func([]any) any
	deconstruct func(any) ([]any, bool)
}

// sumCodec builds the codec for a tagged union.
//
// Parsing tries every case whose literal prefix equals the head
// segment, in declaration order, each against the tail. Independently
// of whether the head matched anything, the unlabeled case (if any) is
// tried against the full original path: it consumes no discriminator,
// and a segment that happens to equal some case's prefix can still be
// plain data for the unlabeled case. The result is the lazy union of
// all attempts; nothing is pruned here. Picking a winner is the
// caller's job, via the requirement that the whole path be consumed.
//
// Cases sharing a literal prefix are all tried, in declaration order.
func sumCodec(cases []sumCase) (*Codec, error) {
	var unlabeled *sumCase
	for i := range cases {
		cs := &cases[i]
		if cs.construct == nil || cs.deconstruct == nil {
			return nil, errors.New("W005").
				WithDetailf("case %q", cs.name)
		}
		if cs.prefix == "" {
			if unlabeled != nil {
				return nil, errors.New("W003").
					WithDetailf("cases %q and %q both have an empty prefix", unlabeled.name, cs.name).
					WithSuggestion("give one of the cases a literal prefix segment")
			}
			unlabeled = cs
		}
	}

	return &Codec{
		parse: func(segs []string) Candidates {
			return func(yield func(any, []string) bool) {
				if len(segs) > 0 {
					head, tail := segs[0], segs[1:]
					for i := range cases {
						cs := &cases[i]
						if cs.prefix == "" || cs.prefix != head {
							continue
						}
						if !parseFields(cs.fields, tail, nil, func(vals []any, rest []string) bool {
							return yield(cs.construct(vals), rest)
						}) {
							return
						}
					}
				}
				if unlabeled != nil {
					parseFields(unlabeled.fields, segs, nil, func(vals []any, rest []string) bool {
						return yield(unlabeled.construct(vals), rest)
					})
				}
			}
		},
		render: func(v any) []string {
			for i := range cases {
				cs := &cases[i]
				vals, ok := cs.deconstruct(v)
				if !ok {
					continue
				}
				var segs []string
				if cs.prefix != "" {
					segs = append(segs, cs.prefix)
				}
				for j, f := range cs.fields {
					segs = append(segs, f.Render(vals[j])...)
				}
				return segs
			}
			panic(fmt.Sprintf("waymark: value of type %T does not belong to any case of the sum shape", v))
		},
	}, nil
}
