package pathcodec

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/waymark-dev/waymark/internal/errors"
	"github.com/waymark-dev/waymark/pkg/shape"
)

// Resolver compiles shapes into codecs, memoized by shape identity.
//
// Resolution is a construct-once initialization step and is not safe
// for concurrent use; the codecs it produces are.
type Resolver struct {
	cache map[shape.Shape]*Codec
	log   *slog.Logger
}

// NewResolver creates a resolver. A nil logger disables logging.
func NewResolver(log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{
		cache: make(map[shape.Shape]*Codec),
		log:   log,
	}
}

// Resolve compiles s into its codec.
//
// A placeholder codec is registered in the cache before the body is
// built, so a shape whose members refer back to it (directly or via
// shape.Defer) resolves to the placeholder instead of recursing
// forever; the placeholder is bound to the built body afterwards.
// Recursion then happens only at parse/render time, bounded by the
// finite input path.
func (r *Resolver) Resolve(s shape.Shape) (*Codec, error) {
	if s == nil {
		return nil, errors.New("W002")
	}
	if c, ok := r.cache[s]; ok {
		return c, nil
	}

	placeholder := &Codec{}
	r.cache[s] = placeholder

	body, err := r.build(s)
	if err != nil {
		delete(r.cache, s)
		return nil, err
	}
	placeholder.bind(body)

	r.log.Debug("resolved shape", "shape", fmt.Sprintf("%T", s))
	return placeholder, nil
}

// build dispatches on the shape's variant and compiles its body.
func (r *Resolver) build(s shape.Shape) (*Codec, error) {
	switch t := s.(type) {
	case *shape.Primitive:
		return primitiveCodec(t.Kind)

	case *shape.Sequence:
		elem, err := r.Resolve(t.Elem)
		if err != nil {
			return nil, err
		}
		return sequenceCodec(elem), nil

	case *shape.Tuple:
		fields, err := r.resolveAll(t.Elems)
		if err != nil {
			return nil, err
		}
		return productCodec(fields, t.Make, t.Fields), nil

	case *shape.Record:
		if len(t.Names) != len(t.Elems) {
			return nil, errors.Newf(errors.CategoryConfig,
				"record declares %d names for %d fields", len(t.Names), len(t.Elems))
		}
		fields, err := r.resolveAll(t.Elems)
		if err != nil {
			return nil, err
		}
		return productCodec(fields, t.Make, t.Fields), nil

	case *shape.Sum:
		cases := make([]sumCase, 0, len(t.Cases))
		for _, cs := range t.Cases {
			fields, err := r.resolveAll(cs.Fields)
			if err != nil {
				return nil, err
			}
			cases = append(cases, sumCase{
				name:        cs.Name,
				prefix:      cs.Prefix,
				fields:      fields,
				construct:   cs.Make,
				deconstruct: cs.Deconstruct,
			})
		}
		return sumCodec(cases)

	case *shape.Deferred:
		if t.Target == nil {
			return nil, errors.New("W004")
		}
		target := t.Target()
		if target == nil {
			return nil, errors.New("W004")
		}
		resolved, err := r.Resolve(target)
		if err != nil {
			return nil, err
		}
		// Delegate through the target at use time rather than copying
		// its behavior: inside a recursive cycle the target may still
		// be an unbound placeholder here.
		return &Codec{
			parse:  func(segs []string) Candidates { return resolved.Parse(segs) },
			render: func(v any) []string { return resolved.Render(v) },
		}, nil
	}

	return nil, errors.New("W001").WithDetailf("shape type %T", s)
}

// resolveAll resolves member shapes in order.
func (r *Resolver) resolveAll(shapes []shape.Shape) ([]*Codec, error) {
	codecs := make([]*Codec, len(shapes))
	for i, s := range shapes {
		c, err := r.Resolve(s)
		if err != nil {
			return nil, err
		}
		codecs[i] = c
	}
	return codecs, nil
}
