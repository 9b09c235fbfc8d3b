package pathcodec

import "iter"

// Candidates is a lazy sequence of parse candidates. Each candidate
// pairs a decoded value with the segments left unconsumed. Candidates
// are produced on demand; a caller that stops after the first
// acceptable candidate does not pay for enumerating the rest.
type Candidates = iter.Seq2[any, []string]

// Codec is the compiled parse/render pair for one shape.
//
// A zero Codec is a forward placeholder: the resolver registers it in
// the cache before building the body, then binds the built behavior
// into it. Composed codecs hold *Codec references and go through
// Parse/Render at use time, so a member bound after composition still
// resolves correctly.
type Codec struct {
	parse  func(segs []string) Candidates
	render func(v any) []string
}

// Parse enumerates the decodings of a prefix of segs.
func (c *Codec) Parse(segs []string) Candidates {
	return c.parse(segs)
}

// Render encodes a well-typed value of the codec's shape into path
// segments. Passing a value of the wrong dynamic type panics; render
// is total only over the described shape.
func (c *Codec) Render(v any) []string {
	return c.render(v)
}

// bind fills a placeholder with the built body.
func (c *Codec) bind(body *Codec) {
	c.parse = body.parse
	c.render = body.render
}
