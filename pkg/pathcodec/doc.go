// Package pathcodec compiles shape descriptors into bidirectional
// path codecs.
//
// A Codec pairs two operations over `/`-split path segments:
//
//   - Parse enumerates every decoding of a prefix of the input,
//     lazily, as (value, remaining-segments) candidates. A path prefix
//     can be consistent with more than one decoding (ambiguous sum
//     prefixes, variable-length sequences), so Parse is a relation,
//     not a function. No-match is an empty sequence, never an error.
//   - Render turns a well-typed value back into segments. It is total
//     for values of the codec's shape.
//
// The two directions are mutually consistent: for any value v of the
// codec's shape and any tail, Parse(Render(v) ++ tail) includes
// (v, tail) among its candidates.
//
// The Resolver memoizes compilation per shape identity and registers a
// forward placeholder before building each body, so shapes that refer
// to themselves compile without infinite regress. Recursion then only
// happens during Parse/Render, bounded by the length of the input.
//
// Resolution is a single-threaded construction step. The resulting
// codec graph is read-only and safe for concurrent use.
package pathcodec
