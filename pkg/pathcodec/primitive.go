package pathcodec

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/waymark-dev/waymark/internal/errors"
	"github.com/waymark-dev/waymark/pkg/shape"
)

// segmentCodec builds a codec that consumes exactly one segment on
// parse and emits exactly one on render. parse reports false for a
// segment outside the kind's grammar; an empty input yields nothing.
func segmentCodec(parse func(string) (any, bool), render func(any) string) *Codec {
	return &Codec{
		parse: func(segs []string) Candidates {
			return func(yield func(any, []string) bool) {
				if len(segs) == 0 {
					return
				}
				v, ok := parse(segs[0])
				if !ok {
					return
				}
				yield(v, segs[1:])
			}
		},
		render: func(v any) []string {
			return []string{render(v)}
		},
	}
}

// signedCodec handles the signed integer kinds. wrap narrows the
// parsed int64 to the kind's Go type; unwrap widens it back.
func signedCodec(bits int, wrap func(int64) any, unwrap func(any) int64) *Codec {
	return segmentCodec(
		func(s string) (any, bool) {
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return nil, false
			}
			return wrap(n), true
		},
		func(v any) string {
			return strconv.FormatInt(unwrap(v), 10)
		},
	)
}

// unsignedCodec handles the unsigned integer kinds.
func unsignedCodec(bits int, wrap func(uint64) any, unwrap func(any) uint64) *Codec {
	return segmentCodec(
		func(s string) (any, bool) {
			n, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return nil, false
			}
			return wrap(n), true
		},
		func(v any) string {
			return strconv.FormatUint(unwrap(v), 10)
		},
	)
}

// primitiveCodec returns the codec for a primitive kind.
//
// Booleans are strict lowercase "true"/"false" on both directions;
// "True" does not parse. Numbers use their canonical decimal text.
func primitiveCodec(k shape.Kind) (*Codec, error) {
	switch k {
	case shape.KindString:
		return segmentCodec(
			func(s string) (any, bool) { return s, true },
			func(v any) string { return v.(string) },
		), nil

	case shape.KindBool:
		return segmentCodec(
			func(s string) (any, bool) {
				switch s {
				case "true":
					return true, true
				case "false":
					return false, true
				}
				return nil, false
			},
			func(v any) string { return strconv.FormatBool(v.(bool)) },
		), nil

	case shape.KindInt:
		return signedCodec(0,
			func(n int64) any { return int(n) },
			func(v any) int64 { return int64(v.(int)) },
		), nil
	case shape.KindInt8:
		return signedCodec(8,
			func(n int64) any { return int8(n) },
			func(v any) int64 { return int64(v.(int8)) },
		), nil
	case shape.KindInt16:
		return signedCodec(16,
			func(n int64) any { return int16(n) },
			func(v any) int64 { return int64(v.(int16)) },
		), nil
	case shape.KindInt32:
		return signedCodec(32,
			func(n int64) any { return int32(n) },
			func(v any) int64 { return int64(v.(int32)) },
		), nil
	case shape.KindInt64:
		return signedCodec(64,
			func(n int64) any { return n },
			func(v any) int64 { return v.(int64) },
		), nil

	case shape.KindUint:
		return unsignedCodec(0,
			func(n uint64) any { return uint(n) },
			func(v any) uint64 { return uint64(v.(uint)) },
		), nil
	case shape.KindUint8:
		return unsignedCodec(8,
			func(n uint64) any { return uint8(n) },
			func(v any) uint64 { return uint64(v.(uint8)) },
		), nil
	case shape.KindUint16:
		return unsignedCodec(16,
			func(n uint64) any { return uint16(n) },
			func(v any) uint64 { return uint64(v.(uint16)) },
		), nil
	case shape.KindUint32:
		return unsignedCodec(32,
			func(n uint64) any { return uint32(n) },
			func(v any) uint64 { return uint64(v.(uint32)) },
		), nil
	case shape.KindUint64:
		return unsignedCodec(64,
			func(n uint64) any { return n },
			func(v any) uint64 { return v.(uint64) },
		), nil

	case shape.KindFloat32:
		return segmentCodec(
			func(s string) (any, bool) {
				f, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, false
				}
				return float32(f), true
			},
			func(v any) string {
				return strconv.FormatFloat(float64(v.(float32)), 'f', -1, 32)
			},
		), nil
	case shape.KindFloat64:
		return segmentCodec(
			func(s string) (any, bool) {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, false
				}
				return f, true
			},
			func(v any) string {
				return strconv.FormatFloat(v.(float64), 'f', -1, 64)
			},
		), nil

	case shape.KindDecimal:
		return segmentCodec(
			func(s string) (any, bool) {
				d, err := decimal.NewFromString(s)
				if err != nil {
					return nil, false
				}
				return d, true
			},
			func(v any) string { return v.(decimal.Decimal).String() },
		), nil
	}

	return nil, errors.New("W001").WithDetailf("unknown primitive kind %d", int(k))
}
