package pathcodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/waymark-dev/waymark/pkg/shape"
)

func TestTupleParseAndRender(t *testing.T) {
	c := resolve(t, shape.TupleOf([]shape.Shape{shape.Int(), shape.String()}, nil, nil))

	got := allParses(c, []string{"42", "x"})
	want := []parseResult{{Value: []any{42, "x"}, Rest: nil}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("parse mismatch (-want +got):\n%s", diff)
	}

	segs := c.Render([]any{42, "x"})
	if diff := cmp.Diff([]string{"42", "x"}, segs); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleParseFailures(t *testing.T) {
	c := resolve(t, shape.TupleOf([]shape.Shape{shape.Int(), shape.String()}, nil, nil))

	tests := []struct {
		name string
		segs []string
	}{
		{"first field invalid", []string{"x", "y"}},
		{"too few segments", []string{"42"}},
		{"empty input", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allParses(c, tt.segs); len(got) != 0 {
				t.Errorf("parse(%v) = %v, want no candidates", tt.segs, got)
			}
		})
	}
}

func TestEmptyTupleSucceedsTrivially(t *testing.T) {
	c := resolve(t, shape.TupleOf(nil, nil, nil))

	got := allParses(c, []string{"a", "b"})
	want := []parseResult{{Value: []any{}, Rest: []string{"a", "b"}}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("parse mismatch (-want +got):\n%s", diff)
	}
}

type point struct {
	X int
	Y int
}

func TestTupleWithConstructor(t *testing.T) {
	c := resolve(t, shape.TupleOf(
		[]shape.Shape{shape.Int(), shape.Int()},
		func(fields []any) any { return point{X: fields[0].(int), Y: fields[1].(int)} },
		func(v any) []any {
			p := v.(point)
			return []any{p.X, p.Y}
		},
	))

	v, ok := firstFull(c, []string{"3", "-7"})
	if !ok {
		t.Fatal("expected a full parse")
	}
	if diff := cmp.Diff(point{X: 3, Y: -7}, v); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}

	checkRoundTrip(t, c, point{X: 3, Y: -7}, []string{"tail"})
}

func TestRecordRoundTrip(t *testing.T) {
	c := resolve(t, shape.RecordOf(
		[]string{"name", "age"},
		[]shape.Shape{shape.String(), shape.Int()},
		nil, nil,
	))

	checkRoundTrip(t, c, []any{"ada", 36}, nil)

	segs := c.Render([]any{"ada", 36})
	if diff := cmp.Diff([]string{"ada", "36"}, segs); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

type caseA struct{}

type caseB struct {
	S string
}

// ambiguousSum builds a sum where the literal prefix "a" is also valid
// data for the unlabeled string case.
func ambiguousSum() shape.Shape {
	return shape.SumOf(
		shape.NewCase("A", "a",
			func([]any) any { return caseA{} },
			func(v any) ([]any, bool) {
				_, ok := v.(caseA)
				return nil, ok
			},
		),
		shape.NewCase("B", "",
			func(fields []any) any { return caseB{S: fields[0].(string)} },
			func(v any) ([]any, bool) {
				b, ok := v.(caseB)
				if !ok {
					return nil, false
				}
				return []any{b.S}, true
			},
			shape.String(),
		),
	)
}

func TestProductSearchesEarlierFieldBoundaries(t *testing.T) {
	// The first field is ambiguous: "a" can be the A discriminator or
	// the B payload. Both consumptions must be offered to the second
	// field.
	c := resolve(t, shape.TupleOf([]shape.Shape{ambiguousSum(), shape.String()}, nil, nil))

	got := allParses(c, []string{"a", "x"})
	want := []parseResult{
		{Value: []any{caseA{}, "x"}, Rest: nil},
		{Value: []any{caseB{S: "a"}, "x"}, Rest: nil},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("parse mismatch (-want +got):\n%s", diff)
	}
}
