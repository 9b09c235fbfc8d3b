package router

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/waymark-dev/waymark/internal/errors"
	"github.com/waymark-dev/waymark/pkg/shape"
)

// Endpoint value types for the tests.
type home struct{}

type user struct {
	ID int
}

// appEndpoint is the Home/User shape: Home is unlabeled with no
// fields, User has the literal prefix "user" and one int field.
func appEndpoint() shape.Shape {
	return shape.SumOf(
		shape.NewCase("Home", "",
			func([]any) any { return home{} },
			func(v any) ([]any, bool) {
				_, ok := v.(home)
				return nil, ok
			},
		),
		shape.NewCase("User", "user",
			func(fields []any) any { return user{ID: fields[0].(int)} },
			func(v any) ([]any, bool) {
				u, ok := v.(user)
				if !ok {
					return nil, false
				}
				return []any{u.ID}, true
			},
			shape.Int(),
		),
	)
}

func newTestRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	r, err := New(appEndpoint(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestToPath(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		endpoint any
		want     string
	}{
		{"prefixed case with field", user{ID: 42}, "user/42"},
		{"unlabeled case without fields", home{}, ""},
		{"negative id", user{ID: -1}, "user/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ToPath(tt.endpoint); got != tt.want {
				t.Errorf("ToPath(%#v) = %q, want %q", tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"user path", "user/42", user{ID: 42}, true},
		{"leading slash", "/user/42", user{ID: 42}, true},
		{"trailing slash", "user/42/", user{ID: 42}, true},
		{"empty path is home", "", home{}, true},
		{"root slash is home", "/", home{}, true},
		{"non-numeric id", "user/abc", nil, false},
		{"missing id", "user", nil, false},
		{"extra segments", "user/42/extra", nil, false},
		{"unknown prefix", "projects/1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FromPath(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromPath(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestRoundTripThroughFacade(t *testing.T) {
	r := newTestRouter(t)

	for _, endpoint := range []any{home{}, user{ID: 7}, user{ID: 0}} {
		path := r.ToPath(endpoint)
		got, ok := r.FromPath(path)
		if !ok {
			t.Fatalf("FromPath(ToPath(%#v) = %q) did not match", endpoint, path)
		}
		if diff := cmp.Diff(endpoint, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestNewRejectsInvalidShape(t *testing.T) {
	s := shape.SumOf(
		shape.NewCase("A", "",
			func([]any) any { return home{} },
			func(v any) ([]any, bool) { _, ok := v.(home); return nil, ok },
		),
		shape.NewCase("B", "",
			func([]any) any { return home{} },
			func(v any) ([]any, bool) { _, ok := v.(home); return nil, ok },
		),
	)

	_, err := New(s)

	var we *errors.WaymarkError
	if !stderrors.As(err, &we) || we.Code != "W003" {
		t.Fatalf("err = %v, want W003", err)
	}
}

func TestMustNewPanicsOnInvalidShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew(nil)
}

func TestWithLogger(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	r := newTestRouter(t, WithLogger(log))

	if _, ok := r.FromPath("user/abc"); ok {
		t.Error("expected no match")
	}
}

func TestCtxVariantsWithoutTracing(t *testing.T) {
	r := newTestRouter(t)
	ctx := context.Background()

	if got := r.ToPathCtx(ctx, user{ID: 1}); got != "user/1" {
		t.Errorf("ToPathCtx = %q, want %q", got, "user/1")
	}
	if _, ok := r.FromPathCtx(ctx, "user/1"); !ok {
		t.Error("FromPathCtx should match")
	}
}

func TestCtxVariantsWithTracing(t *testing.T) {
	// The global provider defaults to no-op; spans must still be
	// created and ended without error.
	r := newTestRouter(t, WithTracing(""))
	ctx := context.Background()

	if got := r.ToPathCtx(ctx, user{ID: 9}); got != "user/9" {
		t.Errorf("ToPathCtx = %q, want %q", got, "user/9")
	}
	v, ok := r.FromPathCtx(ctx, "user/9")
	if !ok {
		t.Fatal("FromPathCtx should match")
	}
	if diff := cmp.Diff(user{ID: 9}, v); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if _, ok := r.FromPathCtx(ctx, "nope/nope"); ok {
		t.Error("expected no match")
	}
}

func TestCodecExposesRawCandidates(t *testing.T) {
	r := newTestRouter(t)

	count := 0
	for range r.Codec().Parse([]string{"user", "42"}) {
		count++
	}
	if count != 1 {
		t.Errorf("raw candidates = %d, want 1", count)
	}
}
