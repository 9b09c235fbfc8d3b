package router

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newTestRouter(t, WithMetrics(WithRegistry(reg)))

	r.ToPath(user{ID: 1})
	if _, ok := r.FromPath("user/1"); !ok {
		t.Fatal("expected match")
	}
	if _, ok := r.FromPath("user/abc"); ok {
		t.Fatal("expected no match")
	}

	if got := testutil.ToFloat64(r.metrics.rendersTotal); got != 1 {
		t.Errorf("renders_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.metrics.parsesTotal.WithLabelValues("match")); got != 1 {
		t.Errorf(`parses_total{status="match"} = %v, want 1`, got)
	}
	if got := testutil.ToFloat64(r.metrics.parsesTotal.WithLabelValues("no_match")); got != 1 {
		t.Errorf(`parses_total{status="no_match"} = %v, want 1`, got)
	}
}

func TestMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newTestRouter(t, WithMetrics(
		WithRegistry(reg),
		WithNamespace("testapp"),
		WithSubsystem("nav"),
		WithConstLabels(prometheus.Labels{"instance": "a"}),
		WithBuckets([]float64{0.001, 0.01}),
	))

	r.ToPath(user{ID: 2})
	r.FromPath("user/2")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"testapp_nav_parses_total",
		"testapp_nav_parse_duration_seconds",
		"testapp_nav_renders_total",
		"testapp_nav_render_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("metric %q not registered; got %v", want, names)
		}
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	r := newTestRouter(t)
	if r.metrics != nil {
		t.Error("metrics should be nil without WithMetrics")
	}

	// No panic on the uninstrumented paths.
	r.ToPath(home{})
	r.FromPath("user/3")
}
