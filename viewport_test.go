package swr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestViewportCanvasToNorm(t *testing.T) {
	v := Viewport{X: 50, Y: 20, Span: 10}
	m := v.CanvasToNorm()

	tests := []struct {
		in, want Vec2
	}{
		{V2(40, 10), V2(0, 0)},
		{V2(60, 30), V2(1, 1)},
		{V2(50, 20), V2(0.5, 0.5)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, m.TransformPoint(tt.in), approx); diff != "" {
			t.Errorf("CanvasToNorm(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	if got := (Viewport{}).CanvasToNorm(); !got.IsIdentity() {
		t.Errorf("zero-span CanvasToNorm() = %+v, want identity", got)
	}
}

func TestViewportCanvasToScreen(t *testing.T) {
	v := Viewport{X: 5, Y: 5, Span: 5}
	m := v.CanvasToScreen(200, 100)

	if diff := cmp.Diff(V2(200, 100), m.TransformPoint(V2(10, 10)), approx); diff != "" {
		t.Errorf("bottom-right corner mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(V2(0, 0), m.TransformPoint(V2(0, 0)), approx); diff != "" {
		t.Errorf("top-left corner mismatch (-want +got):\n%s", diff)
	}
}

func TestViewportUpdate(t *testing.T) {
	v := Viewport{X: 10, Y: 10, Span: 4}
	before := v.CanvasToNorm().TransformPoint(V2(10, 10))

	v.Update(2, -1, 1)
	if want := (Viewport{X: 8, Y: 11, Span: 4}); v != want {
		t.Fatalf("after pan = %+v, want %+v", v, want)
	}
	after := v.CanvasToNorm().TransformPoint(V2(10, 10))
	if after.X <= before.X || after.Y >= before.Y {
		t.Errorf("pan by (2, -1) moved content from %v to %v", before, after)
	}

	v.Update(0, 0, 0.5)
	if v.Span != 2 {
		t.Errorf("Span after zoom = %v, want 2", v.Span)
	}
}

func TestFitViewport(t *testing.T) {
	v := FitViewport(200, 100)
	if v.X != 100 || v.Y != 50 {
		t.Errorf("center = (%v, %v), want (100, 50)", v.X, v.Y)
	}

	// The whole canvas, outline included, must land inside the unit square.
	m := v.CanvasToNorm()
	for _, p := range []Vec2{{0, 0}, {200, 0}, {0, 100}, {200, 100}} {
		q := m.TransformPoint(p)
		if q.X <= 0 || q.X >= 1 || q.Y <= 0 || q.Y >= 1 {
			t.Errorf("corner %v maps to %v, outside the view", p, q)
		}
	}
}

func TestFanTriangulator(t *testing.T) {
	tests := []struct {
		name   string
		points []Vec2
		want   []Vec2
	}{
		{"too few", []Vec2{{0, 0}, {1, 0}}, nil},
		{"triangle", []Vec2{{0, 0}, {1, 0}, {0, 1}}, []Vec2{{0, 0}, {1, 0}, {0, 1}}},
		{
			"square",
			[]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			[]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FanTriangulator{}.Triangulate(tt.points)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Triangulate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
