package raster

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/swr/internal/color"
	"github.com/gogpu/swr/internal/framebuffer"
	"github.com/gogpu/swr/internal/texture"
)

type pixel struct{ X, Y int }

func newTarget(t *testing.T, w, h, n int) *framebuffer.Framebuffer {
	t.Helper()
	fb, err := framebuffer.New(w, h, n)
	if err != nil {
		t.Fatalf("framebuffer.New(%d, %d, %d) error = %v", w, h, n, err)
	}
	return fb
}

// touched lists every pixel with at least one subsample no longer white.
func touched(fb *framebuffer.Framebuffer) []pixel {
	var out []pixel
	for y := range fb.Height() {
		for x := range fb.Width() {
			for s := range fb.SamplesPerPixel() {
				if fb.At(x, y, s) != color.White {
					out = append(out, pixel{x, y})
					break
				}
			}
		}
	}
	return out
}

// coverage counts the subsamples of (x, y) that are no longer white.
func coverage(fb *framebuffer.Framebuffer, x, y int) int {
	n := 0
	for s := range fb.SamplesPerPixel() {
		if fb.At(x, y, s) != color.White {
			n++
		}
	}
	return n
}

func sortPixels(p []pixel) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Y != p[j].Y {
			return p[i].Y < p[j].Y
		}
		return p[i].X < p[j].X
	})
}

func TestPoint(t *testing.T) {
	fb := newTarget(t, 4, 4, 2)
	r := New(fb)

	r.Point(Pt(2.7, 1.2), color.Black)
	r.Point(Pt(-0.5, 0), color.Black)
	r.Point(Pt(math.NaN(), 1), color.Black)

	want := []pixel{{2, 1}}
	if diff := cmp.Diff(want, touched(fb)); diff != "" {
		t.Errorf("Point() pixels mismatch (-want +got):\n%s", diff)
	}
	if got := coverage(fb, 2, 1); got != 4 {
		t.Errorf("coverage(2, 1) = %d, want 4", got)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		want   []pixel
	}{
		{
			name: "horizontal",
			p0:   Pt(0, 0), p1: Pt(5, 0),
			want: []pixel{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "vertical",
			p0:   Pt(1, 3), p1: Pt(1, 0),
			want: []pixel{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		},
		{
			name: "shallow",
			p0:   Pt(0, 0), p1: Pt(3, 1),
			want: []pixel{{0, 0}, {1, 0}, {2, 1}, {3, 1}},
		},
		{
			name: "steep",
			p0:   Pt(0, 0), p1: Pt(1, 3),
			want: []pixel{{0, 0}, {0, 1}, {1, 2}, {1, 3}},
		},
		{
			name: "diagonal",
			p0:   Pt(3, 0), p1: Pt(0, 3),
			want: []pixel{{3, 0}, {2, 1}, {1, 2}, {0, 3}},
		},
		{
			name: "fractional endpoints",
			p0:   Pt(0.9, 2.5), p1: Pt(4.2, 2.1),
			want: []pixel{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}},
		},
		{
			name: "clipped",
			p0:   Pt(-10, 1), p1: Pt(100, 1),
			want: []pixel{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}},
		},
		{
			name: "zero length",
			p0:   Pt(2, 2), p1: Pt(2, 2),
			want: nil,
		},
		{
			name: "non-finite",
			p0:   Pt(math.Inf(1), 0), p1: Pt(2, 2),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTarget(t, 8, 8, 2)
			New(fb).Line(tt.p0, tt.p1, color.Black)

			got := touched(fb)
			sortPixels(tt.want)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Line(%v, %v) mismatch (-want +got):\n%s", tt.p0, tt.p1, diff)
			}
			for _, p := range got {
				if c := coverage(fb, p.X, p.Y); c != fb.SamplesPerPixel() {
					t.Errorf("pixel %v coverage = %d, want whole pixel", p, c)
				}
			}
		})
	}
}

func TestLineEndpointSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return rng.Float64()*40 - 4 }

	for i := range 500 {
		p0 := Pt(coord(), coord())
		p1 := Pt(coord(), coord())

		a := newTarget(t, 32, 32, 1)
		b := newTarget(t, 32, 32, 1)
		New(a).Line(p0, p1, color.Black)
		New(b).Line(p1, p0, color.Black)

		if diff := cmp.Diff(touched(a), touched(b)); diff != "" {
			t.Fatalf("line %d: Line(%v, %v) != Line(%v, %v) (-ab +ba):\n%s", i, p0, p1, p1, p0, diff)
		}
	}
}

func TestLineOnePixelPerMajorStep(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := range 200 {
		x0, y0 := rng.IntN(32), rng.IntN(32)
		x1, y1 := rng.IntN(32), rng.IntN(32)
		if x0 == x1 && y0 == y1 {
			continue
		}

		fb := newTarget(t, 32, 32, 1)
		New(fb).Line(Pt(float64(x0), float64(y0)), Pt(float64(x1), float64(y1)), color.Black)

		want := max(abs(x1-x0), abs(y1-y0)) + 1
		if got := len(touched(fb)); got != want {
			t.Errorf("line %d (%d,%d)-(%d,%d): %d pixels, want %d", i, x0, y0, x1, y1, got, want)
		}
	}
}

func TestTriangle(t *testing.T) {
	want := []pixel{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2},
		{0, 3},
	}

	orders := map[string][3]Point{
		"counter-clockwise": {Pt(0, 0), Pt(4, 0), Pt(0, 4)},
		"clockwise":         {Pt(0, 0), Pt(0, 4), Pt(4, 0)},
		"rotated":           {Pt(4, 0), Pt(0, 4), Pt(0, 0)},
	}
	for name, v := range orders {
		t.Run(name, func(t *testing.T) {
			fb := newTarget(t, 6, 6, 1)
			New(fb).Triangle(v[0], v[1], v[2], color.Black)
			if diff := cmp.Diff(want, touched(fb)); diff != "" {
				t.Errorf("Triangle() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriangleWindingIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	// Eighth-pixel vertices keep the edge functions exact, so samples lying
	// on an edge are classified the same way for both windings.
	coord := func() float64 { return float64(rng.IntN(160))/8 - 2 }
	pt := func() Point { return Pt(coord(), coord()) }

	for i := range 200 {
		a, b, c := pt(), pt(), pt()

		ccw := newTarget(t, 16, 16, 2)
		cw := newTarget(t, 16, 16, 2)
		New(ccw).Triangle(a, b, c, color.Black)
		New(cw).Triangle(a, c, b, color.Black)

		if diff := cmp.Diff(ccw.Data(), cw.Data()); diff != "" {
			t.Fatalf("triangle %d: winding changed coverage", i)
		}
	}
}

func TestTriangleSubsampleCoverage(t *testing.T) {
	fb := newTarget(t, 3, 3, 2)
	New(fb).Triangle(Pt(0, 0), Pt(2, 0), Pt(0, 2), color.Black)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 4},
		{1, 0, 3},
		{0, 1, 3},
		{1, 1, 0},
		{2, 0, 0},
	}
	for _, tt := range tests {
		if got := coverage(fb, tt.x, tt.y); got != tt.want {
			t.Errorf("coverage(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	dst := make([]byte, 3*3*4)
	if err := fb.Resolve(dst); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	// Three black samples and one white: 255/4 truncated.
	if diff := cmp.Diff([]byte{63, 63, 63, 255}, dst[4:8]); diff != "" {
		t.Errorf("resolved edge pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
	}{
		{"collinear", Pt(0, 0), Pt(2, 2), Pt(4, 4)},
		{"repeated vertex", Pt(1, 1), Pt(1, 1), Pt(3, 2)},
		{"NaN", Pt(math.NaN(), 0), Pt(2, 2), Pt(0, 4)},
		{"offscreen", Pt(-10, -10), Pt(-5, -10), Pt(-10, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTarget(t, 8, 8, 2)
			New(fb).Triangle(tt.a, tt.b, tt.c, color.Black)
			if got := touched(fb); len(got) != 0 {
				t.Errorf("Triangle() touched %v, want nothing", got)
			}
		})
	}
}

func TestTriangleCoversTarget(t *testing.T) {
	fb := newTarget(t, 4, 4, 2)
	New(fb).Triangle(Pt(-100, -100), Pt(300, -100), Pt(-100, 300), color.Black)

	for y := range 4 {
		for x := range 4 {
			if got := coverage(fb, x, y); got != 4 {
				t.Errorf("coverage(%d, %d) = %d, want 4", x, y, got)
			}
		}
	}
}

func solidTexture(t *testing.T, w, h int, c color.RGBA) *texture.Texture {
	t.Helper()
	l, err := texture.NewMipLevel(w, h)
	if err != nil {
		t.Fatalf("NewMipLevel() error = %v", err)
	}
	r, g, b, a := c.Bytes()
	for y := range h {
		for x := range w {
			l.SetTexel(x, y, r, g, b, a)
		}
	}
	tex, err := texture.New(l)
	if err != nil {
		t.Fatalf("texture.New() error = %v", err)
	}
	return tex
}

func TestImageSolid(t *testing.T) {
	fb := newTarget(t, 4, 4, 2)
	New(fb).Image(Pt(1, 1), Pt(3, 3), solidTexture(t, 2, 2, color.Red))

	want := []pixel{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	if diff := cmp.Diff(want, touched(fb)); diff != "" {
		t.Fatalf("Image() pixels mismatch (-want +got):\n%s", diff)
	}
	for _, p := range want {
		for s := range fb.SamplesPerPixel() {
			if got := fb.At(p.X, p.Y, s); got != color.Red {
				t.Errorf("At(%d, %d, %d) = %v, want red", p.X, p.Y, s, got)
			}
		}
	}
}

func TestImageMirrored(t *testing.T) {
	l, err := texture.NewMipLevel(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	l.SetTexel(0, 0, 255, 0, 0, 255)
	l.SetTexel(1, 0, 0, 0, 255, 255)
	tex, err := texture.New(l)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		p0, p1      Point
		left, right color.RGBA
	}{
		{"forward", Pt(0, 0), Pt(4, 1), color.Red, color.Blue},
		{"mirrored", Pt(4, 0), Pt(0, 1), color.Blue, color.Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTarget(t, 4, 1, 1)
			New(fb).Image(tt.p0, tt.p1, tex)
			if got := fb.At(0, 0, 0); got != tt.left {
				t.Errorf("left pixel = %v, want %v", got, tt.left)
			}
			if got := fb.At(3, 0, 0); got != tt.right {
				t.Errorf("right pixel = %v, want %v", got, tt.right)
			}
		})
	}
}

func TestImageEmpty(t *testing.T) {
	tex := solidTexture(t, 2, 2, color.Red)
	tests := []struct {
		name   string
		p0, p1 Point
		tex    *texture.Texture
	}{
		{"zero width", Pt(1, 1), Pt(1, 3), tex},
		{"zero height", Pt(1, 1), Pt(3, 1), tex},
		{"nil texture", Pt(0, 0), Pt(2, 2), nil},
		{"offscreen", Pt(10, 10), Pt(12, 12), tex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newTarget(t, 4, 4, 2)
			New(fb).Image(tt.p0, tt.p1, tt.tex)
			if got := touched(fb); len(got) != 0 {
				t.Errorf("Image() touched %v, want nothing", got)
			}
		})
	}
}

func TestImagePartialPixel(t *testing.T) {
	fb := newTarget(t, 2, 1, 2)
	// Covers the left column of subsamples of pixel 1 only.
	New(fb).Image(Pt(0, 0), Pt(1.5, 1), solidTexture(t, 1, 1, color.Black))

	if got := coverage(fb, 0, 0); got != 4 {
		t.Errorf("coverage(0, 0) = %d, want 4", got)
	}
	if got := coverage(fb, 1, 0); got != 2 {
		t.Errorf("coverage(1, 0) = %d, want 2", got)
	}
}

func BenchmarkTriangle(b *testing.B) {
	fb, err := framebuffer.New(256, 256, 2)
	if err != nil {
		b.Fatal(err)
	}
	r := New(fb)
	c := color.RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.5}

	for b.Loop() {
		r.Triangle(Pt(10, 10), Pt(240, 30), Pt(60, 250), c)
	}
}
