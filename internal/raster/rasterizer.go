// Package raster converts screen-space primitives into framebuffer writes.
//
// All coordinates are in screen space: x grows to the right, y grows down,
// and pixel (x, y) covers [x, x+1) × [y, y+1). Lines and points are drawn
// with whole-pixel fills; triangles and images are sampled per subsample,
// which is what anti-aliases their edges.
package raster

import (
	"math"

	"github.com/gogpu/swr/internal/color"
	"github.com/gogpu/swr/internal/texture"
)

// maxCoord bounds the screen coordinates accepted by the rasterizer.
// Anything larger is treated as degenerate input and drawn as nothing.
const maxCoord = 1 << 30

// Target is the surface a Rasterizer writes to.
// *framebuffer.Framebuffer implements it.
type Target interface {
	Width() int
	Height() int
	SamplesPerSide() int
	FillSample(x, y, s int, c color.RGBA)
	FillPixel(x, y int, c color.RGBA)
}

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) valid() bool {
	return math.Abs(p.X) < maxCoord && math.Abs(p.Y) < maxCoord
}

// Rasterizer draws primitives into a Target.
type Rasterizer struct {
	target Target

	// Filter selects the texture filter used by Image.
	Filter texture.Filter
}

// New creates a rasterizer for target that samples images bilinearly.
func New(target Target) *Rasterizer {
	return &Rasterizer{
		target: target,
		Filter: texture.FilterBilinear,
	}
}

// Target returns the surface the rasterizer draws into.
func (r *Rasterizer) Target() Target {
	return r.target
}

// Point fills the pixel containing p.
func (r *Rasterizer) Point(p Point, c color.RGBA) {
	if !p.valid() {
		return
	}
	r.target.FillPixel(floor(p.X), floor(p.Y), c)
}

// pixelSpan returns the integer pixel range [first, last] touched by the
// continuous interval [lo, hi], clamped to [0, n). ok is false when the
// interval lies entirely outside.
func pixelSpan(lo, hi float64, n int) (first, last int, ok bool) {
	first = max(floor(lo), 0)
	last = min(floor(hi), n-1)
	return first, last, first <= last
}

func floor(v float64) int {
	return int(math.Floor(v))
}
