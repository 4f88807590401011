package raster

import (
	"math"

	"github.com/gogpu/swr/internal/color"
)

// Triangle fills the triangle a, b, c, given in either winding order.
//
// Every subsample center of every pixel in the triangle's bounding box is
// classified with three edge functions. For edge i running from vertex vi
// with direction ei, the normal Ni is (-ei.y, ei.x), flipped to
// (ei.y, -ei.x) when cross(b-a, c-a) is positive so that every normal
// points away from the interior whatever the input winding. A sample p is
// inside iff dot(p-vi, Ni) <= 0 for all three edges; samples on an edge
// count as inside. Only the classified subsamples are filled.
//
// Zero-area (and non-finite) triangles draw nothing.
func (r *Rasterizer) Triangle(a, b, c Point, col color.RGBA) {
	if !a.valid() || !b.valid() || !c.valid() {
		return
	}

	e0 := b.Sub(a)
	e1 := c.Sub(b)
	e2 := a.Sub(c)

	area := e0.Cross(c.Sub(a))
	if area == 0 || math.IsNaN(area) {
		return
	}

	n0 := Point{X: -e0.Y, Y: e0.X}
	n1 := Point{X: -e1.Y, Y: e1.X}
	n2 := Point{X: -e2.Y, Y: e2.X}
	if area > 0 {
		n0 = Point{X: e0.Y, Y: -e0.X}
		n1 = Point{X: e1.Y, Y: -e1.X}
		n2 = Point{X: e2.Y, Y: -e2.X}
	}

	x0, x1, okX := pixelSpan(min(a.X, b.X, c.X), max(a.X, b.X, c.X), r.target.Width())
	y0, y1, okY := pixelSpan(min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y), r.target.Height())
	if !okX || !okY {
		return
	}

	n := r.target.SamplesPerSide()
	step := 1 / float64(n)
	half := step / 2

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			for by := range n {
				sy := float64(py) + float64(by)*step + half
				for bx := range n {
					p := Point{X: float64(px) + float64(bx)*step + half, Y: sy}
					if p.Sub(a).Dot(n0) <= 0 &&
						p.Sub(b).Dot(n1) <= 0 &&
						p.Sub(c).Dot(n2) <= 0 {
						r.target.FillSample(px, py, bx+by*n, col)
					}
				}
			}
		}
	}
}
