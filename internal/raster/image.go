package raster

import (
	"math"

	"github.com/gogpu/swr/internal/texture"
)

// Image maps tex onto the axis-aligned rectangle with corners p0 and p1.
//
// p0 receives texture coordinate (0, 0) and p1 receives (1, 1); p1 may be
// left of or above p0, which mirrors the image. Every subsample whose
// center lies in the half-open rectangle is filled with the texture sampled
// at u = (x-x0)/(x1-x0), v = (y-y0)/(y1-y0) using r.Filter. Level 0 is read
// unless the filter is FilterTrilinear, which derives the level from the
// texture-space size of one screen pixel. Empty rectangles draw nothing.
func (r *Rasterizer) Image(p0, p1 Point, tex *texture.Texture) {
	if tex.NumLevels() == 0 || !p0.valid() || !p1.valid() {
		return
	}

	w := p1.X - p0.X
	h := p1.Y - p0.Y
	if w == 0 || h == 0 || math.IsNaN(w) || math.IsNaN(h) {
		return
	}

	minX, maxX := min(p0.X, p1.X), max(p0.X, p1.X)
	minY, maxY := min(p0.Y, p1.Y), max(p0.Y, p1.Y)

	x0, x1, okX := pixelSpan(minX, maxX, r.target.Width())
	y0, y1, okY := pixelSpan(minY, maxY, r.target.Height())
	if !okX || !okY {
		return
	}

	du := 1 / math.Abs(w)
	dv := 1 / math.Abs(h)

	n := r.target.SamplesPerSide()
	step := 1 / float64(n)
	half := step / 2

	for py := y0; py <= y1; py++ {
		for by := range n {
			sy := float64(py) + float64(by)*step + half
			if sy < minY || sy >= maxY {
				continue
			}
			v := (sy - p0.Y) / h
			for px := x0; px <= x1; px++ {
				for bx := range n {
					sx := float64(px) + float64(bx)*step + half
					if sx < minX || sx >= maxX {
						continue
					}
					u := (sx - p0.X) / w
					c := texture.Sample(tex, u, v, du, dv, r.Filter)
					r.target.FillSample(px, py, bx+by*n, c)
				}
			}
		}
	}
}
