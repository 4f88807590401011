package raster

import "github.com/gogpu/swr/internal/color"

// Line draws the segment p0-p1 with Bresenham's midpoint algorithm.
//
// Endpoints are snapped to the pixels containing them and both end pixels
// are drawn. Horizontal and vertical segments are filled directly. Other
// segments step one pixel per iteration along the major axis (the one
// with the larger delta) and use an integer error term to decide when to
// step the minor axis. The walk always starts at the endpoint with the
// smaller major coordinate, so Line(a, b) and Line(b, a) cover the same
// pixels.
//
// Pixels are filled whole (every subsample). Parts of the line outside
// the target are dropped by the target's bounds check. A segment whose
// endpoints are identical draws nothing.
func (r *Rasterizer) Line(p0, p1 Point, c color.RGBA) {
	if p0 == p1 || !p0.valid() || !p1.valid() {
		return
	}

	x0, y0 := floor(p0.X), floor(p0.Y)
	x1, y1 := floor(p1.X), floor(p1.Y)

	switch {
	case y0 == y1:
		r.hline(min(x0, x1), max(x0, x1), y0, c)
		return
	case x0 == x1:
		r.vline(x0, min(y0, y1), max(y0, y1), c)
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		step := sign(y1 - y0)
		e := 2*dy - dx
		y := y0
		for x := x0; x <= x1; x++ {
			r.target.FillPixel(x, y, c)
			if e > 0 {
				y += step
				e -= 2 * dx
			}
			e += 2 * dy
		}
		return
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	step := sign(x1 - x0)
	e := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		r.target.FillPixel(x, y, c)
		if e > 0 {
			x += step
			e -= 2 * dy
		}
		e += 2 * dx
	}
}

// hline fills pixels [x0, x1] of row y. The range is clipped first, which
// yields the same pixels the bounds check would keep.
func (r *Rasterizer) hline(x0, x1, y int, c color.RGBA) {
	if y < 0 || y >= r.target.Height() {
		return
	}
	for x := max(x0, 0); x <= min(x1, r.target.Width()-1); x++ {
		r.target.FillPixel(x, y, c)
	}
}

// vline fills pixels [y0, y1] of column x.
func (r *Rasterizer) vline(x, y0, y1 int, c color.RGBA) {
	if x < 0 || x >= r.target.Width() {
		return
	}
	for y := max(y0, 0); y <= min(y1, r.target.Height()-1); y++ {
		r.target.FillPixel(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
