package swr

// fitMargin enlarges the view box chosen by FitViewport so that the
// canvas outline stays visible.
const fitMargin = 1.1

// Viewport is a square view box centered on (X, Y) in scene space that
// extends Span units in every direction.
type Viewport struct {
	X, Y float64
	Span float64
}

// FitViewport returns a viewport centered on a width×height canvas that
// shows all of it with a small margin.
func FitViewport(width, height float64) Viewport {
	return Viewport{
		X:    width / 2,
		Y:    height / 2,
		Span: max(width, height) / 2 * fitMargin,
	}
}

// CanvasToNorm returns the transform mapping the view box
// [X-Span, X+Span] × [Y-Span, Y+Span] onto the unit square.
// A viewport with a zero span yields the identity.
func (v Viewport) CanvasToNorm() Matrix {
	if v.Span == 0 {
		return Identity()
	}
	s := 1 / (2 * v.Span)
	return Matrix{
		A: s, B: 0, C: (v.Span - v.X) * s,
		D: 0, E: s, F: (v.Span - v.Y) * s,
	}
}

// CanvasToScreen returns the transform mapping the view box onto a
// width×height pixel grid. Non-square grids stretch the view box.
func (v Viewport) CanvasToScreen(width, height int) Matrix {
	return Scale(float64(width), float64(height)).Multiply(v.CanvasToNorm())
}

// Update pans the view box by (dx, dy) scene units and multiplies its
// span by scale. Panning moves the content: a positive dx shifts the
// scene to the right on screen.
func (v *Viewport) Update(dx, dy, scale float64) {
	v.X -= dx
	v.Y -= dy
	v.Span *= scale
}
