package swr

import (
	"github.com/gogpu/swr/internal/raster"
)

// draw visits e under the parent transform. The composed transform is
// passed down by value, so siblings never see each other's transforms.
func (r *Renderer) draw(e Element, parent Matrix) {
	if e == nil {
		return
	}
	m := parent.Multiply(e.Transform().orIdentity())
	r.stats.Elements++

	switch e := e.(type) {
	case *Point:
		r.drawPoint(m, e)
	case *Line:
		r.drawLine(m, e)
	case *Polyline:
		r.drawPolyline(m, e)
	case *Rect:
		r.drawRect(m, e)
	case *Polygon:
		r.drawPolygon(m, e)
	case *Ellipse:
		r.stats.Skipped++
		Logger().Debug("swr: ellipse not rasterized",
			"center", e.Center, "radius", e.Radius)
	case *Image:
		r.drawImage(m, e)
	case *Group:
		for _, child := range e.Elements {
			r.draw(child, m)
		}
	}
}

// screen maps a point through m into rasterizer coordinates.
func screen(m Matrix, p Vec2) raster.Point {
	q := m.TransformPoint(p)
	return raster.Pt(q.X, q.Y)
}

func (r *Renderer) drawPoint(m Matrix, e *Point) {
	if e.Style.Fill.Transparent() {
		return
	}
	r.rast.Point(screen(m, e.Position), e.Style.Fill)
	r.stats.Points++
}

func (r *Renderer) drawLine(m Matrix, e *Line) {
	if e.Style.Stroke.Transparent() {
		return
	}
	r.line(screen(m, e.From), screen(m, e.To), e.Style.Stroke)
}

func (r *Renderer) drawPolyline(m Matrix, e *Polyline) {
	if e.Style.Stroke.Transparent() {
		return
	}
	r.outline(m, e.Points, false, e.Style.Stroke)
}

// drawRect fills the rectangle as two triangles sharing the p1-p2
// diagonal and strokes it as the closed outline p0, p1, p3, p2.
func (r *Renderer) drawRect(m Matrix, e *Rect) {
	x, y := e.Position.X, e.Position.Y
	w, h := e.Size.X, e.Size.Y

	p0 := screen(m, V2(x, y))
	p1 := screen(m, V2(x+w, y))
	p2 := screen(m, V2(x, y+h))
	p3 := screen(m, V2(x+w, y+h))

	if c := e.Style.Fill; !c.Transparent() {
		r.triangle(p0, p1, p2, c)
		r.triangle(p2, p1, p3, c)
	}

	if c := e.Style.Stroke; !c.Transparent() {
		r.line(p0, p1, c)
		r.line(p1, p3, c)
		r.line(p3, p2, c)
		r.line(p2, p0, c)
	}
}

func (r *Renderer) drawPolygon(m Matrix, e *Polygon) {
	if c := e.Style.Fill; !c.Transparent() {
		tris := e.Triangles
		if len(tris) == 0 {
			tris = r.triangulator.Triangulate(e.Points)
		}
		if len(tris)%3 != 0 {
			Logger().Warn("swr: polygon triangle list is not a multiple of three",
				"vertices", len(tris))
		}
		for i := 0; i+2 < len(tris); i += 3 {
			r.triangle(screen(m, tris[i]), screen(m, tris[i+1]), screen(m, tris[i+2]), c)
		}
	}

	if c := e.Style.Stroke; !c.Transparent() {
		r.outline(m, e.Points, true, c)
	}
}

// drawImage maps the image rectangle through m by its two opposite
// corners; the texture stays axis-aligned on screen.
func (r *Renderer) drawImage(m Matrix, e *Image) {
	if e.Texture.NumLevels() == 0 {
		r.stats.Skipped++
		return
	}
	p0 := screen(m, e.Position)
	p1 := screen(m, e.Position.Add(e.Size))
	r.rast.Image(p0, p1, e.Texture)
	r.stats.Images++
}

// outline strokes the segments between consecutive points, plus the
// closing segment when closed is set.
func (r *Renderer) outline(m Matrix, points []Vec2, closed bool, c Color) {
	n := len(points)
	if n < 2 {
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}
	for i := range segments {
		r.line(screen(m, points[i]), screen(m, points[(i+1)%n]), c)
	}
}

// drawBorder outlines the canvas rectangle one pixel outside its
// transformed corners.
func (r *Renderer) drawBorder(s *Scene) {
	m := r.canvasToScreen

	a := m.TransformPoint(V2(0, 0)).Add(V2(-1, -1))
	b := m.TransformPoint(V2(s.Width, 0)).Add(V2(1, -1))
	c := m.TransformPoint(V2(0, s.Height)).Add(V2(-1, 1))
	d := m.TransformPoint(V2(s.Width, s.Height)).Add(V2(1, 1))

	pa, pb := raster.Pt(a.X, a.Y), raster.Pt(b.X, b.Y)
	pc, pd := raster.Pt(c.X, c.Y), raster.Pt(d.X, d.Y)

	r.line(pa, pb, Black)
	r.line(pa, pc, Black)
	r.line(pd, pb, Black)
	r.line(pd, pc, Black)
}

func (r *Renderer) line(p0, p1 raster.Point, c Color) {
	r.rast.Line(p0, p1, c)
	r.stats.Lines++
}

func (r *Renderer) triangle(a, b, c raster.Point, col Color) {
	r.rast.Triangle(a, b, c, col)
	r.stats.Triangles++
}
