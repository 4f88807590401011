package swr

// Scene is a document to render: a canvas size in scene units and the
// top-level elements, drawn in order.
type Scene struct {
	Width, Height float64
	Elements      []Element
}

// Triangulator splits a polygon outline into triangles.
//
// Triangulate returns a flat list of vertex triples in the same space as
// points. A result whose length is not a multiple of three has its
// trailing vertices ignored.
type Triangulator interface {
	Triangulate(points []Vec2) []Vec2
}

// TriangulatorFunc adapts an ordinary function to the Triangulator
// interface.
type TriangulatorFunc func(points []Vec2) []Vec2

// Triangulate calls f(points).
func (f TriangulatorFunc) Triangulate(points []Vec2) []Vec2 {
	return f(points)
}

// FanTriangulator fans triangles out from the first vertex.
// The result is exact for convex polygons; concave polygons need a real
// triangulator such as an ear-clipping implementation.
type FanTriangulator struct{}

// Triangulate returns the fan (p0, pi, pi+1) for i in [1, n-2].
func (FanTriangulator) Triangulate(points []Vec2) []Vec2 {
	if len(points) < 3 {
		return nil
	}
	tris := make([]Vec2, 0, 3*(len(points)-2))
	for i := 1; i+1 < len(points); i++ {
		tris = append(tris, points[0], points[i], points[i+1])
	}
	return tris
}
