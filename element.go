package swr

// Style holds the colors an element is painted with.
// A color whose alpha is exactly zero disables that part of the element:
// a rectangle with a transparent Fill is drawn as an outline only.
type Style struct {
	Fill   Color
	Stroke Color
}

// Element is a node of the scene tree.
//
// The set of elements is closed: Point, Line, Polyline, Rect, Polygon,
// Ellipse, Image and Group. Each element carries a Local transform that
// maps its own coordinates into those of its parent; the zero Matrix is
// treated as the identity. Renderers never modify elements.
type Element interface {
	// Transform returns the element's local transform.
	Transform() Matrix

	element()
}

// Point is a single pixel at Position, painted with Style.Fill.
type Point struct {
	Local    Matrix
	Style    Style
	Position Vec2
}

// Line is a segment from From to To, painted with Style.Stroke.
type Line struct {
	Local    Matrix
	Style    Style
	From, To Vec2
}

// Polyline is an open chain of segments through Points, painted with
// Style.Stroke.
type Polyline struct {
	Local  Matrix
	Style  Style
	Points []Vec2
}

// Rect is an axis-aligned rectangle (in its local space) with its top-left
// corner at Position.
type Rect struct {
	Local    Matrix
	Style    Style
	Position Vec2
	Size     Vec2
}

// Polygon is a closed outline through Points.
//
// Triangles optionally holds a pre-computed triangulation as a flat list
// of vertex triples in local coordinates. When it is empty the renderer's
// Triangulator is used to fill the polygon.
type Polygon struct {
	Local     Matrix
	Style     Style
	Points    []Vec2
	Triangles []Vec2
}

// Ellipse is an axis-aligned ellipse. Ellipses are accepted in scenes but
// are not rasterized.
type Ellipse struct {
	Local  Matrix
	Style  Style
	Center Vec2
	Radius Vec2
}

// Image maps Texture onto the rectangle with its top-left corner at
// Position. The rectangle is transformed by its two corners only, so
// rotations and shears are not applied to the image.
type Image struct {
	Local    Matrix
	Position Vec2
	Size     Vec2
	Texture  *Texture
}

// Group owns a list of child elements drawn in order under its transform.
type Group struct {
	Local    Matrix
	Elements []Element
}

func (e *Point) Transform() Matrix    { return e.Local }
func (e *Line) Transform() Matrix     { return e.Local }
func (e *Polyline) Transform() Matrix { return e.Local }
func (e *Rect) Transform() Matrix     { return e.Local }
func (e *Polygon) Transform() Matrix  { return e.Local }
func (e *Ellipse) Transform() Matrix  { return e.Local }
func (e *Image) Transform() Matrix    { return e.Local }
func (e *Group) Transform() Matrix    { return e.Local }

func (*Point) element()    {}
func (*Line) element()     {}
func (*Polyline) element() {}
func (*Rect) element()     {}
func (*Polygon) element()  {}
func (*Ellipse) element()  {}
func (*Image) element()    {}
func (*Group) element()    {}
