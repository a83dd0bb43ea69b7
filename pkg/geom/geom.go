// Package geom provides the small set of geometric value types shared by the
// cell system and the node layout phases.
//
// All coordinates use a y-down system: the origin is the top-left corner of
// whatever the coordinates are relative to (a node, or a port for port
// labels).
package geom

// Vector is a two-dimensional point or size.
type Vector struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v translated by -o.
func (v Vector) Sub(o Vector) Vector { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Position returns the top-left corner.
func (r Rect) Position() Vector { return Vector{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vector { return Vector{X: r.Width, Y: r.Height} }

// Translate moves the rectangle by d.
func (r *Rect) Translate(d Vector) {
	r.X += d.X
	r.Y += d.Y
}

// Insets describe space around the four sides of a rectangle. They are used
// both for padding (space inside a cell) and for margins (space reserved
// around a port).
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Uniform returns insets with the same value on every side.
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}
