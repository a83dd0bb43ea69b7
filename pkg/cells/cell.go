package cells

import "github.com/matzehuels/nodespacing/pkg/geom"

// Cell is the contract shared by every kind of cell.
type Cell interface {
	// Rectangle returns the cell's assigned rectangle for in-place updates.
	Rectangle() *geom.Rect
	// Padding returns the cell's padding for in-place updates.
	Padding() *geom.Insets

	MinimumWidth() float64
	MinimumHeight() float64

	ContributesToMinimumWidth() bool
	ContributesToMinimumHeight() bool
	SetContributesToMinimumWidth(bool)
	SetContributesToMinimumHeight(bool)

	// LayoutChildrenHorizontally assigns x and width to the cell's children
	// and recurses into them.
	LayoutChildrenHorizontally()
	// LayoutChildrenVertically assigns y and height to the cell's children
	// and recurses into them.
	LayoutChildrenVertically()
}

// base carries the state every cell shares.
type base struct {
	rect          geom.Rect
	padding       geom.Insets
	contribWidth  bool
	contribHeight bool
}

func (b *base) Rectangle() *geom.Rect { return &b.rect }
func (b *base) Padding() *geom.Insets { return &b.padding }

func (b *base) ContributesToMinimumWidth() bool      { return b.contribWidth }
func (b *base) ContributesToMinimumHeight() bool     { return b.contribHeight }
func (b *base) SetContributesToMinimumWidth(v bool)  { b.contribWidth = v }
func (b *base) SetContributesToMinimumHeight(v bool) { b.contribHeight = v }

// AtomicCell is a leaf cell reserving a minimum content area plus padding.
type AtomicCell struct {
	base
	content geom.Vector
}

// NewAtomicCell returns an empty atomic cell.
func NewAtomicCell() *AtomicCell { return &AtomicCell{} }

// MinimumContentArea returns the minimum content size for in-place updates.
func (c *AtomicCell) MinimumContentArea() *geom.Vector { return &c.content }

// ContentRectangle returns the cell's rectangle minus its padding.
func (c *AtomicCell) ContentRectangle() geom.Rect {
	return geom.Rect{
		X:      c.rect.X + c.padding.Left,
		Y:      c.rect.Y + c.padding.Top,
		Width:  max(0, c.rect.Width-c.padding.Horizontal()),
		Height: max(0, c.rect.Height-c.padding.Vertical()),
	}
}

func (c *AtomicCell) MinimumWidth() float64 {
	return c.padding.Left + max(0, c.content.X) + c.padding.Right
}

func (c *AtomicCell) MinimumHeight() float64 {
	return c.padding.Top + max(0, c.content.Y) + c.padding.Bottom
}

// LayoutChildrenHorizontally is a no-op; atomic cells have no children.
func (c *AtomicCell) LayoutChildrenHorizontally() {}

// LayoutChildrenVertically is a no-op; atomic cells have no children.
func (c *AtomicCell) LayoutChildrenVertically() {}

func minSize(c Cell, horizontal bool) float64 {
	if horizontal {
		return c.MinimumWidth()
	}
	return c.MinimumHeight()
}

func contributes(c Cell, horizontal bool) bool {
	if horizontal {
		return c.ContributesToMinimumWidth()
	}
	return c.ContributesToMinimumHeight()
}

func layoutChildren(c Cell, horizontal bool) {
	if horizontal {
		c.LayoutChildrenHorizontally()
	} else {
		c.LayoutChildrenVertically()
	}
}
