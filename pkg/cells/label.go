package cells

import "github.com/matzehuels/nodespacing/pkg/geom"

// Label is anything with a size that a LabelCell can arrange.
type Label interface {
	Size() geom.Vector
}

// HorizontalAlignment aligns labels within a label cell's width.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment aligns the stack of labels within a label cell's height.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// LabelCell stacks its labels vertically, separated by a gap, and aligns the
// stack inside its rectangle.
type LabelCell struct {
	base
	gap       float64
	hAlign    HorizontalAlignment
	vAlign    VerticalAlignment
	labels    []Label
	positions []geom.Vector
	content   geom.Vector
}

// NewLabelCell returns an empty label cell separating labels by gap.
func NewLabelCell(gap float64, h HorizontalAlignment, v VerticalAlignment) *LabelCell {
	return &LabelCell{gap: gap, hAlign: h, vAlign: v}
}

// AddLabel appends a label and grows the minimum content area to fit it.
func (c *LabelCell) AddLabel(l Label) {
	size := l.Size()
	c.labels = append(c.labels, l)
	c.positions = append(c.positions, geom.Vector{})
	c.content.X = max(c.content.X, size.X)
	c.content.Y += size.Y
	if len(c.labels) > 1 {
		c.content.Y += c.gap
	}
}

// HasLabels reports whether the cell holds at least one label.
func (c *LabelCell) HasLabels() bool { return len(c.labels) > 0 }

// Labels returns the labels in insertion order.
func (c *LabelCell) Labels() []Label { return c.labels }

// LabelPositions returns the label positions computed by the last layout
// passes, index-aligned with Labels. Positions are in the coordinate system
// of the cell's rectangle.
func (c *LabelCell) LabelPositions() []geom.Vector { return c.positions }

// SetAlignment changes how labels are aligned inside the cell.
func (c *LabelCell) SetAlignment(h HorizontalAlignment, v VerticalAlignment) {
	c.hAlign = h
	c.vAlign = v
}

// MinimumContentArea returns the size of the stacked labels.
func (c *LabelCell) MinimumContentArea() geom.Vector { return c.content }

func (c *LabelCell) MinimumWidth() float64 {
	return c.padding.Left + c.content.X + c.padding.Right
}

func (c *LabelCell) MinimumHeight() float64 {
	return c.padding.Top + c.content.Y + c.padding.Bottom
}

func (c *LabelCell) LayoutChildrenHorizontally() {
	left := c.rect.X + c.padding.Left
	avail := c.rect.Width - c.padding.Horizontal()
	for i, l := range c.labels {
		w := l.Size().X
		switch c.hAlign {
		case AlignLeft:
			c.positions[i].X = left
		case AlignCenter:
			c.positions[i].X = left + (avail-w)/2
		case AlignRight:
			c.positions[i].X = left + avail - w
		}
	}
}

func (c *LabelCell) LayoutChildrenVertically() {
	top := c.rect.Y + c.padding.Top
	avail := c.rect.Height - c.padding.Vertical()
	y := top
	switch c.vAlign {
	case AlignMiddle:
		y += (avail - c.content.Y) / 2
	case AlignBottom:
		y += avail - c.content.Y
	}
	for i, l := range c.labels {
		c.positions[i].Y = y
		y += l.Size().Y + c.gap
	}
}
