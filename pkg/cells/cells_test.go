package cells

import (
	"testing"

	"github.com/matzehuels/nodespacing/pkg/geom"
)

type box struct{ w, h float64 }

func (b box) Size() geom.Vector { return geom.Vector{X: b.w, Y: b.h} }

func atomic(w, h float64) *AtomicCell {
	c := NewAtomicCell()
	*c.MinimumContentArea() = geom.Vector{X: w, Y: h}
	c.SetContributesToMinimumWidth(true)
	c.SetContributesToMinimumHeight(true)
	return c
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestAtomicCellMinimum(t *testing.T) {
	c := atomic(10, 4)
	*c.Padding() = geom.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if got := c.MinimumWidth(); got != 16 {
		t.Errorf("MinimumWidth = %v, want 16", got)
	}
	if got := c.MinimumHeight(); got != 8 {
		t.Errorf("MinimumHeight = %v, want 8", got)
	}

	*c.Rectangle() = geom.Rect{X: 0, Y: 0, Width: 30, Height: 20}
	want := geom.Rect{X: 4, Y: 1, Width: 24, Height: 16}
	if got := c.ContentRectangle(); got != want {
		t.Errorf("ContentRectangle = %+v, want %+v", got, want)
	}
}

func TestLabelCellStacking(t *testing.T) {
	c := NewLabelCell(2, AlignCenter, AlignTop)
	if c.HasLabels() {
		t.Fatal("new cell should be empty")
	}
	c.AddLabel(box{20, 5})
	c.AddLabel(box{10, 5})

	if got := c.MinimumContentArea(); got != (geom.Vector{X: 20, Y: 12}) {
		t.Errorf("content = %+v, want {20 12}", got)
	}

	*c.Rectangle() = geom.Rect{X: 100, Y: 50, Width: 40, Height: 30}
	c.LayoutChildrenHorizontally()
	c.LayoutChildrenVertically()

	want := []geom.Vector{{X: 110, Y: 50}, {X: 115, Y: 57}}
	for i, p := range c.LabelPositions() {
		if p != want[i] {
			t.Errorf("label %d at %+v, want %+v", i, p, want[i])
		}
	}
}

func TestLabelCellAlignment(t *testing.T) {
	tests := []struct {
		name string
		h    HorizontalAlignment
		v    VerticalAlignment
		want geom.Vector
	}{
		{"top left", AlignLeft, AlignTop, geom.Vector{X: 0, Y: 0}},
		{"center middle", AlignCenter, AlignMiddle, geom.Vector{X: 15, Y: 5}},
		{"bottom right", AlignRight, AlignBottom, geom.Vector{X: 30, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLabelCell(0, tt.h, tt.v)
			c.AddLabel(box{10, 10})
			*c.Rectangle() = geom.Rect{Width: 40, Height: 20}
			c.LayoutChildrenHorizontally()
			c.LayoutChildrenVertically()
			if got := c.LabelPositions()[0]; got != tt.want {
				t.Errorf("position = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStripMinimum(t *testing.T) {
	tests := []struct {
		name        string
		symmetrical bool
		begin, end  Cell
		center      Cell
		want        float64
	}{
		{"empty", false, nil, nil, nil, 0},
		{"center only", false, nil, nil, atomic(10, 0), 10},
		{"all asymmetrical", false, atomic(4, 0), atomic(8, 0), atomic(10, 0), 4 + 10 + 8 + 2*3},
		{"all symmetrical", true, atomic(4, 0), atomic(8, 0), atomic(10, 0), 8 + 10 + 8 + 2*3},
		{"outer only symmetrical", true, atomic(4, 0), atomic(8, 0), nil, 16 + 3},
		{"begin and center", false, atomic(4, 0), nil, atomic(10, 0), 4 + 10 + 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStripContainerCell(Horizontal, tt.symmetrical, 3)
			if tt.begin != nil {
				s.SetCell(Begin, tt.begin)
			}
			if tt.center != nil {
				s.SetCell(Center, tt.center)
			}
			if tt.end != nil {
				s.SetCell(End, tt.end)
			}
			if got := s.MinimumWidth(); !approx(got, tt.want) {
				t.Errorf("MinimumWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripNonContributingCell(t *testing.T) {
	s := NewStripContainerCell(Horizontal, false, 5)
	wide := atomic(100, 50)
	wide.SetContributesToMinimumWidth(false)
	s.SetCell(Begin, wide)
	s.SetCell(Center, atomic(10, 10))

	if got := s.MinimumWidth(); got != 10 {
		t.Errorf("MinimumWidth = %v, want 10", got)
	}
	if got := s.MinimumHeight(); got != 50 {
		t.Errorf("MinimumHeight = %v, want 50", got)
	}
	if got := s.FullMinimumWidth(); got != 115 {
		t.Errorf("FullMinimumWidth = %v, want 115", got)
	}
}

func TestStripLayout(t *testing.T) {
	begin, center, end := atomic(10, 5), atomic(0, 5), atomic(20, 5)
	s := NewStripContainerCell(Horizontal, false, 2)
	s.SetCell(Begin, begin)
	s.SetCell(Center, center)
	s.SetCell(End, end)
	*s.Padding() = geom.Insets{Left: 1, Right: 1, Top: 3}
	*s.Rectangle() = geom.Rect{X: 0, Y: 0, Width: 100, Height: 20}

	s.LayoutChildrenHorizontally()
	s.LayoutChildrenVertically()

	if r := *begin.Rectangle(); r != (geom.Rect{X: 1, Y: 3, Width: 10, Height: 17}) {
		t.Errorf("begin = %+v", r)
	}
	if r := *end.Rectangle(); r != (geom.Rect{X: 79, Y: 3, Width: 20, Height: 17}) {
		t.Errorf("end = %+v", r)
	}
	if r := *center.Rectangle(); r != (geom.Rect{X: 13, Y: 3, Width: 64, Height: 17}) {
		t.Errorf("center = %+v", r)
	}
}

func TestStripSymmetricalLayout(t *testing.T) {
	begin, center, end := atomic(0, 10), atomic(0, 0), atomic(0, 20)
	s := NewStripContainerCell(Vertical, true, 0)
	s.SetCell(Begin, begin)
	s.SetCell(Center, center)
	s.SetCell(End, end)
	*s.Rectangle() = geom.Rect{Height: 100}
	s.LayoutChildrenVertically()

	if r := center.Rectangle(); r.Y != 20 || r.Height != 60 {
		t.Errorf("center y=%v h=%v, want y=20 h=60", r.Y, r.Height)
	}
}

func TestStripCenterNeverNegative(t *testing.T) {
	center := atomic(0, 0)
	s := NewStripContainerCell(Horizontal, false, 5)
	s.SetCell(Begin, atomic(30, 0))
	s.SetCell(Center, center)
	s.SetCell(End, atomic(30, 0))
	*s.Rectangle() = geom.Rect{Width: 40}
	s.LayoutChildrenHorizontally()
	if w := center.Rectangle().Width; w != 0 {
		t.Errorf("center width = %v, want 0", w)
	}
}

func TestStripLayoutIdempotent(t *testing.T) {
	inner := NewStripContainerCell(Vertical, false, 1)
	leaf := atomic(3, 3)
	inner.SetCell(End, leaf)
	outer := NewStripContainerCell(Horizontal, true, 2)
	outer.SetCell(Begin, atomic(5, 5))
	outer.SetCell(Center, inner)
	*outer.Rectangle() = geom.Rect{X: 10, Y: 10, Width: 50, Height: 40}

	outer.LayoutChildrenHorizontally()
	outer.LayoutChildrenVertically()
	first := *leaf.Rectangle()
	outer.LayoutChildrenHorizontally()
	outer.LayoutChildrenVertically()
	if second := *leaf.Rectangle(); second != first {
		t.Errorf("second pass moved leaf: %+v != %+v", second, first)
	}
}

func TestGridMinimum(t *testing.T) {
	build := func(tabular bool) *GridContainerCell {
		g := NewGridContainerCell(tabular, false, 2)
		g.SetCell(0, 0, atomic(10, 4))
		g.SetCell(1, 1, atomic(6, 8))
		g.SetCell(2, 2, atomic(4, 4))
		return g
	}

	if got := build(true).MinimumWidth(); got != 10+6+4+2*2 {
		t.Errorf("tabular width = %v, want 24", got)
	}
	if got := build(false).MinimumWidth(); got != 10 {
		t.Errorf("non-tabular width = %v, want 10", got)
	}
	if got := build(false).MinimumHeight(); got != 4+8+4+2*2 {
		t.Errorf("height = %v, want 20", got)
	}
}

func TestGridCenterMinimum(t *testing.T) {
	g := NewGridContainerCell(true, true, 5)
	g.SetCell(0, 0, atomic(10, 10))
	g.SetCenterCellMinimumSize(geom.Vector{X: 30, Y: 30})

	if got := g.MinimumWidth(); got != 10+30+10+2*5 {
		t.Errorf("MinimumWidth = %v, want 60", got)
	}

	g.SetOnlyCenterCellContributesToMinimumSize(true)
	if got := g.MinimumWidth(); got != 30 {
		t.Errorf("only center: MinimumWidth = %v, want 30", got)
	}
	if got := g.MinimumHeight(); got != 30 {
		t.Errorf("only center: MinimumHeight = %v, want 30", got)
	}
}

func TestGridLayoutCenterRectangle(t *testing.T) {
	g := NewGridContainerCell(true, false, 0)
	topLeft := atomic(10, 10)
	bottomRight := atomic(20, 5)
	g.SetCell(0, 0, topLeft)
	g.SetCell(2, 2, bottomRight)
	*g.Rectangle() = geom.Rect{X: 0, Y: 0, Width: 100, Height: 50}

	g.LayoutChildrenHorizontally()
	g.LayoutChildrenVertically()

	want := geom.Rect{X: 10, Y: 10, Width: 70, Height: 35}
	if got := g.CenterCellRectangle(); got != want {
		t.Errorf("center = %+v, want %+v", got, want)
	}
	if r := *bottomRight.Rectangle(); r != (geom.Rect{X: 80, Y: 45, Width: 20, Height: 5}) {
		t.Errorf("bottom right = %+v", r)
	}
}
