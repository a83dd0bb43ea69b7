package cells

// Orientation is the axis a strip container arranges its children along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// ContainerArea indexes the three slots of a strip container.
type ContainerArea int

const (
	Begin ContainerArea = iota
	Center
	End
)

// StripContainerCell arranges up to three children along one axis. Along the
// axis the begin and end cells get their minimum size and the center cell
// gets whatever remains. Across the axis every child fills the container.
//
// A symmetrical strip reserves the larger of the begin and end sizes on both
// sides so the center cell stays centered.
type StripContainerCell struct {
	base
	orientation Orientation
	symmetrical bool
	gap         float64
	cells       [3]Cell
}

// NewStripContainerCell returns an empty strip container.
func NewStripContainerCell(o Orientation, symmetrical bool, gap float64) *StripContainerCell {
	return &StripContainerCell{orientation: o, symmetrical: symmetrical, gap: gap}
}

// SetCell places c in the given area, replacing any previous occupant.
// A nil c clears the area.
func (s *StripContainerCell) SetCell(area ContainerArea, c Cell) {
	s.cells[area] = c
}

// Cell returns the occupant of area, or nil.
func (s *StripContainerCell) Cell(area ContainerArea) Cell {
	return s.cells[area]
}

// Orientation returns the strip's layout axis.
func (s *StripContainerCell) Orientation() Orientation { return s.orientation }

func (s *StripContainerCell) MinimumWidth() float64 {
	return s.padding.Horizontal() + s.minimum(true, false)
}

func (s *StripContainerCell) MinimumHeight() float64 {
	return s.padding.Vertical() + s.minimum(false, false)
}

// FullMinimumWidth is MinimumWidth with every child counted, whether it
// contributes or not.
func (s *StripContainerCell) FullMinimumWidth() float64 {
	return s.padding.Horizontal() + s.minimum(true, true)
}

// FullMinimumHeight is MinimumHeight with every child counted.
func (s *StripContainerCell) FullMinimumHeight() float64 {
	return s.padding.Vertical() + s.minimum(false, true)
}

func (s *StripContainerCell) minimum(horizontal, all bool) float64 {
	var sizes [3]float64
	var active [3]bool
	for i, c := range s.cells {
		if c != nil && (all || contributes(c, horizontal)) {
			sizes[i] = minSize(c, horizontal)
			active[i] = true
		}
	}
	if (s.orientation == Horizontal) == horizontal {
		return alongSize(sizes, active, s.symmetrical, s.gap)
	}
	return max(sizes[0], sizes[1], sizes[2])
}

func (s *StripContainerCell) LayoutChildrenHorizontally() {
	s.layout(true)
}

func (s *StripContainerCell) LayoutChildrenVertically() {
	s.layout(false)
}

func (s *StripContainerCell) layout(horizontal bool) {
	start, end := s.contentSpan(horizontal)
	if (s.orientation == Horizontal) == horizontal {
		var sizes [3]float64
		var present [3]bool
		for i, c := range s.cells {
			if c != nil {
				sizes[i] = minSize(c, horizontal)
				present[i] = true
			}
		}
		spans := layoutAlong(start, end, sizes, present, s.symmetrical, s.gap)
		for i, c := range s.cells {
			if c != nil {
				spans[i].assign(c, horizontal)
			}
		}
	} else {
		sp := span{start: start, size: max(0, end-start)}
		for _, c := range s.cells {
			if c != nil {
				sp.assign(c, horizontal)
			}
		}
	}
	for _, c := range s.cells {
		if c != nil {
			layoutChildren(c, horizontal)
		}
	}
}

// contentSpan returns the container's rectangle minus padding on one axis.
func (s *StripContainerCell) contentSpan(horizontal bool) (float64, float64) {
	if horizontal {
		return s.rect.X + s.padding.Left, s.rect.Right() - s.padding.Right
	}
	return s.rect.Y + s.padding.Top, s.rect.Bottom() - s.padding.Bottom
}

type span struct {
	start, size float64
}

func (sp span) assign(c Cell, horizontal bool) {
	r := c.Rectangle()
	if horizontal {
		r.X, r.Width = sp.start, sp.size
	} else {
		r.Y, r.Height = sp.start, sp.size
	}
}

// alongSize is the minimum size of three slots laid out along an axis.
// Gaps are only counted between active slots.
func alongSize(sizes [3]float64, active [3]bool, symmetrical bool, gap float64) float64 {
	outer := active[0] || active[2]
	if symmetrical {
		total := 2*max(sizes[0], sizes[2]) + sizes[1]
		switch {
		case active[1] && outer:
			total += 2 * gap
		case active[0] && active[2]:
			total += gap
		}
		return total
	}
	total, n := 0.0, 0
	for i, s := range sizes {
		if active[i] {
			total += s
			n++
		}
	}
	if n > 1 {
		total += float64(n-1) * gap
	}
	return total
}

// layoutAlong distributes [start, end] among three slots. The center slot
// takes the remaining space and never goes negative.
func layoutAlong(start, end float64, sizes [3]float64, present [3]bool, symmetrical bool, gap float64) [3]span {
	var out [3]span
	out[0] = span{start: start, size: sizes[0]}
	out[2] = span{start: end - sizes[2], size: sizes[2]}

	left, right := start, end
	if symmetrical {
		if present[0] || present[2] {
			outer := max(sizes[0], sizes[2]) + gap
			left += outer
			right -= outer
		}
	} else {
		if present[0] {
			left += sizes[0] + gap
		}
		if present[2] {
			right -= sizes[2] + gap
		}
	}
	out[1] = span{start: left, size: max(0, right-left)}
	return out
}
