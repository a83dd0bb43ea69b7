package cells

import "github.com/matzehuels/nodespacing/pkg/geom"

// GridContainerCell arranges up to nine children in three rows and three
// columns. Rows always share their height across the grid. Columns share
// their width only in tabular mode; otherwise every row sizes its columns
// independently.
type GridContainerCell struct {
	base
	symmetrical bool
	tabular     bool
	gap         float64
	cells       [3][3]Cell

	onlyCenter    bool
	centerMinimum geom.Vector
	centerRect    geom.Rect
}

// NewGridContainerCell returns an empty grid.
func NewGridContainerCell(tabular, symmetrical bool, gap float64) *GridContainerCell {
	return &GridContainerCell{tabular: tabular, symmetrical: symmetrical, gap: gap}
}

// SetCell places c at row and column. Both must be in [0, 2].
func (g *GridContainerCell) SetCell(row, col int, c Cell) {
	g.cells[row][col] = c
}

// Cell returns the occupant at row and column, or nil.
func (g *GridContainerCell) Cell(row, col int) Cell {
	return g.cells[row][col]
}

// SetCenterCellMinimumSize forces the center slot to be at least size, even
// when it is empty.
func (g *GridContainerCell) SetCenterCellMinimumSize(size geom.Vector) {
	g.centerMinimum = size
}

// SetOnlyCenterCellContributesToMinimumSize makes the grid's minimum size
// depend on the center slot only.
func (g *GridContainerCell) SetOnlyCenterCellContributesToMinimumSize(v bool) {
	g.onlyCenter = v
}

// CenterCellRectangle returns the rectangle the last layout passes assigned
// to the center slot, whether or not a cell occupies it.
func (g *GridContainerCell) CenterCellRectangle() geom.Rect { return g.centerRect }

func (g *GridContainerCell) MinimumWidth() float64 {
	return g.padding.Horizontal() + g.minimum(true)
}

func (g *GridContainerCell) MinimumHeight() float64 {
	return g.padding.Vertical() + g.minimum(false)
}

// slotSize returns the size and activity of one slot. When contributingOnly
// is set, cells that do not contribute on the axis count as absent.
func (g *GridContainerCell) slotSize(row, col int, horizontal, contributingOnly bool) (float64, bool) {
	var size float64
	active := false
	if c := g.cells[row][col]; c != nil && (!contributingOnly || contributes(c, horizontal)) {
		size = minSize(c, horizontal)
		active = true
	}
	if row == 1 && col == 1 {
		forced := g.centerMinimum.Y
		if horizontal {
			forced = g.centerMinimum.X
		}
		if forced > 0 {
			size = max(size, forced)
			active = true
		}
	}
	return size, active
}

func (g *GridContainerCell) minimum(horizontal bool) float64 {
	if g.onlyCenter {
		size, _ := g.slotSize(1, 1, horizontal, true)
		return size
	}
	if horizontal && !g.tabular {
		best := 0.0
		for row := range 3 {
			sizes, active := g.rowSlots(row, true)
			best = max(best, alongSize(sizes, active, g.symmetrical, g.gap))
		}
		return best
	}
	sizes, active := g.sharedSlots(horizontal, true)
	return alongSize(sizes, active, g.symmetrical, g.gap)
}

// rowSlots returns the column sizes of a single row.
func (g *GridContainerCell) rowSlots(row int, contributingOnly bool) ([3]float64, [3]bool) {
	var sizes [3]float64
	var active [3]bool
	for col := range 3 {
		sizes[col], active[col] = g.slotSize(row, col, true, contributingOnly)
	}
	return sizes, active
}

// sharedSlots returns column widths or row heights shared across the grid.
func (g *GridContainerCell) sharedSlots(horizontal, contributingOnly bool) ([3]float64, [3]bool) {
	var sizes [3]float64
	var active [3]bool
	for i := range 3 {
		for j := range 3 {
			row, col := j, i
			if !horizontal {
				row, col = i, j
			}
			if s, ok := g.slotSize(row, col, horizontal, contributingOnly); ok {
				sizes[i] = max(sizes[i], s)
				active[i] = true
			}
		}
	}
	return sizes, active
}

func (g *GridContainerCell) LayoutChildrenHorizontally() {
	start := g.rect.X + g.padding.Left
	end := g.rect.Right() - g.padding.Right
	if g.tabular {
		sizes, present := g.sharedSlots(true, false)
		spans := layoutAlong(start, end, sizes, present, g.symmetrical, g.gap)
		for row := range 3 {
			g.assignRow(row, spans)
		}
	} else {
		for row := range 3 {
			sizes, present := g.rowSlots(row, false)
			g.assignRow(row, layoutAlong(start, end, sizes, present, g.symmetrical, g.gap))
		}
	}
	g.layoutAll(true)
}

func (g *GridContainerCell) assignRow(row int, spans [3]span) {
	for col, c := range g.cells[row] {
		if c != nil {
			spans[col].assign(c, true)
		}
	}
	if row == 1 {
		g.centerRect.X, g.centerRect.Width = spans[1].start, spans[1].size
	}
}

func (g *GridContainerCell) LayoutChildrenVertically() {
	start := g.rect.Y + g.padding.Top
	end := g.rect.Bottom() - g.padding.Bottom
	sizes, present := g.sharedSlots(false, false)
	spans := layoutAlong(start, end, sizes, present, g.symmetrical, g.gap)
	for row := range 3 {
		for _, c := range g.cells[row] {
			if c != nil {
				spans[row].assign(c, false)
			}
		}
	}
	g.centerRect.Y, g.centerRect.Height = spans[1].start, spans[1].size
	g.layoutAll(false)
}

func (g *GridContainerCell) layoutAll(horizontal bool) {
	for row := range 3 {
		for _, c := range g.cells[row] {
			if c != nil {
				layoutChildren(c, horizontal)
			}
		}
	}
}
