package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// createNodeLabelCells puts every node label into the label cell of its
// location, creating cells on first use. Labels whose placement does not
// resolve to a location are left where they are.
func createNodeLabelCells(ctx *NodeContext) {
	for _, label := range ctx.node.Labels() {
		placement, ok := label.Placement()
		if !ok {
			placement = ctx.cfg.NodeLabelPlacement
		}
		loc := options.LocationFromPlacement(placement)
		if loc == options.LocationUndefined {
			continue
		}
		nodeLabelCell(ctx, loc).AddLabel(label)
	}
}

// nodeLabelCell returns the label cell of loc, creating it and inserting it
// into the inside grid or the right outside container if needed.
func nodeLabelCell(ctx *NodeContext, loc options.NodeLabelLocation) *cells.LabelCell {
	if cell, ok := ctx.nodeLabelCells[loc]; ok {
		return cell
	}

	h, v := locationAlignment(loc)
	cell := cells.NewLabelCell(ctx.cfg.Spacing.LabelLabel, h, v)
	configureLabelCellContributions(ctx, cell, loc.IsOutside())

	if row, col, ok := loc.GridPosition(); ok {
		ctx.insideNodeLabels.SetCell(row, col, cell)
	} else if side, index, ok := loc.OutsideSide(); ok {
		ctx.outsideNodeLabels[side].SetCell(cells.ContainerArea(index), cell)
	}
	ctx.nodeLabelCells[loc] = cell
	return cell
}

// locationAlignment returns how labels are aligned inside the cell of loc.
// Outside labels hug the node border; the position along the border follows
// the location.
func locationAlignment(loc options.NodeLabelLocation) (cells.HorizontalAlignment, cells.VerticalAlignment) {
	if row, col, ok := loc.GridPosition(); ok {
		return cells.HorizontalAlignment(col), cells.VerticalAlignment(row)
	}
	side, index, _ := loc.OutsideSide()
	switch side {
	case options.SideNorth:
		return cells.HorizontalAlignment(index), cells.AlignBottom
	case options.SideSouth:
		return cells.HorizontalAlignment(index), cells.AlignTop
	case options.SideEast:
		return cells.AlignLeft, cells.VerticalAlignment(index)
	default:
		return cells.AlignRight, cells.VerticalAlignment(index)
	}
}
