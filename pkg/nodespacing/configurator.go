package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// configureCellSystem decides which cells contribute to the node's minimum
// size. With no size constraints the node keeps its size and nothing
// contributes.
func configureCellSystem(ctx *NodeContext) {
	sc := ctx.cfg.SizeConstraints
	if sc.IsEmpty() {
		return
	}

	if sc.Has(options.SizeConstraintPorts) {
		labels := sc.Has(options.SizeConstraintPortLabels)
		free := ctx.cfg.PortConstraints.IsPlacementFree()

		for _, side := range []options.PortSide{options.SideNorth, options.SideSouth} {
			cell := ctx.insidePortLabelCells[side]
			cell.SetContributesToMinimumWidth(true)
			cell.SetContributesToMinimumHeight(labels)
		}
		// Fixed east and west ports are accounted for by the node size
		// calculator; the middle row would count them next to the north and
		// south cells otherwise.
		for _, side := range []options.PortSide{options.SideEast, options.SideWest} {
			cell := ctx.insidePortLabelCells[side]
			cell.SetContributesToMinimumHeight(free)
			cell.SetContributesToMinimumWidth(labels)
		}
		ctx.middleRow.SetContributesToMinimumHeight(true)
		if labels {
			ctx.middleRow.SetContributesToMinimumWidth(true)
		}
	}

	if sc.Has(options.SizeConstraintNodeLabels) {
		ctx.insideNodeLabels.SetContributesToMinimumWidth(true)
		ctx.insideNodeLabels.SetContributesToMinimumHeight(true)
		ctx.middleRow.SetContributesToMinimumWidth(true)
		ctx.middleRow.SetContributesToMinimumHeight(true)
	}

	if sc.Has(options.SizeConstraintMinimumSize) &&
		ctx.cfg.SizeOptions.Has(options.SizeOptionMinimumSizeAccountsForPadding) {
		ctx.middleRow.SetContributesToMinimumWidth(true)
		ctx.middleRow.SetContributesToMinimumHeight(true)
		ctx.insideNodeLabels.SetContributesToMinimumWidth(true)
		ctx.insideNodeLabels.SetContributesToMinimumHeight(true)
		ctx.insideNodeLabels.SetCenterCellMinimumSize(minimumNodeSize(ctx))
		ctx.insideNodeLabels.SetOnlyCenterCellContributesToMinimumSize(
			!sc.Has(options.SizeConstraintNodeLabels))
	}
}

// configureLabelCellContributions sets the contribution flags of a node
// label cell. Outside labels that may overhang are kept out of the minimum
// size entirely.
func configureLabelCellContributions(ctx *NodeContext, cell *cells.LabelCell, outside bool) {
	contributes := ctx.cfg.SizeConstraints.Has(options.SizeConstraintNodeLabels)
	if outside && ctx.cfg.SizeOptions.Has(options.SizeOptionOutsideNodeLabelsOverhang) {
		contributes = false
	}
	cell.SetContributesToMinimumWidth(contributes)
	cell.SetContributesToMinimumHeight(contributes)
}

// updateVerticalInsidePortLabelCellPadding adjusts the east and west cells'
// top and bottom padding under free port placement. The middle row already
// starts below the north cell and ends above the south cell, so only the part
// of the surrounding port margin the north and south cells do not cover has
// to be added as padding.
func updateVerticalInsidePortLabelCellPadding(ctx *NodeContext) {
	if !ctx.cfg.PortConstraints.IsPlacementFree() {
		return
	}
	top := ctx.insidePortLabelCells[options.SideNorth].MinimumHeight()
	bottom := ctx.insidePortLabelCells[options.SideSouth].MinimumHeight()
	margins := ctx.cfg.SurroundingPortMargins

	for _, side := range []options.PortSide{options.SideEast, options.SideWest} {
		if len(ctx.portContexts[side]) == 0 {
			continue
		}
		pad := ctx.insidePortLabelCells[side].Padding()
		pad.Top = max(0, margins.Top-top)
		pad.Bottom = max(0, margins.Bottom-bottom)
	}
}

// minimumNodeSize resolves the configured minimum node size.
func minimumNodeSize(ctx *NodeContext) geom.Vector {
	size, _ := ctx.node.MinimumSize()
	if ctx.cfg.SizeOptions.Has(options.SizeOptionDefaultMinimumSize) {
		if size.X <= 0 {
			size.X = options.DefaultMinimumSize.X
		}
		if size.Y <= 0 {
			size.Y = options.DefaultMinimumSize.Y
		}
	}
	return size
}
