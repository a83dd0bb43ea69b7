package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/options"
)

// setNodeWidth resolves the node's width from the cell system, assigns it to
// the node container and lays the cells out horizontally.
func setNodeWidth(ctx *NodeContext) {
	width := ctx.size.X
	if sc := ctx.cfg.SizeConstraints; !sc.IsEmpty() {
		width = ctx.nodeContainer.MinimumWidth()
		if !ctx.cfg.SizeOptions.Has(options.SizeOptionOutsideNodeLabelsOverhang) {
			width = max(width,
				ctx.outsideNodeLabels[options.SideNorth].MinimumWidth(),
				ctx.outsideNodeLabels[options.SideSouth].MinimumWidth())
		}
		if minimumSizeApplies(ctx) {
			width = max(width, minimumNodeSize(ctx).X)
		}
	}

	ctx.size.X = width
	rect := ctx.nodeContainer.Rectangle()
	rect.X, rect.Width = 0, width
	ctx.nodeContainer.LayoutChildrenHorizontally()
}

// setNodeHeight is setNodeWidth for the vertical axis. Fixed east and west
// ports do not contribute through the middle row and are added here.
func setNodeHeight(ctx *NodeContext) {
	height := ctx.size.Y
	if sc := ctx.cfg.SizeConstraints; !sc.IsEmpty() {
		height = ctx.nodeContainer.MinimumHeight()
		if !ctx.cfg.SizeOptions.Has(options.SizeOptionOutsideNodeLabelsOverhang) {
			height = max(height,
				ctx.outsideNodeLabels[options.SideEast].MinimumHeight(),
				ctx.outsideNodeLabels[options.SideWest].MinimumHeight())
		}
		if minimumSizeApplies(ctx) {
			height = max(height, minimumNodeSize(ctx).Y)
		}
		if sc.Has(options.SizeConstraintPorts) && !ctx.cfg.PortConstraints.IsPlacementFree() {
			height = max(height,
				ctx.insidePortLabelCells[options.SideEast].MinimumHeight(),
				ctx.insidePortLabelCells[options.SideWest].MinimumHeight())
		}
	}

	ctx.size.Y = height
	rect := ctx.nodeContainer.Rectangle()
	rect.Y, rect.Height = 0, height
	ctx.nodeContainer.LayoutChildrenVertically()
}

// minimumSizeApplies reports whether the configured minimum size bounds the
// node size directly. When it accounts for padding it is enforced by the
// inside label grid instead.
func minimumSizeApplies(ctx *NodeContext) bool {
	return ctx.cfg.SizeConstraints.Has(options.SizeConstraintMinimumSize) &&
		!ctx.cfg.SizeOptions.Has(options.SizeOptionMinimumSizeAccountsForPadding)
}
