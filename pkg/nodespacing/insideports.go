package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// createInsidePortLabelCells sizes each inside port cell across its side:
// deep enough for ports reaching into the node and, with inside port
// labels, for the labels plus the port label spacing. Cells holding labels
// are padded by the label cell spacing towards the node's interior.
//
// This runs before port contexts exist, so it reads the ports directly and
// skips ports without a concrete side.
func createInsidePortLabelCells(ctx *NodeContext) {
	inside := ctx.cfg.PortLabelPlacement.IsInside()
	depth := make(map[options.PortSide]float64, len(options.Sides))
	labeled := make(map[options.PortSide]bool, len(options.Sides))

	for _, port := range ctx.node.Ports() {
		side := port.Side()
		if side == options.SideUndefined {
			continue
		}
		offset := resolveBorderOffset(ctx, port)
		d := max(0, -offset)
		if inside && len(port.Labels()) > 0 {
			extent := axisOf(side).across(stackedLabelSize(port.Labels(), ctx.cfg.Spacing.LabelLabel))
			d = max(d, -offset+ctx.cfg.Spacing.PortLabel+extent)
			labeled[side] = true
		}
		depth[side] = max(depth[side], d)
	}

	for _, side := range options.Sides {
		setInsideDepth(ctx, side, depth[side])
		if labeled[side] {
			*interiorEdge(side, ctx.insidePortLabelCells[side].Padding()) = ctx.cfg.Spacing.LabelCell
		}
	}
}

// setInsideDepth sets the content size of side's inside port cell across
// the side.
func setInsideDepth(ctx *NodeContext, side options.PortSide, depth float64) {
	content := ctx.insidePortLabelCells[side].MinimumContentArea()
	if side.IsHorizontal() {
		content.Y = depth
	} else {
		content.X = depth
	}
}

// interiorEdge returns the padding field of a cell on side that faces the
// node's interior.
func interiorEdge(side options.PortSide, pad *geom.Insets) *float64 {
	switch side {
	case options.SideNorth:
		return &pad.Bottom
	case options.SideSouth:
		return &pad.Top
	case options.SideEast:
		return &pad.Left
	default:
		return &pad.Right
	}
}

// stackedLabelSize is the size of labels stacked on top of each other.
func stackedLabelSize(labels []graph.LabelAdapter, gap float64) geom.Vector {
	var size geom.Vector
	for i, l := range labels {
		s := l.Size()
		size.X = max(size.X, s.X)
		size.Y += s.Y
		if i > 0 {
			size.Y += gap
		}
	}
	return size
}
