package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/options"
	"github.com/matzehuels/nodespacing/pkg/overlap"
)

// placeHorizontalPortLabels places the labels of north and south ports and
// updates the depth of their inside port cells. Labels that did not take
// part in sizing the node, or belong to fixed ports, are centered on their
// ports and stacked where they would overlap.
func placeHorizontalPortLabels(ctx *NodeContext) {
	constrained := !ctx.cfg.SizeConstraints.Has(options.SizeConstraintPortLabels) ||
		ctx.cfg.PortConstraints.IsPosFixed()
	for _, side := range []options.PortSide{options.SideNorth, options.SideSouth} {
		if constrained {
			placeConstrainedPortLabels(ctx, side)
		} else {
			placePortLabels(ctx, side)
		}
		if ctx.cfg.PortLabelPlacement.IsInside() {
			updateInsideDepth(ctx, side)
		}
	}
}

// placeVerticalPortLabels places the labels of east and west ports.
func placeVerticalPortLabels(ctx *NodeContext) {
	placePortLabels(ctx, options.SideEast)
	placePortLabels(ctx, options.SideWest)
}

// placePortLabels puts each port's label cell right next to its port. All
// rectangles are relative to the port.
func placePortLabels(ctx *NodeContext, side options.PortSide) {
	inside := ctx.cfg.PortLabelPlacement.IsInside()
	s := ctx.cfg.Spacing.PortLabel

	for i, pc := range ctx.portContexts[side] {
		if !pc.hasLabels() {
			continue
		}
		cell := pc.labelCell
		lw, lh := cell.MinimumWidth(), cell.MinimumHeight()
		pw, ph := pc.size.X, pc.size.Y
		flipped := !inside && i == 0 && firstLabelFlipped(ctx, side)

		r := geom.Rect{Width: lw, Height: lh}
		h, v := cells.AlignLeft, cells.AlignTop
		if side.IsHorizontal() {
			switch {
			case pc.labelsNextToPort:
				r.X, h = (pw-lw)/2, cells.AlignCenter
			case flipped:
				r.X, h = -lw-s, cells.AlignRight
			default:
				r.X = pw + s
			}
			if (side == options.SideNorth) != inside {
				r.Y, v = -s-lh, cells.AlignBottom
			} else {
				r.Y = ph + s
			}
		} else {
			switch {
			case pc.labelsNextToPort:
				r.Y, v = (ph-lh)/2, cells.AlignMiddle
			case flipped:
				r.Y, v = -lh-s, cells.AlignBottom
			default:
				r.Y = ph + s
			}
			if (side == options.SideWest) != inside {
				r.X, h = -s-lw, cells.AlignRight
			} else {
				r.X = pw + s
			}
		}
		*cell.Rectangle() = r
		cell.SetAlignment(h, v)
	}
}

// placeConstrainedPortLabels centers each label on its port and resolves
// overlaps by stacking labels away from the ports. Coordinates are relative
// to the side's border while stacking and relative to the port afterwards.
func placeConstrainedPortLabels(ctx *NodeContext, side options.PortSide) {
	inside := ctx.cfg.PortLabelPlacement.IsInside()
	s := ctx.cfg.Spacing.PortLabel

	var labeled []*PortContext
	for _, pc := range ctx.portContexts[side] {
		if pc.hasLabels() {
			labeled = append(labeled, pc)
		}
	}
	if len(labeled) == 0 {
		return
	}

	// Labels above the ports grow upwards from just above the topmost port,
	// labels below grow downwards from just below the lowest one.
	up := (side == options.SideNorth) != inside
	dir := overlap.Down
	start := crossOnBorder(labeled[0]) + labeled[0].size.Y + s
	if up {
		dir = overlap.Up
		start = crossOnBorder(labeled[0]) - s
	}
	for _, pc := range labeled[1:] {
		if up {
			start = min(start, crossOnBorder(pc)-s)
		} else {
			start = max(start, crossOnBorder(pc)+pc.size.Y+s)
		}
	}

	remover := overlap.NewForDirection(dir).WithGap(s).WithStartCoordinate(start)
	for _, pc := range labeled {
		cell := pc.labelCell
		lw := cell.MinimumWidth()
		*cell.Rectangle() = geom.Rect{
			X:      pc.position.X + (pc.size.X-lw)/2,
			Width:  lw,
			Height: cell.MinimumHeight(),
		}
		v := cells.AlignTop
		if up {
			v = cells.AlignBottom
		}
		cell.SetAlignment(cells.AlignCenter, v)
		remover.AddRectangle(cell.Rectangle())
	}
	remover.RemoveOverlaps()

	for _, pc := range labeled {
		r := pc.labelCell.Rectangle()
		r.X -= pc.position.X
		r.Y -= crossOnBorder(pc)
	}
}

// crossOnBorder returns the port's coordinate across its side, measured
// from the side's border in node orientation.
func crossOnBorder(pc *PortContext) float64 {
	switch pc.side {
	case options.SideNorth:
		return -pc.size.Y - pc.borderOffset
	case options.SideWest:
		return -pc.size.X - pc.borderOffset
	default:
		return pc.borderOffset
	}
}

// updateInsideDepth grows side's inside port cell to reach past the inside
// labels placed for its ports.
func updateInsideDepth(ctx *NodeContext, side options.PortSide) {
	a := axisOf(side)
	depth := 0.0
	for _, pc := range ctx.portContexts[side] {
		depth = max(depth, -pc.borderOffset)
		if !pc.hasLabels() {
			continue
		}
		r := *pc.labelCell.Rectangle()
		start := crossOnBorder(pc) + a.across(geom.Vector{X: r.X, Y: r.Y})
		extent := a.across(geom.Vector{X: r.Width, Y: r.Height})
		switch side {
		case options.SideNorth, options.SideWest:
			depth = max(depth, start+extent)
		default:
			depth = max(depth, -start)
		}
	}
	setInsideDepth(ctx, side, depth)
}
