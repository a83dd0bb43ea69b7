package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/options"
)

// placeHorizontalPorts positions the north and south ports along the node's
// width. North ports also get their y coordinate; south ports get theirs once
// the height is known.
func placeHorizontalPorts(ctx *NodeContext) {
	placePortsAlongSide(ctx, options.SideNorth)
	placePortsAlongSide(ctx, options.SideSouth)
	for _, pc := range ctx.portContexts[options.SideNorth] {
		pc.position.Y = -pc.size.Y - pc.borderOffset
	}
}

// placeVerticalPorts positions the east and west ports along the node's
// height and resolves every coordinate that depends on the final size.
func placeVerticalPorts(ctx *NodeContext) {
	placePortsAlongSide(ctx, options.SideEast)
	placePortsAlongSide(ctx, options.SideWest)
	for _, pc := range ctx.portContexts[options.SideSouth] {
		pc.position.Y = ctx.size.Y + pc.borderOffset
	}
	for _, pc := range ctx.portContexts[options.SideEast] {
		pc.position.X = ctx.size.X + pc.borderOffset
	}
	for _, pc := range ctx.portContexts[options.SideWest] {
		pc.position.X = -pc.size.X - pc.borderOffset
	}
}

func placePortsAlongSide(ctx *NodeContext, side options.PortSide) {
	ports := ctx.portContexts[side]
	if len(ports) == 0 {
		return
	}
	a := axisOf(side)
	switch {
	case ctx.cfg.PortConstraints.IsPosFixed():
		// Stored positions are kept along the side.
	case ctx.cfg.PortConstraints.IsRatioFixed():
		length := a.along(ctx.size)
		for _, pc := range ports {
			*a.alongPtr(&pc.position) = pc.ratio * length
		}
	default:
		placeFreePorts(ctx, side)
	}
}

// placeFreePorts lines the ports of side up inside their inside port cell's
// content area according to the side's alignment. Ports that do not fit
// have their spacing reduced unless they may overhang.
func placeFreePorts(ctx *NodeContext, side options.PortSide) {
	a := axisOf(side)
	ports := ctx.portContexts[side]
	n := float64(len(ports))
	cell := ctx.insidePortLabelCells[side]
	content := cell.ContentRectangle()

	start := content.X
	available := content.Width
	if a == verticalAxis {
		start, available = content.Y, content.Height
	}
	required := a.along(*cell.MinimumContentArea())
	spacing := ctx.cfg.Spacing.PortPort
	alignment := portAlignment(ctx, side)

	pos := start
	overhang := required > available
	switch {
	case overhang && !ctx.cfg.SizeOptions.Has(options.SizeOptionPortsOverhang) && alignment == options.AlignmentDistributed:
		spacing = max(0, spacing-(required-available)/(n+1))
		pos = start + spacing
	case overhang && !ctx.cfg.SizeOptions.Has(options.SizeOptionPortsOverhang) && len(ports) > 1:
		spacing = max(0, spacing-(required-available)/(n-1))
	default:
		slack := available - required
		switch alignment {
		case options.AlignmentBegin:
		case options.AlignmentEnd:
			pos = start + slack
		case options.AlignmentDistributed:
			if slack > 0 {
				spacing += slack / (n + 1)
				pos = start + spacing
			} else {
				pos = start + slack/2 + spacing
			}
		case options.AlignmentJustified:
			if slack > 0 {
				spacing += slack / (n - 1)
			} else {
				pos = start + slack/2
			}
		default:
			pos = start + slack/2
		}
	}

	for _, pc := range ports {
		pos += *a.before(&pc.margin)
		*a.alongPtr(&pc.position) = pos
		pos += a.along(pc.size) + *a.after(&pc.margin) + spacing
	}
}
