package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/options"
)

// ratioTolerance is the smallest ratio difference that still constrains the
// node size. Closer ratios would blow the size up without bound.
const ratioTolerance = 0.01

// calculateHorizontalPortPlacementSize computes the width the north and
// south ports need and stores it in their inside port cells.
func calculateHorizontalPortPlacementSize(ctx *NodeContext) {
	calculatePortPlacementSize(ctx, options.SideNorth)
	calculatePortPlacementSize(ctx, options.SideSouth)
}

// calculateVerticalPortPlacementSize computes the height the east and west
// ports need and stores it in their inside port cells.
func calculateVerticalPortPlacementSize(ctx *NodeContext) {
	calculatePortPlacementSize(ctx, options.SideEast)
	calculatePortPlacementSize(ctx, options.SideWest)
}

func calculatePortPlacementSize(ctx *NodeContext, side options.PortSide) {
	ports := ctx.portContexts[side]
	if len(ports) == 0 {
		return
	}
	if ctx.cfg.SizeConstraints.Has(options.SizeConstraintPortLabels) {
		setupPortMargins(ctx, side)
	}

	a := axisOf(side)
	cell := ctx.insidePortLabelCells[side]
	content := a.alongPtr(cell.MinimumContentArea())
	pad := cell.Padding()

	switch {
	case ctx.cfg.PortConstraints.IsPosFixed():
		extent := 0.0
		for _, pc := range ports {
			extent = max(extent, a.along(pc.position)+a.along(pc.size))
		}
		*content = extent
		*a.before(pad) = 0
		*a.after(pad) = 0

	case ctx.cfg.PortConstraints.IsRatioFixed():
		*content = fixedRatioSize(ctx, side)
		*a.before(pad) = 0
		*a.after(pad) = 0

	default:
		*content = freePortPlacementSize(ctx, side)
		*a.before(pad) = *a.before(&ctx.cfg.SurroundingPortMargins)
		*a.after(pad) = *a.after(&ctx.cfg.SurroundingPortMargins)
	}
}

// fixedRatioSize is the smallest side length at which ports at fixed ratios
// keep their margins, the port spacing and the surrounding port margins.
func fixedRatioSize(ctx *NodeContext, side options.PortSide) float64 {
	a := axisOf(side)
	ports := ctx.portContexts[side]
	spacing := ctx.cfg.Spacing.PortPort
	surrounding := ctx.cfg.SurroundingPortMargins

	size := 0.0
	first := ports[0]
	if first.ratio > ratioTolerance {
		size = max(size, (*a.before(&surrounding)+*a.before(&first.margin))/first.ratio)
	}
	for i := 1; i < len(ports); i++ {
		prev, cur := ports[i-1], ports[i]
		diff := cur.ratio - prev.ratio
		if diff < ratioTolerance {
			continue
		}
		needed := a.along(prev.size) + *a.after(&prev.margin) + spacing + *a.before(&cur.margin)
		size = max(size, needed/diff)
	}
	last := ports[len(ports)-1]
	if rest := 1 - last.ratio; rest > ratioTolerance {
		size = max(size, (a.along(last.size)+*a.after(&last.margin)+*a.after(&surrounding))/rest)
	}
	return size
}

// freePortPlacementSize is the space freely placed ports need with the base
// port spacing.
func freePortPlacementSize(ctx *NodeContext, side options.PortSide) float64 {
	a := axisOf(side)
	ports := ctx.portContexts[side]
	spacing := ctx.cfg.Spacing.PortPort

	size := float64(len(ports)-1) * spacing
	for _, pc := range ports {
		size += *a.before(&pc.margin) + a.along(pc.size) + *a.after(&pc.margin)
	}
	if portAlignment(ctx, side) == options.AlignmentDistributed {
		size += 2 * spacing
	}
	return size
}

// portAlignment resolves the alignment of side. A single port cannot be
// distributed or justified and is centered instead.
func portAlignment(ctx *NodeContext, side options.PortSide) options.PortAlignment {
	alignment := ctx.cfg.PortAlignment(side)
	if len(ctx.portContexts[side]) == 1 &&
		(alignment == options.AlignmentDistributed || alignment == options.AlignmentJustified) {
		return options.AlignmentCenter
	}
	return alignment
}

// setupPortMargins reserves space along the side for each port's labels.
func setupPortMargins(ctx *NodeContext, side options.PortSide) {
	a := axisOf(side)
	ports := ctx.portContexts[side]
	spacing := ctx.cfg.Spacing.PortLabel
	outside := !ctx.cfg.PortLabelPlacement.IsInside()

	for i, pc := range ports {
		if !pc.hasLabels() {
			continue
		}
		label := a.along(pc.labelCell.MinimumContentArea())
		switch {
		case pc.labelsNextToPort:
			if overhang := (label - a.along(pc.size)) / 2; overhang > 0 {
				*a.before(&pc.margin) += overhang
				*a.after(&pc.margin) += overhang
			}
		case outside && i == 0 && firstLabelFlipped(ctx, side):
			*a.before(&pc.margin) += spacing + label
		default:
			*a.after(&pc.margin) += spacing + label
		}
	}

	if ctx.cfg.SizeOptions.Has(options.SizeOptionUniformPortSpacing) {
		widest := 0.0
		for _, pc := range ports {
			widest = max(widest, *a.before(&pc.margin), *a.after(&pc.margin))
		}
		for _, pc := range ports {
			*a.before(&pc.margin) = widest
			*a.after(&pc.margin) = widest
		}
	}

	if outside {
		// Outside labels of the outermost ports have nothing beyond them to
		// collide with.
		if first := ports[0]; !first.labelsNextToPort {
			*a.before(&first.margin) = 0
		}
		if last := ports[len(ports)-1]; !last.labelsNextToPort {
			*a.after(&last.margin) = 0
		}
	}
}

// firstLabelFlipped reports whether the first port of side has its outside
// label on the far side, away from the other ports' labels.
func firstLabelFlipped(ctx *NodeContext, side options.PortSide) bool {
	return ctx.cfg.SizeOptions.Has(options.SizeOptionSpaceEfficientPortLabels) ||
		len(ctx.portContexts[side]) == 2
}
