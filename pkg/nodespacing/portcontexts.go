package nodespacing

import (
	"slices"

	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// createPortContexts creates one context per port and groups them by side.
// Sides with fixed order or fixed ratios are sorted by ratio; all others keep
// insertion order.
func createPortContexts(ctx *NodeContext) error {
	nextToPort := ctx.cfg.PortLabelPlacement.Has(options.PortLabelsNextToPortIfPossible)

	for _, port := range ctx.node.Ports() {
		side := port.Side()
		if side == options.SideUndefined {
			return errors.New(errors.ErrCodePortSideUndefined,
				"node %q: port %q has no side", ctx.node.ID(), port.ID())
		}

		pc := &PortContext{
			side:             side,
			ref:              port,
			size:             port.Size(),
			position:         port.Position(),
			labelsNextToPort: nextToPort && !port.HasConnections(),
			borderOffset:     resolveBorderOffset(ctx, port),
			ratio:            resolveRatio(ctx, port),
		}
		if labels := port.Labels(); len(labels) > 0 {
			pc.labelCell = cells.NewLabelCell(ctx.cfg.Spacing.LabelLabel, cells.AlignLeft, cells.AlignTop)
			for _, l := range labels {
				pc.labelCell.AddLabel(l)
			}
		}
		ctx.portContexts[side] = append(ctx.portContexts[side], pc)
	}

	if ctx.cfg.PortConstraints.IsOrderFixed() && !ctx.cfg.PortConstraints.IsPosFixed() {
		for _, side := range options.Sides {
			slices.SortStableFunc(ctx.portContexts[side], func(a, b *PortContext) int {
				switch {
				case a.ratio < b.ratio:
					return -1
				case a.ratio > b.ratio:
					return 1
				}
				return 0
			})
		}
	}
	return nil
}

// resolveBorderOffset returns the port's configured border offset. Ports
// with fixed positions and no configured offset keep the offset implied by
// their stored position and the node's size before layout.
func resolveBorderOffset(ctx *NodeContext, port graph.PortAdapter) float64 {
	if offset, ok := port.BorderOffset(); ok {
		return offset
	}
	if !ctx.cfg.PortConstraints.IsPosFixed() {
		return 0
	}
	pos, size, node := port.Position(), port.Size(), ctx.initialSize
	switch port.Side() {
	case options.SideNorth:
		return -pos.Y - size.Y
	case options.SideSouth:
		return pos.Y - node.Y
	case options.SideWest:
		return -pos.X - size.X
	case options.SideEast:
		return pos.X - node.X
	}
	return 0
}

// resolveRatio returns the port's configured ratio, falling back to its
// stored position relative to the length of its side before layout.
func resolveRatio(ctx *NodeContext, port graph.PortAdapter) float64 {
	if r, ok := port.Ratio(); ok {
		return r
	}
	a := axisOf(port.Side())
	length := a.along(ctx.initialSize)
	if length <= 0 {
		return 0
	}
	return min(1, max(0, a.along(port.Position())/length))
}
