package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// NodeContext is the mutable state of one node layout run. It owns the cell
// system built for the node and one PortContext per port. A NodeContext is
// not safe for concurrent use and is discarded after the run.
type NodeContext struct {
	node graph.NodeAdapter
	cfg  options.Config

	// size is the node's current size, replaced by the computed size once
	// the size calculator has run for an axis.
	size        geom.Vector
	// initialSize is the node's size before the run; stored port positions
	// are interpreted against it.
	initialSize geom.Vector

	// nodeContainer stacks the north inside port cell, the middle row and
	// the south inside port cell from top to bottom.
	nodeContainer        *cells.StripContainerCell
	// middleRow holds the west inside port cell, the inside node label grid
	// and the east inside port cell from left to right.
	middleRow            *cells.StripContainerCell
	insideNodeLabels     *cells.GridContainerCell
	insidePortLabelCells map[options.PortSide]*cells.AtomicCell
	outsideNodeLabels    map[options.PortSide]*cells.StripContainerCell
	nodeLabelCells       map[options.NodeLabelLocation]*cells.LabelCell
	portContexts         map[options.PortSide][]*PortContext
}

// NewNodeContext builds the empty cell system for node. No phase has run
// yet.
func NewNodeContext(node graph.NodeAdapter) *NodeContext {
	cfg := node.Config()
	symmetrical := !cfg.SizeOptions.Has(options.SizeOptionAsymmetrical)
	tabular := cfg.SizeOptions.Has(options.SizeOptionForceTabularNodeLabels)

	ctx := &NodeContext{
		node:                 node,
		cfg:                  cfg,
		size:                 node.Size(),
		initialSize:          node.Size(),
		nodeContainer:        cells.NewStripContainerCell(cells.Vertical, symmetrical, 0),
		middleRow:            cells.NewStripContainerCell(cells.Horizontal, symmetrical, 0),
		insideNodeLabels:     cells.NewGridContainerCell(tabular, symmetrical, cfg.Spacing.LabelCell),
		insidePortLabelCells: make(map[options.PortSide]*cells.AtomicCell, len(options.Sides)),
		outsideNodeLabels:    make(map[options.PortSide]*cells.StripContainerCell, len(options.Sides)),
		nodeLabelCells:       make(map[options.NodeLabelLocation]*cells.LabelCell),
		portContexts:         make(map[options.PortSide][]*PortContext, len(options.Sides)),
	}

	ctx.nodeContainer.SetContributesToMinimumWidth(true)
	ctx.nodeContainer.SetContributesToMinimumHeight(true)
	ctx.nodeContainer.SetCell(cells.Center, ctx.middleRow)
	ctx.middleRow.SetCell(cells.Center, ctx.insideNodeLabels)
	*ctx.insideNodeLabels.Padding() = cfg.NodeLabelsPadding

	for _, side := range options.Sides {
		ctx.insidePortLabelCells[side] = cells.NewAtomicCell()

		o := cells.Horizontal
		if side.IsVertical() {
			o = cells.Vertical
		}
		outside := cells.NewStripContainerCell(o, symmetrical, cfg.Spacing.LabelCell)
		*outside.Padding() = facingNode(side, cfg.Spacing.NodeLabel)
		ctx.outsideNodeLabels[side] = outside
	}
	ctx.nodeContainer.SetCell(cells.Begin, ctx.insidePortLabelCells[options.SideNorth])
	ctx.nodeContainer.SetCell(cells.End, ctx.insidePortLabelCells[options.SideSouth])
	ctx.middleRow.SetCell(cells.Begin, ctx.insidePortLabelCells[options.SideWest])
	ctx.middleRow.SetCell(cells.End, ctx.insidePortLabelCells[options.SideEast])

	return ctx
}

// facingNode returns insets with v on the edge of an outside container on
// side that faces the node.
func facingNode(side options.PortSide, v float64) geom.Insets {
	switch side {
	case options.SideNorth:
		return geom.Insets{Bottom: v}
	case options.SideSouth:
		return geom.Insets{Top: v}
	case options.SideEast:
		return geom.Insets{Left: v}
	default:
		return geom.Insets{Right: v}
	}
}

// Size returns the node size as currently known to the context.
func (ctx *NodeContext) Size() geom.Vector { return ctx.size }

// InsidePortLabelCell returns the cell reserving space for the ports and
// inside port labels on side.
func (ctx *NodeContext) InsidePortLabelCell(side options.PortSide) *cells.AtomicCell {
	return ctx.insidePortLabelCells[side]
}

// OutsideNodeLabelContainer returns the container for outside node labels
// on side.
func (ctx *NodeContext) OutsideNodeLabelContainer(side options.PortSide) *cells.StripContainerCell {
	return ctx.outsideNodeLabels[side]
}

// InsideNodeLabelContainer returns the grid holding inside node labels.
func (ctx *NodeContext) InsideNodeLabelContainer() *cells.GridContainerCell {
	return ctx.insideNodeLabels
}

// PortContexts returns the ordered port contexts of side.
func (ctx *NodeContext) PortContexts(side options.PortSide) []*PortContext {
	return ctx.portContexts[side]
}

// PortContext is the per-port state of a layout run.
type PortContext struct {
	side options.PortSide
	ref  graph.PortAdapter

	size      geom.Vector
	position  geom.Vector
	// margin reserves space around the port along its side for its labels.
	// North and south ports use Left and Right, east and west ports use Top
	// and Bottom.
	margin    geom.Insets
	labelCell *cells.LabelCell

	labelsNextToPort bool
	// borderOffset is the distance between the port and the node border,
	// positive outwards.
	borderOffset     float64
	ratio            float64
}

// Port returns the port this context belongs to.
func (pc *PortContext) Port() graph.PortAdapter { return pc.ref }

// Position returns the port position relative to the node origin.
func (pc *PortContext) Position() geom.Vector { return pc.position }

// Margin returns the space reserved around the port for its labels.
func (pc *PortContext) Margin() geom.Insets { return pc.margin }

// LabelCell returns the cell holding the port's labels, or nil.
func (pc *PortContext) LabelCell() *cells.LabelCell { return pc.labelCell }

func (pc *PortContext) hasLabels() bool {
	return pc.labelCell != nil && pc.labelCell.HasLabels()
}

// axis projects sizes, positions and margins onto the direction a side's
// ports are lined up in.
type axis bool

const (
	horizontalAxis axis = true
	verticalAxis   axis = false
)

func axisOf(side options.PortSide) axis {
	return axis(side.IsHorizontal())
}

func (a axis) along(v geom.Vector) float64 {
	if a {
		return v.X
	}
	return v.Y
}

func (a axis) across(v geom.Vector) float64 {
	if a {
		return v.Y
	}
	return v.X
}

func (a axis) alongPtr(v *geom.Vector) *float64 {
	if a {
		return &v.X
	}
	return &v.Y
}

// before and after return the margin or padding fields at the start and
// end of the axis.
func (a axis) before(in *geom.Insets) *float64 {
	if a {
		return &in.Left
	}
	return &in.Top
}

func (a axis) after(in *geom.Insets) *float64 {
	if a {
		return &in.Right
	}
	return &in.Bottom
}
