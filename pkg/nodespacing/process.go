package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/cells"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// Process lays out the interior of node: it computes the node size, the
// position of every port and the position of every node and port label, and
// writes them back through the adapters.
//
// The only error is ErrCodePortSideUndefined for a port without a concrete
// side; node is left untouched in that case.
func Process(node graph.NodeAdapter) error {
	ctx := NewNodeContext(node)
	if err := ctx.run(); err != nil {
		return err
	}
	ctx.apply()
	return nil
}

// run executes every phase except the final write-back.
func (ctx *NodeContext) run() error {
	configureCellSystem(ctx)
	createInsidePortLabelCells(ctx)
	createNodeLabelCells(ctx)
	if err := createPortContexts(ctx); err != nil {
		return err
	}

	calculateHorizontalPortPlacementSize(ctx)
	setNodeWidth(ctx)
	placeHorizontalPorts(ctx)
	placeHorizontalPortLabels(ctx)

	calculateVerticalPortPlacementSize(ctx)
	updateVerticalInsidePortLabelCellPadding(ctx)
	setNodeHeight(ctx)
	placeVerticalPorts(ctx)
	placeVerticalPortLabels(ctx)

	placeLabels(ctx)
	return nil
}

// apply writes the computed layout to the node, its ports and labels.
func (ctx *NodeContext) apply() {
	ctx.node.SetSize(ctx.size)

	for _, side := range options.Sides {
		for _, pc := range ctx.portContexts[side] {
			pc.ref.SetPosition(pc.position)
			if pc.labelCell != nil {
				applyLabelPositions(pc.labelCell.Labels(), pc.labelCell.LabelPositions())
			}
		}
	}
	for _, cell := range ctx.nodeLabelCells {
		applyLabelPositions(cell.Labels(), cell.LabelPositions())
	}

	if ctx.cfg.SizeOptions.Has(options.SizeOptionComputePadding) {
		center := ctx.insideNodeLabels.CenterCellRectangle()
		ctx.node.SetPadding(geom.Insets{
			Top:    center.Y,
			Left:   center.X,
			Bottom: ctx.size.Y - center.Bottom(),
			Right:  ctx.size.X - center.Right(),
		})
	}
}

func applyLabelPositions(labels []cells.Label, positions []geom.Vector) {
	for i, l := range labels {
		if label, ok := l.(graph.LabelAdapter); ok {
			label.SetPosition(positions[i])
		}
	}
}
