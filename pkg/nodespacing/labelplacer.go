package nodespacing

import (
	"github.com/matzehuels/nodespacing/pkg/options"
)

// placeLabels sizes and positions the outside node label containers around
// the node, then lays out every node label and port label cell.
func placeLabels(ctx *NodeContext) {
	overhang := ctx.cfg.SizeOptions.Has(options.SizeOptionOutsideNodeLabelsOverhang)
	w, h := ctx.size.X, ctx.size.Y

	for _, side := range options.Sides {
		container := ctx.outsideNodeLabels[side]
		r := container.Rectangle()
		if side.IsHorizontal() {
			r.Width = w
			if overhang {
				r.Width = max(w, container.FullMinimumWidth())
			}
			r.Height = container.FullMinimumHeight()
			r.X = (w - r.Width) / 2
			if side == options.SideNorth {
				r.Y = -r.Height
			} else {
				r.Y = h
			}
		} else {
			r.Height = h
			if overhang {
				r.Height = max(h, container.FullMinimumHeight())
			}
			r.Width = container.FullMinimumWidth()
			r.Y = (h - r.Height) / 2
			if side == options.SideEast {
				r.X = w
			} else {
				r.X = -r.Width
			}
		}
		container.LayoutChildrenHorizontally()
		container.LayoutChildrenVertically()
	}

	for _, cell := range ctx.nodeLabelCells {
		cell.LayoutChildrenHorizontally()
		cell.LayoutChildrenVertically()
	}
	for _, side := range options.Sides {
		for _, pc := range ctx.portContexts[side] {
			if pc.hasLabels() {
				pc.labelCell.LayoutChildrenHorizontally()
				pc.labelCell.LayoutChildrenVertically()
			}
		}
	}
}
