// Package nodespacing computes the interior layout of a single graph node:
// its size, the positions of its ports along the four sides, and the
// positions of its node labels and port labels.
//
// # Usage
//
//	n := graph.NewNode("box", options.DefaultConfig())
//	n.AddPort(graph.NewPort("in", options.SideWest, geom.Vector{X: 8, Y: 8}))
//	if err := nodespacing.Process(n); err != nil {
//	    // only fails for ports with an undefined side
//	}
//
// # Cell System
//
// The node is modeled as nested cells from pkg/cells. A vertical strip holds
// the north inside port cell, a middle row and the south inside port cell.
// The middle row holds the west inside port cell, a three by three grid for
// inside node labels and the east inside port cell. Four more strips sit
// outside the node, one per side, and hold outside node labels.
//
// # Phases
//
// [Process] builds a [NodeContext] and runs its phases in a fixed order:
//
//  1. decide which cells contribute to the minimum node size
//  2. size the inside port regions and create node label cells
//  3. create one [PortContext] per port, grouped and ordered by side
//  4. compute the width the north and south ports need, set the node width,
//     place those ports and their labels
//  5. do the same for the east and west ports and the node height
//  6. place outside node labels and lay out every label cell
//  7. write size, port positions, label positions and optionally padding
//     back to the node
//
// Width comes first because north and south inside port labels decide how
// tall their regions are, which feeds into the height.
//
// # Coordinates
//
// Port positions and node label positions are relative to the node's
// top-left corner, with y growing downwards. Port label positions are
// relative to their port's top-left corner.
//
// # Concurrency
//
// Process touches nothing but the node passed to it. Distinct nodes can be
// processed in parallel; see pkg/pipeline.
package nodespacing
