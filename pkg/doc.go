// Package pkg provides the libraries of nodespacing, a node interior layout
// engine in the style of ELK's node size and port placement phase.
//
// # Overview
//
// Before a graph layout places nodes, each node must know its own size and
// where its ports and labels sit. The pkg directory is organized into:
//
//  1. [nodespacing] - The layout phases and their per-node context
//  2. [cells] - The cell system that measures and arranges rectangles
//  3. [overlap] - Rectangle strip overlap removal for stacked port labels
//  4. [graph] - Adapter interfaces and an in-memory node model
//  5. [options] - Layout options and their textual names
//  6. [geom] - Vectors, rectangles and insets
//  7. [io] - TOML node description files
//  8. [pipeline] - Parallel batch layout
//  9. [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
// The typical data flow:
//
//	nodes.toml
//	     ↓
//	[io] package (decode + validate)
//	     ↓
//	[pipeline] package (fan out over nodes)
//	     ↓
//	[nodespacing] package (cells, port contexts, phases)
//	     ↓
//	node size, port positions, label positions
//
// # Quick Start
//
//	node := graph.NewNode("box", options.DefaultConfig())
//	node.AddPort(graph.NewPort("in", options.SideNorth, geom.Vector{X: 10, Y: 4}))
//	if err := nodespacing.Process(node); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(node.Size())
//
// [nodespacing]: github.com/matzehuels/nodespacing/pkg/nodespacing
// [cells]: github.com/matzehuels/nodespacing/pkg/cells
// [overlap]: github.com/matzehuels/nodespacing/pkg/overlap
// [graph]: github.com/matzehuels/nodespacing/pkg/graph
// [options]: github.com/matzehuels/nodespacing/pkg/options
// [geom]: github.com/matzehuels/nodespacing/pkg/geom
// [io]: github.com/matzehuels/nodespacing/pkg/io
// [pipeline]: github.com/matzehuels/nodespacing/pkg/pipeline
// [errors]: github.com/matzehuels/nodespacing/pkg/errors
// [observability]: github.com/matzehuels/nodespacing/pkg/observability
// [buildinfo]: github.com/matzehuels/nodespacing/pkg/buildinfo
package pkg
