// Package graph defines how the node layout reads and writes the elements it
// lays out, and provides a plain in-memory implementation of them.
//
// # Adapters
//
// The layout never touches a concrete graph type. It works through three
// interfaces:
//
//   - [NodeAdapter]: size, minimum size, resolved configuration, ports and
//     node labels of the node being laid out
//   - [PortAdapter]: side, size, current position, labels and the optional
//     fixed border offset or ratio of a port
//   - [LabelAdapter]: size, position and optional placement of a label
//
// Optional values are returned as (value, ok) pairs instead of through a
// property lookup.
//
// # In-Memory Model
//
// [Node], [Port] and [Label] implement the adapters over plain fields and are
// what the TOML reader in pkg/io produces:
//
//	n := graph.NewNode("", options.DefaultConfig()) // empty id: random UUID
//	n.SetSize(geom.Vector{X: 40, Y: 30})
//	p := graph.NewPort("in", options.SideWest, geom.Vector{X: 8, Y: 8})
//	p.AddLabel(graph.NewLabel("in", geom.Vector{X: 12, Y: 6}))
//	n.AddPort(p)
//
// [Node.Validate] checks ids and sizes before a node is handed to the layout.
package graph
