package graph

import (
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// LabelAdapter is a node or port label.
type LabelAdapter interface {
	Size() geom.Vector
	// Position is relative to the node for node labels and relative to the
	// port for port labels.
	Position() geom.Vector
	SetPosition(geom.Vector)
	// Placement returns the label's own placement, if it has one.
	Placement() (options.NodeLabelPlacement, bool)
}

// PortAdapter is a port on the node border.
type PortAdapter interface {
	ID() string
	Side() options.PortSide
	Size() geom.Vector
	// Position is the port's top-left corner relative to the node.
	Position() geom.Vector
	SetPosition(geom.Vector)
	Labels() []LabelAdapter
	// BorderOffset returns the configured distance between the port and the
	// node border, positive outwards.
	BorderOffset() (float64, bool)
	// Ratio returns the configured relative position along the side, in
	// [0, 1].
	Ratio() (float64, bool)
	HasConnections() bool
}

// NodeAdapter is the node being laid out.
type NodeAdapter interface {
	ID() string
	Size() geom.Vector
	SetSize(geom.Vector)
	// MinimumSize returns the configured minimum size, if any.
	MinimumSize() (geom.Vector, bool)
	SetPadding(geom.Insets)
	Config() options.Config
	Ports() []PortAdapter
	Labels() []LabelAdapter
}
