package options

import (
	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/geom"
)

// Default spacing values.
const (
	DefaultPortPortSpacing   = 10.0
	DefaultPortLabelSpacing  = 1.0
	DefaultLabelLabelSpacing = 0.0
	DefaultLabelCellSpacing  = 5.0
	DefaultNodeLabelSpacing  = 5.0
)

// DefaultMinimumSize is substituted for a non-positive minimum node size when
// SizeOptionDefaultMinimumSize is set.
var DefaultMinimumSize = geom.Vector{X: 20, Y: 20}

// Spacings are the distances the layout keeps between elements.
type Spacings struct {
	// PortPort separates neighboring ports on a side.
	PortPort float64
	// PortLabel separates a port from its labels.
	PortLabel float64
	// LabelLabel separates labels stacked in the same cell.
	LabelLabel float64
	// LabelCell separates neighboring label cells, and inside port labels
	// from the node's interior.
	LabelCell float64
	// NodeLabel separates outside node labels from the node border.
	NodeLabel float64
}

// Config is the resolved layout configuration of a single node.
type Config struct {
	SizeConstraints SizeConstraints
	SizeOptions     SizeOptions
	PortConstraints PortConstraints

	// PortAlignmentDefault applies to every side without an override.
	PortAlignmentDefault PortAlignment
	PortAlignmentNorth   PortAlignment
	PortAlignmentSouth   PortAlignment
	PortAlignmentEast    PortAlignment
	PortAlignmentWest    PortAlignment

	PortLabelPlacement PortLabelPlacement
	// NodeLabelPlacement is used for labels without their own placement.
	NodeLabelPlacement NodeLabelPlacement

	Spacing Spacings
	// SurroundingPortMargins reserve space around the group of ports on each
	// side, independent of per-port label margins.
	SurroundingPortMargins geom.Insets
	// NodeLabelsPadding is the padding of the inside node label grid.
	NodeLabelsPadding geom.Insets
}

// DefaultConfig returns the configuration used when nothing else is given.
// It sizes the node for its ports, port labels and node labels.
func DefaultConfig() Config {
	return Config{
		SizeConstraints:      SizeConstraintPorts | SizeConstraintPortLabels | SizeConstraintNodeLabels,
		PortConstraints:      PortConstraintsFree,
		PortAlignmentDefault: AlignmentDistributed,
		PortLabelPlacement:   PortLabelsOutside,
		NodeLabelPlacement:   NodeLabelInside | NodeLabelVTop | NodeLabelHCenter,
		Spacing: Spacings{
			PortPort:   DefaultPortPortSpacing,
			PortLabel:  DefaultPortLabelSpacing,
			LabelLabel: DefaultLabelLabelSpacing,
			LabelCell:  DefaultLabelCellSpacing,
			NodeLabel:  DefaultNodeLabelSpacing,
		},
		NodeLabelsPadding: geom.Uniform(5),
	}
}

// PortAlignment returns the alignment configured for side, falling back to
// the default alignment and finally to DISTRIBUTED.
func (c Config) PortAlignment(side PortSide) PortAlignment {
	var a PortAlignment
	switch side {
	case SideNorth:
		a = c.PortAlignmentNorth
	case SideSouth:
		a = c.PortAlignmentSouth
	case SideEast:
		a = c.PortAlignmentEast
	case SideWest:
		a = c.PortAlignmentWest
	}
	if a == AlignmentUndefined {
		a = c.PortAlignmentDefault
	}
	if a == AlignmentUndefined {
		a = AlignmentDistributed
	}
	return a
}

// Validate checks that every spacing, margin and padding is finite and
// non-negative.
func (c Config) Validate() error {
	checks := []namedValue{
		{"spacing.port_port", c.Spacing.PortPort},
		{"spacing.port_label", c.Spacing.PortLabel},
		{"spacing.label_label", c.Spacing.LabelLabel},
		{"spacing.label_cell", c.Spacing.LabelCell},
		{"spacing.node_label", c.Spacing.NodeLabel},
	}
	checks = append(checks, insetValues("surrounding_port_margins", c.SurroundingPortMargins)...)
	checks = append(checks, insetValues("node_labels_padding", c.NodeLabelsPadding)...)
	for _, chk := range checks {
		if err := errors.ValidateSpacing(chk.name, chk.v); err != nil {
			return err
		}
	}
	return nil
}

type namedValue struct {
	name string
	v    float64
}

func insetValues(prefix string, in geom.Insets) []namedValue {
	return []namedValue{
		{prefix + ".top", in.Top},
		{prefix + ".right", in.Right},
		{prefix + ".bottom", in.Bottom},
		{prefix + ".left", in.Left},
	}
}
