package io

import (
	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/options"
)

type file struct {
	Defaults optionsTable `toml:"defaults"`
	Nodes    []nodeTable  `toml:"node"`
}

type nodeTable struct {
	ID        string       `toml:"id"`
	Width     float64      `toml:"width"`
	Height    float64      `toml:"height"`
	MinWidth  *float64     `toml:"min_width"`
	MinHeight *float64     `toml:"min_height"`
	Options   optionsTable `toml:"options"`
	Labels    []labelTable `toml:"label"`
	Ports     []portTable  `toml:"port"`
}

type labelTable struct {
	Text      string   `toml:"text"`
	Width     float64  `toml:"width"`
	Height    float64  `toml:"height"`
	X         float64  `toml:"x"`
	Y         float64  `toml:"y"`
	Placement []string `toml:"placement"`
}

type portTable struct {
	ID           string       `toml:"id"`
	Side         string       `toml:"side"`
	Width        float64      `toml:"width"`
	Height       float64      `toml:"height"`
	X            float64      `toml:"x"`
	Y            float64      `toml:"y"`
	BorderOffset *float64     `toml:"border_offset"`
	Ratio        *float64     `toml:"ratio"`
	Connected    bool         `toml:"connected"`
	Labels       []labelTable `toml:"label"`
}

// optionsTable mirrors options.Config. Nil fields leave the layer below
// unchanged.
type optionsTable struct {
	SizeConstraints    []string `toml:"size_constraints"`
	SizeOptions        []string `toml:"size_options"`
	PortConstraints    *string  `toml:"port_constraints"`
	PortAlignment      *string  `toml:"port_alignment"`
	PortAlignmentNorth *string  `toml:"port_alignment_north"`
	PortAlignmentSouth *string  `toml:"port_alignment_south"`
	PortAlignmentEast  *string  `toml:"port_alignment_east"`
	PortAlignmentWest  *string  `toml:"port_alignment_west"`
	PortLabelPlacement []string `toml:"port_label_placement"`
	NodeLabelPlacement []string `toml:"node_label_placement"`

	Spacing                spacingTable `toml:"spacing"`
	SurroundingPortMargins insetsTable  `toml:"surrounding_port_margins"`
	NodeLabelsPadding      insetsTable  `toml:"node_labels_padding"`
}

type spacingTable struct {
	PortPort   *float64 `toml:"port_port"`
	PortLabel  *float64 `toml:"port_label"`
	LabelLabel *float64 `toml:"label_label"`
	LabelCell  *float64 `toml:"label_cell"`
	NodeLabel  *float64 `toml:"node_label"`
}

type insetsTable struct {
	Top    *float64 `toml:"top"`
	Right  *float64 `toml:"right"`
	Bottom *float64 `toml:"bottom"`
	Left   *float64 `toml:"left"`
}

// apply overlays the set fields of t onto cfg.
func (t optionsTable) apply(cfg *options.Config) error {
	// A present but empty array is a valid empty set, so nil is the only
	// "unset" marker for sets.
	if t.SizeConstraints != nil {
		sc, err := options.ParseSizeConstraints(t.SizeConstraints)
		if err != nil {
			return err
		}
		cfg.SizeConstraints = sc
	}
	if t.SizeOptions != nil {
		so, err := options.ParseSizeOptions(t.SizeOptions)
		if err != nil {
			return err
		}
		cfg.SizeOptions = so
	}
	if t.PortConstraints != nil {
		pc, err := options.ParsePortConstraints(*t.PortConstraints)
		if err != nil {
			return err
		}
		cfg.PortConstraints = pc
	}

	alignments := []struct {
		raw *string
		dst *options.PortAlignment
	}{
		{t.PortAlignment, &cfg.PortAlignmentDefault},
		{t.PortAlignmentNorth, &cfg.PortAlignmentNorth},
		{t.PortAlignmentSouth, &cfg.PortAlignmentSouth},
		{t.PortAlignmentEast, &cfg.PortAlignmentEast},
		{t.PortAlignmentWest, &cfg.PortAlignmentWest},
	}
	for _, a := range alignments {
		if a.raw == nil {
			continue
		}
		v, err := options.ParsePortAlignment(*a.raw)
		if err != nil {
			return err
		}
		*a.dst = v
	}

	if t.PortLabelPlacement != nil {
		p, err := options.ParsePortLabelPlacement(t.PortLabelPlacement)
		if err != nil {
			return err
		}
		cfg.PortLabelPlacement = p
	}
	if t.NodeLabelPlacement != nil {
		p, err := parsePlacement(t.NodeLabelPlacement)
		if err != nil {
			return err
		}
		cfg.NodeLabelPlacement = p
	}

	t.Spacing.apply(&cfg.Spacing)
	t.SurroundingPortMargins.apply(&cfg.SurroundingPortMargins)
	t.NodeLabelsPadding.apply(&cfg.NodeLabelsPadding)
	return nil
}

func (t spacingTable) apply(s *options.Spacings) {
	set(&s.PortPort, t.PortPort)
	set(&s.PortLabel, t.PortLabel)
	set(&s.LabelLabel, t.LabelLabel)
	set(&s.LabelCell, t.LabelCell)
	set(&s.NodeLabel, t.NodeLabel)
}

func (t insetsTable) apply(in *geom.Insets) {
	set(&in.Top, t.Top)
	set(&in.Right, t.Right)
	set(&in.Bottom, t.Bottom)
	set(&in.Left, t.Left)
}

func set(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func parsePlacement(names []string) (options.NodeLabelPlacement, error) {
	p, err := options.ParseNodeLabelPlacement(names)
	if err != nil {
		return 0, err
	}
	if p.Has(options.NodeLabelInside | options.NodeLabelOutside) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "node label placement %v is both inside and outside", names)
	}
	return p, nil
}
