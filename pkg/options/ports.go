package options

import (
	"strings"

	"github.com/matzehuels/nodespacing/pkg/errors"
)

// PortConstraints governs how much freedom the layout has when placing ports.
type PortConstraints uint8

const (
	PortConstraintsUndefined PortConstraints = iota
	PortConstraintsFree
	PortConstraintsFixedSide
	PortConstraintsFixedOrder
	PortConstraintsFixedRatio
	PortConstraintsFixedPos
)

var portConstraintNames = []string{"UNDEFINED", "FREE", "FIXED_SIDE", "FIXED_ORDER", "FIXED_RATIO", "FIXED_POS"}

func (c PortConstraints) String() string {
	if int(c) < len(portConstraintNames) {
		return portConstraintNames[c]
	}
	return "UNDEFINED"
}

// IsPosFixed reports whether port positions are taken verbatim.
func (c PortConstraints) IsPosFixed() bool { return c == PortConstraintsFixedPos }

// IsRatioFixed reports whether ports keep a fixed relative position.
func (c PortConstraints) IsRatioFixed() bool { return c == PortConstraintsFixedRatio }

// IsOrderFixed reports whether the order of ports on each side is fixed.
func (c PortConstraints) IsOrderFixed() bool { return c >= PortConstraintsFixedOrder }

// IsSideFixed reports whether ports keep their side.
func (c PortConstraints) IsSideFixed() bool { return c >= PortConstraintsFixedSide }

// IsPlacementFree reports whether the layout computes port positions itself,
// that is neither positions nor ratios are fixed.
func (c PortConstraints) IsPlacementFree() bool { return !c.IsPosFixed() && !c.IsRatioFixed() }

// ParsePortConstraints parses a name such as "FIXED_RATIO".
func ParsePortConstraints(s string) (PortConstraints, error) {
	for i, n := range portConstraintNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return PortConstraints(i), nil
		}
	}
	return PortConstraintsUndefined, errors.New(errors.ErrCodeInvalidInput, "unknown port constraints %q", s)
}

// PortAlignment determines how free ports are distributed along a side.
// The zero value means "not set" and defers to the node's default alignment.
type PortAlignment uint8

const (
	AlignmentUndefined PortAlignment = iota
	AlignmentBegin
	AlignmentCenter
	AlignmentEnd
	AlignmentJustified
	AlignmentDistributed
)

var portAlignmentNames = []string{"UNDEFINED", "BEGIN", "CENTER", "END", "JUSTIFIED", "DISTRIBUTED"}

func (a PortAlignment) String() string {
	if int(a) < len(portAlignmentNames) {
		return portAlignmentNames[a]
	}
	return "UNDEFINED"
}

// ParsePortAlignment parses a name such as "DISTRIBUTED".
func ParsePortAlignment(s string) (PortAlignment, error) {
	for i, n := range portAlignmentNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return PortAlignment(i), nil
		}
	}
	return AlignmentUndefined, errors.New(errors.ErrCodeInvalidInput, "unknown port alignment %q", s)
}
