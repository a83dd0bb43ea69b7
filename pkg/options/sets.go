package options

import (
	"strings"

	"github.com/matzehuels/nodespacing/pkg/errors"
)

// flagName pairs a set member with its textual form.
type flagName[T ~uint16] struct {
	flag T
	name string
}

func flagNames[T ~uint16](set T, table []flagName[T]) []string {
	var names []string
	for _, fn := range table {
		if set&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func parseFlags[T ~uint16](names []string, table []flagName[T], kind string) (T, error) {
	var set T
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		found := false
		for _, fn := range table {
			if strings.EqualFold(fn.name, name) {
				set |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, errors.New(errors.ErrCodeInvalidInput, "unknown %s %q", kind, raw)
		}
	}
	return set, nil
}

func formatFlags(names []string) string {
	return "[" + strings.Join(names, " ") + "]"
}

// SizeConstraints is the set of factors that must influence the node's size.
// The empty set means the node keeps its current size.
type SizeConstraints uint16

const (
	SizeConstraintPorts SizeConstraints = 1 << iota
	SizeConstraintPortLabels
	SizeConstraintNodeLabels
	SizeConstraintMinimumSize
)

var sizeConstraintTable = []flagName[SizeConstraints]{
	{SizeConstraintPorts, "PORTS"},
	{SizeConstraintPortLabels, "PORT_LABELS"},
	{SizeConstraintNodeLabels, "NODE_LABELS"},
	{SizeConstraintMinimumSize, "MINIMUM_SIZE"},
}

// Has reports whether every member of c is in s.
func (s SizeConstraints) Has(c SizeConstraints) bool { return s&c == c }

// IsEmpty reports whether no constraint is set.
func (s SizeConstraints) IsEmpty() bool { return s == 0 }

// Names returns the textual names of the set's members.
func (s SizeConstraints) Names() []string { return flagNames(s, sizeConstraintTable) }

func (s SizeConstraints) String() string { return formatFlags(s.Names()) }

// ParseSizeConstraints parses a list of names such as ["PORTS", "NODE_LABELS"].
func ParseSizeConstraints(names []string) (SizeConstraints, error) {
	return parseFlags(names, sizeConstraintTable, "size constraint")
}

// SizeOptions are policy flags refining how the node's size is computed.
type SizeOptions uint16

const (
	SizeOptionDefaultMinimumSize SizeOptions = 1 << iota
	SizeOptionMinimumSizeAccountsForPadding
	SizeOptionComputePadding
	SizeOptionOutsideNodeLabelsOverhang
	SizeOptionPortsOverhang
	SizeOptionUniformPortSpacing
	SizeOptionSpaceEfficientPortLabels
	SizeOptionForceTabularNodeLabels
	SizeOptionAsymmetrical
)

var sizeOptionTable = []flagName[SizeOptions]{
	{SizeOptionDefaultMinimumSize, "DEFAULT_MINIMUM_SIZE"},
	{SizeOptionMinimumSizeAccountsForPadding, "MINIMUM_SIZE_ACCOUNTS_FOR_PADDING"},
	{SizeOptionComputePadding, "COMPUTE_PADDING"},
	{SizeOptionOutsideNodeLabelsOverhang, "OUTSIDE_NODE_LABELS_OVERHANG"},
	{SizeOptionPortsOverhang, "PORTS_OVERHANG"},
	{SizeOptionUniformPortSpacing, "UNIFORM_PORT_SPACING"},
	{SizeOptionSpaceEfficientPortLabels, "SPACE_EFFICIENT_PORT_LABELS"},
	{SizeOptionForceTabularNodeLabels, "FORCE_TABULAR_NODE_LABELS"},
	{SizeOptionAsymmetrical, "ASYMMETRICAL"},
}

// Has reports whether every member of o is in s.
func (s SizeOptions) Has(o SizeOptions) bool { return s&o == o }

// Names returns the textual names of the set's members.
func (s SizeOptions) Names() []string { return flagNames(s, sizeOptionTable) }

func (s SizeOptions) String() string { return formatFlags(s.Names()) }

// ParseSizeOptions parses a list of names such as ["PORTS_OVERHANG"].
func ParseSizeOptions(names []string) (SizeOptions, error) {
	return parseFlags(names, sizeOptionTable, "size option")
}

// PortLabelPlacement determines where port labels go.
type PortLabelPlacement uint16

const (
	PortLabelsOutside PortLabelPlacement = 1 << iota
	PortLabelsInside
	PortLabelsFixed
	PortLabelsNextToPortIfPossible
)

var portLabelTable = []flagName[PortLabelPlacement]{
	{PortLabelsOutside, "OUTSIDE"},
	{PortLabelsInside, "INSIDE"},
	{PortLabelsFixed, "FIXED"},
	{PortLabelsNextToPortIfPossible, "NEXT_TO_PORT_IF_POSSIBLE"},
}

// Has reports whether every member of p is in s.
func (s PortLabelPlacement) Has(p PortLabelPlacement) bool { return s&p == p }

// IsInside reports whether labels are placed inside the node. Inside wins
// over outside only if outside is not also requested.
func (s PortLabelPlacement) IsInside() bool { return s.Has(PortLabelsInside) && !s.Has(PortLabelsOutside) }

// IsFixed reports whether port labels keep their given positions.
func (s PortLabelPlacement) IsFixed() bool { return s.Has(PortLabelsFixed) }

// Names returns the textual names of the set's members.
func (s PortLabelPlacement) Names() []string { return flagNames(s, portLabelTable) }

func (s PortLabelPlacement) String() string { return formatFlags(s.Names()) }

// ParsePortLabelPlacement parses a list of names such as ["INSIDE"].
func ParsePortLabelPlacement(names []string) (PortLabelPlacement, error) {
	return parseFlags(names, portLabelTable, "port label placement")
}

// NodeLabelPlacement is the placement hint of a node label, combining
// inside/outside with horizontal and vertical alignment.
type NodeLabelPlacement uint16

const (
	NodeLabelInside NodeLabelPlacement = 1 << iota
	NodeLabelOutside
	NodeLabelHLeft
	NodeLabelHCenter
	NodeLabelHRight
	NodeLabelVTop
	NodeLabelVCenter
	NodeLabelVBottom
	NodeLabelHPriority
)

var nodeLabelTable = []flagName[NodeLabelPlacement]{
	{NodeLabelInside, "INSIDE"},
	{NodeLabelOutside, "OUTSIDE"},
	{NodeLabelHLeft, "H_LEFT"},
	{NodeLabelHCenter, "H_CENTER"},
	{NodeLabelHRight, "H_RIGHT"},
	{NodeLabelVTop, "V_TOP"},
	{NodeLabelVCenter, "V_CENTER"},
	{NodeLabelVBottom, "V_BOTTOM"},
	{NodeLabelHPriority, "H_PRIORITY"},
}

// Has reports whether every member of p is in s.
func (s NodeLabelPlacement) Has(p NodeLabelPlacement) bool { return s&p == p }

// Names returns the textual names of the set's members.
func (s NodeLabelPlacement) Names() []string { return flagNames(s, nodeLabelTable) }

func (s NodeLabelPlacement) String() string { return formatFlags(s.Names()) }

// ParseNodeLabelPlacement parses a list of names such as
// ["INSIDE", "V_TOP", "H_CENTER"].
func ParseNodeLabelPlacement(names []string) (NodeLabelPlacement, error) {
	return parseFlags(names, nodeLabelTable, "node label placement")
}
