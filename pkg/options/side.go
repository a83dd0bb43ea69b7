package options

import (
	"strings"

	"github.com/matzehuels/nodespacing/pkg/errors"
)

// PortSide is the side of a node a port is attached to.
type PortSide uint8

const (
	SideUndefined PortSide = iota
	SideNorth
	SideEast
	SideSouth
	SideWest
)

// Sides lists the four concrete sides in clockwise order starting at north.
var Sides = [4]PortSide{SideNorth, SideEast, SideSouth, SideWest}

var sideNames = map[PortSide]string{
	SideUndefined: "UNDEFINED",
	SideNorth:     "NORTH",
	SideEast:      "EAST",
	SideSouth:     "SOUTH",
	SideWest:      "WEST",
}

func (s PortSide) String() string {
	if n, ok := sideNames[s]; ok {
		return n
	}
	return "UNDEFINED"
}

// IsHorizontal reports whether ports on s are distributed along the x axis.
func (s PortSide) IsHorizontal() bool { return s == SideNorth || s == SideSouth }

// IsVertical reports whether ports on s are distributed along the y axis.
func (s PortSide) IsVertical() bool { return s == SideEast || s == SideWest }

// Opposite returns the side across the node.
func (s PortSide) Opposite() PortSide {
	switch s {
	case SideNorth:
		return SideSouth
	case SideSouth:
		return SideNorth
	case SideEast:
		return SideWest
	case SideWest:
		return SideEast
	}
	return SideUndefined
}

// ParsePortSide parses a side name such as "NORTH". Matching is
// case-insensitive.
func ParsePortSide(s string) (PortSide, error) {
	for side, name := range sideNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return side, nil
		}
	}
	return SideUndefined, errors.New(errors.ErrCodeInvalidInput, "unknown port side %q", s)
}
