package options

// NodeLabelLocation is one of the discrete places a node label can end up:
// twelve outside the node (three per side) and nine inside it.
type NodeLabelLocation uint8

const (
	LocationUndefined NodeLabelLocation = iota

	// Outside, above the node: left, center, right.
	OutTopLeft
	OutTopCenter
	OutTopRight
	// Outside, below the node.
	OutBottomLeft
	OutBottomCenter
	OutBottomRight
	// Outside, right of the node: top, center, bottom.
	OutRightTop
	OutRightCenter
	OutRightBottom
	// Outside, left of the node.
	OutLeftTop
	OutLeftCenter
	OutLeftBottom

	// Inside the node, row by row.
	InTopLeft
	InTopCenter
	InTopRight
	InCenterLeft
	InCenterCenter
	InCenterRight
	InBottomLeft
	InBottomCenter
	InBottomRight
)

var locationNames = [...]string{
	"UNDEFINED",
	"OUT_T_L", "OUT_T_C", "OUT_T_R",
	"OUT_B_L", "OUT_B_C", "OUT_B_R",
	"OUT_R_T", "OUT_R_C", "OUT_R_B",
	"OUT_L_T", "OUT_L_C", "OUT_L_B",
	"IN_T_L", "IN_T_C", "IN_T_R",
	"IN_C_L", "IN_C_C", "IN_C_R",
	"IN_B_L", "IN_B_C", "IN_B_R",
}

// Locations lists every defined location in declaration order.
func Locations() []NodeLabelLocation {
	locs := make([]NodeLabelLocation, 0, len(locationNames)-1)
	for l := OutTopLeft; l <= InBottomRight; l++ {
		locs = append(locs, l)
	}
	return locs
}

func (l NodeLabelLocation) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return "UNDEFINED"
}

// IsInside reports whether the location lies inside the node.
func (l NodeLabelLocation) IsInside() bool { return l >= InTopLeft && l <= InBottomRight }

// IsOutside reports whether the location lies outside the node.
func (l NodeLabelLocation) IsOutside() bool { return l >= OutTopLeft && l <= OutLeftBottom }

// GridPosition returns the row and column of an inside location in the
// node's three by three label grid.
func (l NodeLabelLocation) GridPosition() (row, col int, ok bool) {
	if !l.IsInside() {
		return 0, 0, false
	}
	i := int(l - InTopLeft)
	return i / 3, i % 3, true
}

// OutsideSide returns the side of the node an outside location is attached
// to, together with the index (0 begin, 1 center, 2 end) along that side.
func (l NodeLabelLocation) OutsideSide() (side PortSide, index int, ok bool) {
	if !l.IsOutside() {
		return SideUndefined, 0, false
	}
	i := int(l - OutTopLeft)
	switch i / 3 {
	case 0:
		side = SideNorth
	case 1:
		side = SideSouth
	case 2:
		side = SideEast
	default:
		side = SideWest
	}
	return side, i % 3, true
}

// LocationFromPlacement derives a location from a label placement. Placements
// that do not name exactly one meaningful spot yield LocationUndefined.
func LocationFromPlacement(p NodeLabelPlacement) NodeLabelLocation {
	inside := p.Has(NodeLabelInside)
	outside := p.Has(NodeLabelOutside)
	if inside == outside {
		return LocationUndefined
	}

	col := -1
	switch {
	case p.Has(NodeLabelHLeft):
		col = 0
	case p.Has(NodeLabelHCenter):
		col = 1
	case p.Has(NodeLabelHRight):
		col = 2
	}
	row := -1
	switch {
	case p.Has(NodeLabelVTop):
		row = 0
	case p.Has(NodeLabelVCenter):
		row = 1
	case p.Has(NodeLabelVBottom):
		row = 2
	}
	if row < 0 || col < 0 {
		return LocationUndefined
	}

	if inside {
		return InTopLeft + NodeLabelLocation(row*3+col)
	}

	hPriority := p.Has(NodeLabelHPriority)
	switch row {
	case 0:
		switch {
		case col == 0 && hPriority:
			return OutLeftTop
		case col == 2 && hPriority:
			return OutRightTop
		}
		return OutTopLeft + NodeLabelLocation(col)
	case 2:
		switch {
		case col == 0 && hPriority:
			return OutLeftBottom
		case col == 2 && hPriority:
			return OutRightBottom
		}
		return OutBottomLeft + NodeLabelLocation(col)
	default:
		switch col {
		case 0:
			return OutLeftCenter
		case 2:
			return OutRightCenter
		}
	}
	// Outside and centered on both axes would sit on top of the node.
	return LocationUndefined
}
