// Package options defines the enumerated configuration values consumed by the
// node interior layout: port sides, port constraints and alignment, the size
// constraint and size option sets, port and node label placements, and the
// resolved per-node [Config].
//
// # Sets
//
// [SizeConstraints], [SizeOptions], [PortLabelPlacement] and
// [NodeLabelPlacement] are bit sets. Combine members with the | operator and
// query them with Has:
//
//	sc := options.SizeConstraintPorts | options.SizeConstraintNodeLabels
//	if sc.Has(options.SizeConstraintPorts) { ... }
//
// Every enumeration and set has a textual form (upper-case ELK-style names
// such as "FIXED_RATIO" or "PORTS_OVERHANG"), produced by String and accepted
// by the matching Parse function. Description files use these names.
//
// # Config
//
// [Config] holds the fully resolved values for one node. [DefaultConfig]
// returns sensible defaults; [Config.Validate] checks spacings and margins.
package options
