// Package io reads node description files.
//
// # Overview
//
// A description file lists the nodes to lay out in TOML. Each node carries
// its current size, its layout options, its ports and its labels. The file
// describes input only; computed layouts are never written back.
//
// # File Format
//
// An optional [defaults] table holds options shared by every node. Each
// [[node]] may override them in its own [node.options] table:
//
//	[defaults]
//	size_constraints = ["PORTS", "PORT_LABELS", "NODE_LABELS"]
//	port_alignment   = "CENTER"
//
//	[defaults.spacing]
//	port_port = 5
//
//	[[node]]
//	id     = "router"
//	width  = 40
//	height = 30
//
//	[node.options]
//	size_options = ["ASYMMETRICAL"]
//
//	[[node.label]]
//	text      = "router"
//	width     = 30
//	height    = 10
//	placement = ["INSIDE", "V_TOP", "H_CENTER"]
//
//	[[node.port]]
//	id     = "in"
//	side   = "NORTH"
//	width  = 10
//	height = 4
//
//	[[node.port.label]]
//	text   = "in"
//	width  = 8
//	height = 4
//
// # Node Fields
//
// Required:
//   - none; a node without id gets a random UUID
//
// Optional:
//   - width, height: current size (default 0)
//   - min_width, min_height: minimum size, used with MINIMUM_SIZE
//   - options: per-node overrides of [defaults]
//   - label, port: arrays of tables
//
// Port fields are id, side, width, height, x and y (the stored position),
// border_offset, ratio and connected.
//
// # Options
//
// Enumerations are written with their upper-case names, and sets as arrays
// of names. Matching is case-insensitive. Options are resolved in three
// layers: [options.DefaultConfig], then [defaults], then [node.options].
// Only keys present in a layer override the layer below.
//
// # Import
//
// Use [ReadFile] to read a file path, or [Read] to read from any io.Reader:
//
//	nodes, err := io.ReadFile(ctx, "nodes.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both reject unknown keys and return fully validated nodes. Errors carry
// INVALID_FILE for malformed TOML, INVALID_INPUT or INVALID_CONFIG for bad
// values, and FILE_NOT_FOUND for missing files.
package io
