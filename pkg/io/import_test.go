package io

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/nodespacing"
	"github.com/matzehuels/nodespacing/pkg/options"
)

const sample = `
[defaults]
size_constraints = ["PORTS", "PORT_LABELS"]
port_alignment   = "CENTER"

[defaults.spacing]
port_port = 5

[[node]]
id     = "router"
width  = 40
height = 30

[node.options]
size_options         = ["ASYMMETRICAL"]
port_alignment_north = "BEGIN"

[node.options.node_labels_padding]
top = 2

[[node.label]]
text      = "router"
width     = 30
height    = 10
placement = ["INSIDE", "V_TOP", "H_CENTER"]

[[node.port]]
id        = "in"
side      = "north"
width     = 10
height    = 4
connected = true

[[node.port.label]]
text   = "in"
width  = 8
height = 4

[[node.port]]
id            = "out"
side          = "EAST"
width         = 4
height        = 4
x             = 40
y             = 13
border_offset = 1
ratio         = 0.5

[[node]]
min_width  = 15
min_height = 12
`

func TestReadSample(t *testing.T) {
	nodes, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}

	router := nodes[0]
	if router.ID() != "router" {
		t.Errorf("ID = %q, want router", router.ID())
	}
	if got := router.Size(); got != (geom.Vector{X: 40, Y: 30}) {
		t.Errorf("Size = %+v, want {40 30}", got)
	}

	want := options.DefaultConfig()
	want.SizeConstraints = options.SizeConstraintPorts | options.SizeConstraintPortLabels
	want.SizeOptions = options.SizeOptionAsymmetrical
	want.PortAlignmentDefault = options.AlignmentCenter
	want.PortAlignmentNorth = options.AlignmentBegin
	want.Spacing.PortPort = 5
	want.NodeLabelsPadding.Top = 2
	if diff := cmp.Diff(want, router.Config()); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}

	labels := router.LabelList()
	if len(labels) != 1 || labels[0].Text() != "router" {
		t.Fatalf("labels = %v, want one router label", labels)
	}
	placement, ok := labels[0].Placement()
	if !ok || placement != options.NodeLabelInside|options.NodeLabelVTop|options.NodeLabelHCenter {
		t.Errorf("Placement = %v (%v), want [INSIDE H_CENTER V_TOP]", placement, ok)
	}

	ports := router.PortList()
	if len(ports) != 2 {
		t.Fatalf("got %d ports, want 2", len(ports))
	}
	in, out := ports[0], ports[1]
	if in.Side() != options.SideNorth || !in.HasConnections() || len(in.LabelList()) != 1 {
		t.Errorf("in = side %v connected %v labels %d", in.Side(), in.HasConnections(), len(in.LabelList()))
	}
	if _, ok := in.Ratio(); ok {
		t.Error("in should have no ratio")
	}
	if off, ok := out.BorderOffset(); !ok || off != 1 {
		t.Errorf("out BorderOffset = %v (%v), want 1", off, ok)
	}
	if r, ok := out.Ratio(); !ok || r != 0.5 {
		t.Errorf("out Ratio = %v (%v), want 0.5", r, ok)
	}
	if got := out.Position(); got != (geom.Vector{X: 40, Y: 13}) {
		t.Errorf("out Position = %+v, want {40 13}", got)
	}
}

func TestReadDefaultsOnly(t *testing.T) {
	nodes, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	anon := nodes[1]
	if anon.ID() == "" {
		t.Error("anonymous node should get a generated id")
	}
	if got, ok := anon.MinimumSize(); !ok || got != (geom.Vector{X: 15, Y: 12}) {
		t.Errorf("MinimumSize = %+v (%v), want {15 12}", got, ok)
	}
	// Only [defaults] applies; router's overrides must not leak.
	cfg := anon.Config()
	if cfg.SizeOptions != 0 || cfg.PortAlignmentNorth != options.AlignmentUndefined {
		t.Errorf("Config leaked per-node overrides: %+v", cfg)
	}
	if cfg.Spacing.PortPort != 5 {
		t.Errorf("PortPort = %v, want 5", cfg.Spacing.PortPort)
	}
}

func TestReadEmptySetOverrides(t *testing.T) {
	in := `
[[node]]
id = "fixed"
[node.options]
size_constraints = []
`
	nodes, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if sc := nodes[0].Config().SizeConstraints; !sc.IsEmpty() {
		t.Errorf("SizeConstraints = %v, want empty", sc)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", "[[node]\nid = 1", errors.ErrCodeInvalidFile},
		{"unknown key", "[[node]]\nid = \"a\"\ncolour = \"red\"", errors.ErrCodeInvalidFile},
		{"unknown side", "[[node]]\n[[node.port]]\nside = \"UP\"", errors.ErrCodeInvalidInput},
		{"undefined side", "[[node]]\n[[node.port]]\nid = \"p\"", errors.ErrCodePortSideUndefined},
		{"unknown option", "[defaults]\nsize_options = [\"HUGE\"]", errors.ErrCodeInvalidInput},
		{"unknown alignment", "[[node]]\n[node.options]\nport_alignment = \"MIDDLE\"", errors.ErrCodeInvalidInput},
		{"negative spacing", "[[node]]\n[node.options.spacing]\nport_port = -1", errors.ErrCodeInvalidConfig},
		{"negative size", "[[node]]\nwidth = -3", errors.ErrCodeInvalidInput},
		{"duplicate port", "[[node]]\n[[node.port]]\nid = \"p\"\nside = \"NORTH\"\n[[node.port]]\nid = \"p\"\nside = \"SOUTH\"", errors.ErrCodeInvalidInput},
		{"bad ratio", "[[node]]\n[[node.port]]\nside = \"WEST\"\nratio = 2.0", errors.ErrCodeInvalidInput},
		{"inside and outside", "[[node]]\n[[node.label]]\nplacement = [\"INSIDE\", \"OUTSIDE\"]", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	nodes, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d nodes, want 0", len(nodes))
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	nodes, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	if ids[0] != "router" {
		t.Errorf("ids = %v, want router first", ids)
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadNodesLayOut(t *testing.T) {
	nodes, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for _, n := range nodes {
		if err := nodespacing.Process(n); err != nil {
			t.Errorf("Process(%s): %v", n.ID(), err)
		}
	}
	if got := nodes[1].Size(); got != (geom.Vector{}) {
		t.Errorf("empty node Size = %+v, want {0 0}", got)
	}
}
