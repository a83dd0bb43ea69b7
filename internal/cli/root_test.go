package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodespacing/pkg/errors"
)

const twoPorts = `
[defaults]
size_constraints = ["PORTS"]
port_alignment   = "CENTER"

[defaults.spacing]
port_port = 5

[[node]]
id = "box"

[[node.port]]
id     = "a"
side   = "NORTH"
width  = 10
height = 4

[[node.port]]
id     = "b"
side   = "NORTH"
width  = 10
height = 4
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nodes.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the CLI with args and returns the report output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := map[string]bool{"layout": false, "check": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "commit:") {
		t.Errorf("version output = %q, want build info", out)
	}
}

func TestLayoutCommand(t *testing.T) {
	path := writeFile(t, twoPorts)

	out, err := execute(t, "layout", "-j", "2", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"box", "25 × 0", "NORTH (0, -4)", "NORTH (15, -4)", "Layout complete", "1 nodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutCommandQuiet(t *testing.T) {
	path := writeFile(t, twoPorts)

	out, err := execute(t, "layout", "--quiet", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if strings.Contains(out, "port a") {
		t.Errorf("quiet output should not list ports:\n%s", out)
	}
	if !strings.Contains(out, "2 ports") {
		t.Errorf("quiet output missing summary:\n%s", out)
	}
}

func TestLayoutCommandEmptyFile(t *testing.T) {
	out, err := execute(t, "layout", writeFile(t, ""))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "no nodes") {
		t.Errorf("output = %q, want a warning", out)
	}
}

func TestLayoutCommandInvalidConcurrency(t *testing.T) {
	_, err := execute(t, "layout", "--concurrency", "-1", writeFile(t, twoPorts))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", writeFile(t, twoPorts))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("output = %q, want success", out)
	}
}

func TestCheckCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.toml") }, errors.ErrCodeFileNotFound},
		{"bad toml", func(t *testing.T) string { return writeFile(t, "[[node]") }, errors.ErrCodeInvalidFile},
		{"bad side", func(t *testing.T) string { return writeFile(t, "[[node]]\n[[node.port]]\nside = \"UP\"") }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "check", tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeInvalidFile, "decode nodes.toml"))
	out := buf.String()
	if !strings.Contains(out, "INVALID_FILE") || !strings.Contains(out, "decode nodes.toml") {
		t.Errorf("PrintError output = %q", out)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{25, "25"},
		{12.5, "12.5"},
		{-4, "-4"},
		{1.0 / 3, "0.33"},
		{-0.001, "0"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutCommandEnvironment(t *testing.T) {
	path := writeFile(t, twoPorts)
	t.Setenv("NODESPACING_LAYOUT_QUIET", "true")

	out, err := execute(t, "layout", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if strings.Contains(out, "port a") {
		t.Errorf("NODESPACING_LAYOUT_QUIET should suppress the report:\n%s", out)
	}

	// A flag on the command line wins over the environment.
	t.Setenv("NODESPACING_LAYOUT_CONCURRENCY", "-5")
	if _, err := execute(t, "layout", "-j", "1", path); err != nil {
		t.Errorf("flag should override environment: %v", err)
	}
}
