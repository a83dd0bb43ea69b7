package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for node headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// PrintError prints an error message with its code.
func PrintError(w io.Writer, err error) {
	msg := errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg = StyleDim.Render(string(code)) + " " + msg
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value, indented by depth levels.
func printKeyValue(w io.Writer, depth int, key, value string) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintln(w, indent+styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Node Report
// =============================================================================

// printNodeReport prints the computed layout of one node.
func printNodeReport(w io.Writer, n *graph.Node) {
	fmt.Fprintln(w, StyleTitle.Render(n.ID())+" "+StyleNumber.Render(formatSize(n.Size())))

	if p := n.Padding(); p != (geom.Insets{}) {
		printKeyValue(w, 1, "padding", formatInsets(p))
	}
	for _, p := range n.PortList() {
		printKeyValue(w, 1, "port "+p.ID(), p.Side().String()+" "+formatPoint(p.Position()))
		for _, l := range p.LabelList() {
			printKeyValue(w, 2, "label", strconv.Quote(l.Text())+" "+formatPoint(l.Position()))
		}
	}
	for _, l := range n.LabelList() {
		printKeyValue(w, 1, "label", strconv.Quote(l.Text())+" "+formatPoint(l.Position()))
	}
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints batch statistics on a single line.
func printStats(w io.Writer, stats pipeline.Stats) {
	parts := []string{
		fmt.Sprintf("%d nodes", stats.Nodes),
		fmt.Sprintf("%d ports", stats.Ports),
		fmt.Sprintf("%d labels", stats.Labels),
		stats.Duration.Round(time.Microsecond).String(),
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printFile prints a file input line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Formatting
// =============================================================================

func formatSize(v geom.Vector) string {
	return fmt.Sprintf("%s × %s", formatFloat(v.X), formatFloat(v.Y))
}

func formatPoint(v geom.Vector) string {
	return fmt.Sprintf("(%s, %s)", formatFloat(v.X), formatFloat(v.Y))
}

func formatInsets(in geom.Insets) string {
	return fmt.Sprintf("top %s right %s bottom %s left %s",
		formatFloat(in.Top), formatFloat(in.Right), formatFloat(in.Bottom), formatFloat(in.Left))
}

// formatFloat prints v with at most two decimals and no trailing zeros.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
