// Package cli implements the nodespacing command-line interface.
//
// This package provides commands for laying out the interiors of nodes read
// from TOML description files and for checking such files. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute node sizes, port and label positions and print a report
//   - check: Read and validate a description file without laying it out
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command logs the same way.
//
// # Example
//
//	import "github.com/matzehuels/nodespacing/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/nodespacing/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "nodespacing"

	// envPrefix prefixes environment variables that set flag defaults,
	// for example NODESPACING_LAYOUT_CONCURRENCY.
	envPrefix = "NODESPACING"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives reports; it is stdout unless a test replaces it.
	out io.Writer

	// settings resolves flag values from flags and the environment.
	settings *viper.Viper
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		out:      os.Stdout,
		settings: newSettings(),
	}
}

// newSettings returns a viper instance reading NODESPACING_* variables, with
// dots in keys mapped to underscores.
func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlag makes key resolve to the named flag when it is set on the command
// line, and to the environment otherwise.
func (c *CLI) bindFlag(key string, flag *pflag.Flag) {
	// BindPFlag only fails for a nil flag, which is a programming error.
	if err := c.settings.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command reports to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(concurrency int) (*pipeline.Runner, error) {
	opts := pipeline.Options{Concurrency: concurrency, Logger: c.Logger}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return pipeline.NewRunner(opts), nil
}
