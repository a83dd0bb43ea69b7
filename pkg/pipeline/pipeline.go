// Package pipeline lays out batches of nodes.
//
// Every node is laid out independently by [nodespacing.Process]; the pipeline
// adds the batch concerns around it: bounded parallelism, cancellation,
// logging, observability hooks and statistics.
//
// # Architecture
//
// A [Runner] hands each node to a worker goroutine. Workers share nothing:
// each call to [nodespacing.Process] builds its own node context, so nodes
// can be laid out in any order and on any number of goroutines.
//
//  1. Validate: options get their defaults and are checked
//  2. Layout: nodes are processed with at most Concurrency workers
//  3. Report: counts and timings are collected into [Stats]
//
// The first failing node cancels the remaining work.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{Logger: logger})
//	stats, err := runner.Run(ctx, nodes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Nodes, stats.Duration)
package pipeline

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nodespacing/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

// MaxConcurrency caps the number of layout workers.
const MaxConcurrency = 256

// DefaultConcurrency returns the worker count used when none is configured.
func DefaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a batch layout run.
type Options struct {
	// Concurrency is the maximum number of nodes laid out at once.
	// Zero means DefaultConcurrency().
	Concurrency int

	// Logger receives per-node debug lines and the batch summary.
	// Nil means a discard logger.
	Logger *log.Logger
}

// Stats contains batch execution statistics.
type Stats struct {
	Nodes    int
	Ports    int
	Labels   int
	Duration time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options. Call SetDefaults first.
func (o *Options) Validate() error {
	if o.Concurrency < 1 || o.Concurrency > MaxConcurrency {
		return errors.New(errors.ErrCodeInvalidConfig,
			"concurrency must be between 1 and %d, got %d", MaxConcurrency, o.Concurrency)
	}
	return nil
}
