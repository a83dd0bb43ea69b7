// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without tying the layout
// packages to a specific observability backend. Consumers register hooks at
// startup to receive events about batch layouts and description file reads.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so no import cycles arise
// and the layout core stays free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetInputHooks(&myInputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnNodeStart(ctx, node.ID(), len(node.Ports()))
//	err := nodespacing.Process(node)
//	observability.Layout().OnNodeComplete(ctx, node.ID(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the batch layout pipeline.
type LayoutHooks interface {
	// Batch events
	OnBatchStart(ctx context.Context, nodeCount, concurrency int)
	OnBatchComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)

	// Per-node events, possibly from several goroutines at once
	OnNodeStart(ctx context.Context, nodeID string, portCount int)
	OnNodeComplete(ctx context.Context, nodeID string, duration time.Duration, err error)
}

// =============================================================================
// Input Hooks
// =============================================================================

// InputHooks receives events from reading node description files.
type InputHooks interface {
	// OnReadStart records the start of reading a description file.
	OnReadStart(ctx context.Context, path string)

	// OnReadComplete records a finished read with the number of nodes read.
	OnReadComplete(ctx context.Context, path string, nodeCount int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnBatchStart(context.Context, int, int)                       {}
func (NoopLayoutHooks) OnBatchComplete(context.Context, int, time.Duration, error)   {}
func (NoopLayoutHooks) OnNodeStart(context.Context, string, int)                     {}
func (NoopLayoutHooks) OnNodeComplete(context.Context, string, time.Duration, error) {}

// NoopInputHooks is a no-op implementation of InputHooks.
type NoopInputHooks struct{}

func (NoopInputHooks) OnReadStart(context.Context, string) {}
func (NoopInputHooks) OnReadComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	inputHooks  InputHooks  = NoopInputHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetInputHooks registers custom input hooks.
// This should be called once at application startup before any file is read.
func SetInputHooks(h InputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inputHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Input returns the registered input hooks.
func Input() InputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	inputHooks = NoopInputHooks{}
}
