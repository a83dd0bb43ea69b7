package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/nodespacing"
	"github.com/matzehuels/nodespacing/pkg/observability"
)

// Runner lays out batches of nodes.
//
// The Runner holds no per-batch state, so several goroutines can call Run on
// the same Runner concurrently as long as they pass disjoint nodes.
type Runner struct {
	opts Options
}

// NewRunner creates a runner. Invalid options are reported by Run.
func NewRunner(opts Options) *Runner {
	opts.SetDefaults()
	return &Runner{opts: opts}
}

// Options returns the runner's options with defaults applied.
func (r *Runner) Options() Options {
	return r.opts
}

// Run lays out every node. Context cancellation is checked before each node
// starts; a node already in progress always finishes.
//
// On failure the returned error names the first failing node and Stats
// covers the nodes laid out so far.
func (r *Runner) Run(ctx context.Context, nodes []graph.NodeAdapter) (Stats, error) {
	if err := r.opts.Validate(); err != nil {
		return Stats{}, err
	}
	logger := r.opts.Logger
	hooks := observability.Layout()

	start := time.Now()
	hooks.OnBatchStart(ctx, len(nodes), r.opts.Concurrency)
	logger.Debug("starting batch", "nodes", len(nodes), "concurrency", r.opts.Concurrency)

	var (
		mu    sync.Mutex
		stats Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for _, node := range nodes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(errors.ErrCodeCanceled, err, "node %q not laid out", node.ID())
			}
			ports, labels := countElements(node)

			nodeStart := time.Now()
			hooks.OnNodeStart(gctx, node.ID(), ports)
			err := nodespacing.Process(node)
			elapsed := time.Since(nodeStart)
			hooks.OnNodeComplete(gctx, node.ID(), elapsed, err)

			if err != nil {
				logger.Debug("layout failed", "node", node.ID(), "error", err)
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return errors.Wrap(code, err, "node %q", node.ID())
			}
			size := node.Size()
			logger.Debug("laid out node",
				"node", node.ID(),
				"width", size.X,
				"height", size.Y,
				"ports", ports,
				"duration", elapsed)

			mu.Lock()
			stats.Nodes++
			stats.Ports += ports
			stats.Labels += labels
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil && ctx.Err() != nil {
		err = errors.Wrap(errors.ErrCodeCanceled, ctx.Err(), "batch canceled")
	}
	stats.Duration = time.Since(start)
	hooks.OnBatchComplete(ctx, stats.Nodes, stats.Duration, err)

	if err != nil {
		return stats, err
	}
	logger.Info("laid out nodes",
		"nodes", stats.Nodes,
		"ports", stats.Ports,
		"labels", stats.Labels,
		"duration", stats.Duration)
	return stats, nil
}

// countElements returns the number of ports and of node and port labels.
func countElements(node graph.NodeAdapter) (ports, labels int) {
	labels = len(node.Labels())
	for _, p := range node.Ports() {
		ports++
		labels += len(p.Labels())
	}
	return ports, labels
}
