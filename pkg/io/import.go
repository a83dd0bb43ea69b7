package io

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/graph"
	"github.com/matzehuels/nodespacing/pkg/observability"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// Read decodes a node description file from r.
//
// Read returns an error if:
//   - The TOML is malformed or contains unknown keys (INVALID_FILE)
//   - An option name is unknown (INVALID_INPUT)
//   - A node fails [graph.Node.Validate]
//
// Errors from a node are wrapped with its position in the file. Read does
// not close r.
func Read(r io.Reader) ([]*graph.Node, error) {
	var data file
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFile, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFile, "unknown keys: %s", strings.Join(keys, ", "))
	}

	base := options.DefaultConfig()
	if err := data.Defaults.apply(&base); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "defaults")
	}

	nodes := make([]*graph.Node, 0, len(data.Nodes))
	for i, nt := range data.Nodes {
		n, err := nt.build(base)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "node %d (%s)", i, describe(nt.ID))
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ReadFile reads the node description file at path. It reports the read to
// the registered [observability.InputHooks].
func ReadFile(ctx context.Context, path string) (nodes []*graph.Node, err error) {
	hooks := observability.Input()
	start := time.Now()
	hooks.OnReadStart(ctx, path)
	defer func() {
		hooks.OnReadComplete(ctx, path, len(nodes), time.Since(start), err)
	}()

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFile, err, "open %s", path)
	}
	defer f.Close()

	nodes, err = Read(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return nodes, nil
}

func (nt nodeTable) build(base options.Config) (*graph.Node, error) {
	cfg := base
	if err := nt.Options.apply(&cfg); err != nil {
		return nil, err
	}

	n := graph.NewNode(nt.ID, cfg)
	n.SetSize(geom.Vector{X: nt.Width, Y: nt.Height})
	if nt.MinWidth != nil || nt.MinHeight != nil {
		var minSize geom.Vector
		set(&minSize.X, nt.MinWidth)
		set(&minSize.Y, nt.MinHeight)
		n.SetMinimumSize(minSize)
	}

	for _, lt := range nt.Labels {
		l, err := lt.build()
		if err != nil {
			return nil, err
		}
		n.AddLabel(l)
	}
	for _, pt := range nt.Ports {
		p, err := pt.build()
		if err != nil {
			return nil, err
		}
		n.AddPort(p)
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (pt portTable) build() (*graph.Port, error) {
	side := options.SideUndefined
	if pt.Side != "" {
		s, err := options.ParsePortSide(pt.Side)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "port %s", describe(pt.ID))
		}
		side = s
	}

	p := graph.NewPort(pt.ID, side, geom.Vector{X: pt.Width, Y: pt.Height})
	p.SetPosition(geom.Vector{X: pt.X, Y: pt.Y})
	p.SetConnected(pt.Connected)
	if pt.BorderOffset != nil {
		p.SetBorderOffset(*pt.BorderOffset)
	}
	if pt.Ratio != nil {
		p.SetRatio(*pt.Ratio)
	}
	for _, lt := range pt.Labels {
		l, err := lt.build()
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "port %s", describe(pt.ID))
		}
		p.AddLabel(l)
	}
	return p, nil
}

func (lt labelTable) build() (*graph.Label, error) {
	l := graph.NewLabel(lt.Text, geom.Vector{X: lt.Width, Y: lt.Height})
	l.SetPosition(geom.Vector{X: lt.X, Y: lt.Y})
	if lt.Placement != nil {
		p, err := parsePlacement(lt.Placement)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "label %q", lt.Text)
		}
		l.WithPlacement(p)
	}
	return l, nil
}

func describe(id string) string {
	if id == "" {
		return "<anonymous>"
	}
	return fmt.Sprintf("%q", id)
}
