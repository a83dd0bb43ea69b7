package graph

import (
	"fmt"

	"github.com/matzehuels/nodespacing/pkg/errors"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// Validate checks the node's id, configuration and element sizes. A valid
// node can still fail layout if one of its ports has an undefined side.
func (n *Node) Validate() error {
	if err := errors.ValidateNodeID(n.id); err != nil {
		return err
	}
	if err := n.config.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "node %q", n.id)
	}
	if err := errors.ValidateSize("size", n.size.X, n.size.Y); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.id)
	}
	if n.hasMin {
		if err := errors.ValidateSize("minimum size", n.minSize.X, n.minSize.Y); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.id)
		}
	}
	for i, l := range n.labels {
		if err := validateLabel(l, fmt.Sprintf("label %d", i)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.id)
		}
	}

	seen := make(map[string]bool, len(n.ports))
	for _, p := range n.ports {
		if p.id != "" {
			if seen[p.id] {
				return errors.New(errors.ErrCodeInvalidInput, "node %q: duplicate port %q", n.id, p.id)
			}
			seen[p.id] = true
		}
		if err := p.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.id)
		}
	}
	return nil
}

func (p *Port) validate() error {
	if p.side == options.SideUndefined {
		return errors.New(errors.ErrCodePortSideUndefined, "port %q: side is undefined", p.id)
	}
	if err := errors.ValidateSize(fmt.Sprintf("port %q size", p.id), p.size.X, p.size.Y); err != nil {
		return err
	}
	if p.hasRatio {
		if err := errors.ValidateRatio(fmt.Sprintf("port %q ratio", p.id), p.ratio); err != nil {
			return err
		}
	}
	for i, l := range p.labels {
		if err := validateLabel(l, fmt.Sprintf("port %q label %d", p.id, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateLabel(l *Label, name string) error {
	return errors.ValidateSize(name+" size", l.size.X, l.size.Y)
}
