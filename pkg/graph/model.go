package graph

import (
	"github.com/google/uuid"

	"github.com/matzehuels/nodespacing/pkg/geom"
	"github.com/matzehuels/nodespacing/pkg/options"
)

// Label is an in-memory LabelAdapter.
type Label struct {
	text         string
	size         geom.Vector
	pos          geom.Vector
	placement    options.NodeLabelPlacement
	hasPlacement bool
}

// NewLabel returns a label of the given size.
func NewLabel(text string, size geom.Vector) *Label {
	return &Label{text: text, size: size}
}

// WithPlacement sets the label's own placement and returns the label.
func (l *Label) WithPlacement(p options.NodeLabelPlacement) *Label {
	l.placement = p
	l.hasPlacement = true
	return l
}

func (l *Label) Text() string              { return l.text }
func (l *Label) Size() geom.Vector         { return l.size }
func (l *Label) Position() geom.Vector     { return l.pos }
func (l *Label) SetPosition(p geom.Vector) { l.pos = p }

func (l *Label) Placement() (options.NodeLabelPlacement, bool) {
	return l.placement, l.hasPlacement
}

// Port is an in-memory PortAdapter.
type Port struct {
	id        string
	side      options.PortSide
	size      geom.Vector
	pos       geom.Vector
	labels    []*Label
	connected bool

	borderOffset    float64
	hasBorderOffset bool
	ratio           float64
	hasRatio        bool
}

// NewPort returns an unconnected port on side.
func NewPort(id string, side options.PortSide, size geom.Vector) *Port {
	return &Port{id: id, side: side, size: size}
}

func (p *Port) ID() string                  { return p.id }
func (p *Port) Side() options.PortSide      { return p.side }
func (p *Port) Size() geom.Vector           { return p.size }
func (p *Port) Position() geom.Vector       { return p.pos }
func (p *Port) SetPosition(v geom.Vector)   { p.pos = v }
func (p *Port) HasConnections() bool        { return p.connected }
func (p *Port) SetConnected(connected bool) { p.connected = connected }

// AddLabel attaches a label to the port.
func (p *Port) AddLabel(l *Label) { p.labels = append(p.labels, l) }

// LabelList returns the port's labels as concrete values.
func (p *Port) LabelList() []*Label { return p.labels }

func (p *Port) Labels() []LabelAdapter { return adaptLabels(p.labels) }

// SetBorderOffset fixes the port's distance from the node border.
func (p *Port) SetBorderOffset(offset float64) {
	p.borderOffset = offset
	p.hasBorderOffset = true
}

func (p *Port) BorderOffset() (float64, bool) { return p.borderOffset, p.hasBorderOffset }

// SetRatio fixes the port's relative position along its side.
func (p *Port) SetRatio(r float64) {
	p.ratio = r
	p.hasRatio = true
}

func (p *Port) Ratio() (float64, bool) { return p.ratio, p.hasRatio }

// Node is an in-memory NodeAdapter.
type Node struct {
	id      string
	config  options.Config
	size    geom.Vector
	minSize geom.Vector
	hasMin  bool
	padding geom.Insets
	ports   []*Port
	labels  []*Label
}

// NewNode returns an empty node. An empty id is replaced by a random UUID.
func NewNode(id string, cfg options.Config) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{id: id, config: cfg}
}

func (n *Node) ID() string                 { return n.id }
func (n *Node) Config() options.Config     { return n.config }
func (n *Node) Size() geom.Vector          { return n.size }
func (n *Node) SetSize(s geom.Vector)      { n.size = s }
func (n *Node) Padding() geom.Insets       { return n.padding }
func (n *Node) SetPadding(p geom.Insets)   { n.padding = p }
func (n *Node) SetConfig(c options.Config) { n.config = c }

// SetMinimumSize configures the node's minimum size.
func (n *Node) SetMinimumSize(s geom.Vector) {
	n.minSize = s
	n.hasMin = true
}

func (n *Node) MinimumSize() (geom.Vector, bool) { return n.minSize, n.hasMin }

// AddPort attaches a port to the node.
func (n *Node) AddPort(p *Port) { n.ports = append(n.ports, p) }

// AddLabel attaches a node label.
func (n *Node) AddLabel(l *Label) { n.labels = append(n.labels, l) }

// PortList returns the node's ports as concrete values.
func (n *Node) PortList() []*Port { return n.ports }

// LabelList returns the node's labels as concrete values.
func (n *Node) LabelList() []*Label { return n.labels }

func (n *Node) Ports() []PortAdapter {
	out := make([]PortAdapter, len(n.ports))
	for i, p := range n.ports {
		out[i] = p
	}
	return out
}

func (n *Node) Labels() []LabelAdapter { return adaptLabels(n.labels) }

func adaptLabels(labels []*Label) []LabelAdapter {
	out := make([]LabelAdapter, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}
