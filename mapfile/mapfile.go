// Package mapfile reads and writes road maps (graph + heuristic) as YAML.
//
// Node order and edge order in the document are preserved, because they decide
// how the search strategies break ties:
//
//	name: romania
//	goal: Bucharest
//	nodes:
//	  - name: Arad
//	    estimate: 366
//	    edges:
//	      - {to: Zerind, cost: 75}
//	      - {to: Timisoara, cost: 118}
//
// Edges are directed unless the document sets "mirror: true", in which case
// each listed edge is also appended to its target's list.
package mapfile

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchbench/core"
)

// ErrInvalidMap is wrapped by every validation failure.
var ErrInvalidMap = errors.New("mapfile: invalid map")

// Document is the YAML shape of a map.
type Document struct {
	Name   string `yaml:"name"`
	Goal   string `yaml:"goal"`
	Mirror bool   `yaml:"mirror,omitempty"`
	Nodes  []Node `yaml:"nodes"`
}

// Node is one vertex with its optional estimate and ordered edges.
type Node struct {
	Name     string     `yaml:"name"`
	Estimate *float64   `yaml:"estimate,omitempty"`
	Edges    []EdgeSpec `yaml:"edges,omitempty"`
}

// EdgeSpec is one listed edge.
type EdgeSpec struct {
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Map is a decoded, validated map.
type Map struct {
	Name      string
	Graph     *core.Graph
	Heuristic *core.Heuristic
}

// Load reads and decodes the file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "mapfile: open")
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "mapfile: %s", path)
	}

	return m, nil
}

// Decode reads one YAML document from r and builds the map.
func Decode(r io.Reader) (*Map, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "mapfile: decode")
	}

	return doc.Build()
}

// Build validates doc and constructs the graph and heuristic.
func (doc *Document) Build() (*Map, error) {
	if doc.Goal == "" {
		return nil, errors.Wrap(ErrInvalidMap, "goal is required")
	}
	if len(doc.Nodes) == 0 {
		return nil, errors.Wrap(ErrInvalidMap, "no nodes")
	}

	g := core.NewGraph(core.WithDirected(!doc.Mirror))
	estimates := make(map[string]float64, len(doc.Nodes))
	// Register every node first so edge targets cannot jump ahead in the order.
	for i, n := range doc.Nodes {
		if err := g.AddVertex(n.Name); err != nil {
			return nil, errors.Wrapf(ErrInvalidMap, "node %d: %v", i, err)
		}
	}
	for _, n := range doc.Nodes {
		if n.Estimate != nil {
			if _, dup := estimates[n.Name]; dup {
				return nil, errors.Wrapf(ErrInvalidMap, "node %q: estimate given twice", n.Name)
			}
			estimates[n.Name] = *n.Estimate
		}
		for j, e := range n.Edges {
			if err := g.AddEdge(n.Name, e.To, e.Cost); err != nil {
				return nil, errors.Wrapf(ErrInvalidMap, "node %q edge %d: %v", n.Name, j, err)
			}
		}
	}

	h, err := core.NewHeuristic(doc.Goal, estimates)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMap, "heuristic: %v", err)
	}

	return &Map{Name: doc.Name, Graph: g, Heuristic: h}, nil
}

// FromGraph describes g and h as a directed Document. Vertices appear in
// first-seen order and every listed edge is written out.
func FromGraph(name string, g *core.Graph, h *core.Heuristic) *Document {
	doc := &Document{Name: name}
	if h != nil {
		doc.Goal = h.Goal()
	}
	for _, id := range g.VerticesInOrder() {
		n := Node{Name: id}
		if h != nil {
			if v, err := h.Estimate(id); err == nil {
				v := v
				n.Estimate = &v
			}
		}
		for _, e := range g.Successors(id) {
			n.Edges = append(n.Edges, EdgeSpec{To: e.To, Cost: e.Weight})
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	return doc
}

// Encode writes doc as YAML to w.
func Encode(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "mapfile: encode")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "mapfile: encode")
	}
	_, err := w.Write(buf.Bytes())

	return errors.Wrap(err, "mapfile: write")
}
