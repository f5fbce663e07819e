package core

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the serialization contract consumed by CLI/API layers:
//
//	{"nodes": ["A", "B"], "edges": [["A", "B"]]}
//
// Writes are deterministic (insertion order); reads are order-insensitive.
// Nodes mentioned only inside edges need not appear in Nodes, and isolated
// nodes survive a round trip via the Nodes list.
type Document struct {
	Nodes []string    `json:"nodes" yaml:"nodes"`
	Edges [][2]string `json:"edges" yaml:"edges"`
}

// ToDocument serializes the graph with nodes and edges in insertion order.
// Complexity: O(V + E)
func (g *DAG) ToDocument() Document {
	doc := Document{
		Nodes: g.Nodes(),
		Edges: make([][2]string, 0, len(g.edgeOrder)),
	}
	for _, e := range g.edgeOrder {
		doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
	}

	return doc
}

// FromDocument reconstructs a DAG from a Document. Node and edge list order
// is irrelevant; the result has the same node set and edge set as the graph
// that produced the document.
//
// Errors:
//   - ErrEmptyVariable, ErrSelfLoop, ErrCycle from node/edge insertion.
func FromDocument(doc Document) (*DAG, error) {
	g := New()
	for _, n := range doc.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("core: document node %q: %w", n, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("core: document edge %q->%q: %w", e[0], e[1], err)
		}
	}

	return g, nil
}

// EncodeJSON renders the graph's Document as JSON.
func EncodeJSON(g *DAG) ([]byte, error) {
	return json.Marshal(g.ToDocument())
}

// DecodeJSON parses a JSON Document and reconstructs the graph.
func DecodeJSON(data []byte) (*DAG, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("core: decode json document: %w", err)
	}

	return FromDocument(doc)
}

// EncodeYAML renders the graph's Document as YAML.
func EncodeYAML(g *DAG) ([]byte, error) {
	return yaml.Marshal(g.ToDocument())
}

// DecodeYAML parses a YAML Document and reconstructs the graph.
func DecodeYAML(data []byte) (*DAG, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("core: decode yaml document: %w", err)
	}

	return FromDocument(doc)
}
