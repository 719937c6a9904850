package graph

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML (or JSON) graph document from r.
//
// Unknown fields are rejected so that a typo such as "wieght" does not
// silently become a zero-weight edge. Non-finite weights (.inf, .nan) are
// rejected too: unreachability is expressed by leaving an edge out.
func Decode(r io.Reader) (Graph, error) {
	var g Graph
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		if err == io.EOF {
			// An empty document is an empty graph.
			return Graph{}, nil
		}
		return Graph{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for _, e := range g.Edges {
		if math.IsInf(e.Weight, 0) || math.IsNaN(e.Weight) {
			return Graph{}, fmt.Errorf("%w: edge %q has non-finite weight %v", ErrDecode, e.ID, e.Weight)
		}
	}

	return g, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("graph: read %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return Graph{}, fmt.Errorf("graph: %s: %w", path, err)
	}

	return g, nil
}

// Encode writes g as a YAML document to w.
func Encode(w io.Writer, g Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("graph: encode: %w", err)
	}

	return enc.Close()
}
