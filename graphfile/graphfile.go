// Package graphfile reads and writes core.Graph values as YAML documents:
//
//	vertices: 5
//	edges:
//	  - {from: 0, to: 1, weight: 10}
//	  - {from: 0, to: 4, weight: 3}
//
// Decoding goes through core.NewGraph and core.Graph.AddEdge, so invalid
// documents fail with core.ErrInvalidArgument or core.ErrOutOfRange.
package graphfile

import (
	"io"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/katalvlaran/sssp/core"
)

// ErrMissingVertices is returned when a document has no vertices key.
var ErrMissingVertices = errors.New("graphfile: vertices is required")

// Document is the YAML shape of a graph.
type Document struct {
	Vertices *int      `yaml:"vertices"`
	Edges    []EdgeDoc `yaml:"edges,omitempty"`
}

// EdgeDoc is one directed edge of a Document.
type EdgeDoc struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Decode parses a YAML document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}

	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse graph")
	}

	return doc.Graph()
}

// Load decodes the graph stored at path; "-" reads standard input.
func Load(path string) (*core.Graph, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

// Graph builds a core.Graph from the document.
func (d Document) Graph() (*core.Graph, error) {
	if d.Vertices == nil {
		return nil, ErrMissingVertices
	}

	g, err := core.NewGraph(*d.Vertices)
	if err != nil {
		return nil, errors.Wrap(err, "vertices")
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edges[%d]", i)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document, edges in core.Graph.Edges order.
func FromGraph(g *core.Graph) Document {
	n := g.VertexCount()
	doc := Document{Vertices: &n}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	data, err := yaml.Marshal(FromGraph(g))
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write graph")
	}

	return nil
}
