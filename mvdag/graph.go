package mvdag

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/rhonix/rboot/util"
	"github.com/rhonix/rboot/util/set"
)

const shortLabelLength = 8

var ErrCycle = errors.New("DAG contains a cycle")

var (
	nodeAttr = []func(*graph.VertexProperties){
		graph.VertexAttribute("fontsize", "10"),
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("colorscheme", "blues3"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("color", "2"),
		graph.VertexAttribute("fillcolor", "1"),
	}
	rootAttr = []func(*graph.VertexProperties){
		graph.VertexAttribute("fontsize", "10"),
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("colorscheme", "bugn9"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("color", "9"),
		graph.VertexAttribute("fillcolor", "1"),
	}
)

func shortLabel(h string) string {
	if len(h) <= shortLabelLength {
		return h
	}
	return h[:shortLabelLength]
}

// Graph makes directed graph parent -> child which refuses cycles
func (d DAG) Graph() (graph.Graph[string, string], error) {
	ret := graph.New(graph.StringHash, graph.Directed(), graph.Acyclic(), graph.PreventCycles())

	roots := set.New[string](d.Roots()...)
	for _, h := range set.Sorted(d.Vertices()) {
		attr := nodeAttr
		if roots.Contains(h) {
			attr = rootAttr
		}
		attr = append(attr[:len(attr):len(attr)], graph.VertexAttribute("label", shortLabel(h)))
		if err := ret.AddVertex(h, attr...); err != nil {
			return nil, err
		}
	}
	for _, parent := range util.SortedKeys(d) {
		for _, child := range set.Sorted(d[parent]) {
			if parent == child {
				return nil, fmt.Errorf("%w: self-reference of %s", ErrCycle, parent)
			}
			if err := ret.AddEdge(parent, child); err != nil {
				if errors.Is(err, graph.ErrEdgeCreatesCycle) {
					return nil, fmt.Errorf("%w: edge %s -> %s", ErrCycle, shortLabel(parent), shortLabel(child))
				}
				return nil, err
			}
		}
	}
	return ret, nil
}

// TopologicalOrder lists parents before children. Ties are broken lexicographically
func (d DAG) TopologicalOrder() ([]string, error) {
	gr, err := d.Graph()
	if err != nil {
		return nil, err
	}
	return graph.StableTopologicalSort(gr, func(h1, h2 string) bool {
		return h1 < h2
	})
}

// WriteDOT renders the DAG in Graphviz format
func (d DAG) WriteDOT(w io.Writer) error {
	gr, err := d.Graph()
	if err != nil {
		return err
	}
	return draw.DOT(gr, w)
}
