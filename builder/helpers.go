// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// helpers.go - shared mutation helpers for constructors.
//
// Notes:
//   • All helpers wrap core errors with the calling constructor's method tag.
//   • Numbering continues from the graph's contents (see offsets).

package builder

import (
	"github.com/katalvlaran/dcjcycles/core"
)

// offsets captures where a constructor starts numbering on g.
type offsets struct {
	vertex int                 // next vertex label index
	edge   int                 // next relation label index
	gene   int                 // highest gene id already used
	taken  map[string]struct{} // relation labels present on g
}

// offsetsOf scans g once. Complexity: O(E).
func offsetsOf(g *core.Graph) *offsets {
	o := &offsets{
		vertex: g.VertexCount(),
		edge:   g.EdgeCount(),
		taken:  make(map[string]struct{}, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		o.taken[e.Label()] = struct{}{}
		if id := e.From().ID; id > o.gene {
			o.gene = id
		}
		if id := e.To().ID; id > o.gene {
			o.gene = id
		}
	}
	return o
}

// addAdjacency inserts the i-th vertex of a constructor.
func addAdjacency(method string, g *core.Graph, cfg builderConfig, o *offsets, i, part int, left, right core.Extremity) (core.VertexID, error) {
	label := cfg.idFn(o.vertex + i)
	id, err := g.AddVertex(
		core.WithLabel(label),
		core.WithPart(part),
		core.WithExtremities(left, right),
	)
	if err != nil {
		return core.VertexID{}, builderErrorf(method, err, "AddVertex(%s)", label)
	}
	return id, nil
}

// addRelation inserts the next relation of a constructor under the first
// label of the scheme not yet present on g.
func addRelation(method string, g *core.Graph, cfg builderConfig, o *offsets, a, b core.VertexID, from, to core.Extremity) (core.Edge, error) {
	label := cfg.edgeLabelFn(o.edge)
	for {
		if _, dup := o.taken[label]; !dup {
			break
		}
		o.edge++
		label = cfg.edgeLabelFn(o.edge)
	}
	o.edge++
	o.taken[label] = struct{}{}
	e, err := g.AddEdge(a, b, core.WithEdgeLabel(label), core.WithEdgeExtremities(from, to))
	if err != nil {
		return core.Edge{}, builderErrorf(method, err, "AddEdge(%s, %s, %s)", a, b, label)
	}
	return e, nil
}
