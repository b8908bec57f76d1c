// SPDX-License-Identifier: MIT
// File: api.go
// Role: Graph type, constructor, graph options and size/family bookkeeping.

package core

import "sort"

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithGraphLabel sets the graph label.
func WithGraphLabel(label string) GraphOption {
	return func(g *Graph) { g.label = label }
}

// WithCapacity pre-sizes the vertex slot table. Panics on a negative hint.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n < 0)")
	}
	return func(g *Graph) {
		if n > len(g.slots) {
			g.slots = make([]slot, n)
		}
	}
}

// slot is one entry of the generational vertex table.
type slot struct {
	v   *Vertex
	gen uint32
}

// familyPart keys per-(family, part) counters.
type familyPart struct {
	family int
	part   int
}

// Graph is an undirected extremity-labeled multigraph.
type Graph struct {
	label string

	slots     []slot
	lastIndex int
	nVertices int

	relations  map[EdgeID]*relation
	nextEdgeID EdgeID

	partSize       [MaxParts]int
	familySize     map[int]int
	familyPartSize map[familyPart]int
	familyNames    map[int]string
}

// NewGraph creates an empty Graph with the given options.
//
// Complexity: O(initial capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		slots:          make([]slot, initialSlots),
		lastIndex:      -1,
		relations:      make(map[EdgeID]*relation),
		familySize:     make(map[int]int),
		familyPartSize: make(map[familyPart]int),
		familyNames:    make(map[int]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Label returns the graph label.
func (g *Graph) Label() string { return g.label }

// SetLabel replaces the graph label.
func (g *Graph) SetLabel(label string) { g.label = label }

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return g.nVertices }

// EdgeCount returns the number of relations (each counted once).
func (g *Graph) EdgeCount() int { return len(g.relations) }

// Capacity returns the current size of the vertex slot table.
func (g *Graph) Capacity() int { return len(g.slots) }

// MaxVertexIndex returns the highest occupied index, or -1 for an empty graph.
func (g *Graph) MaxVertexIndex() int {
	for i := len(g.slots) - 1; i >= 0; i-- {
		if g.slots[i].v != nil {
			return i
		}
	}
	return -1
}

// PartSize returns the number of vertices tagged with part.
func (g *Graph) PartSize(part int) int {
	if part < 0 || part >= MaxParts {
		return 0
	}
	return g.partSize[part]
}

// FamilySize returns the number of vertices in family.
func (g *Graph) FamilySize(family int) int { return g.familySize[family] }

// FamilySizeInPart returns the number of vertices in family tagged with part.
func (g *Graph) FamilySizeInPart(family, part int) int {
	return g.familyPartSize[familyPart{family: family, part: part}]
}

// FamilyName returns the name of family; ok is false when none was set.
func (g *Graph) FamilyName(family int) (string, bool) {
	name, ok := g.familyNames[family]
	return name, ok
}

// SetFamilyName sets or replaces the name of family.
func (g *Graph) SetFamilyName(family int, name string) {
	g.familyNames[family] = name
}

// NamedFamilies returns the ids of families with a name, ascending.
func (g *Graph) NamedFamilies() []int {
	ids := make([]int, 0, len(g.familyNames))
	for id := range g.familyNames {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// count adjusts part and family counters by delta for v.
func (g *Graph) count(v *Vertex, delta int) {
	g.nVertices += delta
	g.partSize[v.part] += delta
	g.familySize[v.family] += delta
	g.familyPartSize[familyPart{family: v.family, part: v.part}] += delta
}
