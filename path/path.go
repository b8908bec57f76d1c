// File: path.go
// Role: Path storage, stack mutators and checked accessors.
// Notes:
//   - Storage starts at initialCapacity, doubles when full and halves
//     when usage drops under half. Not semantically visible.

package path

import (
	"strings"

	"github.com/katalvlaran/dcjcycles/core"
)

const initialCapacity = 4

// Path is an ordered, backtrackable walk. The zero value is an empty path.
type Path struct {
	vertices []*core.Vertex
	edges    []core.Edge
}

// New returns an empty path.
func New() *Path {
	return &Path{
		vertices: make([]*core.Vertex, 0, initialCapacity),
		edges:    make([]core.Edge, 0, initialCapacity),
	}
}

// NewFrom returns a path of one vertex and no edges.
func NewFrom(v *core.Vertex) *Path {
	p := New()
	p.AppendVertex(v)
	return p
}

// Clone returns an independent copy with the same capacity policy.
func (p *Path) Clone() *Path {
	c := &Path{
		vertices: make([]*core.Vertex, len(p.vertices), capFor(len(p.vertices))),
		edges:    make([]core.Edge, len(p.edges), capFor(len(p.edges))),
	}
	copy(c.vertices, p.vertices)
	copy(c.edges, p.edges)
	return c
}

// capFor returns the smallest doubling of initialCapacity holding n items.
func capFor(n int) int {
	c := initialCapacity
	for c < n {
		c *= 2
	}
	return c
}

// AppendVertex pushes v and returns the new vertex count.
func (p *Path) AppendVertex(v *core.Vertex) int {
	if len(p.vertices) == cap(p.vertices) {
		grown := make([]*core.Vertex, len(p.vertices), capFor(len(p.vertices)+1))
		copy(grown, p.vertices)
		p.vertices = grown
	}
	p.vertices = append(p.vertices, v)
	return len(p.vertices)
}

// AppendEdge pushes e and returns the new edge count.
func (p *Path) AppendEdge(e core.Edge) int {
	if len(p.edges) == cap(p.edges) {
		grown := make([]core.Edge, len(p.edges), capFor(len(p.edges)+1))
		copy(grown, p.edges)
		p.edges = grown
	}
	p.edges = append(p.edges, e)
	return len(p.edges)
}

// Append pushes e, then v, and returns the new vertex count.
func (p *Path) Append(v *core.Vertex, e core.Edge) int {
	p.AppendEdge(e)
	return p.AppendVertex(v)
}

// Extend pushes e and its far endpoint.
func (p *Path) Extend(e core.Edge) int {
	return p.Append(e.Adj(), e)
}

// DropLastVertex pops the last vertex and returns the new vertex count.
// On an empty path it does nothing.
func (p *Path) DropLastVertex() int {
	n := len(p.vertices)
	if n == 0 {
		return 0
	}
	p.vertices[n-1] = nil
	p.vertices = p.vertices[:n-1]
	if c := cap(p.vertices); c > initialCapacity && len(p.vertices) < c/2 {
		shrunk := make([]*core.Vertex, len(p.vertices), c/2)
		copy(shrunk, p.vertices)
		p.vertices = shrunk
	}
	return len(p.vertices)
}

// DropLastEdge pops the last edge and returns the new edge count.
// On a path without edges it does nothing.
func (p *Path) DropLastEdge() int {
	n := len(p.edges)
	if n == 0 {
		return 0
	}
	p.edges[n-1] = core.Edge{}
	p.edges = p.edges[:n-1]
	if c := cap(p.edges); c > initialCapacity && len(p.edges) < c/2 {
		shrunk := make([]core.Edge, len(p.edges), c/2)
		copy(shrunk, p.edges)
		p.edges = shrunk
	}
	return len(p.edges)
}

// Replace overwrites the vertex at position i; ok is false when out of range.
func (p *Path) Replace(i int, v *core.Vertex) bool {
	if i < 0 || i >= len(p.vertices) {
		return false
	}
	p.vertices[i] = v
	return true
}

// Len returns the number of vertices.
func (p *Path) Len() int { return len(p.vertices) }

// EdgeLen returns the number of edges.
func (p *Path) EdgeLen() int { return len(p.edges) }

// Vertex returns the i-th vertex.
func (p *Path) Vertex(i int) (*core.Vertex, bool) {
	if i < 0 || i >= len(p.vertices) {
		return nil, false
	}
	return p.vertices[i], true
}

// Edge returns the i-th edge.
func (p *Path) Edge(i int) (core.Edge, bool) {
	if i < 0 || i >= len(p.edges) {
		return core.Edge{}, false
	}
	return p.edges[i], true
}

// First returns the first vertex.
func (p *Path) First() (*core.Vertex, bool) { return p.Vertex(0) }

// Last returns the last vertex.
func (p *Path) Last() (*core.Vertex, bool) { return p.Vertex(len(p.vertices) - 1) }

// FirstEdge returns the first edge.
func (p *Path) FirstEdge() (core.Edge, bool) { return p.Edge(0) }

// LastEdge returns the last edge.
func (p *Path) LastEdge() (core.Edge, bool) { return p.Edge(len(p.edges) - 1) }

// Vertices returns a copy of the vertex sequence.
func (p *Path) Vertices() []*core.Vertex {
	out := make([]*core.Vertex, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edges returns a copy of the edge sequence.
func (p *Path) Edges() []core.Edge {
	out := make([]core.Edge, len(p.edges))
	copy(out, p.edges)
	return out
}

// ContainsVertex reports whether v is on the path.
func (p *Path) ContainsVertex(v *core.Vertex) bool {
	for _, w := range p.vertices {
		if w == v {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether e, or its mirror, is on the path.
func (p *Path) ContainsEdge(e core.Edge) bool {
	for _, f := range p.edges {
		if f.Same(e) {
			return true
		}
	}
	return false
}

// ContainsExtremities reports whether some edge joins a and b, in either order.
func (p *Path) ContainsExtremities(a, b core.Extremity) bool {
	for _, f := range p.edges {
		from, to := f.From(), f.To()
		if (from.Equal(a) && to.Equal(b)) || (from.Equal(b) && to.Equal(a)) {
			return true
		}
	}
	return false
}

// CountNullExtremities counts Undefined extremities over all edges (two per edge at most).
func (p *Path) CountNullExtremities() int {
	n := 0
	for _, e := range p.edges {
		if e.From().IsUndefined() {
			n++
		}
		if e.To().IsUndefined() {
			n++
		}
	}
	return n
}

// CountNullAdjacencies counts vertices whose both sides are Undefined.
func (p *Path) CountNullAdjacencies() int {
	n := 0
	for _, v := range p.vertices {
		left, right := v.Extremities()
		if left.IsUndefined() && right.IsUndefined() {
			n++
		}
	}
	return n
}

// String renders "v0-a-v1-b-v2".
func (p *Path) String() string {
	var b strings.Builder
	for i, v := range p.vertices {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(v.ID().String())
		if i < len(p.edges) {
			b.WriteByte('-')
			b.WriteString(p.edges[i].Label())
		}
	}
	return b.String()
}
