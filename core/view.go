// File: view.go
// Role: Filtered, ordered iteration over vertices.
// Determinism:
//   - Always ascending index order.

package core

// VertexFilter selects vertices during iteration.
type VertexFilter func(*Vertex) bool

// InPart keeps vertices tagged with part.
func InPart(part int) VertexFilter {
	return func(v *Vertex) bool { return v.part == part }
}

// InFamily keeps vertices of family.
func InFamily(family int) VertexFilter {
	return func(v *Vertex) bool { return v.family == family }
}

// Vertices returns the live vertices passing every filter, ascending by index.
//
// Complexity: O(capacity · len(filters)).
func (g *Graph) Vertices(filters ...VertexFilter) []*Vertex {
	out := make([]*Vertex, 0, g.nVertices)
	g.EachVertex(func(v *Vertex) bool {
		out = append(out, v)
		return true
	}, filters...)

	return out
}

// EachVertex calls fn for every live vertex passing the filters, ascending by
// index, until fn returns false.
func (g *Graph) EachVertex(fn func(*Vertex) bool, filters ...VertexFilter) {
next:
	for i := range g.slots {
		v := g.slots[i].v
		if v == nil {
			continue
		}
		for _, keep := range filters {
			if !keep(v) {
				continue next
			}
		}
		if !fn(v) {
			return
		}
	}
}

// FirstVertex returns the lowest-index live vertex.
func (g *Graph) FirstVertex() (*Vertex, bool) {
	for i := range g.slots {
		if v := g.slots[i].v; v != nil {
			return v, true
		}
	}
	return nil, false
}
