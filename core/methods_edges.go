// File: methods_edges.go
// Role: Relation insertion/removal, lookup and sibling links.
// Determinism:
//   - EdgeIDs are assigned from a per-graph counter starting at 1 and are
//     never reused; generated labels follow the same sequence ("e1", ...).
// Notes:
//   - AddEdge returns the half stored at the first endpoint (Adj() is b).
//   - Sibling links are stored as EdgeIDs and resolved through the graph.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// AddEdge inserts one relation between a and b as two mirrored halves and
// returns the half stored at a.
//
// Errors: ErrLoopNotAllowed when a == b; ErrVertexNotFound when either
// endpoint is missing or stale.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(a, b VertexID, opts ...EdgeOption) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("AddEdge(%s, %s): %w", a, b, ErrLoopNotAllowed)
	}
	va, ok := g.Vertex(a)
	if !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s, %s): %w", a, b, ErrVertexNotFound)
	}
	vb, ok := g.Vertex(b)
	if !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s, %s): %w", a, b, ErrVertexNotFound)
	}

	g.nextEdgeID++
	rel := &relation{
		id:    g.nextEdgeID,
		label: edgeIDPrefix + strconv.FormatUint(uint64(g.nextEdgeID), 10),
		ends:  [2]*Vertex{va, vb},
		live:  true,
	}
	for _, opt := range opts {
		opt(rel)
	}

	va.attach(rel, 0)
	vb.attach(rel, 1)
	g.relations[rel.id] = rel

	return Edge{rel: rel, side: 0}, nil
}

// Edge resolves a relation id to its first half.
//
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	rel, ok := g.relations[id]
	if !ok {
		return Edge{}, false
	}
	return Edge{rel: rel, side: 0}, true
}

// Edges returns the first half of every relation in ascending EdgeID order.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.relations))
	for _, rel := range g.relations {
		out = append(out, Edge{rel: rel, side: 0})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].rel.id < out[j].rel.id })

	return out
}

// owns reports whether e is a live relation of g.
func (g *Graph) owns(e Edge) bool {
	if e.rel == nil || !e.rel.live {
		return false
	}
	rel, ok := g.relations[e.rel.id]
	return ok && rel == e.rel
}

// RemoveEdge removes the relation e belongs to (both halves), unlinking its
// sibling first.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(e Edge) error {
	if !g.owns(e) {
		return fmt.Errorf("RemoveEdge(%s): %w", e, ErrEdgeNotFound)
	}
	g.removeRelation(e.rel)

	return nil
}

// RemoveEdgesBetween removes every relation whose extremity pair equals
// {a, b} in either order, and returns how many were removed.
//
// Complexity: O(V + E).
func (g *Graph) RemoveEdgesBetween(a, b Extremity) int {
	var doomed []*relation
	for i := range g.slots {
		v := g.slots[i].v
		if v == nil {
			continue
		}
		for _, e := range v.edges {
			// Visit each relation once, from its first half.
			if e.side != 0 {
				continue
			}
			from, to := e.From(), e.To()
			if (from.Equal(a) && to.Equal(b)) || (from.Equal(b) && to.Equal(a)) {
				doomed = append(doomed, e.rel)
			}
		}
	}
	for _, rel := range doomed {
		g.removeRelation(rel)
	}

	return len(doomed)
}

// removeRelation unlinks the sibling, detaches both halves and drops the record.
func (g *Graph) removeRelation(rel *relation) {
	g.unlinkSibling(rel)
	rel.ends[0].detach(rel, 0)
	rel.ends[1].detach(rel, 1)
	rel.live = false
	delete(g.relations, rel.id)
}

// SetSibling links a and b as mutual siblings, replacing any previous link
// of either relation.
//
// Complexity: O(1).
func (g *Graph) SetSibling(a, b Edge) error {
	if !g.owns(a) || !g.owns(b) {
		return fmt.Errorf("SetSibling(%s, %s): %w", a, b, ErrEdgeNotFound)
	}
	if a.Same(b) {
		return fmt.Errorf("SetSibling(%s): %w", a, ErrSiblingSelf)
	}

	g.unlinkSibling(a.rel)
	g.unlinkSibling(b.rel)
	a.rel.sibling = b.rel.id
	b.rel.sibling = a.rel.id

	return nil
}

// ClearSibling removes the sibling link of e on both sides.
func (g *Graph) ClearSibling(e Edge) error {
	if !g.owns(e) {
		return fmt.Errorf("ClearSibling(%s): %w", e, ErrEdgeNotFound)
	}
	g.unlinkSibling(e.rel)

	return nil
}

// Sibling returns the first half of the sibling relation of e, if any.
func (g *Graph) Sibling(e Edge) (Edge, bool) {
	if !g.owns(e) || e.rel.sibling == 0 {
		return Edge{}, false
	}
	return g.Edge(e.rel.sibling)
}

// unlinkSibling clears rel's sibling link on both sides.
func (g *Graph) unlinkSibling(rel *relation) {
	if rel.sibling == 0 {
		return
	}
	if other, ok := g.relations[rel.sibling]; ok && other.sibling == rel.id {
		other.sibling = 0
	}
	rel.sibling = 0
}
