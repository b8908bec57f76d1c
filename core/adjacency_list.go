// File: adjacency_list.go
// Role: Vertex type and its owned half-edge list.
// Determinism:
//   - Half-edges are listed in insertion order until a removal swaps the
//     last entry into the freed position.
// Notes:
//   - Each half-edge remembers its position in the owner's list, so
//     removal by handle is O(1).

package core

// Vertex is one adjacency of the graph.
type Vertex struct {
	id        VertexID
	label     string
	part      int
	family    int
	direction Direction
	left      Extremity
	right     Extremity

	// edges holds the half-edges stored at this vertex; Owner() == this.
	edges []Edge
}

// VertexOption customizes a vertex before it is inserted.
type VertexOption func(*Vertex)

// WithLabel sets the vertex label.
func WithLabel(label string) VertexOption {
	return func(v *Vertex) { v.label = label }
}

// WithPart sets the bipartition side; AddVertex rejects parts outside [0, MaxParts).
func WithPart(part int) VertexOption {
	return func(v *Vertex) { v.part = part }
}

// WithFamily sets the ortholog family id; AddVertex rejects negative ids.
func WithFamily(family int) VertexOption {
	return func(v *Vertex) { v.family = family }
}

// WithDirection sets the gene direction.
func WithDirection(d Direction) VertexOption {
	return func(v *Vertex) { v.direction = d }
}

// WithExtremities sets the left/right extremity pair.
func WithExtremities(left, right Extremity) VertexOption {
	return func(v *Vertex) { v.left, v.right = left, right }
}

// ID returns the generational handle of v.
func (v *Vertex) ID() VertexID { return v.id }

// Index returns the dense index of v (its reusable id).
func (v *Vertex) Index() int { return v.id.index }

// Label returns the vertex label.
func (v *Vertex) Label() string { return v.label }

// SetLabel replaces the vertex label.
func (v *Vertex) SetLabel(label string) { v.label = label }

// Part returns the bipartition side (NoPart when unset).
func (v *Vertex) Part() int { return v.part }

// Family returns the family id (NoFamily when unset).
func (v *Vertex) Family() int { return v.family }

// Direction returns the gene direction.
func (v *Vertex) Direction() Direction { return v.direction }

// SetDirection replaces the gene direction.
func (v *Vertex) SetDirection(d Direction) { v.direction = d }

// Extremities returns the left and right extremities.
func (v *Vertex) Extremities() (left, right Extremity) { return v.left, v.right }

// SetExtremities replaces both extremities at once.
func (v *Vertex) SetExtremities(left, right Extremity) { v.left, v.right = left, right }

// HasExtremity reports whether x equals the left or the right extremity.
func (v *Vertex) HasExtremity(x Extremity) bool {
	return v.left.Equal(x) || v.right.Equal(x)
}

// IsTelomere reports whether at least one side is Undefined.
func (v *Vertex) IsTelomere() bool {
	return v.left.IsUndefined() || v.right.IsUndefined()
}

// Degree returns the number of half-edges stored at v.
func (v *Vertex) Degree() int { return len(v.edges) }

// EdgeAt returns the i-th half-edge stored at v.
// ok is false when i is out of range.
func (v *Vertex) EdgeAt(i int) (Edge, bool) {
	if i < 0 || i >= len(v.edges) {
		return Edge{}, false
	}
	return v.edges[i], true
}

// Edges returns a copy of the half-edges stored at v.
func (v *Vertex) Edges() []Edge {
	out := make([]Edge, len(v.edges))
	copy(out, v.edges)
	return out
}

// attach appends the half (rel, side) to v and records its position.
func (v *Vertex) attach(rel *relation, side uint8) {
	rel.pos[side] = len(v.edges)
	v.edges = append(v.edges, Edge{rel: rel, side: side})
}

// detach removes the half (rel, side) from v by swapping the last half into its slot.
func (v *Vertex) detach(rel *relation, side uint8) {
	i := rel.pos[side]
	last := len(v.edges) - 1
	if i != last {
		moved := v.edges[last]
		v.edges[i] = moved
		moved.rel.pos[moved.side] = i
	}
	v.edges[last] = Edge{}
	v.edges = v.edges[:last]
}
