// File: methods_vertices.go
// Role: Vertex insertion, lookup and removal over the generational slot table.
// Determinism:
//   - AddVertex picks the slot after the last assigned one when free, else
//     the lowest free slot, else grows the table.
// Notes:
//   - Slot generations increase on every reuse; handles taken before a
//     removal never resolve to the new occupant.

package core

import "fmt"

// AddVertex inserts a vertex at the next free index.
//
// Complexity: amortized O(1); O(capacity) when the slot after the last
// assigned one is taken and a hole must be searched.
func (g *Graph) AddVertex(opts ...VertexOption) (VertexID, error) {
	return g.insertVertex(g.nextFreeIndex(), opts)
}

// AddVertexAt inserts a vertex at an explicit index, growing the table as
// needed. It fails with ErrVertexExists when the slot is occupied.
//
// Complexity: amortized O(1).
func (g *Graph) AddVertexAt(index int, opts ...VertexOption) (VertexID, error) {
	if index < 0 {
		return VertexID{}, fmt.Errorf("AddVertexAt(%d): %w", index, ErrNegativeIndex)
	}
	if index < len(g.slots) && g.slots[index].v != nil {
		return VertexID{}, fmt.Errorf("AddVertexAt(%d): %w", index, ErrVertexExists)
	}

	return g.insertVertex(index, opts)
}

// insertVertex validates options and occupies slot index.
func (g *Graph) insertVertex(index int, opts []VertexOption) (VertexID, error) {
	v := &Vertex{}
	for _, opt := range opts {
		opt(v)
	}
	if v.part < 0 || v.part >= MaxParts {
		return VertexID{}, fmt.Errorf("AddVertex: part=%d: %w", v.part, ErrBadPart)
	}
	if v.family < 0 {
		return VertexID{}, fmt.Errorf("AddVertex: family=%d: %w", v.family, ErrBadFamily)
	}

	g.grow(index)
	s := &g.slots[index]
	s.gen++
	v.id = VertexID{index: index, gen: s.gen}
	s.v = v

	g.lastIndex = index
	g.count(v, +1)

	return v.id, nil
}

// nextFreeIndex implements the AddVertex placement rule.
func (g *Graph) nextFreeIndex() int {
	if next := g.lastIndex + 1; next < len(g.slots) && g.slots[next].v == nil {
		return next
	}
	for i := range g.slots {
		if g.slots[i].v == nil {
			return i
		}
	}
	return len(g.slots)
}

// grow doubles the slot table until index fits.
func (g *Graph) grow(index int) {
	if index < len(g.slots) {
		return
	}
	n := len(g.slots)
	if n == 0 {
		n = initialSlots
	}
	for n <= index {
		n *= 2
	}
	slots := make([]slot, n)
	copy(slots, g.slots)
	g.slots = slots
}

// Vertex resolves a handle. ok is false for missing or stale handles.
//
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (*Vertex, bool) {
	if !id.Valid() || id.index < 0 || id.index >= len(g.slots) {
		return nil, false
	}
	s := g.slots[id.index]
	if s.v == nil || s.gen != id.gen {
		return nil, false
	}
	return s.v, true
}

// VertexAt returns the current occupant of index.
//
// Complexity: O(1).
func (g *Graph) VertexAt(index int) (*Vertex, bool) {
	if index < 0 || index >= len(g.slots) || g.slots[index].v == nil {
		return nil, false
	}
	return g.slots[index].v, true
}

// VertexByLabel returns the lowest-index vertex with the given label.
//
// Complexity: O(capacity).
func (g *Graph) VertexByLabel(label string) (*Vertex, bool) {
	for i := range g.slots {
		if v := g.slots[i].v; v != nil && v.label == label {
			return v, true
		}
	}
	return nil, false
}

// HasVertex reports whether id resolves to a live vertex.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.Vertex(id)
	return ok
}

// RemoveVertex removes every incident relation, then frees the slot.
// A missing or stale handle changes nothing and yields ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id VertexID) error {
	v, ok := g.Vertex(id)
	if !ok {
		return fmt.Errorf("RemoveVertex(%s): %w", id, ErrVertexNotFound)
	}

	for len(v.edges) > 0 {
		g.removeRelation(v.edges[len(v.edges)-1].rel)
	}

	g.count(v, -1)
	g.slots[id.index].v = nil

	return nil
}
