// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps vertex indices, slot generations, EdgeIDs and the EdgeID
//     counter, so handles of the source resolve to the matching copies.
// Notes:
//   - Sibling links are re-established on the clone by EdgeID.
//   - Clear() keeps the label but drops vertices, edges and family names.

package core

// Clone returns a deep copy of the graph: vertices, relations with their
// labels and extremities, sibling links and family names.
//
// Complexity: O(capacity + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		label:          g.label,
		slots:          make([]slot, len(g.slots)),
		lastIndex:      g.lastIndex,
		nVertices:      g.nVertices,
		relations:      make(map[EdgeID]*relation, len(g.relations)),
		nextEdgeID:     g.nextEdgeID,
		partSize:       g.partSize,
		familySize:     make(map[int]int, len(g.familySize)),
		familyPartSize: make(map[familyPart]int, len(g.familyPartSize)),
		familyNames:    make(map[int]string, len(g.familyNames)),
	}
	for k, n := range g.familySize {
		clone.familySize[k] = n
	}
	for k, n := range g.familyPartSize {
		clone.familyPartSize[k] = n
	}
	for k, name := range g.familyNames {
		clone.familyNames[k] = name
	}

	// Copy vertices without their half-edge lists.
	for i, s := range g.slots {
		clone.slots[i].gen = s.gen
		if s.v == nil {
			continue
		}
		v := *s.v
		v.edges = make([]Edge, 0, len(s.v.edges))
		clone.slots[i].v = &v
	}

	// Copy relations in EdgeID order so per-vertex lists stay deterministic.
	for _, e := range g.Edges() {
		src := e.rel
		rel := &relation{
			id:      src.id,
			label:   src.label,
			ex:      src.ex,
			sibling: src.sibling,
			live:    true,
		}
		rel.ends[0] = clone.slots[src.ends[0].id.index].v
		rel.ends[1] = clone.slots[src.ends[1].id.index].v
		rel.ends[0].attach(rel, 0)
		rel.ends[1].attach(rel, 1)
		clone.relations[rel.id] = rel
	}

	return clone
}

// Clear removes all vertices, relations and family names. The slot table
// keeps its capacity and generations, so earlier handles become stale.
//
// Complexity: O(capacity).
func (g *Graph) Clear() {
	for i := range g.slots {
		g.slots[i].v = nil
	}
	g.lastIndex = -1
	g.nVertices = 0
	g.relations = make(map[EdgeID]*relation)
	g.partSize = [MaxParts]int{}
	g.familySize = make(map[int]int)
	g.familyPartSize = make(map[familyPart]int)
	g.familyNames = make(map[int]string)
}
