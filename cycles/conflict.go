package cycles

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/path"
)

// ConflictGraph is a graph whose vertices are cycles of one length and
// whose edges join cycles that cannot coexist in a packing.
// Each vertex owns its cycle; removing the vertex drops the cycle.
type ConflictGraph struct {
	*core.Graph

	cycles map[core.VertexID]*path.Path
	stats  Stats
}

// Build enumerates the cycles of the given length in src and returns their
// conflict graph.
func Build(src *core.Graph, length int, opts ...Option) (*ConflictGraph, error) {
	if src == nil {
		return nil, fmt.Errorf("cycles: Build: %w", ErrGraphNil)
	}

	found, stats, err := Enumerate(src, length, opts...)
	if err != nil {
		return nil, fmt.Errorf("cycles: Build: %w", err)
	}

	cg, err := FromCycles(found, opts...)
	if err != nil {
		return nil, fmt.Errorf("cycles: Build: %w", err)
	}
	cg.stats = stats

	return cg, nil
}

// FromCycles builds the conflict graph of the given cycles, taking
// ownership of them: every consumed entry of cycles is set to nil.
// Nil entries are skipped. Signatures are assumed distinct.
//
// The association map is keyed by extremity id; for each id it holds an
// ordered map from partner id to the cycles that paired the two. Placing a
// cycle's edge (from, to) links the cycle to every cycle recorded under
// from with a partner other than to, then records the pair; the same is
// done for to. Edges with an Undefined side are skipped.
func FromCycles(cycles []*path.Path, opts ...Option) (*ConflictGraph, error) {
	o := newOptions(opts)
	cg := &ConflictGraph{
		Graph:  core.NewGraph(core.WithGraphLabel(o.label), core.WithCapacity(len(cycles))),
		cycles: make(map[core.VertexID]*path.Path, len(cycles)),
	}

	associations := make(map[int]*redblacktree.Tree)

	for i, c := range cycles {
		if c == nil {
			continue
		}
		cycles[i] = nil

		v, err := cg.Graph.AddVertex(core.WithLabel(c.Signature()))
		if err != nil {
			return nil, fmt.Errorf("cycles: FromCycles: %w", err)
		}
		cg.cycles[v] = c

		// added starts with v so a cycle never links to itself.
		added := hashset.New(v)

		for _, e := range c.Edges() {
			from, to := e.From(), e.To()
			if from.IsUndefined() || to.IsUndefined() {
				continue
			}

			if err := cg.link(v, associations[from.ID], to.ID, added); err != nil {
				return nil, err
			}
			record(associations, from.ID, to.ID, v)

			if err := cg.link(v, associations[to.ID], from.ID, added); err != nil {
				return nil, err
			}
			record(associations, to.ID, from.ID, v)
		}
	}

	log.Infof("Conflict graph contains %d cycles and %d conflicts", cg.VertexCount(), cg.EdgeCount())

	return cg, nil
}

// link adds a conflict edge from v to every cycle recorded in partners under
// a partner other than skip, once per cycle.
func (cg *ConflictGraph) link(v core.VertexID, partners *redblacktree.Tree, skip int, added *hashset.Set) error {
	if partners == nil {
		return nil
	}

	it := partners.Iterator()
	for it.Next() {
		if it.Key().(int) == skip {
			continue
		}
		for _, w := range it.Value().([]core.VertexID) {
			if added.Contains(w) {
				continue
			}
			if _, err := cg.Graph.AddEdge(v, w); err != nil {
				return fmt.Errorf("cycles: link %s-%s: %w", v, w, err)
			}
			added.Add(w)
		}
	}

	return nil
}

// record notes that cycle v paired id with partner.
func record(associations map[int]*redblacktree.Tree, id, partner int, v core.VertexID) {
	partners, ok := associations[id]
	if !ok {
		partners = redblacktree.NewWithIntComparator()
		associations[id] = partners
	}

	var users []core.VertexID
	if got, found := partners.Get(partner); found {
		users = got.([]core.VertexID)
	}
	partners.Put(partner, append(users, v))
}

// Cycle returns the cycle owned by vertex id.
func (cg *ConflictGraph) Cycle(id core.VertexID) (*path.Path, bool) {
	c, ok := cg.cycles[id]
	return c, ok
}

// Cycles returns the owned cycles in ascending vertex index order.
func (cg *ConflictGraph) Cycles() []*path.Path {
	vs := cg.Vertices()
	out := make([]*path.Path, 0, len(vs))
	for _, v := range vs {
		if c, ok := cg.cycles[v.ID()]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Conflicts returns the endpoints of every conflict edge in ascending edge order.
func (cg *ConflictGraph) Conflicts() [][2]core.VertexID {
	edges := cg.Edges()
	out := make([][2]core.VertexID, len(edges))
	for i, e := range edges {
		out[i] = [2]core.VertexID{e.Owner().ID(), e.Adj().ID()}
	}
	return out
}

// Stats returns the enumeration statistics of Build; zero for FromCycles.
func (cg *ConflictGraph) Stats() Stats { return cg.stats }

// RemoveVertex removes a cycle vertex, its conflict edges and its cycle.
func (cg *ConflictGraph) RemoveVertex(id core.VertexID) error {
	if err := cg.Graph.RemoveVertex(id); err != nil {
		return err
	}
	delete(cg.cycles, id)
	return nil
}

// Clear drops every cycle vertex, conflict edge and cycle.
func (cg *ConflictGraph) Clear() {
	cg.Graph.Clear()
	cg.cycles = make(map[core.VertexID]*path.Path)
}
