// File: consistency.go
// Role: Consistency checks, cycle tests and signatures.

package path

import (
	"sort"
	"strings"

	"github.com/katalvlaran/dcjcycles/core"
)

// Consistent reports whether no two edges are incompatible and no relation
// appears twice.
//
// Complexity: O(le²).
func (p *Path) Consistent() bool {
	for i := 0; i < len(p.edges); i++ {
		for j := i + 1; j < len(p.edges); j++ {
			if p.edges[i].Incompatible(p.edges[j]) || p.edges[i].Same(p.edges[j]) {
				return false
			}
		}
	}
	return true
}

// ConsistentWith reports whether the path stays consistent after extending
// it by e. The path is unchanged on return.
//
// Complexity: O(le²).
func (p *Path) ConsistentWith(e core.Edge) bool {
	if p.ContainsEdge(e) {
		return false
	}

	p.Extend(e)
	ok := p.Consistent()
	p.DropLastEdge()
	p.DropLastVertex()

	return ok
}

// CompatibleWith reports whether no edge of p is incompatible with an edge
// of other. Both paths are assumed consistent on their own.
//
// Complexity: O(le · other.le).
func (p *Path) CompatibleWith(other *Path) bool {
	for _, e := range p.edges {
		for _, f := range other.edges {
			if e.Incompatible(f) {
				return false
			}
		}
	}
	return true
}

// IsCycle reports whether the path is closed: either the start vertex was
// appended again at the end (l == le+1, first == last), or the last edge
// returns to the start without repeating it (l == le, lastEdge.Adj == first).
func (p *Path) IsCycle() bool {
	l, le := len(p.vertices), len(p.edges)
	if l > 1 && l == le+1 && p.vertices[0] == p.vertices[l-1] {
		return true
	}
	return le > 1 && l == le && p.edges[le-1].Adj() == p.vertices[0]
}

// ClosesWith reports whether the open path extended by e would return to
// its first vertex.
func (p *Path) ClosesWith(e core.Edge) bool {
	l := len(p.vertices)
	return l > 0 && l == len(p.edges)+1 && e.Adj() == p.vertices[0]
}

// Signature concatenates the edge labels sorted by core.SignatureLess.
//
// Complexity: O(le log le).
func (p *Path) Signature() string {
	sorted := p.Edges()
	sort.Slice(sorted, func(i, j int) bool { return core.SignatureLess(sorted[i], sorted[j]) })

	var b strings.Builder
	for _, e := range sorted {
		b.WriteString(e.Label())
	}
	return b.String()
}
