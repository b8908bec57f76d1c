package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/path"
)

// ring builds v0..v(n-1) with edge i joining vi and v(i+1)%n, labeled by
// labels[i] and carrying the pair (i+1, i+1) of matching tails.
func ring(t *testing.T, labels string) (*core.Graph, []*core.Vertex, []core.Edge) {
	t.Helper()
	g := core.NewGraph()
	n := len(labels)
	vs := make([]*core.Vertex, n)
	for i := range vs {
		id, err := g.AddVertex(core.WithPart(1 + i%2))
		require.NoError(t, err)
		vs[i], _ = g.Vertex(id)
	}
	es := make([]core.Edge, n)
	for i := range es {
		x := core.TailOf(i + 1)
		e, err := g.AddEdge(vs[i].ID(), vs[(i+1)%n].ID(),
			core.WithEdgeLabel(labels[i:i+1]), core.WithEdgeExtremities(x, x))
		require.NoError(t, err)
		es[i] = e
	}
	return g, vs, es
}

// walk follows es from vs[0] and returns the closed path.
func walk(vs []*core.Vertex, es []core.Edge) *path.Path {
	p := path.NewFrom(vs[0])
	for i, e := range es {
		if i == len(es)-1 {
			p.AppendEdge(e)
			break
		}
		p.Extend(e)
	}
	return p
}

func TestPath_EmptyAccessorsReportMissing(t *testing.T) {
	p := path.New()
	_, ok := p.First()
	assert.False(t, ok)
	_, ok = p.Last()
	assert.False(t, ok)
	_, ok = p.FirstEdge()
	assert.False(t, ok)
	_, ok = p.LastEdge()
	assert.False(t, ok)
	_, ok = p.Vertex(3)
	assert.False(t, ok)
	assert.Zero(t, p.DropLastVertex())
	assert.Zero(t, p.DropLastEdge())
	assert.False(t, p.IsCycle())
	assert.Equal(t, "", p.Signature())

	var zero path.Path
	assert.Zero(t, zero.Len())
	assert.Equal(t, 1, zero.AppendVertex(nil))
}

func TestPath_StackDiscipline(t *testing.T) {
	_, vs, es := ring(t, "abcd")
	p := path.NewFrom(vs[0])
	require.Equal(t, 1, p.Len())

	for i := 0; i < 3; i++ {
		p.Extend(es[i])
	}
	require.Equal(t, 4, p.Len())
	require.Equal(t, 3, p.EdgeLen())

	// grow past the initial storage and shrink back
	for i := 0; i < 10; i++ {
		p.AppendVertex(vs[i%4])
	}
	for i := 0; i < 10; i++ {
		p.DropLastVertex()
	}
	assert.Equal(t, 4, p.Len())

	last, ok := p.Last()
	require.True(t, ok)
	assert.Same(t, vs[3], last)
	le, ok := p.LastEdge()
	require.True(t, ok)
	assert.Equal(t, es[2], le)

	assert.True(t, p.Replace(0, vs[2]))
	assert.False(t, p.Replace(9, vs[2]))
	first, _ := p.First()
	assert.Same(t, vs[2], first)
}

func TestPath_CloneIsIndependent(t *testing.T) {
	_, vs, es := ring(t, "abcd")
	p := path.NewFrom(vs[0])
	p.Extend(es[0])
	c := p.Clone()
	c.Extend(es[1])

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, p.Vertices(), c.Vertices()[:2])
}

func TestPath_ConsistentWithDoesNotMutate(t *testing.T) {
	_, vs, es := ring(t, "abcd")
	p := path.NewFrom(vs[0])
	p.Extend(es[0])
	p.Extend(es[1])

	beforeV, beforeE := p.Vertices(), p.Edges()

	assert.False(t, p.ConsistentWith(es[0]), "edge already on the path")
	assert.False(t, p.ConsistentWith(es[1].Mirror()), "mirror of an edge on the path")
	assert.True(t, p.ConsistentWith(es[2]))

	assert.Equal(t, beforeV, p.Vertices())
	assert.Equal(t, beforeE, p.Edges())
}

func TestPath_ConsistentDetectsIncompatiblePair(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	ab, err := g.AddEdge(a, b, core.WithEdgeExtremities(core.HeadOf(1), core.HeadOf(2)))
	require.NoError(t, err)
	bc, err := g.AddEdge(b, c, core.WithEdgeExtremities(core.HeadOf(1), core.HeadOf(5)))
	require.NoError(t, err)

	va, _ := g.Vertex(a)
	p := path.NewFrom(va)
	p.Extend(ab)
	assert.True(t, p.Consistent())
	assert.False(t, p.ConsistentWith(bc))

	p.Extend(bc)
	assert.False(t, p.Consistent())
}

func TestPath_IsCycleForms(t *testing.T) {
	_, vs, es := ring(t, "abcd")

	closed := walk(vs, es)
	assert.Equal(t, 4, closed.Len())
	assert.Equal(t, 4, closed.EdgeLen())
	assert.True(t, closed.IsCycle())

	reappended := path.NewFrom(vs[0])
	for _, e := range es {
		reappended.Extend(e)
	}
	assert.Equal(t, 5, reappended.Len())
	assert.True(t, reappended.IsCycle())

	open := path.NewFrom(vs[0])
	for _, e := range es[:3] {
		open.Extend(e)
	}
	assert.False(t, open.IsCycle())
	assert.True(t, open.ClosesWith(es[3]))
	assert.False(t, open.ClosesWith(es[2].Mirror()))
}

func TestPath_SignatureInvariantUnderRotationAndReversal(t *testing.T) {
	_, vs, es := ring(t, "abcd")
	want := walk(vs, es).Signature()
	assert.Equal(t, "abcd", want)

	n := len(vs)
	for start := 0; start < n; start++ {
		// forward from vs[start]
		fv := make([]*core.Vertex, n)
		fe := make([]core.Edge, n)
		for i := 0; i < n; i++ {
			fv[i] = vs[(start+i)%n]
			fe[i] = es[(start+i)%n]
		}
		assert.Equal(t, want, walk(fv, fe).Signature(), "forward from %d", start)

		// backward from vs[start], walking mirrors
		bv := make([]*core.Vertex, n)
		be := make([]core.Edge, n)
		for i := 0; i < n; i++ {
			bv[i] = vs[(start-i+n)%n]
			be[i] = es[(start-i-1+2*n)%n].Mirror()
		}
		assert.Equal(t, want, walk(bv, be).Signature(), "backward from %d", start)
	}
}

func TestPath_CompatibleWith(t *testing.T) {
	g := core.NewGraph()
	ids := make([]core.VertexID, 4)
	for i := range ids {
		ids[i], _ = g.AddVertex()
	}
	e1, _ := g.AddEdge(ids[0], ids[1], core.WithEdgeExtremities(core.TailOf(2), core.TailOf(2)))
	e2, _ := g.AddEdge(ids[2], ids[3], core.WithEdgeExtremities(core.TailOf(2), core.TailOf(5)))
	e3, _ := g.AddEdge(ids[2], ids[3], core.WithEdgeExtremities(core.TailOf(7), core.TailOf(7)))

	v0, _ := g.Vertex(ids[0])
	v2, _ := g.Vertex(ids[2])
	p := path.NewFrom(v0)
	p.Extend(e1)
	q := path.NewFrom(v2)
	q.Extend(e2)
	r := path.NewFrom(v2)
	r.Extend(e3)

	assert.False(t, p.CompatibleWith(q))
	assert.False(t, q.CompatibleWith(p))
	assert.True(t, p.CompatibleWith(r))
}

func TestPath_ContainsAndNullCounters(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex(core.WithExtremities(core.Extremity{}, core.Extremity{}))
	b, _ := g.AddVertex(core.WithExtremities(core.HeadOf(1), core.Extremity{}))
	e, _ := g.AddEdge(a, b, core.WithEdgeExtremities(core.Extremity{}, core.HeadOf(1)))

	va, _ := g.Vertex(a)
	vb, _ := g.Vertex(b)
	p := path.NewFrom(va)
	p.Extend(e)

	assert.True(t, p.ContainsVertex(vb))
	assert.True(t, p.ContainsEdge(e.Mirror()))
	assert.True(t, p.ContainsExtremities(core.HeadOf(1), core.Telomere(4)))
	assert.False(t, p.ContainsExtremities(core.HeadOf(1), core.TailOf(1)))
	assert.Equal(t, 1, p.CountNullExtremities())
	assert.Equal(t, 1, p.CountNullAdjacencies())
	assert.Equal(t, "v0-e1-v1", p.String())
}
