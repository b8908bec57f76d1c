// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, labels, parts and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcjcycles/builder"
	"github.com/katalvlaran/dcjcycles/core"
)

// edgeSummary renders every relation as "label:owner-adj:from,to" in EdgeID order.
func edgeSummary(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.Label()+":"+e.Owner().Label()+"-"+e.Adj().Label()+":"+e.From().String()+","+e.To().String())
	}
	return out
}

func TestRing(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 2, g.PartSize(1))
	assert.Equal(t, 2, g.PartSize(2))
	assert.Equal(t, []string{
		"a:0-1:1t,1t",
		"b:1-2:2t,2t",
		"c:2-3:3t,3t",
		"d:3-0:4t,4t",
	}, edgeSummary(g))

	v0, ok := g.VertexAt(0)
	require.True(t, ok)
	left, right := v0.Extremities()
	assert.Equal(t, core.TailOf(4), left)
	assert.Equal(t, core.TailOf(1), right)
}

func TestRing_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Ring(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComposedConstructorsKeepLabelsUnique(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(2), builder.Ring(3))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	seen := map[string]bool{}
	maxGene := 0
	for _, e := range g.Edges() {
		assert.False(t, seen[e.Label()], e.Label())
		seen[e.Label()] = true
		if e.From().ID > maxGene {
			maxGene = e.From().ID
		}
	}
	assert.Equal(t, 5, maxGene, "second ring continues gene numbering")
	_, ok := g.VertexByLabel("4")
	assert.True(t, ok)
}

func TestApply_AfterRemovalSkipsTakenLabels(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(3))
	require.NoError(t, err)
	first := g.Edges()[0]
	require.Equal(t, "a", first.Label())
	require.NoError(t, g.RemoveEdge(first))

	require.NoError(t, builder.Apply(g, nil, builder.Ring(2)))

	var labels []string
	for _, e := range g.Edges() {
		labels = append(labels, e.Label())
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, labels)
}

func TestChain(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Chain(3))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	first, _ := g.VertexByLabel("v0")
	last, _ := g.VertexByLabel("v2")
	assert.True(t, first.IsTelomere())
	assert.True(t, last.IsTelomere())
	mid, _ := g.VertexByLabel("v1")
	assert.False(t, mid.IsTelomere())

	single, err := builder.BuildGraph(nil, nil, builder.Chain(1))
	require.NoError(t, err)
	v, _ := single.VertexAt(0)
	l, r := v.Extremities()
	assert.True(t, l.IsUndefined() && r.IsUndefined())
}

func TestRandomAdjacency_Validation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		p    float64
		opts []builder.BuilderOption
		want error
	}{
		{"too small", 0, 0.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"bad probability", 3, 1.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"missing rng", 3, 0.5, nil, builder.ErrNeedRandSource},
		{"missing rng at p=1", 3, 1, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, builder.RandomAdjacency(tc.n, tc.p))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	g, err := builder.BuildGraph(nil, nil, builder.RandomAdjacency(3, 0))
	require.NoError(t, err, "p=0 needs no rng")
	assert.Equal(t, 6, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestRandomAdjacency_ShapeAndDeterminism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithGenes(4), builder.WithBracketEdgeLabels()},
			builder.RandomAdjacency(5, 0.4))
		require.NoError(t, err)
		return g
	}
	g := build()

	assert.Equal(t, 5, g.PartSize(1))
	assert.Equal(t, 5, g.PartSize(2))
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.Owner().Part(), e.Adj().Part(), "bipartite")
		assert.False(t, e.From().IsUndefined())
		assert.False(t, e.To().IsUndefined())
		assert.True(t, e.From().ID >= 1 && e.From().ID <= 4)
	}

	assert.Equal(t, edgeSummary(g), edgeSummary(build()))

	full, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomAdjacency(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, full.EdgeCount())
}

func TestRandomAdjacency_Telomeres(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithTelomeres(1)},
		builder.RandomAdjacency(3, 1))
	require.NoError(t, err)
	require.Equal(t, 9, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, e.From().IsUndefined(), e.String())
		assert.False(t, e.To().IsUndefined(), e.String())
	}
}

func TestApply_NilGraphAndConstructor(t *testing.T) {
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Ring(3)), builder.ErrConstructFailed)
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Ring(3)))
	assert.Equal(t, 3, g.EdgeCount())
}
