package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcjcycles/core"
)

// pairGraph returns a two-vertex graph and a helper adding parallel edges
// with the given extremity pairs.
func pairGraph(t *testing.T) func(from, to core.Extremity) core.Edge {
	t.Helper()
	g := core.NewGraph()
	a, err := g.AddVertex()
	require.NoError(t, err)
	b, err := g.AddVertex()
	require.NoError(t, err)

	return func(from, to core.Extremity) core.Edge {
		e, err := g.AddEdge(a, b, core.WithEdgeExtremities(from, to))
		require.NoError(t, err)
		return e
	}
}

func TestIncompatible(t *testing.T) {
	add := pairGraph(t)
	e12 := add(core.HeadOf(1), core.HeadOf(2))
	e15 := add(core.HeadOf(1), core.HeadOf(5))
	e21 := add(core.TailOf(2), core.TailOf(1))
	e34 := add(core.TailOf(3), core.TailOf(4))
	e23 := add(core.TailOf(2), core.TailOf(3))

	assert.True(t, e12.Incompatible(e15), "shared 1, different partner")
	assert.True(t, e15.Incompatible(e12))
	assert.False(t, e12.Incompatible(e21), "same ids reversed, kinds ignored")
	assert.False(t, e12.Incompatible(e34), "disjoint")
	assert.True(t, e12.Incompatible(e23), "2 paired with 1 and with 3")
	assert.True(t, e12.Mirror().Incompatible(e23.Mirror()))
}

func TestIncompatible_TelomereRelationsNeverConflict(t *testing.T) {
	add := pairGraph(t)
	t1 := add(core.Telomere(0), core.TailOf(1))
	t8 := add(core.Telomere(0), core.TailOf(8))
	e12 := add(core.TailOf(1), core.TailOf(2))

	assert.False(t, t1.Incompatible(t8), "Undefined ids never match")
	assert.False(t, t1.Incompatible(e12))
	assert.False(t, e12.Incompatible(t1.Mirror()))
}

func TestIncompatible_NeverWithSelfOrMirror(t *testing.T) {
	add := pairGraph(t)
	for _, e := range []core.Edge{
		add(core.HeadOf(1), core.TailOf(2)),
		add(core.TailOf(7), core.TailOf(7)),
		add(core.Telomere(0), core.HeadOf(3)),
	} {
		assert.False(t, e.Incompatible(e), e.String())
		assert.False(t, e.Incompatible(e.Mirror()), e.String())
	}
}

func TestLess_Rules(t *testing.T) {
	add := pairGraph(t)
	e12 := add(core.HeadOf(1), core.TailOf(2))
	e13 := add(core.HeadOf(1), core.TailOf(3))
	e22 := add(core.TailOf(2), core.TailOf(2))
	e22h := add(core.HeadOf(2), core.HeadOf(2))
	tel := add(core.Telomere(9), core.TailOf(9))

	assert.True(t, core.Less(e12, e12.Mirror()), "same relation")
	assert.False(t, core.Outranks(e12, e12.Mirror()))

	assert.True(t, core.Less(e12, e13))
	assert.False(t, core.Less(e13, e12))
	assert.True(t, core.Outranks(e13, e12))

	assert.True(t, core.Less(tel, e12), "undefined first extremity orders first")
	assert.False(t, core.Less(e12, tel))
	assert.False(t, core.Less(tel.Mirror(), e12), "only the first-stored extremity is inspected")

	assert.True(t, core.Less(e22, e22h), "tail first on equal pairs")
	assert.False(t, core.Less(e22h, e22))
	assert.True(t, core.Outranks(e22h, e22))
}

func TestSignatureLess_IgnoresHalf(t *testing.T) {
	add := pairGraph(t)
	edges := []core.Edge{
		add(core.HeadOf(1), core.TailOf(2)),
		add(core.TailOf(2), core.TailOf(1)),
		add(core.Telomere(0), core.HeadOf(5)),
		add(core.HeadOf(3), core.TailOf(3)),
	}
	for i, a := range edges {
		for j, b := range edges {
			want := core.SignatureLess(a, b)
			assert.Equal(t, want, core.SignatureLess(a.Mirror(), b), "%d,%d", i, j)
			assert.Equal(t, want, core.SignatureLess(a, b.Mirror()), "%d,%d", i, j)
			if i != j {
				assert.NotEqual(t, want, core.SignatureLess(b, a), "strict order %d,%d", i, j)
			}
		}
	}
	assert.True(t, core.SignatureLess(edges[2], edges[0]), "undefined relations first")
}
