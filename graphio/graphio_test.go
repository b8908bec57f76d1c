package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcjcycles/builder"
	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/cycles"
	"github.com/katalvlaran/dcjcycles/graphio"
)

const square = `# square
V	0	x	1	3	+	1t	2t
V	1	-	2	3	0	2h	3t
V	2	z	1	0	-	3h	4t
V	3	w	2	0	0	4h	_
E	0	1	a	1t	1t
E	1	2	b	2t	2t
E	2	3	c	3t	3t

E	3	0	d	4t	4t
S	a	c
F	3	ABC transporter
`

func TestReadGraph(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(square), core.WithGraphLabel("square"))
	require.NoError(t, err)

	assert.Equal(t, "square", g.Label())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 2, g.FamilySize(3))

	v1, ok := g.VertexAt(1)
	require.True(t, ok)
	assert.Empty(t, v1.Label())
	assert.Equal(t, 2, v1.Part())

	v2, _ := g.VertexAt(2)
	assert.Equal(t, core.Reverse, v2.Direction())
	v3, _ := g.VertexAt(3)
	_, right := v3.Extremities()
	assert.True(t, right.IsUndefined())

	edges := g.Edges()
	require.Len(t, edges, 4)
	sib, ok := g.Sibling(edges[0])
	require.True(t, ok)
	assert.Equal(t, "c", sib.Label())

	name, ok := g.FamilyName(3)
	require.True(t, ok)
	assert.Equal(t, "ABC transporter", name)

	found, _, err := cycles.Enumerate(g, 4)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "abcd", found[0].Signature())
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(square))
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&first, g))

	again, err := graphio.ReadGraph(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&second, again))
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "S\ta\tc\n")
	assert.Contains(t, first.String(), "V\t1\t-\t2\t3\t0\t2h\t3t\n")
}

func TestWriteGraph_RandomRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomAdjacency(6, 0.5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	want, _, err := cycles.Enumerate(g, 4)
	require.NoError(t, err)
	got, _, err := cycles.Enumerate(back, 4)
	require.NoError(t, err)
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].Signature(), got[i].Signature())
	}
}

func TestWriteGraph_RejectsUnreadableLabels(t *testing.T) {
	cases := []struct {
		name  string
		build func(g *core.Graph)
	}{
		{"vertex label with space", func(g *core.Graph) {
			_, _ = g.AddVertex(core.WithLabel("chr 1"))
		}},
		{"vertex label dash", func(g *core.Graph) {
			_, _ = g.AddVertex(core.WithLabel("-"))
		}},
		{"edge label with tab", func(g *core.Graph) {
			a, _ := g.AddVertex()
			b, _ := g.AddVertex()
			_, _ = g.AddEdge(a, b, core.WithEdgeLabel("x\ty"))
		}},
		{"family name with double space", func(g *core.Graph) {
			g.SetFamilyName(1, "ABC  1")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			tc.build(g)
			var buf bytes.Buffer
			err := graphio.WriteGraph(&buf, g)
			assert.ErrorIs(t, err, graphio.ErrMalformedLine)
			assert.Zero(t, buf.Len())
		})
	}

	g := core.NewGraph()
	_, err := g.AddVertex(core.WithLabel("chr1"))
	require.NoError(t, err)
	g.SetFamilyName(1, "ABC 1")
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))
	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	name, _ := back.FamilyName(1)
	assert.Equal(t, "ABC 1", name)
	_, ok := back.VertexByLabel("chr1")
	assert.True(t, ok)
}

func TestReadGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
		line  string
	}{
		{"unknown tag", "Q 1 2\n", graphio.ErrMalformedLine, "line 1"},
		{"short vertex", "V 0 x 1\n", graphio.ErrMalformedLine, "line 1"},
		{"bad index", "V x a 1 0 0 1t 1h\n", graphio.ErrMalformedLine, "line 1"},
		{"bad direction", "V 0 a 1 0 ? 1t 1h\n", graphio.ErrMalformedLine, "line 1"},
		{"bad extremity", "V 0 a 1 0 0 1q 1h\n", graphio.ErrMalformedLine, "line 1"},
		{"duplicate index", "V 0 a 1 0 0 1t 1h\nV 0 b 2 0 0 1t 1h\n", core.ErrVertexExists, "line 2"},
		{"bad part", "V 0 a 200 0 0 1t 1h\n", core.ErrBadPart, "line 1"},
		{"missing vertex", "V 0 a 1 0 0 1t 1h\n\nE 0 5 a 1t 1t\n", core.ErrVertexNotFound, "line 3"},
		{"self loop", "V 0 a 1 0 0 1t 1h\nE 0 0 a 1t 1t\n", core.ErrLoopNotAllowed, "line 2"},
		{"duplicate edge label", "V 0 a 1 0 0 1t 1h\nV 1 b 2 0 0 1t 1h\nE 0 1 a 1t 1t\nE 1 0 a 1h 1h\n", graphio.ErrMalformedLine, "line 4"},
		{"unknown sibling", "V 0 a 1 0 0 1t 1h\nV 1 b 2 0 0 1t 1h\nE 0 1 a 1t 1t\nS a b\n", core.ErrEdgeNotFound, "line 4"},
		{"self sibling", "V 0 a 1 0 0 1t 1h\nV 1 b 2 0 0 1t 1h\nE 0 1 a 1t 1t\nS a a\n", core.ErrSiblingSelf, "line 4"},
		{"nameless family", "F 3\n", graphio.ErrMalformedLine, "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestWriteConflicts(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Ring(4))
	require.NoError(t, err)
	cg, err := cycles.Build(g, 4, cycles.WithLabel("ring"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteConflicts(&buf, cg))
	assert.Equal(t, "# ring: 1 cycles, 0 conflicts\nC\t0\tabcd\tv0-a-v1-b-v2-c-v3-d\n", buf.String())

	assert.ErrorIs(t, graphio.WriteConflicts(&buf, nil), core.ErrNilGraph)
	assert.ErrorIs(t, graphio.WriteGraph(&buf, nil), core.ErrNilGraph)
}
