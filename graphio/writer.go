package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/cycles"
)

// WriteGraph writes g in the form read by ReadGraph: vertices ascending by
// index, relations in creation order, then siblings and family names.
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.Wrap(core.ErrNilGraph, "graphio: WriteGraph")
	}

	if err := checkWritable(g); err != nil {
		return errors.Wrap(err, "graphio: WriteGraph")
	}

	bw := bufio.NewWriter(w)
	if g.Label() != "" {
		fmt.Fprintf(bw, "# %s\n", g.Label())
	}

	for _, v := range g.Vertices() {
		label := v.Label()
		if label == "" {
			label = emptyLabel
		}
		left, right := v.Extremities()
		fmt.Fprintf(bw, "%s\t%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
			tagVertex, v.Index(), label, v.Part(), v.Family(), v.Direction(), left, right)
	}

	edges := g.Edges()
	for _, e := range edges {
		fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%s\t%s\n",
			tagEdge, e.Owner().Index(), e.Adj().Index(), e.Label(), e.From(), e.To())
	}
	for _, e := range edges {
		if s, ok := g.Sibling(e); ok && e.ID() < s.ID() {
			fmt.Fprintf(bw, "%s\t%s\t%s\n", tagSibling, e.Label(), s.Label())
		}
	}

	for _, id := range g.NamedFamilies() {
		name, _ := g.FamilyName(id)
		fmt.Fprintf(bw, "%s\t%d\t%s\n", tagFamily, id, name)
	}

	return errors.Wrap(bw.Flush(), "graphio: WriteGraph")
}

// checkWritable rejects labels and names that ReadGraph would split or read
// back differently.
func checkWritable(g *core.Graph) error {
	for _, v := range g.Vertices() {
		if l := v.Label(); l == emptyLabel || (l != "" && !isField(l)) {
			return errors.Wrapf(ErrMalformedLine, "vertex %d label %q", v.Index(), l)
		}
	}
	for _, e := range g.Edges() {
		if !isField(e.Label()) {
			return errors.Wrapf(ErrMalformedLine, "edge label %q", e.Label())
		}
	}
	for _, id := range g.NamedFamilies() {
		name, _ := g.FamilyName(id)
		if name == "" || strings.Join(strings.Fields(name), " ") != name {
			return errors.Wrapf(ErrMalformedLine, "family %d name %q", id, name)
		}
	}
	return nil
}

// isField reports whether s survives strings.Fields as a single field.
func isField(s string) bool {
	f := strings.Fields(s)
	return len(f) == 1 && f[0] == s
}

// WriteConflicts writes one C record per cycle, ascending by vertex index,
// then one X record per conflict.
func WriteConflicts(w io.Writer, cg *cycles.ConflictGraph) error {
	if cg == nil || cg.Graph == nil {
		return errors.Wrap(core.ErrNilGraph, "graphio: WriteConflicts")
	}

	label := cg.Label()
	if label == "" {
		label = "conflicts"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s: %d cycles, %d conflicts\n", label, cg.VertexCount(), cg.EdgeCount())

	for _, v := range cg.Vertices() {
		c, ok := cg.Cycle(v.ID())
		if !ok {
			continue
		}
		fmt.Fprintf(bw, "%s\t%d\t%s\t%s\n", tagCycle, v.Index(), v.Label(), c)
	}
	for _, pair := range cg.Conflicts() {
		fmt.Fprintf(bw, "%s\t%d\t%d\n", tagConflict, pair[0].Index(), pair[1].Index())
	}

	log.Debugf("Wrote %d cycles and %d conflicts", cg.VertexCount(), cg.EdgeCount())
	return errors.Wrap(bw.Flush(), "graphio: WriteConflicts")
}
