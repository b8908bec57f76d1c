package cycles

import (
	"fmt"

	"github.com/katalvlaran/dcjcycles/core"
	"github.com/katalvlaran/dcjcycles/path"
)

// Enumerate returns every distinct consistent cycle of exactly length edges
// in g, seeding only vertices of one part.
//
// Each seed runs length rounds. In round i every candidate tries every half
// stored at its last vertex:
//   - rejected when the candidate would become inconsistent;
//   - i < length-1 and not closing: kept, extended by the edge and its far end;
//   - i == length-1, closing, and the edge outranks the first edge: kept,
//     extended by the edge only;
//   - otherwise dropped.
//
// Cycles are deduplicated by signature across all seeds.
func Enumerate(g *core.Graph, length int, opts ...Option) ([]*path.Path, Stats, error) {
	var stats Stats
	if g == nil {
		return nil, stats, fmt.Errorf("cycles: Enumerate: %w", ErrGraphNil)
	}

	first, ok := g.FirstVertex()
	if !ok || length < 2 {
		return nil, stats, nil
	}

	o := newOptions(opts)
	part := first.Part()
	if o.seedPartSet {
		part = o.seedPart
	}

	seen := make(map[string]struct{}, signatureHint(g.VertexCount()))
	var found []*path.Path

	for _, seed := range g.Vertices(core.InPart(part)) {
		stats.Seeds++
		closed := expand(seed, length, &stats)

		kept := 0
		for _, c := range closed {
			sig := c.Signature()
			if _, dup := seen[sig]; dup {
				stats.Duplicates++
				continue
			}
			seen[sig] = struct{}{}
			found = append(found, c)
			kept++
		}
		log.Debugf("seed %s: %d closed, %d new", seed.ID(), len(closed), kept)
	}

	return found, stats, nil
}

// signatureHint sizes the signature set: (n/2)², capped at n so the initial
// allocation stays linear in the graph. The set grows on demand.
func signatureHint(n int) int {
	half := n / 2
	return min(half*half, n)
}

// expand runs the synchronized rounds from one seed and returns the closed
// cycles of the final generation.
func expand(seed *core.Vertex, length int, stats *Stats) []*path.Path {
	generation := []*path.Path{path.NewFrom(seed)}

	for i := 0; i < length; i++ {
		final := i == length-1
		var next []*path.Path

		for _, p := range generation {
			last, _ := p.Last()
			opening, _ := p.FirstEdge()

			for j := 0; j < last.Degree(); j++ {
				e, _ := last.EdgeAt(j)
				if !p.ConsistentWith(e) {
					continue
				}

				closing := p.ClosesWith(e)
				switch {
				case !final && !closing:
					q := p.Clone()
					q.Extend(e)
					next = append(next, q)
				case final && closing && core.Outranks(e, opening):
					q := p.Clone()
					q.AppendEdge(e)
					next = append(next, q)
					stats.Closed++
				}
			}
		}

		stats.Candidates += len(next)
		generation = next
	}

	return generation
}
