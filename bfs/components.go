package bfs

import (
	"github.com/katalvlaran/dcjcycles/core"
)

// Components partitions the live vertices of g into connected components.
// Components are ordered by their lowest vertex index and each lists its
// vertices in BFS order from that vertex. Options apply to every search,
// except that any depth limit is lifted.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	opts = append(append([]Option(nil), opts...), WithMaxDepth(0))
	seen := make(map[core.VertexID]bool, g.VertexCount())
	var out [][]core.VertexID

	for _, v := range g.Vertices() {
		if seen[v.ID()] {
			continue
		}
		res, err := BFS(g, v.ID(), opts...)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
