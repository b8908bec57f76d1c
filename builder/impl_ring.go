// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// impl_ring.go - implementation of Ring(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds n vertices in ascending order, parts alternating left/right.
//   • Relation i joins vertex i and vertex (i+1)%n and exercises the tail of
//     gene g+i+1 on both sides (g = highest gene already in the graph).
//   • Vertex i joins the extremities of the relations on either side of it.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//
// Determinism:
//   • Emission order by increasing i; labels via cfg.idFn / cfg.edgeLabelFn.

package builder

import (
	"github.com/katalvlaran/dcjcycles/core"
)

// Ring returns a Constructor that builds one consistent n-cycle.
// With default options Ring(4) is the "abcd" square.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRing, n, MinRingNodes); err != nil {
			return err
		}

		o := offsetsOf(g)
		gene := func(i int) core.Extremity { return core.TailOf(o.gene + i + 1) }

		ids := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			id, err := addAdjacency(MethodRing, g, cfg, o, i, cfg.partOf(i), gene((i+n-1)%n), gene(i))
			if err != nil {
				return err
			}
			ids[i] = id
		}

		for i := 0; i < n; i++ {
			x := gene(i)
			if _, err := addRelation(MethodRing, g, cfg, o, ids[i], ids[(i+1)%n], x, x); err != nil {
				return err
			}
		}

		return nil
	}
}
