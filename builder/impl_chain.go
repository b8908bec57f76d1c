// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices, parts alternating; the first vertex has an Undefined
//     left side and the last an Undefined right side (telomeres).
//   • Relation i joins vertex i and vertex i+1 (n-1 relations).
//   • The result has no cycles.
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"github.com/katalvlaran/dcjcycles/core"
)

// Chain returns a Constructor that builds a linear chromosome of n adjacencies.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodChain, n, MinChainNodes); err != nil {
			return err
		}

		o := offsetsOf(g)
		gene := func(i int) core.Extremity { return core.TailOf(o.gene + i + 1) }

		ids := make([]core.VertexID, n)
		for i := 0; i < n; i++ {
			left, right := core.Extremity{}, core.Extremity{}
			if i > 0 {
				left = gene(i - 1)
			}
			if i < n-1 {
				right = gene(i)
			}
			id, err := addAdjacency(MethodChain, g, cfg, o, i, cfg.partOf(i), left, right)
			if err != nil {
				return err
			}
			ids[i] = id
		}

		for i := 0; i+1 < n; i++ {
			x := gene(i)
			if _, err := addRelation(MethodChain, g, cfg, o, ids[i], ids[i+1], x, x); err != nil {
				return err
			}
		}

		return nil
	}
}
