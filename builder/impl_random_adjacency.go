// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// impl_random_adjacency.go - implementation of RandomAdjacency(n, p) constructor.
//
// Model:
//   - Two sides of n vertices each (left part, then right part).
//   - Each cross pair (i, j) receives one relation independently with prob p.
//   - Relation extremities come from a pool of cfg.genes genes (default n):
//     from is a random Tail/Head of a random gene; to equals from with prob
//     1/2, else it is drawn independently. With WithTelomeres(q) the from
//     side is then replaced by Undefined with prob q; otherwise no
//     extremity is Undefined.
//   - Vertex extremities are drawn from the same pool.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when p > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc; fixed draw order per relation.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/dcjcycles/core"
)

// RandomAdjacency returns a Constructor that samples a bipartite adjacency
// graph with 2n vertices and independent relation probability p.
func RandomAdjacency(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomAdjacency, n, MinRandomSide); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomAdjacency, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability {
			return builderErrorf(MethodRandomAdjacency, ErrNeedRandSource, "p=%.6f", p)
		}

		genes := cfg.genes
		if genes == 0 {
			genes = n
		}
		o := offsetsOf(g)
		rng := cfg.rng

		draw := func() core.Extremity {
			if rng == nil {
				return core.TailOf(o.gene + 1)
			}
			x := core.Extremity{ID: o.gene + 1 + rng.Intn(genes), Kind: core.Tail}
			if rng.Intn(2) == 1 {
				x.Kind = core.Head
			}
			return x
		}

		left := make([]core.VertexID, n)
		right := make([]core.VertexID, n)
		for i := 0; i < 2*n; i++ {
			part := cfg.leftPart
			if i >= n {
				part = cfg.rightPart
			}
			id, err := addAdjacency(MethodRandomAdjacency, g, cfg, o, i, part, draw(), draw())
			if err != nil {
				return err
			}
			if i < n {
				left[i] = id
			} else {
				right[i-n] = id
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !trial(rng, p) {
					continue
				}
				from := draw()
				to := from
				if rng.Intn(2) == 1 {
					to = draw()
				}
				if cfg.telomeres > MinProbability && rng.Float64() < cfg.telomeres {
					from = core.Extremity{}
				}
				if _, err := addRelation(MethodRandomAdjacency, g, cfg, o, left[i], right[j], from, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli draw; p ∈ {0,1} never consumes the RNG.
func trial(rng *rand.Rand, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return rng.Float64() < p
	}
}
