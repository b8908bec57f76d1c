// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dcjcycles/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithEdgeLabelScheme sets the relation label generator: idx -> label.
// The generator must be injective. Panics on nil.
func WithEdgeLabelScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeLabelScheme(nil)")
	}
	return func(c *builderConfig) { c.edgeLabelFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithParts sets the part tags of the two bipartition sides.
// Panics unless both are in [1, core.MaxParts) and distinct.
func WithParts(left, right int) BuilderOption {
	if left < 1 || left >= core.MaxParts || right < 1 || right >= core.MaxParts || left == right {
		panic(fmt.Sprintf("builder: WithParts(%d, %d)", left, right))
	}
	return func(c *builderConfig) { c.leftPart, c.rightPart = left, right }
}

// WithGenes sets the gene pool size of RandomAdjacency. Panics if k < 1.
// Smaller pools produce more shared extremity ids, hence more conflicts.
func WithGenes(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithGenes(k<1)")
	}
	return func(c *builderConfig) { c.genes = k }
}

// WithTelomeres makes RandomAdjacency cap each relation with probability q:
// its from side becomes Undefined. Panics unless 0 <= q <= 1.
func WithTelomeres(q float64) BuilderOption {
	if q < MinProbability || q > MaxProbability {
		panic(fmt.Sprintf("builder: WithTelomeres(%v)", q))
	}
	return func(c *builderConfig) { c.telomeres = q }
}
