// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn   ("0","1","2",...) for vertex labels
//   • edgeLabelFn = LetterIDFn    ("a","b",...) for relation labels
//   • rng         = nil           (pure/deterministic unless seeded)
//   • left/right  = parts 1 / 2
//   • genes       = 0             (RandomAdjacency uses n)
//   • telomeres   = 0             (no Undefined relation sides)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex label strategy: index -> label.
	idFn IDFn
	// Relation label strategy: index -> label. Labels must stay unique.
	edgeLabelFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Bipartition sides.
	leftPart  int
	rightPart int

	// Gene pool size for RandomAdjacency; 0 means "one gene per vertex pair".
	genes int
	// Probability that a RandomAdjacency relation has an Undefined from side.
	telomeres float64
}

const (
	defaultLeftPart  = 1
	defaultRightPart = 2
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		edgeLabelFn: LetterIDFn,
		leftPart:    defaultLeftPart,
		rightPart:   defaultRightPart,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// partOf alternates sides by index parity.
func (c builderConfig) partOf(i int) int {
	if i%2 == 0 {
		return c.leftPart
	}
	return c.rightPart
}
