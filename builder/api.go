// SPDX-License-Identifier: MIT
// Package: dcjcycles/builder
//
// api.go - thin public entry-point for the builder package.
//
// Options resolve into an immutable builderConfig per call; there is no
// package state, so the same options, seed and constructor order always
// produce the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dcjcycles/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Continue numbering from the graph's current contents.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph from gopts and runs cons against it in order
// with the configuration resolved from bopts. The first failing constructor
// aborts the build; the partial graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run("BuildGraph", g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to add a second component
// under different options. Numbering continues from what g already holds.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}

	return run("Apply", g, newBuilderConfig(opts...), cons)
}

func run(method string, g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
