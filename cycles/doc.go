// Package cycles enumerates bounded-length consistent cycles of an adjacency
// graph and builds the conflict graph over them.
//
// What:
//
//   - Enumerate: round-synchronized expansion of candidate paths from every
//     seed vertex of one bipartition side into consistent cycles of exactly
//     L edges. Each round consumes the previous generation and produces a
//     fresh one. A closing edge is kept only when it outranks the opening
//     edge (core.Outranks), which drops one of the two traversal directions.
//     Surviving cycles are deduplicated by path.Path.Signature.
//   - Build / FromCycles: one conflict-graph vertex per cycle, labeled by its
//     signature and owning its Path; one edge per pair of cycles that cannot
//     coexist in a packing. Conflicts are found through an extremity-indexed
//     association map instead of comparing every pair of cycles.
//
// Why:
//
//   - A maximum set of pairwise compatible short cycles approximates the DCJ
//     distance between genomes with duplicated genes. The conflict graph is
//     the input of the packing (independent set) solver.
//
// Complexity:
//
//   - Enumerate: O(S · Δ^L · L²) for S seeds and maximum degree Δ.
//   - FromCycles: O(C · L · k) where k bounds the partners recorded per
//     extremity id, against O(C² · L²) for the pairwise definition.
//
// Errors:
//
//   - ErrGraphNil: nil source graph.
//
// Degenerate inputs (no vertices, L < 2) yield an empty result, not an error.
package cycles
