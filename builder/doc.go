// Package builder provides deterministic "functional-options"-style fixture
// constructors for adjacency graphs (core.Graph).
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): creates a graph, resolves options
//     and applies constructors in order.
//   - Topologies (Constructor implementations):
//     – Ring(n):               one n-cycle of adjacencies alternating parts.
//     – Chain(n):              a linear chromosome with telomeres at both ends.
//     – RandomAdjacency(n, p): a seeded random bipartite adjacency graph over a
//     small gene pool, without Undefined extremities.
//   - Label schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…), adjacency labels.
//     – LetterIDFn:       lowercase spreadsheet columns ("a",…,"z","aa",…),
//     relation labels.
//     – BracketIDFn:      bracketed decimals ("[0]","[1]",…); concatenations
//     of these never collide, which keeps cycle signatures unambiguous.
//     – SymbolNumberIDFn: prefix plus decimal ("v0","v1",…).
//   - Validation helpers: validateMin, validateProbability.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
//   - Composition: constructors continue vertex, edge-label and gene numbering
//     from what the graph already holds, so composed fixtures keep labels unique.
package builder
