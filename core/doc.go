// Package core provides the extremity-labeled multigraph ("adjacency graph")
// that models gene-order relations between two genomes.
//
// The Graph G = (V,E) is an undirected multigraph:
//
//   - Vertices are adjacencies. Each joins a left and a right gene Extremity;
//     a telomere has one Undefined side.
//   - Vertices carry an optional part tag (bipartition side, 1..MaxParts-1,
//     0 = no part), an optional family id (0 = no family) and an optional
//     Direction.
//   - Edges are relations between adjacencies. One relation is stored as two
//     mirrored half-edges, one at each endpoint. Setting the extremity pair
//     through one half is observed, swapped, by the other.
//   - Parallel edges are allowed; self-loops are not.
//   - Two relations may be linked as siblings: alternative matches for the
//     same duplicated gene. The link is mutual and is cleared on both sides
//     when either relation is removed.
//
// Identity:
//
//   - VertexID is a generational handle into a dense slot table. Indices are
//     reused after RemoveVertex; handles taken before the removal become stale
//     and resolve to ErrVertexNotFound.
//   - EdgeID is monotonic per graph and never reused. Labels default to
//     "e<id>" and must stay unique: they are the input of cycle signatures.
//
// Ordering:
//
//   - Less/Outranks implement the canonical half-edge order used to break
//     traversal symmetry when closing cycles.
//   - SignatureLess is the orientation-independent order used to build
//     cycle signatures.
//
// Iteration:
//
//   - Vertices(filters...) returns vertices in ascending index order,
//     optionally filtered by InPart and/or InFamily.
//
// Concurrency:
//
//   - A Graph is not safe for concurrent mutation. Callers that share one
//     across goroutines must synchronize externally.
package core
