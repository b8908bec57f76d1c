// Package bfs provides breadth-first search over a core.Graph, returning
// edge-count distances, parent links and visit order, and splits a graph
// into connected components.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a BFSResult with Order, Depth and Parent.
//   - Components partitions the live vertices into connected components.
//     The cycles CLI uses it to report how a conflict graph decomposes for an
//     independent-set solver, which can treat every component on its own.
//   - Hooks: OnVisit may abort the search with an error; WithFilterEdge skips
//     individual half-edges; WithMaxDepth bounds the depth.
//
// Determinism
//
//	Neighbors are taken in the order of each vertex's half-edge list, and
//	Components seeds from vertices in ascending index order, so results are
//	reproducible for a given construction order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil: nil graph.
//   - ErrStartVertexNotFound: start handle missing or stale.
//   - ErrOptionViolation: invalid option (negative depth).
//   - context errors when WithContext is cancelled.
//   - any error returned by OnVisit, wrapped.
package bfs
