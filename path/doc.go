// Package path implements the consistency-checked walk builder over a
// core.Graph.
//
// A Path holds vertices v0..v(l-1) and edges e0..e(le-1) with le == l-1
// (open) or le == l (closed: the last edge returns to v0 without storing v0
// again). Mutators follow stack discipline so a search can try an extension
// and roll it back.
//
// Consistency:
//
//   - Two edges are incompatible when they partially agree on an extremity
//     id while disagreeing on its partner (core.Edge.Incompatible).
//   - A path is consistent when no two of its edges are incompatible and no
//     relation appears twice (by identity or mirror).
//
// Signatures:
//
//   - Signature sorts the edges with core.SignatureLess and concatenates
//     their labels. The result does not depend on the start vertex or the
//     traversal direction, so it identifies a cycle by its edge set.
//
// Accessors never panic: out-of-range and empty-path reads return ok=false.
package path
