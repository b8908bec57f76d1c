// Package dcjcycles finds short consistent cycles in the adjacency graph of
// two genomes and builds the conflict graph between them, the input of a
// cycle packing solver for DCJ distance with duplicated genes.
//
// Packages:
//
//	core/       extremity-labeled multigraph (Extremity, Vertex, Edge halves, Graph)
//	path/       walks with consistency checks and orientation-free signatures
//	cycles/     bounded cycle enumeration and the ConflictGraph builder
//	builder/    deterministic fixtures: rings, chains, seeded random adjacency graphs
//	bfs/        breadth-first search and connected components
//	graphio/    line-oriented text form of adjacency and conflict graphs
//	cmd/dcjcycles, internal/cli   the command-line tool
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Ring(4))
//	cg, _ := cycles.Build(g, 4)
//	fmt.Println(cg.VertexCount()) // 1 cycle, signature "abcd"
package dcjcycles
