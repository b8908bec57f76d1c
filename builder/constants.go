// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRing is the canonical name for the Ring constructor.
	MethodRing = "Ring"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodRandomAdjacency is the canonical name for the RandomAdjacency constructor.
	MethodRandomAdjacency = "RandomAdjacency"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRingNodes is the smallest ring: two adjacencies joined by two parallel relations.
const MinRingNodes = 2

// MinChainNodes is the smallest chain: one adjacency with two telomeric sides.
const MinChainNodes = 1

// MinRandomSide is the smallest side of RandomAdjacency.
const MinRandomSide = 1

//-----------------------------------------------------------------------------
// Probability Domain
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lower bound of edge probabilities.
	MinProbability = 0.0
	// MaxProbability is the upper bound of edge probabilities.
	MaxProbability = 1.0
)
