// File: types.go
// Role: Sentinel errors, identifiers and small value types of the adjacency graph.
//
// Errors:
//
//	ErrVertexExists    - explicit vertex index already occupied.
//	ErrNegativeIndex   - explicit vertex index below zero.
//	ErrVertexNotFound  - vertex missing, or handle stale.
//	ErrLoopNotAllowed  - both endpoints of an edge are the same vertex.
//	ErrEdgeNotFound    - edge removed or owned by another graph.
//	ErrSiblingSelf     - a relation cannot be its own sibling.
//	ErrBadPart         - part tag outside [0, MaxParts).
//	ErrBadFamily       - negative family id.
//	ErrNilGraph        - operation received a nil *Graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates that an explicit vertex index is already in use.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrNegativeIndex indicates that an explicit vertex index is negative.
	ErrNegativeIndex = errors.New("core: negative vertex index")

	// ErrVertexNotFound indicates an operation referenced a missing or stale vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a removed or foreign edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSiblingSelf indicates an attempt to make a relation its own sibling.
	ErrSiblingSelf = errors.New("core: edge cannot be its own sibling")

	// ErrBadPart indicates a part tag outside [0, MaxParts).
	ErrBadPart = errors.New("core: part out of range")

	// ErrBadFamily indicates a negative family id.
	ErrBadFamily = errors.New("core: negative family id")

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = errors.New("core: graph is nil")
)

const (
	// MaxParts bounds part tags: valid parts are 0..MaxParts-1, 0 meaning "no part".
	MaxParts = 128

	// NoPart is the part tag of a vertex outside any bipartition side.
	NoPart = 0

	// NoFamily is the family id of a vertex outside any ortholog group.
	NoFamily = 0

	// initialSlots is the vertex slot table capacity of a fresh graph.
	initialSlots = 16

	// edgeIDPrefix prefixes generated edge labels ("e1", "e2", ...).
	edgeIDPrefix = "e"
)

// VertexID is a generational handle to a vertex slot.
// The zero value never refers to a vertex.
type VertexID struct {
	index int
	gen   uint32
}

// Index returns the dense slot index of the handle (the vertex "id").
func (id VertexID) Index() int { return id.index }

// Valid reports whether the handle was issued by a graph.
// A valid handle may still be stale.
func (id VertexID) Valid() bool { return id.gen != 0 }

// String renders the handle as "v<index>".
func (id VertexID) String() string {
	if !id.Valid() {
		return "v?"
	}
	return fmt.Sprintf("v%d", id.index)
}

// EdgeID identifies one relation (both of its halves) within a graph.
// Zero means "no edge".
type EdgeID uint64

// Direction is the optional orientation of the gene an adjacency belongs to.
type Direction int8

const (
	// Reverse marks a gene read right to left.
	Reverse Direction = -1
	// Unoriented is the default direction.
	Unoriented Direction = 0
	// Forward marks a gene read left to right.
	Forward Direction = 1
)

// String renders the direction as "-", "0" or "+".
func (d Direction) String() string {
	switch {
	case d < 0:
		return "-"
	case d > 0:
		return "+"
	default:
		return "0"
	}
}
