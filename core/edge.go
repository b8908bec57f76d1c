// File: edge.go
// Role: Relations and their two mirrored half-edge views.
// Notes:
//   - A relation is shared by both halves; Edge is a cheap value view
//     (relation pointer + side) and compares with == as "same half".
//   - Same() is true for a half and its mirror: the relation identity.

package core

import "fmt"

// relation is the record shared by both halves of one edge.
type relation struct {
	id    EdgeID
	label string

	// ends[s] stores the half with side s; ex[s] is the extremity used at ends[s].
	ends [2]*Vertex
	ex   [2]Extremity
	pos  [2]int

	sibling EdgeID
	live    bool
}

// Edge is the half of a relation stored at Owner(), pointing at Adj().
// The zero Edge refers to no relation.
type Edge struct {
	rel  *relation
	side uint8
}

// EdgeOption customizes an edge before it is inserted.
type EdgeOption func(*relation)

// WithEdgeLabel sets the relation label. Empty keeps the generated "e<id>".
func WithEdgeLabel(label string) EdgeOption {
	return func(r *relation) {
		if label != "" {
			r.label = label
		}
	}
}

// WithEdgeExtremities sets the extremity pair as seen from the first endpoint.
func WithEdgeExtremities(from, to Extremity) EdgeOption {
	return func(r *relation) { r.ex[0], r.ex[1] = from, to }
}

// IsZero reports whether e refers to no relation.
func (e Edge) IsZero() bool { return e.rel == nil }

// Alive reports whether the relation is still part of its graph.
func (e Edge) Alive() bool { return e.rel != nil && e.rel.live }

// ID returns the relation id shared by both halves.
func (e Edge) ID() EdgeID {
	if e.rel == nil {
		return 0
	}
	return e.rel.id
}

// Label returns the relation label.
func (e Edge) Label() string {
	if e.rel == nil {
		return ""
	}
	return e.rel.label
}

// Owner returns the vertex storing this half.
func (e Edge) Owner() *Vertex { return e.rel.ends[e.side] }

// Adj returns the vertex this half points at.
func (e Edge) Adj() *Vertex { return e.rel.ends[1-e.side] }

// Mirror returns the other half of the same relation.
func (e Edge) Mirror() Edge { return Edge{rel: e.rel, side: 1 - e.side} }

// From returns the extremity used at Owner().
func (e Edge) From() Extremity { return e.rel.ex[e.side] }

// To returns the extremity used at Adj().
func (e Edge) To() Extremity { return e.rel.ex[1-e.side] }

// SetExtremities sets the pair as seen from this half; the mirror sees it swapped.
func (e Edge) SetExtremities(from, to Extremity) {
	e.rel.ex[e.side] = from
	e.rel.ex[1-e.side] = to
}

// HasSibling reports whether the relation is linked to a sibling.
func (e Edge) HasSibling() bool { return e.rel != nil && e.rel.sibling != 0 }

// Same reports relation identity: e and o are the same half or mirrors.
func (e Edge) Same(o Edge) bool { return e.rel != nil && e.rel == o.rel }

// Incident reports whether v is one of the endpoints.
func (e Edge) Incident(v *Vertex) bool {
	return e.rel != nil && (e.rel.ends[0] == v || e.rel.ends[1] == v)
}

// Incompatible reports whether e and o partially agree on an extremity id
// while disagreeing on its partner. Kinds are ignored; the result does not
// depend on which half of either relation is given. A relation with an
// Undefined side is a telomere match and is never incompatible.
//
// Complexity: O(1).
func (e Edge) Incompatible(o Edge) bool {
	if e.telomeric() || o.telomeric() {
		return false
	}
	ef, et := e.From().ID, e.To().ID
	of, ot := o.From().ID, o.To().ID

	return (ef == of) != (et == ot) || (ef == ot) != (et == of)
}

func (e Edge) telomeric() bool {
	return e.rel.ex[0].IsUndefined() || e.rel.ex[1].IsUndefined()
}

// String renders "label(from,to)".
func (e Edge) String() string {
	if e.rel == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s,%s)", e.rel.label, e.From(), e.To())
}
