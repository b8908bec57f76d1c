// File: extremity.go
// Role: Gene extremity value type (Tail, Head, or the Undefined telomere wildcard).

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadExtremity indicates an extremity literal that ParseExtremity cannot read.
var ErrBadExtremity = errors.New("core: malformed extremity")

// ExtremityKind is the end of a gene an Extremity refers to.
type ExtremityKind uint8

const (
	// Undefined is the telomere wildcard; it equals any other Undefined.
	Undefined ExtremityKind = iota
	// Tail is the 5' end of a gene.
	Tail
	// Head is the 3' end of a gene.
	Head
)

// String renders the kind as "t", "h" or "_".
func (k ExtremityKind) String() string {
	switch k {
	case Tail:
		return "t"
	case Head:
		return "h"
	default:
		return "_"
	}
}

// Negate flips Tail and Head; Undefined stays Undefined.
func (k ExtremityKind) Negate() ExtremityKind {
	switch k {
	case Tail:
		return Head
	case Head:
		return Tail
	default:
		return Undefined
	}
}

// Extremity is one end of gene ID, or an Undefined placeholder.
type Extremity struct {
	ID   int
	Kind ExtremityKind
}

// TailOf returns the tail extremity of gene id.
func TailOf(id int) Extremity { return Extremity{ID: id, Kind: Tail} }

// HeadOf returns the head extremity of gene id.
func HeadOf(id int) Extremity { return Extremity{ID: id, Kind: Head} }

// Telomere returns an Undefined extremity carrying id.
func Telomere(id int) Extremity { return Extremity{ID: id} }

// IsUndefined reports whether x is the telomere wildcard.
func (x Extremity) IsUndefined() bool { return x.Kind == Undefined }

// Equal reports extremity equality: two Undefined extremities are always
// equal; otherwise both id and kind must match.
func (x Extremity) Equal(y Extremity) bool {
	if x.Kind == Undefined && y.Kind == Undefined {
		return true
	}
	return x.ID == y.ID && x.Kind == y.Kind
}

// Negate returns the opposite end of the same gene.
func (x Extremity) Negate() Extremity {
	return Extremity{ID: x.ID, Kind: x.Kind.Negate()}
}

// String renders "12t", "12h", "12_" or, for an Undefined extremity with id 0, "_".
func (x Extremity) String() string {
	if x.Kind == Undefined && x.ID == 0 {
		return "_"
	}
	return strconv.Itoa(x.ID) + x.Kind.String()
}

// ParseExtremity reads the String form back.
func ParseExtremity(s string) (Extremity, error) {
	s = strings.TrimSpace(s)
	if s == "_" {
		return Extremity{}, nil
	}
	if len(s) < 2 {
		return Extremity{}, fmt.Errorf("ParseExtremity(%q): %w", s, ErrBadExtremity)
	}

	var kind ExtremityKind
	switch s[len(s)-1] {
	case 't', 'T':
		kind = Tail
	case 'h', 'H':
		kind = Head
	case '_':
		kind = Undefined
	default:
		return Extremity{}, fmt.Errorf("ParseExtremity(%q): unknown kind: %w", s, ErrBadExtremity)
	}

	id, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Extremity{}, fmt.Errorf("ParseExtremity(%q): %v: %w", s, err, ErrBadExtremity)
	}

	return Extremity{ID: id, Kind: kind}, nil
}
