// File: ordering.go
// Role: Canonical half-edge orders.
//
// Less/Outranks are the closing-edge order of the cycle search. They depend
// on which half is given (the first-stored extremity is the half's From()).
// SignatureLess is a strict total order over relations that ignores the
// half, used to sort cycle edges into a signature.

package core

// Less reports whether a orders before b.
//
// Rules, in order:
//   - a and b are the same relation: true.
//   - a.From() is Undefined: true; else b.From() is Undefined: false.
//   - compare the sorted (low, high) id pairs lexicographically.
//   - equal pairs: true iff a.From() is a Tail.
//
// Complexity: O(1).
func Less(a, b Edge) bool {
	if a.Same(b) {
		return true
	}

	a1, a2 := sortedIDs(a)
	b1, b2 := sortedIDs(b)

	if a.From().IsUndefined() {
		return true
	}
	if b.From().IsUndefined() {
		return false
	}

	switch {
	case a1 != b1:
		return a1 < b1
	case a2 != b2:
		return a2 < b2
	default:
		return a.From().Kind == Tail
	}
}

// Outranks reports whether a orders strictly after b: it is neither the
// same relation nor Less than b.
func Outranks(a, b Edge) bool {
	return !a.Same(b) && !Less(a, b)
}

// SignatureLess orders relations independently of the half given:
// relations touching an Undefined extremity first, then by the sorted id
// pair, then by the kinds at the low and high ends, then by label.
//
// Complexity: O(1).
func SignatureLess(a, b Edge) bool {
	ka, kb := signatureKeyOf(a), signatureKeyOf(b)

	switch {
	case ka.undefined != kb.undefined:
		return ka.undefined
	case ka.lo.ID != kb.lo.ID:
		return ka.lo.ID < kb.lo.ID
	case ka.hi.ID != kb.hi.ID:
		return ka.hi.ID < kb.hi.ID
	case ka.lo.Kind != kb.lo.Kind:
		return ka.lo.Kind < kb.lo.Kind
	case ka.hi.Kind != kb.hi.Kind:
		return ka.hi.Kind < kb.hi.Kind
	default:
		return a.Label() < b.Label()
	}
}

type signatureKey struct {
	undefined bool
	lo, hi    Extremity
}

func signatureKeyOf(e Edge) signatureKey {
	lo, hi := e.From(), e.To()
	if hi.ID < lo.ID || (hi.ID == lo.ID && hi.Kind < lo.Kind) {
		lo, hi = hi, lo
	}
	return signatureKey{
		undefined: lo.IsUndefined() || hi.IsUndefined(),
		lo:        lo,
		hi:        hi,
	}
}

func sortedIDs(e Edge) (int, int) {
	x, y := e.From().ID, e.To().ID
	if x > y {
		return y, x
	}
	return x, y
}
