package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based counter to a label. Implementations must be pure.
type IDFn func(idx int) string

// DefaultIDFn labels by decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn labels like lowercase spreadsheet columns: 0→"a", 25→"z", 26→"aa".
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	mustIndex("LetterIDFn", idx)
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('a' + i%26)
	}
	return string(buf[pos:])
}

// BracketIDFn returns "[idx]". Concatenations of distinct bracketed labels
// never collide, unlike bare letters ("a"+"ab" == "aa"+"b").
// Panics if idx < 0.
func BracketIDFn(idx int) string {
	mustIndex("BracketIDFn", idx)
	return "[" + strconv.Itoa(idx) + "]"
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1".
// The returned function panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("SymbolNumberIDFn", idx)
		return prefix + strconv.Itoa(idx)
	}
}

func mustIndex(fn string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("builder: %s: idx must be >= 0, got %d", fn, idx))
	}
}

// WithSymbNumb labels adjacencies prefix0, prefix1, ...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs restores decimal adjacency labels.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithLetterEdgeLabels restores letter relation labels.
func WithLetterEdgeLabels() BuilderOption {
	return WithEdgeLabelScheme(LetterIDFn)
}

// WithBracketEdgeLabels labels relations "[0]", "[1]", ...
// Use it when a graph may hold more than 26 relations and signatures must stay unambiguous.
func WithBracketEdgeLabels() BuilderOption {
	return WithEdgeLabelScheme(BracketIDFn)
}
