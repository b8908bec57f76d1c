package cycles

import (
	"errors"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("cycles")

// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate or Build.
var ErrGraphNil = errors.New("cycles: graph is nil")

// Option configures Enumerate, Build and FromCycles.
type Option func(*options)

type options struct {
	seedPart    int
	seedPartSet bool
	label       string
}

// WithSeedPart seeds the search in the given part instead of the part of the
// lowest-index vertex. Every cycle must touch the seed part, so only a true
// bipartition side finds every cycle.
func WithSeedPart(part int) Option {
	return func(o *options) {
		o.seedPart = part
		o.seedPartSet = true
	}
}

// WithLabel sets the label of the conflict graph.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Stats describes one enumeration.
type Stats struct {
	// Seeds is the number of seed vertices expanded.
	Seeds int
	// Candidates counts paths kept across all rounds, closed cycles included.
	Candidates int
	// Closed counts cycles that survived symmetry breaking.
	Closed int
	// Duplicates counts closed cycles dropped because their signature was already seen.
	Duplicates int
}
