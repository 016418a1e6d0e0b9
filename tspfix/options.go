package tspfix

// MatchingAlgo selects the odd-degree vertex matching strategy (spec
// §4.7), mirroring the teacher's tsp.MatchingAlgo enum.
type MatchingAlgo int

const (
	// HungarianMatch runs Kuhn-Munkres assignment on the odd-vertex cost
	// submatrix and falls back to GreedyMatch for any vertex the
	// assignment leaves without a mutually-consistent partner.
	HungarianMatch MatchingAlgo = iota
	// GreedyMatch pairs nearest-remaining-neighbor, skipping Hungarian
	// entirely.
	GreedyMatch
)

// Options configures one Solve call, following the same functional-option
// shape as the rest of this module (construct.Options, search.Options) and
// the teacher's tsp.Options/DefaultOptions.
type Options struct {
	// Matching selects the odd-degree matching strategy.
	Matching MatchingAlgo
	// MaxImproveIters caps the number of accepted improvement moves
	// across all of 2-opt/or-opt/relocate combined; 0 means unlimited
	// (run until no pass finds a positive gain or the deadline expires).
	MaxImproveIters int64
	// Seed is stored but not read by Solve: improvement takes the first
	// improving move in a fixed scan order, so results are reproducible
	// whatever its value.
	Seed int64
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns Hungarian matching with no iteration cap.
func DefaultOptions() Options {
	return Options{Matching: HungarianMatch}
}

// WithMatching overrides the odd-degree matching strategy.
func WithMatching(m MatchingAlgo) Option {
	return func(o *Options) { o.Matching = m }
}

// WithMaxImproveIters caps the number of accepted improvement moves.
func WithMaxImproveIters(n int64) Option {
	return func(o *Options) { o.MaxImproveIters = n }
}

// WithSeed sets Options.Seed (see its comment: Solve does not read it).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
