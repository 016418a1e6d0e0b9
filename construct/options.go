package construct

// Heuristic selects between the two construction regimes (spec §4.5).
type Heuristic int

const (
	// Basic sorts vehicles once up front and fills them in that order.
	Basic Heuristic = iota
	// Dynamic recomputes, at every step, which vehicle is currently
	// "closest" to the largest number of unassigned units.
	Dynamic
)

// InitStrategy picks the first unit seeded into an empty route.
type InitStrategy int

const (
	InitNone InitStrategy = iota
	InitHigherAmount
	InitFurthest
	InitNearest
	InitEarliestDeadline
)

// SortStrategy orders vehicles before the Basic regime fills them.
type SortStrategy int

const (
	SortAvailability SortStrategy = iota
	SortCost
)

// Options configures Construct (spec §6 "Parameters").
type Options struct {
	Heuristic Heuristic
	Init      InitStrategy
	Sort      SortStrategy

	// RegretCoefficientPercent represents the regret coefficient λ ∈
	// [0, 1.5] as an integer percentage (0..150), keeping the scoring
	// arithmetic in integers (SPEC_FULL.md §A "Determinism").
	RegretCoefficientPercent int64
}

// DefaultOptions returns the package default: Basic regime, no init
// seeding, availability sort, λ = 1.0.
func DefaultOptions() Options {
	return Options{
		Heuristic:                Basic,
		Init:                     InitNone,
		Sort:                     SortAvailability,
		RegretCoefficientPercent: 100,
	}
}

// Option mutates an Options value; NewOptions folds a DefaultOptions()
// through a list of them (the functional-options pattern used throughout
// this module — SPEC_FULL.md §A).
type Option func(*Options)

func WithHeuristic(h Heuristic) Option { return func(o *Options) { o.Heuristic = h } }
func WithInit(i InitStrategy) Option   { return func(o *Options) { o.Init = i } }
func WithSort(s SortStrategy) Option   { return func(o *Options) { o.Sort = s } }
func WithRegretCoefficientPercent(p int64) Option {
	return func(o *Options) { o.RegretCoefficientPercent = p }
}

func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
