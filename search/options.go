package search

import (
	"time"

	"github.com/vrpstack/optiroute/tspfix"
)

// Options configures Driver.Run (spec §4.8, and SPEC_FULL.md §C
// "StrictRecompute").
type Options struct {
	// Depth caps the number of outer rounds; values <= 0 are treated as 1.
	Depth int
	// Deadline is consulted before every ls-step and before every ruin
	// phase; the zero Time means no deadline.
	Deadline time.Time

	// RuinEvery triggers a ruin-and-recreate phase every RuinEvery rounds
	// past the first (d>0, spec §4.8 step 5); 0 disables ruin entirely.
	RuinEvery int
	// RefillRegretCoefficientPercent is the post-ls-step refill's regret
	// weighting (spec §4.8 step 4) at round 0, as an integer percentage
	// the same way construct.Options.RegretCoefficientPercent is. The
	// driver decays this linearly toward 0 as rounds advance (see
	// decayedRegretCoefficient in driver.go), so later refills fall back
	// to plain cheapest-insertion.
	RefillRegretCoefficientPercent int64
	// RuinRegretCoefficientPercent drives the ruin phase's recreate pass
	// (spec §4.8 step 5, default 150 i.e. λ=1.5).
	RuinRegretCoefficientPercent int64

	// TSPFix configures every TSPFix operator instance the driver tries.
	TSPFix tspfix.Options

	// StrictRecompute, when set, rebuilds every move-touched vehicle from
	// scratch after each applied ls-step and panics on any mismatch
	// against the incrementally maintained cache. Debug and test builds
	// only; left off by default since it doubles every step's cost.
	StrictRecompute bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns 50 rounds, a ruin phase every 10 rounds, λ=1.0
// refill and λ=1.5 ruin-recreate, default TSPFix options, and
// StrictRecompute off.
func DefaultOptions() Options {
	return Options{
		Depth:                          50,
		RuinEvery:                      10,
		RefillRegretCoefficientPercent: 100,
		RuinRegretCoefficientPercent:   150,
		TSPFix:                         tspfix.DefaultOptions(),
	}
}

// WithDepth overrides the outer round budget.
func WithDepth(d int) Option { return func(o *Options) { o.Depth = d } }

// WithDeadline overrides the wall-clock deadline.
func WithDeadline(t time.Time) Option { return func(o *Options) { o.Deadline = t } }

// WithRuinEvery overrides the ruin-phase period.
func WithRuinEvery(n int) Option { return func(o *Options) { o.RuinEvery = n } }

// WithRefillRegretCoefficientPercent overrides the post-step refill's
// regret weighting.
func WithRefillRegretCoefficientPercent(p int64) Option {
	return func(o *Options) { o.RefillRegretCoefficientPercent = p }
}

// WithRuinRegretCoefficientPercent overrides the ruin phase's recreate
// regret weighting.
func WithRuinRegretCoefficientPercent(p int64) Option {
	return func(o *Options) { o.RuinRegretCoefficientPercent = p }
}

// WithTSPFixOptions overrides the options passed to every TSPFix attempt.
func WithTSPFixOptions(t tspfix.Options) Option { return func(o *Options) { o.TSPFix = t } }

// WithStrictRecompute toggles the post-step cache/recompute consistency
// check.
func WithStrictRecompute(b bool) Option { return func(o *Options) { o.StrictRecompute = b } }

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
