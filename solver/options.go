package solver

import (
	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/search"
)

// Options bundles the construction and local-search configuration a
// single Solve call needs.
type Options struct {
	Construct construct.Options
	Search    search.Options
}

// DefaultOptions returns construct.DefaultOptions paired with
// search.DefaultOptions.
func DefaultOptions() Options {
	return Options{Construct: construct.DefaultOptions(), Search: search.DefaultOptions()}
}

// Option mutates an Options value.
type Option func(*Options)

// WithConstructOptions overrides the construction heuristic's options.
func WithConstructOptions(c construct.Options) Option { return func(o *Options) { o.Construct = c } }

// WithSearchOptions overrides the local-search driver's options.
func WithSearchOptions(s search.Options) Option { return func(o *Options) { o.Search = s } }

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
