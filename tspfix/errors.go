package tspfix

import "errors"

// Sentinel errors returned by Solve and its pipeline stages.
var (
	// ErrTooFewJobs is returned when fewer than one job is given; there is
	// nothing to order.
	ErrTooFewJobs = errors.New("tspfix: at least one job is required")
	// ErrDisconnected mirrors the teacher's MST sentinel: the induced
	// sub-graph over the given jobs failed to produce a spanning tree,
	// which cannot happen over a dense complete matrix but is kept as a
	// defensive invariant check.
	ErrDisconnected = errors.New("tspfix: job sub-graph is disconnected")
	// ErrTimeLimit is returned when the deadline expires mid-improvement;
	// Solve still returns the best tour found so far alongside this error
	// so the caller may choose to use it anyway.
	ErrTimeLimit = errors.New("tspfix: deadline expired during improvement")
)
