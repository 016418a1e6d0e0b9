// Package model defines the immutable problem data consumed by the solver:
// locations, jobs, vehicles, the travel-matrix contract, and the small value
// types (Eval, Amount) used as the incremental currency of every downstream
// package.
//
// Everything in this package is built once, at load time, and never mutated
// again: Problem, Job, Vehicle, and Location are read-only after
// construction. Mutable solver state (routes, caches) lives in the route,
// twroute, and solutionstate packages, all of which hold a *Problem by
// reference and never copy it.
//
// Construction deduplicates locations, assigns dense indices to jobs, pairs
// each pickup with its adjacent delivery (the sole pairing mechanism — see
// Job), and precomputes the three compatibility matrices described in
// compat.go. See SPEC_FULL.md §A/§B for why this package carries no
// generic graph abstraction: the data model here is a set of dense arrays
// fixed at construction time, not a dynamic graph.
package model
