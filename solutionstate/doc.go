// Package solutionstate maintains the per-solution cache described by spec
// §3 "Solution state": the precomputed tables every move operator reads as
// read-only input so it never has to re-walk a whole route to estimate a
// candidate move's cost. The cache is entirely recomputable from the route
// sequences themselves; State never invents information the routes
// themselves don't already encode, it only memoizes it.
//
// Every table here is rebuilt from scratch for the affected vehicle ranks
// after a mutation (RebuildVehicle), in the same correctness-first spirit
// as twroute.Rebuild: the spec's finer-grained incremental maintenance is
// left as a documented future optimization, not a correctness gap.
package solutionstate
