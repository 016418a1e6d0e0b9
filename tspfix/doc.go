// Package tspfix re-solves a single vehicle's job sequence as a small
// travelling-salesman instance and hands back an improved ordering (spec
// §4.7, the TSPFix move in ops).
//
// The pipeline is Christofides: a minimum spanning tree (Kruskal with
// union-find, mst.go), a minimum-weight matching on the tree's odd-degree
// vertices (Hungarian assignment with a greedy fallback for the residual
// pairs it leaves inconsistent, matching.go), an Eulerian circuit over the
// union of the two (Hierholzer, eulerian.go), and a shortcut to a
// Hamiltonian cycle (tour.go). Unlike the classical formulation, a vehicle
// route is not a closed tour: it starts and ends at fixed, separate
// locations (the vehicle's start/end, which are never part of the
// reordered job set). attach.go opens the Christofides cycle at whichever
// edge is cheapest to replace with the two fixed attachments. improve.go
// then runs 2-opt, or-opt (segments of length 1/2/3), and relocate passes
// against the exact (possibly asymmetric) routing cost until no pass
// finds a positive gain or the deadline expires.
//
// Construction works off a symmetrized cost matrix (the lower of the two
// directions between each pair) since Kruskal and the matching step both
// assume an undirected metric; the improvement phase always prices moves
// with the real, possibly asymmetric, per-vehicle cost so the final
// ordering is scored exactly regardless of what the construction phase
// assumed.
package tspfix
