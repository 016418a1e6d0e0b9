// Package search implements the local-search improvement driver (spec
// §4.8): given a solutionstate.State already filled in by construct, it
// repeatedly looks for the single best-gain move across every operator in
// package ops and every pair of vehicles, applies it, and repeats until
// nothing improves, a round budget is exhausted, or a deadline passes.
//
// Every ls-step considers each ordered pair (s,t) of vehicles — s==t for
// an intra-route operator, s!=t for an inter-route one, skipping pairs
// the problem's vehicle-vehicle compatibility matrix rules out — keeps
// the single best candidate for that pair, and then picks the best
// candidate across the whole grid plus a separate RouteSplit scan (which
// needs three vehicles at once and so does not fit the pair grid).
// Candidates are ranked first by priority gain and assigned-job-count
// delta (so a PriorityReplace that frees a slot for a more important job
// always outranks an equal-or-smaller plain cost saving), then by cost
// gain — both ordinary moves default to a priority gain of zero via the
// optional priorityAware interface, so the same comparator ranks every
// operator uniformly.
//
// Driver.Run wraps this single step in the outer loop spec'd in §4.8:
// snapshot-and-restore around every round, a regret-based refill of any
// jobs an ls-step left unassigned, and, every few rounds, a
// ruin-and-recreate escape (package search's Ruin) meant to break out of
// local optima the step-by-step moves alone cannot reach.
package search
