// Package solver is the top-level external entry point (spec §6): Solve
// runs the construction heuristic (package construct), then the
// local-search improvement driver (package search), over a model.Problem,
// and reduces the resulting solutionstate.State into a Solution carrying
// every route's job sequence and the aggregate counters SPEC_FULL.md §C
// calls for (service time, waiting time, priority sums, vehicles used).
package solver
