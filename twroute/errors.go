package twroute

import "errors"

// ErrInconsistentBreaks is the fatal failure kind (spec §4.3, §7): the
// vehicle's own break configuration cannot be satisfied by any arrangement,
// independent of which jobs are on the route. Construction-time validation
// (model.NewProblem) rejects the input-level version of this with
// model.ErrInconsistentBreaks. No function in this package returns this
// sentinel: a route whose breaks cannot be placed is reported through
// Feasible() instead.
var ErrInconsistentBreaks = errors.New("twroute: inconsistent breaks")
