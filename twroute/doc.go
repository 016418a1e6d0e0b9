// Package twroute wraps route.RawRoute with time-window schedule
// maintenance (spec §4.3): a forward pass computing the earliest feasible
// service start at each rank, a backward pass computing the latest, and
// greedy placement of the vehicle's mandatory breaks along the sequence.
//
// Breaks are decided once, by the forward pass, in the vehicle's declared
// order; the backward pass reuses that placement rather than re-deciding it,
// which keeps the two passes from disagreeing about where a break sits. A
// route whose breaks cannot all be placed, or whose jobs cannot all be
// scheduled within their windows and the vehicle's shift, is simply
// infeasible — reported by Feasible(), never panicked.
package twroute
