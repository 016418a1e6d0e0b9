// Package route implements the Raw route (spec §3, §4.2): the ordered job
// sequence owned by one vehicle, plus the cached per-rank load profile that
// the capacity feasibility checks read instead of re-summing every job's
// amounts: the single-job slack check is O(1), and the rank-aware insertion
// and splice checks scan the cached profile once.
//
// Load model: each job contributes a PickupAmount (cargo collected en route
// and carried to the route's end, e.g. a backhaul or the pickup half of a
// shipment) and a DeliveryAmount (cargo carried from the route's start and
// dropped off en route, e.g. a classic CVRP demand or the delivery half of
// a shipment). Two independent monotone prefix/suffix sums track these:
//
//   - fwdPickupLoad[r]: sum of PickupAmount over ranks [0, r] — non-decreasing.
//   - bwdDeliveryLoad[r]: sum of DeliveryAmount over ranks [r, end] — non-increasing.
//
// The vehicle's onboard load at rank r is their pointwise sum; invariant
// (b) of spec §3 requires that sum to stay within vehicle capacity at every
// rank. This two-profile model (rather than a single running total) is what
// spec §3 calls "per-rank cumulative forward pickup load and backward
// delivery load" and is the same structure VROOM-style solvers use to
// support simultaneous pickup-and-delivery without pre-loading deliveries
// at the depot.
//
// Mutation primitives (Insert/Remove/Replace) never leave a route silently
// infeasible: callers validate first via the Is*Valid* queries (spec §4.2
// "Failure mode"). RawRoute itself never rejects a mutation — validation is
// the caller's responsibility, exactly as spec.md mandates.
package route
