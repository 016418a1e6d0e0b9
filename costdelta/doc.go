// Package costdelta implements the incremental evaluation primitives every
// move operator uses instead of re-walking a whole route (spec §4.4):
// AdditionCostDelta, RemovalCostDelta, and InPlaceDeltaCost. All three work
// directly against a route.RawRoute and route1's own vehicle cost profile;
// they never mutate the route they evaluate.
package costdelta
