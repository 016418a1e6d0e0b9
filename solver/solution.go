package solver

import "github.com/vrpstack/optiroute/model"

// VehicleSummary reports one vehicle's final route and timing (spec §6,
// SPEC_FULL.md §C).
type VehicleSummary struct {
	VehicleID string
	JobIDs    []string
	Eval      model.Eval

	// ServiceTime is the sum of every job's service plus setup duration
	// on this route.
	ServiceTime int64
	// WaitingTime is the sum, over every job on this route, of the gap
	// between arriving and the time window start actually used.
	WaitingTime int64
}

// Solution is Solve's result: every vehicle's route alongside the
// aggregate counters SPEC_FULL.md §C supplements onto the spec's plain
// cost/duration/distance totals.
type Solution struct {
	Vehicles         []VehicleSummary
	UnassignedJobIDs []string

	TotalEval    model.Eval
	VehiclesUsed int

	ServiceTimeSum        int64
	WaitingTimeSum        int64
	AssignedPrioritySum   int64
	UnassignedPrioritySum int64
}
