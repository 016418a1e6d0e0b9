package feasibility

import "github.com/vrpstack/optiroute/solutionstate"

// VehicleSlack returns how many additional jobs vehicle v's current route
// could still accept under its MaxTasks cap, for use as MaxAssignable's
// remainingSlots callback. A vehicle with no cap (MaxTasks == 0) reports the
// total job count, which this package's networks never need to exceed.
func VehicleSlack(st *solutionstate.State, v int) int64 {
	veh := st.Problem.Vehicles[v]
	if veh.MaxTasks == 0 {
		return int64(len(st.Problem.Jobs))
	}
	used := st.Routes[v].Raw().Len()
	slack := int64(veh.MaxTasks - used)
	if slack < 0 {
		return 0
	}
	return slack
}
