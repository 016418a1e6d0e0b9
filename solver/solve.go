package solver

import (
	"context"

	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/search"
	"github.com/vrpstack/optiroute/solutionstate"
)

// Solve runs the construction heuristic followed by the local-search
// driver over problem, then reduces the resulting state into a Solution
// (spec §6 "External interfaces"). ctx composes with opts.Search.Deadline:
// either one ending the local-search loop early leaves st holding the best
// solution found so far. A nil ctx is treated as context.Background.
func Solve(ctx context.Context, problem *model.Problem, opts Options) *Solution {
	st := construct.Construct(problem, opts.Construct)
	search.NewDriver(opts.Search).Run(ctx, st)
	return summarize(st)
}

func summarize(st *solutionstate.State) *Solution {
	sol := &Solution{Vehicles: make([]VehicleSummary, 0, len(st.Problem.Vehicles))}

	for v, veh := range st.Problem.Vehicles {
		raw := st.Routes[v].Raw()
		n := raw.Len()
		jobIDs := make([]string, n)
		for r := 0; r < n; r++ {
			jobIDs[r] = st.Problem.Jobs[raw.JobAt(r)].ID
		}
		service, waiting := routeTiming(st, v)

		sol.Vehicles = append(sol.Vehicles, VehicleSummary{
			VehicleID:   veh.ID,
			JobIDs:      jobIDs,
			Eval:        st.RouteEval[v],
			ServiceTime: service,
			WaitingTime: waiting,
		})

		sol.TotalEval = sol.TotalEval.Add(st.RouteEval[v])
		if n > 0 {
			sol.VehiclesUsed++
		}
		sol.ServiceTimeSum += service
		sol.WaitingTimeSum += waiting
	}

	for j, job := range st.Problem.Jobs {
		if _, unassigned := st.Unassigned[j]; unassigned {
			sol.UnassignedJobIDs = append(sol.UnassignedJobIDs, job.ID)
			sol.UnassignedPrioritySum += int64(job.Priority)
		} else {
			sol.AssignedPrioritySum += int64(job.Priority)
		}
	}

	return sol
}

// routeTiming re-walks route v's schedule to recover its total service
// time (every job's service plus setup duration) and total waiting time
// (the gap between arriving somewhere and the time window start actually
// used there). twroute.TWRoute keeps the chosen start times (Earliest)
// but not the pre-window arrival times that produced them, so this
// recomputes arrivals from the same per-leg duration State.LegEval
// already derives rather than adding an accessor to twroute purely for
// this one summary figure.
func routeTiming(st *solutionstate.State, v int) (service, waiting int64) {
	raw := st.Routes[v].Raw()
	tw := st.Routes[v]
	n := raw.Len()
	veh := st.Problem.Vehicles[v]

	arrival := veh.Shift.Start + st.LegEval(v, -1, 0).Duration
	for r := 0; r < n; r++ {
		if r > 0 {
			prev := st.Problem.Jobs[raw.JobAt(r-1)]
			finish := tw.Earliest(r-1) + prev.ServiceDurationFor(v) + prev.SetupDuration
			arrival = finish + st.LegEval(v, r-1, r).Duration
		}
		waiting += tw.Earliest(r) - arrival

		job := st.Problem.Jobs[raw.JobAt(r)]
		service += job.ServiceDurationFor(v) + job.SetupDuration
	}
	return service, waiting
}
