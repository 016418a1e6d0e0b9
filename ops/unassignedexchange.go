package ops

import "github.com/vrpstack/optiroute/solutionstate"

// UnassignedExchange replaces the job at rank rOut of route v with a
// currently-unassigned job unassignedJob, inserted at position pIn (rOut's
// old slot vanishes; pIn is expressed in the post-removal index space, and
// may differ from rOut — spec §4.6 "UnassignedExchange"). rOut's job
// becomes unassigned; State.RebuildVehicle's RecomputeUnassigned pass is
// what reflects that, so Apply never touches State.Unassigned directly.
type UnassignedExchange struct{ baseMove }

func TryUnassignedExchange(st *solutionstate.State, v, rOut, unassignedJob, pIn int) (*UnassignedExchange, bool) {
	if _, ok := st.Unassigned[unassignedJob]; !ok {
		return nil, false
	}
	if !st.Problem.Jobs[unassignedJob].IsSingle() || !st.Problem.Jobs[st.Routes[v].Raw().JobAt(rOut)].IsSingle() {
		return nil, false
	}
	raw := st.Routes[v].Raw()
	rest := withoutRank(raw.JobRanks(), rOut)
	if pIn < 0 || pIn > len(rest) {
		return nil, false
	}
	newJobs := withInserted(rest, pIn, []int{unassignedJob})

	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &UnassignedExchange{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
