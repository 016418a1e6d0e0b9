package ops

import "github.com/vrpstack/optiroute/solutionstate"

// Relocate moves a single non-shipment job from route vFrom at rank rFrom
// to position pTo of a different route vTo (spec §4.6 "Relocate").
type Relocate struct{ baseMove }

func TryRelocate(st *solutionstate.State, vFrom, rFrom, vTo, pTo int) (*Relocate, bool) {
	if vFrom == vTo {
		return nil, false
	}
	rawFrom := st.Routes[vFrom].Raw()
	job := rawFrom.JobAt(rFrom)
	if !st.Problem.Jobs[job].IsSingle() {
		return nil, false
	}

	fromJobs := withoutRank(rawFrom.JobRanks(), rFrom)
	toJobs := withInserted(st.Routes[vTo].Raw().JobRanks(), pTo, []int{job})

	if !routeFeasible(st, vFrom, fromJobs) || !routeFeasible(st, vTo, toJobs) {
		return nil, false
	}

	gain := totalGain(st.Problem, []routeChange{
		{vFrom, st.RouteEval[vFrom], fromJobs},
		{vTo, st.RouteEval[vTo], toJobs},
	})

	m := &Relocate{baseMove{gain: gain, valid: true, candidates: []int{vFrom, vTo}}}
	m.applyFn = func() {
		st.Routes[vFrom].SetSequence(fromJobs)
		st.Routes[vTo].SetSequence(toJobs)
		st.RebuildVehicle(vFrom)
		st.RebuildVehicle(vTo)
	}
	return m, true
}

// IntraRelocate moves a single job from rank rFrom to position pTo within
// the same route (pTo expressed in the post-removal index space).
type IntraRelocate struct{ baseMove }

func TryIntraRelocate(st *solutionstate.State, v, rFrom, pTo int) (*IntraRelocate, bool) {
	raw := st.Routes[v].Raw()
	job := raw.JobAt(rFrom)
	if !st.Problem.Jobs[job].IsSingle() {
		return nil, false
	}
	rest := withoutRank(raw.JobRanks(), rFrom)
	if pTo == rFrom || pTo < 0 || pTo > len(rest) {
		return nil, false
	}
	newJobs := withInserted(rest, pTo, []int{job})

	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &IntraRelocate{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
