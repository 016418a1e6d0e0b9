package ops

import "github.com/vrpstack/optiroute/solutionstate"

// OrOpt moves the adjacent pair of jobs at ranks [rFrom, rFrom+1] in route
// vFrom to position pTo of a different route vTo, optionally reversed
// (spec §4.6 "OrOpt").
type OrOpt struct{ baseMove }

func TryOrOpt(st *solutionstate.State, vFrom, rFrom, vTo, pTo int, reverse bool) (*OrOpt, bool) {
	if vFrom == vTo {
		return nil, false
	}
	rawFrom := st.Routes[vFrom].Raw()
	if rFrom+1 >= rawFrom.Len() {
		return nil, false
	}
	edge := []int{rawFrom.JobAt(rFrom), rawFrom.JobAt(rFrom + 1)}
	// a shipment's two halves may not be split across routes; either both
	// ranks belong to the same unrelated edge or, if related, they must
	// already be a (pickup, its own delivery) adjacent pair, which is
	// exactly what OrOpt is moving as a unit — safe either way as long as
	// neither endpoint is paired with something OUTSIDE this edge.
	if !edgeSelfContained(st, edge) {
		return nil, false
	}
	if reverse {
		edge = reversedSlice(edge)
	}

	fromJobs := withoutRange(rawFrom.JobRanks(), rFrom, rFrom+1)
	toJobs := withInserted(st.Routes[vTo].Raw().JobRanks(), pTo, edge)

	if !routeFeasible(st, vFrom, fromJobs) || !routeFeasible(st, vTo, toJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{
		{vFrom, st.RouteEval[vFrom], fromJobs},
		{vTo, st.RouteEval[vTo], toJobs},
	})

	m := &OrOpt{baseMove{gain: gain, valid: true, candidates: []int{vFrom, vTo}}}
	m.applyFn = func() {
		st.Routes[vFrom].SetSequence(fromJobs)
		st.Routes[vTo].SetSequence(toJobs)
		st.RebuildVehicle(vFrom)
		st.RebuildVehicle(vTo)
	}
	return m, true
}

// edgeSelfContained reports whether moving exactly this pair of jobs
// together never orphans a pickup or delivery whose partner isn't also in
// the pair.
func edgeSelfContained(st *solutionstate.State, edge []int) bool {
	return pairingIntact(st.Problem, edge) || (len(edge) == 2 && !st.Problem.Jobs[edge[0]].IsPickup() && !st.Problem.Jobs[edge[0]].IsDelivery() && !st.Problem.Jobs[edge[1]].IsPickup() && !st.Problem.Jobs[edge[1]].IsDelivery())
}

// IntraOrOpt moves the adjacent pair at [rFrom, rFrom+1] to position pTo
// within the same route, optionally reversed.
type IntraOrOpt struct{ baseMove }

func TryIntraOrOpt(st *solutionstate.State, v, rFrom, pTo int, reverse bool) (*IntraOrOpt, bool) {
	raw := st.Routes[v].Raw()
	if rFrom+1 >= raw.Len() {
		return nil, false
	}
	edge := []int{raw.JobAt(rFrom), raw.JobAt(rFrom + 1)}
	if reverse {
		edge = reversedSlice(edge)
	}
	rest := withoutRange(raw.JobRanks(), rFrom, rFrom+1)
	if pTo < 0 || pTo > len(rest) {
		return nil, false
	}
	newJobs := withInserted(rest, pTo, edge)

	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &IntraOrOpt{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
