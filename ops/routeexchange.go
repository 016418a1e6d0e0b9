package ops

import "github.com/vrpstack/optiroute/solutionstate"

// RouteExchange swaps the entire route contents of vehicles vA and vB,
// requiring each vehicle to be compatible with the full set of jobs it
// would inherit (spec §4.6 "RouteExchange").
type RouteExchange struct{ baseMove }

func TryRouteExchange(st *solutionstate.State, vA, vB int) (*RouteExchange, bool) {
	if vA == vB {
		return nil, false
	}
	jobsA := st.Routes[vA].Raw().JobRanks()
	jobsB := st.Routes[vB].Raw().JobRanks()

	if !routeFeasible(st, vA, jobsB) || !routeFeasible(st, vB, jobsA) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{
		{vA, st.RouteEval[vA], jobsB},
		{vB, st.RouteEval[vB], jobsA},
	})

	m := &RouteExchange{baseMove{gain: gain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(jobsB)
		st.Routes[vB].SetSequence(jobsA)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}
