package ops

import "github.com/vrpstack/optiroute/solutionstate"

// RouteSplit splits route vSrc at splitRank across two currently-empty
// vehicles vFirst (takes ranks [0,splitRank)) and vSecond (takes
// [splitRank,end)), vacating vSrc (spec §4.6 "RouteSplit"). Choosing the
// best (vFirst, vSecond, splitRank) triple among empty vehicles is the
// driver's enumeration, not this constructor's.
type RouteSplit struct{ baseMove }

func TryRouteSplit(st *solutionstate.State, vSrc, splitRank, vFirst, vSecond int) (*RouteSplit, bool) {
	if vSrc == vFirst || vSrc == vSecond || vFirst == vSecond {
		return nil, false
	}
	if st.Routes[vFirst].Raw().Len() != 0 || st.Routes[vSecond].Raw().Len() != 0 {
		return nil, false
	}
	base := st.Routes[vSrc].Raw().JobRanks()
	if splitRank <= 0 || splitRank >= len(base) {
		return nil, false
	}
	first := append([]int(nil), base[:splitRank]...)
	second := append([]int(nil), base[splitRank:]...)

	if !routeFeasible(st, vFirst, first) || !routeFeasible(st, vSecond, second) {
		return nil, false
	}

	gain := totalGain(st.Problem, []routeChange{
		{vSrc, st.RouteEval[vSrc], nil},
		{vFirst, st.RouteEval[vFirst], first},
		{vSecond, st.RouteEval[vSecond], second},
	})

	m := &RouteSplit{baseMove{gain: gain, valid: true, candidates: []int{vSrc, vFirst, vSecond}}}
	m.applyFn = func() {
		st.Routes[vSrc].SetSequence(nil)
		st.Routes[vFirst].SetSequence(first)
		st.Routes[vSecond].SetSequence(second)
		st.RebuildVehicle(vSrc)
		st.RebuildVehicle(vFirst)
		st.RebuildVehicle(vSecond)
	}
	return m, true
}
