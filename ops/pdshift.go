package ops

import "github.com/vrpstack/optiroute/solutionstate"

// PDShift moves a pickup-delivery pair currently at ranks [pRank,dRank] of
// route vFrom to the best feasible (pickup position, delivery position)
// pair in route vTo (spec §4.6 "PDShift"). pRank/dRank need not be
// adjacent; the pair's internal order (pickup, then delivery) is always
// preserved, and every candidate placement in vTo is scanned to keep the
// cheapest feasible one.
type PDShift struct{ baseMove }

func TryPDShift(st *solutionstate.State, vFrom, pRank, dRank, vTo int) (*PDShift, bool) {
	if vFrom == vTo {
		return nil, false
	}
	rawFrom := st.Routes[vFrom].Raw()
	pickup, delivery := rawFrom.JobAt(pRank), rawFrom.JobAt(dRank)

	lo, hi := pRank, dRank
	if lo > hi {
		lo, hi = hi, lo
	}
	base := rawFrom.JobRanks()
	fromJobs := append([]int(nil), base[:lo]...)
	fromJobs = append(fromJobs, base[lo+1:hi]...)
	fromJobs = append(fromJobs, base[hi+1:]...)

	if !routeFeasible(st, vFrom, fromJobs) {
		return nil, false
	}
	fromGain := st.RouteEval[vFrom].Sub(sequenceEval(st.Problem, vFrom, fromJobs))

	toBase := st.Routes[vTo].Raw().JobRanks()
	haveBest := false
	bestTotal := fromGain
	var bestToJobs []int

	for pPos := 0; pPos <= len(toBase); pPos++ {
		for dPos := pPos; dPos <= len(toBase); dPos++ {
			withP := withInserted(toBase, pPos, []int{pickup})
			toJobs := withInserted(withP, dPos+1, []int{delivery})
			if !routeFeasible(st, vTo, toJobs) {
				continue
			}
			toGain := st.RouteEval[vTo].Sub(sequenceEval(st.Problem, vTo, toJobs))
			total := fromGain.Add(toGain)
			if !haveBest || gainBetter(total, bestTotal) {
				haveBest = true
				bestTotal, bestToJobs = total, toJobs
			}
		}
	}
	if !haveBest {
		return nil, false
	}

	m := &PDShift{baseMove{gain: bestTotal, valid: true, candidates: []int{vFrom, vTo}}}
	m.applyFn = func() {
		st.Routes[vFrom].SetSequence(fromJobs)
		st.Routes[vTo].SetSequence(bestToJobs)
		st.RebuildVehicle(vFrom)
		st.RebuildVehicle(vTo)
	}
	return m, true
}
