package ops

import (
	"sort"

	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

// SwapStar considers, for jobs a (route vA, rank rA) and b (route vB, rank
// rB), not just swapping them in place but inserting each at one of its
// three cheapest feasible positions in the other's route, and picks the
// best of the resulting configurations (spec §4.6 "SwapStar").
type SwapStar struct{ baseMove }

// topKInsertPositions scans every position in without for inserting job,
// keeping the k cheapest feasible ones (ties broken by scan order).
func topKInsertPositions(st *solutionstate.State, vehRank int, without []int, job int, k int) []int {
	type candidate struct {
		pos  int
		cost int64
	}
	var cands []candidate
	for pos := 0; pos <= len(without); pos++ {
		seq := withInserted(without, pos, []int{job})
		if !routeFeasible(st, vehRank, seq) {
			continue
		}
		cands = append(cands, candidate{pos, sequenceEval(st.Problem, vehRank, seq).Cost})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].cost < cands[j].cost })
	if len(cands) > k {
		cands = cands[:k]
	}
	out := make([]int, len(cands))
	for i, c := range cands {
		out[i] = c.pos
	}
	return out
}

func TrySwapStar(st *solutionstate.State, vA, rA, vB, rB int) (*SwapStar, bool) {
	if vA == vB {
		return nil, false
	}
	rawA, rawB := st.Routes[vA].Raw(), st.Routes[vB].Raw()
	a, b := rawA.JobAt(rA), rawB.JobAt(rB)
	if !st.Problem.Jobs[a].IsSingle() || !st.Problem.Jobs[b].IsSingle() {
		return nil, false
	}

	aWithout := withoutRank(rawA.JobRanks(), rA)
	bWithout := withoutRank(rawB.JobRanks(), rB)

	type config struct{ newA, newB []int }
	var configs []config

	if rA <= len(aWithout) && rB <= len(bWithout) {
		configs = append(configs, config{
			withInserted(aWithout, rA, []int{b}),
			withInserted(bWithout, rB, []int{a}),
		})
	}
	for _, pA := range topKInsertPositions(st, vA, aWithout, b, 3) {
		for _, pB := range topKInsertPositions(st, vB, bWithout, a, 3) {
			configs = append(configs, config{
				withInserted(aWithout, pA, []int{b}),
				withInserted(bWithout, pB, []int{a}),
			})
		}
	}

	haveBest := false
	var bestGain model.Eval
	var bestA, bestB []int
	for _, c := range configs {
		if !routeFeasible(st, vA, c.newA) || !routeFeasible(st, vB, c.newB) {
			continue
		}
		gain := totalGain(st.Problem, []routeChange{
			{vA, st.RouteEval[vA], c.newA},
			{vB, st.RouteEval[vB], c.newB},
		})
		if !haveBest || gainBetter(gain, bestGain) {
			haveBest, bestGain, bestA, bestB = true, gain, c.newA, c.newB
		}
	}
	if !haveBest {
		return nil, false
	}

	m := &SwapStar{baseMove{gain: bestGain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(bestA)
		st.Routes[vB].SetSequence(bestB)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}
