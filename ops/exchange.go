package ops

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

// CrossExchange swaps the edge [firstA,lastA] of route vA with the edge
// [firstB,lastB] of route vB, trying all 4 orientation combinations and
// keeping the best feasible one (spec §4.6 "CrossExchange").
type CrossExchange struct{ baseMove }

func TryCrossExchange(st *solutionstate.State, vA, firstA, lastA, vB, firstB, lastB int) (*CrossExchange, bool) {
	if vA == vB {
		return nil, false
	}
	rawA, rawB := st.Routes[vA].Raw(), st.Routes[vB].Raw()
	edgeA := append([]int(nil), rawA.JobRanks()[firstA:lastA+1]...)
	edgeB := append([]int(nil), rawB.JobRanks()[firstB:lastB+1]...)

	var bestGain model.Eval
	haveBest := false
	var bestA, bestB []int

	for _, rA := range []bool{false, true} {
		for _, rB := range []bool{false, true} {
			a, b := edgeA, edgeB
			if rA {
				a = reversedSlice(a)
			}
			if rB {
				b = reversedSlice(b)
			}
			newA := withReplaced(rawA.JobRanks(), firstA, lastA, b)
			newB := withReplaced(rawB.JobRanks(), firstB, lastB, a)
			if !routeFeasible(st, vA, newA) || !routeFeasible(st, vB, newB) {
				continue
			}
			gain := totalGain(st.Problem, []routeChange{
				{vA, st.RouteEval[vA], newA},
				{vB, st.RouteEval[vB], newB},
			})
			if !haveBest || gainBetter(gain, bestGain) {
				bestGain, bestA, bestB, haveBest = gain, newA, newB, true
			}
		}
	}
	if !haveBest {
		return nil, false
	}

	m := &CrossExchange{baseMove{gain: bestGain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(bestA)
		st.Routes[vB].SetSequence(bestB)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}

// MixedExchange swaps a single job of route vA at rank rA with the edge
// [firstB,lastB] of route vB (spec §4.6 "MixedExchange").
type MixedExchange struct{ baseMove }

func TryMixedExchange(st *solutionstate.State, vA, rA, vB, firstB, lastB int) (*MixedExchange, bool) {
	if vA == vB {
		return nil, false
	}
	rawA, rawB := st.Routes[vA].Raw(), st.Routes[vB].Raw()
	jobA := rawA.JobAt(rA)
	if !st.Problem.Jobs[jobA].IsSingle() {
		return nil, false
	}
	edgeB := append([]int(nil), rawB.JobRanks()[firstB:lastB+1]...)

	newA := withReplaced(rawA.JobRanks(), rA, rA, edgeB)
	newB := withReplaced(rawB.JobRanks(), firstB, lastB, []int{jobA})

	if !routeFeasible(st, vA, newA) || !routeFeasible(st, vB, newB) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{
		{vA, st.RouteEval[vA], newA},
		{vB, st.RouteEval[vB], newB},
	})

	m := &MixedExchange{baseMove{gain: gain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(newA)
		st.Routes[vB].SetSequence(newB)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}

// IntraExchange swaps two non-adjacent jobs at ranks rX and rY within the
// same route (spec §4.6 "IntraExchange").
type IntraExchange struct{ baseMove }

func TryIntraExchange(st *solutionstate.State, v, rX, rY int) (*IntraExchange, bool) {
	if rX == rY {
		return nil, false
	}
	if rX > rY {
		rX, rY = rY, rX
	}
	if rY == rX+1 {
		return nil, false // adjacent: not this operator's case
	}
	raw := st.Routes[v].Raw()
	jobs := raw.JobRanks()
	jobs[rX], jobs[rY] = jobs[rY], jobs[rX]

	if !routeFeasible(st, v, jobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], jobs}})

	m := &IntraExchange{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(jobs)
		st.RebuildVehicle(v)
	}
	return m, true
}

// IntraMixedExchange swaps a single job at rank rX with a non-adjacent edge
// [firstY,lastY] within the same route.
type IntraMixedExchange struct{ baseMove }

func TryIntraMixedExchange(st *solutionstate.State, v, rX, firstY, lastY int) (*IntraMixedExchange, bool) {
	if rX >= firstY-1 && rX <= lastY+1 {
		return nil, false // overlapping or adjacent: not this operator's case
	}
	raw := st.Routes[v].Raw()
	jobs := raw.JobRanks()
	jobX := jobs[rX]
	edgeY := append([]int(nil), jobs[firstY:lastY+1]...)

	var newJobs []int
	if rX < firstY {
		newJobs = withReplaced(jobs, rX, rX, edgeY)
		shift := len(edgeY) - 1
		newJobs = withReplaced(newJobs, firstY+shift, lastY+shift, []int{jobX})
	} else {
		newJobs = withReplaced(jobs, firstY, lastY, []int{jobX})
		shift := 1 - len(edgeY)
		newJobs = withReplaced(newJobs, rX+shift, rX+shift, edgeY)
	}

	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &IntraMixedExchange{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}

// IntraCrossExchange swaps two non-adjacent, non-overlapping edges within
// the same route, trying all 4 orientations.
type IntraCrossExchange struct{ baseMove }

func TryIntraCrossExchange(st *solutionstate.State, v, firstX, lastX, firstY, lastY int) (*IntraCrossExchange, bool) {
	if firstX > firstY {
		firstX, lastX, firstY, lastY = firstY, lastY, firstX, lastX
	}
	if lastX+1 >= firstY {
		return nil, false // overlapping or adjacent
	}
	raw := st.Routes[v].Raw()
	base := raw.JobRanks()
	edgeX := append([]int(nil), base[firstX:lastX+1]...)
	edgeY := append([]int(nil), base[firstY:lastY+1]...)

	haveBest := false
	var bestGain model.Eval
	var bestJobs []int

	for _, rX := range []bool{false, true} {
		for _, rY := range []bool{false, true} {
			x, y := edgeX, edgeY
			if rX {
				x = reversedSlice(x)
			}
			if rY {
				y = reversedSlice(y)
			}
			// Y lies after X, so splicing into Y's range first leaves X's
			// ranks valid for the second splice.
			newJobs := withReplaced(base, firstY, lastY, x)
			newJobs = withReplaced(newJobs, firstX, lastX, y)
			if !routeFeasible(st, v, newJobs) {
				continue
			}
			gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})
			if !haveBest || gainBetter(gain, bestGain) {
				bestGain, bestJobs, haveBest = gain, newJobs, true
			}
		}
	}
	if !haveBest {
		return nil, false
	}

	m := &IntraCrossExchange{baseMove{gain: bestGain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(bestJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
