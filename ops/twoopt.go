package ops

import "github.com/vrpstack/optiroute/solutionstate"

// TwoOpt swaps the tails of routes vA (after rank cutA, inclusive) and vB
// (after rank cutB, inclusive): A keeps [0,cutA) then takes B's tail, and
// vice versa (spec §4.6 "TwoOpt").
type TwoOpt struct{ baseMove }

func TryTwoOpt(st *solutionstate.State, vA, cutA, vB, cutB int) (*TwoOpt, bool) {
	if vA == vB {
		return nil, false
	}
	jobsA := st.Routes[vA].Raw().JobRanks()
	jobsB := st.Routes[vB].Raw().JobRanks()

	newA := append(append([]int(nil), jobsA[:cutA]...), jobsB[cutB:]...)
	newB := append(append([]int(nil), jobsB[:cutB]...), jobsA[cutA:]...)

	if !routeFeasible(st, vA, newA) || !routeFeasible(st, vB, newB) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{
		{vA, st.RouteEval[vA], newA},
		{vB, st.RouteEval[vB], newB},
	})

	m := &TwoOpt{baseMove{gain: gain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(newA)
		st.Routes[vB].SetSequence(newB)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}

// ReverseTwoOpt swaps the reversed head of vB (ranks [0,cutB)) for the tail
// of vA (ranks [cutA, end)): A keeps its head and gains B's head reversed
// prepended to... more precisely, A becomes [0,cutA) ++ reverse(B[0,cutB)),
// and B becomes reverse(A[cutA:]) ++ B[cutB:] (spec §4.6 "ReverseTwoOpt").
// Skill compatibility of the prefix being carried over is checked as part
// of routeFeasible's skillsOK pass over the whole new sequence.
type ReverseTwoOpt struct{ baseMove }

func TryReverseTwoOpt(st *solutionstate.State, vA, cutA, vB, cutB int) (*ReverseTwoOpt, bool) {
	if vA == vB {
		return nil, false
	}
	jobsA := st.Routes[vA].Raw().JobRanks()
	jobsB := st.Routes[vB].Raw().JobRanks()

	headB := reversedSlice(append([]int(nil), jobsB[:cutB]...))
	tailA := reversedSlice(append([]int(nil), jobsA[cutA:]...))

	newA := append(append([]int(nil), jobsA[:cutA]...), headB...)
	newB := append(append([]int(nil), tailA...), jobsB[cutB:]...)

	if !routeFeasible(st, vA, newA) || !routeFeasible(st, vB, newB) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{
		{vA, st.RouteEval[vA], newA},
		{vB, st.RouteEval[vB], newB},
	})

	m := &ReverseTwoOpt{baseMove{gain: gain, valid: true, candidates: []int{vA, vB}}}
	m.applyFn = func() {
		st.Routes[vA].SetSequence(newA)
		st.Routes[vB].SetSequence(newB)
		st.RebuildVehicle(vA)
		st.RebuildVehicle(vB)
	}
	return m, true
}

// IntraTwoOpt reverses the contiguous segment [first,last] within a single
// route. routeFeasible's pairingIntact check over the whole resulting
// sequence is exactly what rejects a reversal that would swap a pickup
// after its own delivery (spec §4.6 "IntraTwoOpt", §8 boundary case 4).
type IntraTwoOpt struct{ baseMove }

func TryIntraTwoOpt(st *solutionstate.State, v, first, last int) (*IntraTwoOpt, bool) {
	if first >= last {
		return nil, false
	}
	raw := st.Routes[v].Raw()
	jobs := raw.JobRanks()
	segment := reversedSlice(append([]int(nil), jobs[first:last+1]...))
	newJobs := withReplaced(jobs, first, last, segment)

	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &IntraTwoOpt{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
