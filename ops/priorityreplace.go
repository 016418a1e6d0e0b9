package ops

import "github.com/vrpstack/optiroute/solutionstate"

// PriorityReplace replaces a contiguous prefix (fromEnd=false) or suffix
// (fromEnd=true) of length cutLen in route v with a single higher-priority
// unassigned job (spec §4.6 "PriorityReplace"). Besides the usual Gain
// (cost saved), it exposes PriorityGain and AssignedCountDelta so a driver
// can rank candidates by the mandated lexicographic tuple (priority_gain,
// assigned_count, cost_gain).
type PriorityReplace struct {
	baseMove
	priorityGain  int64
	assignedDelta int
}

func (m *PriorityReplace) PriorityGain() int64   { return m.priorityGain }
func (m *PriorityReplace) AssignedCountDelta() int { return m.assignedDelta }

func TryPriorityReplace(st *solutionstate.State, v int, fromEnd bool, cutLen int, unassignedJob int) (*PriorityReplace, bool) {
	if _, ok := st.Unassigned[unassignedJob]; !ok {
		return nil, false
	}
	job := st.Problem.Jobs[unassignedJob]
	if !job.IsSingle() {
		return nil, false
	}
	raw := st.Routes[v].Raw()
	n := raw.Len()
	if cutLen < 0 || cutLen > n {
		return nil, false
	}

	var first, last int
	if fromEnd {
		first, last = n-cutLen, n-1
	} else {
		first, last = 0, cutLen-1
	}
	base := raw.JobRanks()

	var removedPriority int64
	for i := first; i <= last; i++ {
		removedPriority += int64(st.Problem.Jobs[base[i]].Priority)
	}
	priorityGain := int64(job.Priority) - removedPriority
	if priorityGain <= 0 {
		return nil, false
	}

	newJobs := withReplaced(base, first, last, []int{unassignedJob})
	if !routeFeasible(st, v, newJobs) {
		return nil, false
	}
	costGain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], newJobs}})

	m := &PriorityReplace{
		baseMove:      baseMove{gain: costGain, valid: true, candidates: []int{v}},
		priorityGain:  priorityGain,
		assignedDelta: 1 - cutLen,
	}
	m.applyFn = func() {
		st.Routes[v].SetSequence(newJobs)
		st.RebuildVehicle(v)
	}
	return m, true
}
