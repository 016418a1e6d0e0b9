package search

import (
	"sort"

	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/ops"
	"github.com/vrpstack/optiroute/solutionstate"
)

// priorityAware is implemented by move types that carry a priority gain
// and an assigned-job-count delta beyond the ordinary cost Gain (spec
// §4.6 "PriorityReplace"). Moves that don't implement it (every other
// operator) are treated as priorityGain=0, assignedDelta=0 by
// movePriorityGain/moveAssignedDelta below, which is what lets the driver
// rank every operator through one comparator.
type priorityAware interface {
	PriorityGain() int64
	AssignedCountDelta() int
}

func movePriorityGain(m ops.Move) int64 {
	if pa, ok := m.(priorityAware); ok {
		return pa.PriorityGain()
	}
	return 0
}

func moveAssignedDelta(m ops.Move) int {
	if pa, ok := m.(priorityAware); ok {
		return pa.AssignedCountDelta()
	}
	return 0
}

// improves reports whether m is worth ever applying: either it frees up
// assignment capacity for higher-priority work, or it strictly reduces
// cost. A move that does neither (feasible but pointless) is never a
// candidate.
func improves(m ops.Move) bool {
	return movePriorityGain(m) > 0 || moveAssignedDelta(m) > 0 || m.Gain().Cost > 0
}

// gainBetter reports whether eval a represents more saved than b under the
// same lexicographic order model.Eval.Less uses for cost, just inverted
// (more saved wins, so higher is better here rather than lower).
func gainBetter(a, b model.Eval) bool {
	if a.Cost != b.Cost {
		return a.Cost > b.Cost
	}
	if a.Duration != b.Duration {
		return a.Duration > b.Duration
	}
	return a.Distance > b.Distance
}

// moveBetter reports whether a is the driver's preferred candidate over b:
// first by priority gain, then by assigned-count delta, then by cost gain
// (spec §4.8 ls-step step 2, "first by priority_gain tuple, then by cost
// gain"). Ordinary moves all compare equal on the first two keys (both
// zero) and fall through to cost gain exactly as if no priority tuple
// existed.
func moveBetter(a, b ops.Move) bool {
	pa, pb := movePriorityGain(a), movePriorityGain(b)
	if pa != pb {
		return pa > pb
	}
	da, db := moveAssignedDelta(a), moveAssignedDelta(b)
	if da != db {
		return da > db
	}
	return gainBetter(a.Gain(), b.Gain())
}

// solutionTuple is the outer-loop comparator (spec §4.8 step 2): a round's
// result is adopted over the best-so-far only on a strict improvement
// under this lexicographic order.
type solutionTuple struct {
	prioritySum           int64
	assignedCount         int
	unassignedPrioritySum int64
	cost                  int64
	vehiclesUsed          int
}

// computeTuple walks every job and every route once to derive st's
// current solutionTuple.
func computeTuple(st *solutionstate.State) solutionTuple {
	var t solutionTuple
	for j := range st.Problem.Jobs {
		if _, unassigned := st.Unassigned[j]; unassigned {
			t.unassignedPrioritySum += int64(st.Problem.Jobs[j].Priority)
			continue
		}
		t.prioritySum += int64(st.Problem.Jobs[j].Priority)
		t.assignedCount++
	}
	for v := range st.Routes {
		t.cost += st.RouteEval[v].Cost
		if st.Routes[v].Raw().Len() > 0 {
			t.vehiclesUsed++
		}
	}
	return t
}

// better reports whether t is strictly preferred over o: priority_sum
// descending, assigned_count descending, unassigned_priority_sum
// ascending, cost ascending, vehicles_used ascending (spec §4.8 step 2).
func (t solutionTuple) better(o solutionTuple) bool {
	if t.prioritySum != o.prioritySum {
		return t.prioritySum > o.prioritySum
	}
	if t.assignedCount != o.assignedCount {
		return t.assignedCount > o.assignedCount
	}
	if t.unassignedPrioritySum != o.unassignedPrioritySum {
		return t.unassignedPrioritySum < o.unassignedPrioritySum
	}
	if t.cost != o.cost {
		return t.cost < o.cost
	}
	return t.vehiclesUsed < o.vehiclesUsed
}

// sortedUnassigned returns st.Unassigned's job indices in ascending order,
// so scans over them (PriorityReplace, UnassignedExchange candidates) are
// deterministic regardless of map iteration order.
func sortedUnassigned(st *solutionstate.State) []int {
	out := make([]int, 0, len(st.Unassigned))
	for j := range st.Unassigned {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}
