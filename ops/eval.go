package ops

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

// sequenceEval evaluates an arbitrary job-index sequence as if it were
// vehicle vehRank's entire route content, without mutating anything.
func sequenceEval(problem *model.Problem, vehRank int, jobs []int) model.Eval {
	veh := problem.Vehicles[vehRank]
	total := model.ZeroEval
	n := len(jobs)
	if n == 0 {
		return total
	}
	loc := func(i int) int { return problem.Jobs[jobs[i]].LocationIndex }
	if veh.HasStart() {
		total = total.Add(problem.Eval(vehRank, veh.StartLocationIndex, loc(0)))
	}
	for i := 0; i+1 < n; i++ {
		total = total.Add(problem.Eval(vehRank, loc(i), loc(i+1)))
	}
	if veh.HasEnd() {
		total = total.Add(problem.Eval(vehRank, loc(n-1), veh.EndLocationIndex))
	}
	total = total.Add(model.Eval{Cost: veh.FixedCost})
	return total
}

// routeChange names one route's before/after state for a gain computation.
type routeChange struct {
	vehRank int
	oldEval model.Eval
	newJobs []int
}

// totalGain sums, over every touched route, the eval saved by moving from
// its cached RouteEval to the eval of its hypothetical new sequence.
func totalGain(problem *model.Problem, changes []routeChange) model.Eval {
	gain := model.ZeroEval
	for _, c := range changes {
		gain = gain.Add(c.oldEval.Sub(sequenceEval(problem, c.vehRank, c.newJobs)))
	}
	return gain
}

// skillsOK reports whether every job in jobs is skill-compatible with
// vehRank.
func skillsOK(problem *model.Problem, vehRank int, jobs []int) bool {
	for _, j := range jobs {
		if !problem.Compat.VehicleOkWithJob[vehRank][j] {
			return false
		}
	}
	return true
}

// pairingIntact reports whether every pickup in jobs has its matching
// delivery also present and ranked after it, and vice versa — the
// universal "no pickup crosses into a different route from its delivery,
// and pickup precedes delivery" invariant (spec §4.6).
func pairingIntact(problem *model.Problem, jobs []int) bool {
	pos := make(map[int]int, len(jobs))
	for i, j := range jobs {
		pos[j] = i
	}
	for _, j := range jobs {
		job := problem.Jobs[j]
		if job.IsPickup() {
			dPos, ok := pos[job.Index+1]
			if !ok || dPos < pos[j] {
				return false
			}
		}
		if job.IsDelivery() {
			pPos, ok := pos[job.Index-1]
			if !ok || pPos > pos[j] {
				return false
			}
		}
	}
	return true
}

// vehicleCapsOK reports whether jobs, run as vehRank's whole route, stays
// within its max-travel-time and max-distance caps (0 means unbounded).
func vehicleCapsOK(problem *model.Problem, vehRank int, jobs []int) bool {
	veh := problem.Vehicles[vehRank]
	if veh.MaxTravelTime == 0 && veh.MaxDistance == 0 {
		return true
	}
	e := sequenceEval(problem, vehRank, jobs)
	if veh.MaxTravelTime != 0 && e.Duration > veh.MaxTravelTime {
		return false
	}
	if veh.MaxDistance != 0 && e.Distance > veh.MaxDistance {
		return false
	}
	return true
}

// routeFeasible is the single gate every operator uses to validate a
// candidate whole-route sequence against every hard constraint in spec
// §4.6's "Validity obligations common to every operator" list: skills,
// pickup/delivery pairing, capacity, time windows, task count, and
// travel-time/distance caps. Checking the whole sequence wholesale (rather
// than a positional delta) means every operator shares one exact check
// instead of twenty bespoke ones.
func routeFeasible(st *solutionstate.State, vehRank int, jobs []int) bool {
	problem := st.Problem
	veh := problem.Vehicles[vehRank]
	if veh.MaxTasks != 0 && len(jobs) > veh.MaxTasks {
		return false
	}
	if !skillsOK(problem, vehRank, jobs) {
		return false
	}
	if !pairingIntact(problem, jobs) {
		return false
	}
	raw := st.Routes[vehRank].Raw()
	if !raw.IsValidAdditionForCapacityInclusion(jobs, 0, raw.Len()-1) {
		return false
	}
	if !st.Routes[vehRank].IsValidAdditionForTWReplace(jobs, 0, raw.Len()-1) {
		return false
	}
	if !vehicleCapsOK(problem, vehRank, jobs) {
		return false
	}
	return true
}

// --- sequence-building helpers shared by every operator ---

func withoutRank(jobs []int, rank int) []int {
	out := make([]int, 0, len(jobs)-1)
	out = append(out, jobs[:rank]...)
	out = append(out, jobs[rank+1:]...)
	return out
}

func withoutRange(jobs []int, first, last int) []int {
	out := make([]int, 0, len(jobs)-(last-first+1))
	out = append(out, jobs[:first]...)
	out = append(out, jobs[last+1:]...)
	return out
}

func withInserted(jobs []int, pos int, ins []int) []int {
	out := make([]int, 0, len(jobs)+len(ins))
	out = append(out, jobs[:pos]...)
	out = append(out, ins...)
	out = append(out, jobs[pos:]...)
	return out
}

func withReplaced(jobs []int, first, last int, ins []int) []int {
	out := make([]int, 0, len(jobs)-(last-first+1)+len(ins))
	out = append(out, jobs[:first]...)
	out = append(out, ins...)
	out = append(out, jobs[last+1:]...)
	return out
}

// gainBetter reports whether gain a is strictly preferable to gain b: more
// cost saved first, then duration, then distance, as the tie-break ladder.
func gainBetter(a, b model.Eval) bool {
	if a.Cost != b.Cost {
		return a.Cost > b.Cost
	}
	if a.Duration != b.Duration {
		return a.Duration > b.Duration
	}
	return a.Distance > b.Distance
}

func reversedSlice(jobs []int) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[len(jobs)-1-i] = j
	}
	return out
}
