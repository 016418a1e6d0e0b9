package construct

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/twroute"
)

// pickInitUnit chooses the unit to seed an empty route with, among those
// in candidates that are feasible at position 0 and skill-compatible with
// vehRank. Returns the index into candidates, or ok=false when none fit or
// the strategy is InitNone.
func pickInitUnit(problem *model.Problem, tw *twroute.TWRoute, vehRank int, candidates []unit, strategy InitStrategy) (int, bool) {
	if strategy == InitNone {
		return 0, false
	}
	veh := problem.Vehicles[vehRank]

	type feasibleCand struct {
		idx   int
		jobs  []int
		value int64
	}
	var best feasibleCand
	haveBest := false

	for i, u := range candidates {
		if !u.skillCompatible(problem, vehRank) {
			continue
		}
		if _, ok := tryInsert(tw, u.jobs, 0); !ok {
			continue
		}
		job := u.primaryJob(problem)
		var value int64
		switch strategy {
		case InitHigherAmount:
			for _, d := range job.PickupAmount.Add(job.DeliveryAmount).Slice() {
				value += d
			}
		case InitFurthest, InitNearest:
			if veh.HasStart() {
				value = problem.Matrix.Distance(veh.StartLocationIndex, job.LocationIndex)
			}
			if strategy == InitNearest {
				value = -value
			}
		case InitEarliestDeadline:
			earliest := int64(1<<62 - 1)
			for _, w := range job.TimeWindows {
				if w.End < earliest {
					earliest = w.End
				}
			}
			value = -earliest
		}
		if !haveBest || value > best.value {
			best = feasibleCand{idx: i, jobs: u.jobs, value: value}
			haveBest = true
		}
	}
	if !haveBest {
		return 0, false
	}
	return best.idx, true
}
