package construct

import (
	"github.com/vrpstack/optiroute/costdelta"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/twroute"
)

// tryInsert reports the cost delta of inserting jobs (in order, nothing
// removed) at position, or ok=false if it violates capacity or time
// windows.
func tryInsert(tw *twroute.TWRoute, jobs []int, position int) (model.Eval, bool) {
	raw := tw.Raw()
	if !raw.IsValidAdditionForCapacityInclusion(jobs, position, position-1) {
		return model.Eval{}, false
	}
	if !tw.IsValidAdditionForTWInsert(jobs, position) {
		return model.Eval{}, false
	}
	delta, _ := costdelta.AdditionCostDelta(raw, position, position-1, jobs)
	return delta, true
}

// bestInsertion scans every position in tw's route and returns the
// cheapest feasible one for inserting jobs as a unit.
func bestInsertion(tw *twroute.TWRoute, jobs []int) (position int, cost model.Eval, ok bool) {
	n := tw.Raw().Len()
	for pos := 0; pos <= n; pos++ {
		delta, feasible := tryInsert(tw, jobs, pos)
		if !feasible {
			continue
		}
		if !ok || delta.Less(cost) {
			ok = true
			cost = delta
			position = pos
		}
	}
	return position, cost, ok
}
