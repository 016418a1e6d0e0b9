package costdelta

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
)

// boundaryLocation resolves a rank, including the -1 ("before first" /
// vehicle start) and Len() ("after last" / vehicle end) sentinels, to a
// location index and whether that boundary actually exists.
func boundaryLocation(r *route.RawRoute, rank int) (loc int, have bool) {
	veh := r.Problem().Vehicles[r.VehicleRank()]
	n := r.Len()
	if rank <= -1 {
		return veh.StartLocationIndex, veh.HasStart()
	}
	if rank >= n {
		return veh.EndLocationIndex, veh.HasEnd()
	}
	return r.Problem().Jobs[r.JobAt(rank)].LocationIndex, true
}

func legCostRanks(r *route.RawRoute, fromRank, toRank int) model.Eval {
	fromLoc, haveFrom := boundaryLocation(r, fromRank)
	toLoc, haveTo := boundaryLocation(r, toRank)
	if !haveFrom || !haveTo {
		return model.ZeroEval
	}
	return r.Problem().Eval(r.VehicleRank(), fromLoc, toLoc)
}

func legCostRankToLoc(r *route.RawRoute, fromRank, toLoc int) model.Eval {
	fromLoc, have := boundaryLocation(r, fromRank)
	if !have {
		return model.ZeroEval
	}
	return r.Problem().Eval(r.VehicleRank(), fromLoc, toLoc)
}

func legCostLocToRank(r *route.RawRoute, fromLoc, toRank int) model.Eval {
	toLoc, have := boundaryLocation(r, toRank)
	if !have {
		return model.ZeroEval
	}
	return r.Problem().Eval(r.VehicleRank(), fromLoc, toLoc)
}

// segmentCost is the eval contributed by occupying the gap between
// beforeRank and afterRank with `jobs` (possibly empty, meaning the gap is
// bridged directly), evaluated using route r's own vehicle.
func segmentCost(r *route.RawRoute, beforeRank, afterRank int, jobs []int) model.Eval {
	if len(jobs) == 0 {
		return legCostRanks(r, beforeRank, afterRank)
	}
	problem := r.Problem()
	vehRank := r.VehicleRank()
	firstLoc := problem.Jobs[jobs[0]].LocationIndex
	lastLoc := problem.Jobs[jobs[len(jobs)-1]].LocationIndex

	total := legCostRankToLoc(r, beforeRank, firstLoc)
	for i := 0; i < len(jobs)-1; i++ {
		fromLoc := problem.Jobs[jobs[i]].LocationIndex
		toLoc := problem.Jobs[jobs[i+1]].LocationIndex
		total = total.Add(problem.Eval(vehRank, fromLoc, toLoc))
	}
	total = total.Add(legCostLocToRank(r, lastLoc, afterRank))
	return total
}

func reversedCopy(jobs []int) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[len(jobs)-1-i] = j
	}
	return out
}

// foldFixedCost adds/subtracts the vehicle's fixed cost when the mutation
// empties a previously non-empty route, or populates a previously empty
// one (spec §4.4 "Fixed-cost addition/subtraction is folded in").
func foldFixedCost(r *route.RawRoute, firstRank, lastRank int, jobs []int, delta model.Eval) model.Eval {
	veh := r.Problem().Vehicles[r.VehicleRank()]
	wasEmpty := r.Len() == 0
	removedCount := 0
	if lastRank >= firstRank {
		removedCount = lastRank - firstRank + 1
	}
	removingAll := !wasEmpty && removedCount == r.Len()
	becomesEmpty := removingAll && len(jobs) == 0
	becomesPopulated := wasEmpty && len(jobs) > 0

	if becomesEmpty {
		delta.Cost -= veh.FixedCost
	}
	if becomesPopulated {
		delta.Cost += veh.FixedCost
	}
	return delta
}

// AdditionCostDelta is the central primitive (spec §4.4): the change in
// route1's eval when the inclusive rank range [firstRank, lastRank] is
// replaced by `jobs` (dense job indices, e.g. a sub-range extracted from
// another route), evaluated from route1's own vehicle. Pass lastRank =
// firstRank-1 for a pure insertion before firstRank that removes nothing.
// Returns the straight-order delta and the delta if jobs were spliced in
// reverse order.
func AdditionCostDelta(route1 *route.RawRoute, firstRank, lastRank int, jobs []int) (straight, reversed model.Eval) {
	var oldJobs []int
	if lastRank >= firstRank {
		for i := firstRank; i <= lastRank; i++ {
			oldJobs = append(oldJobs, route1.JobAt(i))
		}
	}
	oldCost := segmentCost(route1, firstRank-1, lastRank+1, oldJobs)

	newStraight := segmentCost(route1, firstRank-1, lastRank+1, jobs)
	straight = foldFixedCost(route1, firstRank, lastRank, jobs, newStraight.Sub(oldCost))

	newReversed := segmentCost(route1, firstRank-1, lastRank+1, reversedCopy(jobs))
	reversed = foldFixedCost(route1, firstRank, lastRank, jobs, newReversed.Sub(oldCost))
	return straight, reversed
}

// RemovalCostDelta is the empty-insertion case of AdditionCostDelta: the
// change in eval when [firstRank, lastRank] is deleted and nothing takes
// its place.
func RemovalCostDelta(route1 *route.RawRoute, firstRank, lastRank int) model.Eval {
	straight, _ := AdditionCostDelta(route1, firstRank, lastRank, nil)
	return straight
}

// InPlaceDeltaCost replaces the single job at `rank` with `newJob`,
// without changing the route's length (so fixed-cost folding never
// applies).
func InPlaceDeltaCost(route1 *route.RawRoute, rank int, newJob int) model.Eval {
	straight, _ := AdditionCostDelta(route1, rank, rank, []int{newJob})
	return straight
}
