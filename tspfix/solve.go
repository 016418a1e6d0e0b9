package tspfix

import (
	"time"

	"github.com/vrpstack/optiroute/model"
)

// Solve re-solves the visiting order of jobs (a set of job ranks already
// assigned to vehicle vehRank) via Christofides construction followed by
// 2-opt/or-opt/relocate improvement, returning an ordering of the same
// job ranks (spec §4.7). A zero deadline means no time budget.
func Solve(problem *model.Problem, vehRank int, jobs []int, opts Options, deadline time.Time) ([]int, error) {
	if len(jobs) == 0 {
		return nil, ErrTooFewJobs
	}
	if len(jobs) <= 3 {
		return bruteForce(problem, vehRank, jobs), nil
	}

	loc := func(idx int) int { return problem.Jobs[jobs[idx]].LocationIndex }
	symW := func(i, j int) int64 {
		a := problem.Eval(vehRank, loc(i), loc(j)).Cost
		b := problem.Eval(vehRank, loc(j), loc(i)).Cost
		if a < b {
			return a
		}
		return b
	}

	cycle, err := christofidesCycle(len(jobs), symW, opts)
	if err != nil {
		return nil, err
	}

	veh := problem.Vehicles[vehRank]
	startCost := func(idx int) int64 {
		if !veh.HasStart() {
			return 0
		}
		return problem.Eval(vehRank, veh.StartLocationIndex, loc(idx)).Cost
	}
	endCost := func(idx int) int64 {
		if !veh.HasEnd() {
			return 0
		}
		return problem.Eval(vehRank, loc(idx), veh.EndLocationIndex).Cost
	}
	pathIdx := openPath(cycle, symW, startCost, endCost)

	path := make([]int, len(jobs))
	for i, idx := range pathIdx {
		path[i] = jobs[idx]
	}

	improved, err := improve(problem, vehRank, path, opts, deadline)
	if err != nil {
		return improved, err
	}
	return improved, nil
}

// bruteForce tries every permutation of jobs (len <= 3) and returns the
// cheapest, sidestepping Christofides' degenerate behavior on tiny
// instances (an MST/matching pipeline needs at least a handful of
// vertices to be meaningful).
func bruteForce(problem *model.Problem, vehRank int, jobs []int) []int {
	best := append([]int(nil), jobs...)
	bestCost := routeCost(problem, vehRank, best)
	permute(append([]int(nil), jobs...), 0, func(p []int) {
		if c := routeCost(problem, vehRank, p); c < bestCost {
			bestCost = c
			best = append([]int(nil), p...)
		}
	})
	return best
}

func permute(s []int, k int, visit func([]int)) {
	if k == len(s) {
		visit(s)
		return
	}
	for i := k; i < len(s); i++ {
		s[k], s[i] = s[i], s[k]
		permute(s, k+1, visit)
		s[k], s[i] = s[i], s[k]
	}
}
