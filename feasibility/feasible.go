package feasibility

import "github.com/vrpstack/optiroute/model"

// MaxAssignable returns the maximum number of jobs, out of the given set,
// that could simultaneously be placed onto candidateVehicles — bounded only
// by skill compatibility and each vehicle's remaining task slack, via a
// bipartite source -> job -> vehicle -> sink max-flow network. remainingSlots
// reports how many more jobs candidateVehicles[i] could still accept.
func MaxAssignable(problem *model.Problem, jobs []int, candidateVehicles []int, remainingSlots func(vehRank int) int64) int64 {
	nj, nv := len(jobs), len(candidateVehicles)
	if nj == 0 || nv == 0 {
		return 0
	}

	const source = 0
	jobBase := 1
	vehBase := jobBase + nj
	sink := vehBase + nv
	n := sink + 1

	capMatrix := make([][]int64, n)
	for i := range capMatrix {
		capMatrix[i] = make([]int64, n)
	}

	for ji, j := range jobs {
		capMatrix[source][jobBase+ji] = 1
		for vi, v := range candidateVehicles {
			if problem.Compat.VehicleOkWithJob[v][j] {
				capMatrix[jobBase+ji][vehBase+vi] = 1
			}
		}
	}
	for vi, v := range candidateVehicles {
		slack := remainingSlots(v)
		if slack < 0 {
			slack = 0
		}
		capMatrix[vehBase+vi][sink] = slack
	}

	return maxFlowDinic(capMatrix, source, sink)
}

// RuinBatchFeasible reports whether every job in jobs could in principle be
// repacked across candidateVehicles (spec SPEC_FULL.md ruin-and-recreate
// step 5's pre-check): true unless the max flow provably falls short of
// len(jobs), in which case no insertion ordering would have placed them all
// either.
func RuinBatchFeasible(problem *model.Problem, jobs []int, candidateVehicles []int, remainingSlots func(vehRank int) int64) bool {
	return MaxAssignable(problem, jobs, candidateVehicles, remainingSlots) >= int64(len(jobs))
}
