package construct

import (
	"sort"

	"github.com/vrpstack/optiroute/model"
)

// availabilityTuple orders vehicles by how much capacity they offer: shift
// duration, total capacity, max travel time, max distance, each descending
// (spec §4.5(a) "availability... lexicographic"). Open Question decision
// (see DESIGN.md): "more available" fills first, on the reasoning that a
// heuristic should commit its most flexible vehicles to the regret-driven
// insertion loop before the less flexible ones run out of good candidates.
func availabilityTuple(v model.Vehicle) [4]int64 {
	var capSum int64
	for _, c := range v.Capacity.Slice() {
		capSum += c
	}
	return [4]int64{v.Shift.End - v.Shift.Start, capSum, v.MaxTravelTime, v.MaxDistance}
}

// sortVehicles returns vehicle ranks ordered by the chosen criterion,
// breaking ties by rank for determinism.
func sortVehicles(problem *model.Problem, by SortStrategy) []int {
	order := make([]int, len(problem.Vehicles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		vi, vj := problem.Vehicles[order[i]], problem.Vehicles[order[j]]
		if by == SortCost && vi.FixedCost != vj.FixedCost {
			return vi.FixedCost < vj.FixedCost
		}
		ai, aj := availabilityTuple(vi), availabilityTuple(vj)
		for k := range ai {
			if ai[k] != aj[k] {
				return ai[k] > aj[k]
			}
		}
		return order[i] < order[j]
	})
	return order
}
