package construct

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

// InsertUnassigned inserts every job currently in st.Unassigned into st's
// existing routes, scoring candidates by the same regret rule as the
// Dynamic construction regime (spec §4.8 step 4, and the ruin phase's
// "refill" in step 5), but starting from whatever routes already hold
// jobs rather than empty ones. Every round it recomputes, for each
// remaining unit, its cheapest and second-cheapest feasible insertion
// across all vehicles, then commits the single insertion with the highest
// score (the regret coefficient times the regret, minus the insertion
// cost) before recomputing again. Units with no feasible position anywhere are
// left in st.Unassigned.
func InsertUnassigned(st *solutionstate.State, regretCoefficientPercent int64) {
	remaining := unassignedUnits(st)
	nv := len(st.Problem.Vehicles)

	type candidate struct {
		veh, pos int
		cost     model.Eval
		regret   int64
	}

	for len(remaining) > 0 {
		best := make([]*candidate, len(remaining))
		anyFeasible := false

		for i, u := range remaining {
			var minCost, secondCost model.Eval
			haveMin, haveSec := false, false
			minVeh, minPos := -1, -1
			for v := 0; v < nv; v++ {
				if !u.skillCompatible(st.Problem, v) {
					continue
				}
				pos, cost, ok := bestInsertion(st.Routes[v], u.jobs)
				if !ok {
					continue
				}
				switch {
				case !haveMin || cost.Less(minCost):
					secondCost, haveSec = minCost, haveMin
					minCost, minVeh, minPos, haveMin = cost, v, pos, true
				case !haveSec || cost.Less(secondCost):
					secondCost, haveSec = cost, true
				}
			}
			if !haveMin {
				continue
			}
			anyFeasible = true
			var regret int64
			if haveSec {
				regret = secondCost.Cost - minCost.Cost
				if regret < 0 {
					regret = 0
				}
			}
			best[i] = &candidate{veh: minVeh, pos: minPos, cost: minCost, regret: regret}
		}
		if !anyFeasible {
			return
		}

		bestIdx := -1
		var bestScore int64
		for i, c := range best {
			if c == nil {
				continue
			}
			score := (c.regret*regretCoefficientPercent)/100 - c.cost.Cost
			if bestIdx == -1 || score > bestScore {
				bestIdx, bestScore = i, score
			}
		}

		u := remaining[bestIdx]
		c := best[bestIdx]
		st.Routes[c.veh].InsertSlice(u.jobs, c.pos)
		st.RebuildVehicle(c.veh)
		remaining = removeUnitAt(remaining, bestIdx)
	}
}

func unassignedUnits(st *solutionstate.State) []unit {
	all := buildUnits(st.Problem)
	out := make([]unit, 0, len(all))
	for _, u := range all {
		if _, ok := st.Unassigned[u.jobs[0]]; ok {
			out = append(out, u)
		}
	}
	return out
}
