package construct

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
	"github.com/vrpstack/optiroute/twroute"
)

// Construct builds an initial solution for problem according to opts
// (spec §4.5), returning a State with as many units placed as the chosen
// regime could manage; anything left over remains in State.Unassigned.
func Construct(problem *model.Problem, opts Options) *solutionstate.State {
	st := solutionstate.New(problem)
	remaining := buildUnits(problem)

	if opts.Heuristic == Dynamic {
		runDynamic(st, remaining, opts)
	} else {
		runBasic(st, remaining, opts)
	}
	return st
}

func removeUnitAt(units []unit, idx int) []unit {
	last := len(units) - 1
	units[idx] = units[last]
	return units[:last]
}

func removeVehicleAt(vehicles []int, idx int) []int {
	last := len(vehicles) - 1
	vehicles[idx] = vehicles[last]
	return vehicles[:last]
}

// seedRoute seeds an empty route with the init-strategy's chosen unit, if
// any fits; it is a no-op (returns remaining unchanged) once the route is
// non-empty or no candidate unit is feasible.
func seedRoute(st *solutionstate.State, v int, tw *twroute.TWRoute, remaining []unit, opts Options) []unit {
	if tw.Raw().Len() > 0 || len(remaining) == 0 {
		return remaining
	}
	idx, ok := pickInitUnit(st.Problem, tw, v, remaining, opts.Init)
	if !ok {
		return remaining
	}
	u := remaining[idx]
	pos, _, feasible := bestInsertion(tw, u.jobs)
	if !feasible {
		return remaining
	}
	tw.InsertSlice(u.jobs, pos)
	st.RebuildVehicle(v)
	return removeUnitAt(remaining, idx)
}

// pickBestByRegret scans remaining for the unit maximizing
// λ·regret − insertion_cost into tw, where regret(u) = max(0,
// referenceCost(u) − insertion_cost) and referenceCost supplies the
// opportunity-cost baseline (later-vehicle min in Basic, second-min in
// Dynamic). Returns the index into remaining, the insertion position, and
// whether any unit was feasible at all.
func pickBestByRegret(
	st *solutionstate.State,
	tw *twroute.TWRoute,
	v int,
	remaining []unit,
	referenceCost func(key int) (model.Eval, bool),
	opts Options,
) (bestIdx, bestPos int, ok bool) {
	bestIdx = -1
	var bestScore int64

	for i, u := range remaining {
		if !u.skillCompatible(st.Problem, v) {
			continue
		}
		pos, cost, feasible := bestInsertion(tw, u.jobs)
		if !feasible {
			continue
		}
		var regret int64
		if ref, have := referenceCost(u.jobs[0]); have {
			regret = ref.Cost - cost.Cost
			if regret < 0 {
				regret = 0
			}
		}
		score := (regret*opts.RegretCoefficientPercent)/100 - cost.Cost
		if bestIdx == -1 || score > bestScore {
			bestIdx, bestPos, bestScore, ok = i, pos, score, true
		}
	}
	return bestIdx, bestPos, ok
}

// runBasic implements spec §4.5's Basic regime.
func runBasic(st *solutionstate.State, remaining []unit, opts Options) {
	order := sortVehicles(st.Problem, opts.Sort)
	for i, v := range order {
		later := order[i+1:]
		remaining = fillVehicleBasic(st, v, later, remaining, opts)
	}
}

func fillVehicleBasic(st *solutionstate.State, v int, later []int, remaining []unit, opts Options) []unit {
	tw := st.Routes[v]
	remaining = seedRoute(st, v, tw, remaining, opts)

	// Precompute, once for this vehicle's turn, the minimum insertion cost
	// any later vehicle offers each still-unassigned unit (spec §4.5(b));
	// later vehicles are all still untouched since vehicles fill strictly
	// in order.
	minLater := make(map[int]model.Eval, len(remaining))
	for _, u := range remaining {
		var best model.Eval
		haveBest := false
		for _, v2 := range later {
			if !u.skillCompatible(st.Problem, v2) {
				continue
			}
			if _, cost, ok := bestInsertion(st.Routes[v2], u.jobs); ok {
				if !haveBest || cost.Less(best) {
					best, haveBest = cost, true
				}
			}
		}
		if haveBest {
			minLater[u.jobs[0]] = best
		}
	}
	reference := func(key int) (model.Eval, bool) {
		e, have := minLater[key]
		return e, have
	}

	for {
		idx, pos, ok := pickBestByRegret(st, tw, v, remaining, reference, opts)
		if !ok {
			return remaining
		}
		u := remaining[idx]
		tw.InsertSlice(u.jobs, pos)
		st.RebuildVehicle(v)
		remaining = removeUnitAt(remaining, idx)
	}
}

// runDynamic implements spec §4.5's Dynamic regime.
func runDynamic(st *solutionstate.State, remaining []unit, opts Options) {
	available := sortVehicles(st.Problem, opts.Sort)

	for len(available) > 0 && len(remaining) > 0 {
		minCost := make(map[int]model.Eval, len(remaining))
		secondCost := make(map[int]model.Eval, len(remaining))
		haveSecond := make(map[int]bool, len(remaining))
		winsFor := make(map[int]int, len(available))

		anyFeasible := false
		for _, u := range remaining {
			var min, second model.Eval
			haveMin, haveSec := false, false
			minVeh := -1
			for _, v := range available {
				if !u.skillCompatible(st.Problem, v) {
					continue
				}
				_, cost, ok := bestInsertion(st.Routes[v], u.jobs)
				if !ok {
					continue
				}
				switch {
				case !haveMin || cost.Less(min):
					second, haveSec = min, haveMin
					min, minVeh, haveMin = cost, v, true
				case !haveSec || cost.Less(second):
					second, haveSec = cost, true
				}
			}
			if haveMin {
				anyFeasible = true
				minCost[u.jobs[0]] = min
				if haveSec {
					secondCost[u.jobs[0]] = second
					haveSecond[u.jobs[0]] = true
				}
				winsFor[minVeh]++
			}
		}
		if !anyFeasible {
			break
		}

		chosenIdx, chosen, chosenWins := -1, -1, -1
		for i, v := range available {
			if winsFor[v] > chosenWins {
				chosenIdx, chosen, chosenWins = i, v, winsFor[v]
			}
		}
		if chosen == -1 {
			break
		}

		tw := st.Routes[chosen]
		remaining = seedRoute(st, chosen, tw, remaining, opts)
		reference := func(key int) (model.Eval, bool) {
			e, have := secondCost[key]
			return e, have && haveSecond[key]
		}
		for {
			idx, pos, ok := pickBestByRegret(st, tw, chosen, remaining, reference, opts)
			if !ok {
				break
			}
			u := remaining[idx]
			tw.InsertSlice(u.jobs, pos)
			st.RebuildVehicle(chosen)
			remaining = removeUnitAt(remaining, idx)
		}
		available = removeVehicleAt(available, chosenIdx)
	}
}
