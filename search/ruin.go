package search

import (
	"math"
	"sort"

	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/feasibility"
	"github.com/vrpstack/optiroute/solutionstate"
)

// ruinBatchSize returns min(3, ceil(sqrt(njobs))), the batch size spec
// §4.8 step 5 mandates for the ruin-and-recreate escape.
func ruinBatchSize(njobs int) int {
	k := int(math.Ceil(math.Sqrt(float64(njobs))))
	if k > 3 {
		k = 3
	}
	if k < 1 {
		k = 1
	}
	return k
}

type ruinCandidate struct {
	v, job int
	gain   int64
}

// collectRuinCandidates scores every currently-assigned job (or
// pickup/delivery pair, scored and removed together) by how much removing
// it alone would save — NodeGain for a single job, PDGain for a pickup,
// the same removal-gain figures the solution-state cache already
// maintains for every route — minus a lower bound on what it would cost
// to relocate that job onto another compatible route (spec §4.8 step 5),
// so a job with a big removal gain but nowhere cheaper to go scores lower
// than one that is both expensive where it sits and cheap to move.
func collectRuinCandidates(st *solutionstate.State) []ruinCandidate {
	var out []ruinCandidate
	for v := range st.Problem.Vehicles {
		raw := st.Routes[v].Raw()
		for r := 0; r < raw.Len(); r++ {
			job := raw.JobAt(r)
			jobDef := st.Problem.Jobs[job]
			var removalGain int64
			switch {
			case jobDef.IsDelivery():
				continue // scored alongside its pickup below
			case jobDef.IsPickup():
				removalGain = st.PDGain[v][r].Cost
			default:
				removalGain = st.NodeGain[v][r].Cost
			}
			score := removalGain - relocationLowerBound(st, v, job)
			out = append(out, ruinCandidate{v: v, job: job, gain: score})
		}
	}
	return out
}

// relocationLowerBound approximates spec §4.8 step 5's "lower bound on
// relocation cost to another compatible route": the cheapest single leg
// from job's location to any other skill-compatible vehicle's start or
// end depot. It is not a strict lower bound: an insertion between two jobs
// of another route pays legs from those jobs rather than from a depot and
// can cost less. Interior insertion positions are not scanned.
func relocationLowerBound(st *solutionstate.State, v, job int) int64 {
	jobDef := st.Problem.Jobs[job]
	best := int64(-1)
	consider := func(c int64) {
		if best == -1 || c < best {
			best = c
		}
	}
	for v2 := range st.Problem.Vehicles {
		if v2 == v || !st.Problem.Compat.VehicleOkWithJob[v2][job] {
			continue
		}
		veh := st.Problem.Vehicles[v2]
		if veh.HasStart() {
			consider(st.Problem.Eval(v2, veh.StartLocationIndex, jobDef.LocationIndex).Cost)
		}
		if veh.HasEnd() {
			consider(st.Problem.Eval(v2, veh.EndLocationIndex, jobDef.LocationIndex).Cost)
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// removeJobFromRoute deletes job, and its matched pickup/delivery partner
// if it has one, from route v's sequence. The caller rebuilds v
// afterward.
func removeJobFromRoute(st *solutionstate.State, v, job int) {
	jobDef := st.Problem.Jobs[job]
	partner := -1
	switch {
	case jobDef.IsPickup():
		partner = job + 1
	case jobDef.IsDelivery():
		partner = job - 1
	}

	seq := st.Routes[v].Raw().JobRanks()
	out := make([]int, 0, len(seq))
	for _, j := range seq {
		if j == job || j == partner {
			continue
		}
		out = append(out, j)
	}
	st.Routes[v].SetSequence(out)
}

// Ruin removes the highest-scoring batch of jobs (by collectRuinCandidates'
// score: removal gain minus relocation estimate) from st's routes,
// unassigns them, and refills every route through
// construct.InsertUnassigned at opts.RuinRegretCoefficientPercent (spec
// §4.8 step 5). It is a no-op when st has no assigned jobs to remove, or
// when feasibility.RuinBatchFeasible proves the chosen batch could not
// all be repacked afterward — in that case the routes are left untouched
// rather than paying for a regret-insertion pass known in advance to
// strand jobs.
func Ruin(st *solutionstate.State, opts Options) {
	k := ruinBatchSize(len(st.Problem.Jobs))

	cands := collectRuinCandidates(st)
	if len(cands) == 0 {
		return
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].gain > cands[j].gain })
	if len(cands) > k {
		cands = cands[:k]
	}

	if !ruinBatchFeasible(st, cands) {
		return
	}

	touched := make(map[int]struct{}, len(cands))
	for _, c := range cands {
		touched[c.v] = struct{}{}
		removeJobFromRoute(st, c.v, c.job)
	}
	for v := range touched {
		st.RebuildVehicle(v)
	}

	construct.InsertUnassigned(st, opts.RuinRegretCoefficientPercent)
}

// ruinBatchFeasible runs feasibility.RuinBatchFeasible's bipartite
// max-flow pre-check over cands against every vehicle, crediting each
// vehicle with the extra task slots its own candidates being removed
// would free up (since removal happens before the candidates' routes are
// rebuilt, VehicleSlack alone would still count them as occupying a
// slot).
func ruinBatchFeasible(st *solutionstate.State, cands []ruinCandidate) bool {
	jobs := make([]int, len(cands))
	vehicles := make([]int, 0, len(st.Problem.Vehicles))
	freed := make(map[int]int64, len(cands))
	for i, c := range cands {
		jobs[i] = c.job
		freed[c.v]++
	}
	for v := range st.Problem.Vehicles {
		vehicles = append(vehicles, v)
	}
	remainingSlots := func(v int) int64 {
		return feasibility.VehicleSlack(st, v) + freed[v]
	}
	return feasibility.RuinBatchFeasible(st.Problem, jobs, vehicles, remainingSlots)
}
