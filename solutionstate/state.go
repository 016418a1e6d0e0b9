package solutionstate

import (
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
	"github.com/vrpstack/optiroute/twroute"
)

// State is the owned, per-solution cache for every vehicle's route (spec
// §3). The solver constructs one State per candidate solution and rebuilds
// the affected entries after every move application.
type State struct {
	Problem *model.Problem
	Routes  []*twroute.TWRoute

	RouteEval []model.Eval

	// FwdCost[v][v2][r] is the cumulative eval of route v's job-to-job edges
	// from rank 0 to rank r, computed using vehicle v2's cost profile
	// (spec §3). BwdCost is the mirrored suffix sum.
	FwdCost [][][]model.Eval
	BwdCost [][][]model.Eval

	NodeGain [][]model.Eval
	EdgeGain [][]model.Eval
	// PDGain[v][r] is populated only when rank r holds a pickup; it is the
	// eval saved by removing the pickup and its matching delivery together.
	PDGain [][]model.Eval

	MatchingDeliveryRank [][]int
	MatchingPickupRank   [][]int

	FwdPriority [][]int64
	BwdPriority [][]int64

	// FwdSkillRank[v][v2] is the length of the longest prefix of route v
	// whose every job is skill-compatible with vehicle v2; BwdSkillRank is
	// the mirrored suffix length.
	FwdSkillRank [][]int
	BwdSkillRank [][]int

	// Unassigned holds the dense job indices currently in no route.
	Unassigned map[int]struct{}
}

// New builds a State with one empty TWRoute per vehicle and every job
// unassigned; callers insert jobs via the construction heuristic and then
// call RebuildVehicle for every touched rank.
func New(problem *model.Problem) *State {
	n := len(problem.Vehicles)
	s := &State{
		Problem:    problem,
		Routes:     make([]*twroute.TWRoute, n),
		RouteEval:  make([]model.Eval, n),
		Unassigned: make(map[int]struct{}, len(problem.Jobs)),
	}
	for v := range problem.Vehicles {
		s.Routes[v] = twroute.New(route.New(problem, v))
	}
	s.allocate()
	for j := range problem.Jobs {
		s.Unassigned[j] = struct{}{}
	}
	for v := range problem.Vehicles {
		s.RebuildVehicle(v)
	}
	return s
}

func (s *State) allocate() {
	n := len(s.Problem.Vehicles)
	s.FwdCost = make([][][]model.Eval, n)
	s.BwdCost = make([][][]model.Eval, n)
	s.NodeGain = make([][]model.Eval, n)
	s.EdgeGain = make([][]model.Eval, n)
	s.PDGain = make([][]model.Eval, n)
	s.MatchingDeliveryRank = make([][]int, n)
	s.MatchingPickupRank = make([][]int, n)
	s.FwdPriority = make([][]int64, n)
	s.BwdPriority = make([][]int64, n)
	s.FwdSkillRank = make([][]int, n)
	s.BwdSkillRank = make([][]int, n)
	for v := 0; v < n; v++ {
		s.FwdCost[v] = make([][]model.Eval, n)
		s.BwdCost[v] = make([][]model.Eval, n)
		s.FwdSkillRank[v] = make([]int, n)
		s.BwdSkillRank[v] = make([]int, n)
	}
}

// RebuildVehicle recomputes every table that depends on route v: its own
// node/edge/pd gains, matching ranks, priority sums, and its row of the
// cross-vehicle cost and skill-rank tables (other vehicles' columns at v
// also change since v's content changed, so those are refreshed too).
func (s *State) RebuildVehicle(v int) {
	s.rebuildRouteEval(v)
	s.rebuildCostTables(v)
	s.rebuildMatchingRanks(v)
	s.rebuildGains(v)
	s.rebuildPriority(v)
	s.rebuildSkillRanks(v)
	s.RecomputeUnassigned()
}

func (s *State) rebuildRouteEval(v int) {
	r := s.Routes[v]
	eval := s.routeEvalWith(v, v)
	if r.Raw().Len() > 0 {
		eval = eval.Add(model.Eval{Cost: s.Problem.Vehicles[v].FixedCost})
	}
	s.RouteEval[v] = eval
}

// routeEvalWith sums the job-to-job and depot-leg edges of route `from`'s
// job sequence, using vehicle `using`'s cost profile.
func (s *State) routeEvalWith(from, using int) model.Eval {
	r := s.Routes[from].Raw()
	n := r.Len()
	veh := s.Problem.Vehicles[using]
	total := model.ZeroEval
	if n == 0 {
		return total
	}
	if veh.HasStart() {
		total = total.Add(s.Problem.Eval(using, veh.StartLocationIndex, s.jobLoc(r.JobAt(0))))
	}
	for i := 0; i < n-1; i++ {
		total = total.Add(s.Problem.Eval(using, s.jobLoc(r.JobAt(i)), s.jobLoc(r.JobAt(i+1))))
	}
	if veh.HasEnd() {
		total = total.Add(s.Problem.Eval(using, s.jobLoc(r.JobAt(n-1)), veh.EndLocationIndex))
	}
	return total
}

func (s *State) jobLoc(jobIdx int) int {
	return s.Problem.Jobs[jobIdx].LocationIndex
}

// LegEval exports legEval for packages (e.g. solver) that need the same
// boundary-aware single-edge cost without duplicating the -1/Len()
// sentinel handling.
func (s *State) LegEval(v, from, to int) model.Eval {
	return s.legEval(v, from, to)
}
