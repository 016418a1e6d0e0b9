package solutionstate

import "github.com/vrpstack/optiroute/model"

// rebuildCostTables recomputes FwdCost[v][*] / BwdCost[v][*] (route v's
// content re-priced under every vehicle's cost profile) and the
// corresponding [*][v] columns, since route v's content is what changed.
func (s *State) rebuildCostTables(v int) {
	n := len(s.Problem.Vehicles)
	for v2 := 0; v2 < n; v2++ {
		s.FwdCost[v][v2] = s.buildFwd(v, v2)
		s.BwdCost[v][v2] = s.buildBwd(v, v2)
	}
	for v1 := 0; v1 < n; v1++ {
		if v1 == v {
			continue
		}
		s.FwdCost[v1][v] = s.buildFwd(v1, v)
		s.BwdCost[v1][v] = s.buildBwd(v1, v)
	}
}

// buildFwd computes, for each rank r of route `of`, the cumulative job-edge
// eval from rank 0 to r using vehicle `using`'s cost profile (spec §3
// fwd_cost[v][v'][r]); depot legs are excluded since they depend on which
// vehicle actually anchors the route, not the one being hypothesized.
func (s *State) buildFwd(of, using int) []model.Eval {
	r := s.Routes[of].Raw()
	n := r.Len()
	out := make([]model.Eval, n)
	running := model.ZeroEval
	for i := 0; i < n; i++ {
		if i > 0 {
			running = running.Add(s.Problem.Eval(using, s.jobLoc(r.JobAt(i-1)), s.jobLoc(r.JobAt(i))))
		}
		out[i] = running
	}
	return out
}

func (s *State) buildBwd(of, using int) []model.Eval {
	r := s.Routes[of].Raw()
	n := r.Len()
	out := make([]model.Eval, n)
	running := model.ZeroEval
	for i := n - 1; i >= 0; i-- {
		if i < n-1 {
			running = running.Add(s.Problem.Eval(using, s.jobLoc(r.JobAt(i+1)), s.jobLoc(r.JobAt(i))))
		}
		out[i] = running
	}
	return out
}
