package solutionstate

import "github.com/vrpstack/optiroute/model"

// legEval returns the eval of traveling from rank `from` to rank `to`
// within route v, where -1 means the vehicle's start location and Len()
// means its end location; legs touching an absent depot location cost
// zero (there is nothing to travel from/to).
func (s *State) legEval(v, from, to int) model.Eval {
	r := s.Routes[v].Raw()
	veh := s.Problem.Vehicles[v]
	n := r.Len()

	var fromLoc, toLoc int
	var haveFrom, haveTo bool
	if from == -1 {
		haveFrom, fromLoc = veh.HasStart(), veh.StartLocationIndex
	} else if from >= 0 && from < n {
		haveFrom, fromLoc = true, s.jobLoc(r.JobAt(from))
	}
	if to == n {
		haveTo, toLoc = veh.HasEnd(), veh.EndLocationIndex
	} else if to >= 0 && to < n {
		haveTo, toLoc = true, s.jobLoc(r.JobAt(to))
	}
	if !haveFrom || !haveTo {
		return model.ZeroEval
	}
	return s.Problem.Eval(v, fromLoc, toLoc)
}

// rebuildGains recomputes NodeGain, EdgeGain, and PDGain for route v.
func (s *State) rebuildGains(v int) {
	r := s.Routes[v].Raw()
	n := r.Len()

	nodeGain := make([]model.Eval, n)
	for rank := 0; rank < n; rank++ {
		before := s.legEval(v, rank-1, rank).Add(s.legEval(v, rank, rank+1))
		after := s.legEval(v, rank-1, rank+1)
		nodeGain[rank] = before.Sub(after)
	}
	s.NodeGain[v] = nodeGain

	edgeGain := make([]model.Eval, n)
	for rank := 0; rank < n-1; rank++ {
		before := s.legEval(v, rank-1, rank).Add(s.legEval(v, rank+1, rank+2))
		after := s.legEval(v, rank-1, rank+2)
		edgeGain[rank] = before.Sub(after)
	}
	s.EdgeGain[v] = edgeGain

	pdGain := make([]model.Eval, n)
	for rank := 0; rank < n; rank++ {
		job := s.Problem.Jobs[r.JobAt(rank)]
		if !job.IsPickup() {
			continue
		}
		dRank := s.MatchingDeliveryRank[v]
		if dRank == nil || rank >= len(dRank) || dRank[rank] < 0 {
			continue
		}
		pdGain[rank] = s.pairRemovalGain(v, rank, dRank[rank])
	}
	s.PDGain[v] = pdGain
}

// pairRemovalGain computes the eval saved by removing the jobs at ranks
// pRank and dRank (pRank < dRank, not necessarily adjacent) together, by
// comparing the route's current eval to the eval of the sequence with both
// ranks excised.
func (s *State) pairRemovalGain(v, pRank, dRank int) model.Eval {
	r := s.Routes[v].Raw()
	before := s.routeEvalWith(v, v)

	kept := make([]int, 0, r.Len()-2)
	for i := 0; i < r.Len(); i++ {
		if i == pRank || i == dRank {
			continue
		}
		kept = append(kept, r.JobAt(i))
	}
	after := s.sequenceEvalWith(v, kept)
	return before.Sub(after)
}

// sequenceEvalWith evaluates an arbitrary job-index sequence as if it were
// route `using`'s content, without mutating any route.
func (s *State) sequenceEvalWith(using int, jobs []int) model.Eval {
	veh := s.Problem.Vehicles[using]
	total := model.ZeroEval
	n := len(jobs)
	if n == 0 {
		return total
	}
	if veh.HasStart() {
		total = total.Add(s.Problem.Eval(using, veh.StartLocationIndex, s.jobLoc(jobs[0])))
	}
	for i := 0; i < n-1; i++ {
		total = total.Add(s.Problem.Eval(using, s.jobLoc(jobs[i]), s.jobLoc(jobs[i+1])))
	}
	if veh.HasEnd() {
		total = total.Add(s.Problem.Eval(using, s.jobLoc(jobs[n-1]), veh.EndLocationIndex))
	}
	return total
}

// rebuildMatchingRanks recomputes MatchingDeliveryRank/MatchingPickupRank
// for route v by scanning its job sequence once.
func (s *State) rebuildMatchingRanks(v int) {
	r := s.Routes[v].Raw()
	n := r.Len()
	del := make([]int, n)
	pick := make([]int, n)
	for i := range del {
		del[i] = -1
		pick[i] = -1
	}

	locate := func(jobIdx int) int {
		for i := 0; i < n; i++ {
			if r.JobAt(i) == jobIdx {
				return i
			}
		}
		return -1
	}

	for rank := 0; rank < n; rank++ {
		job := s.Problem.Jobs[r.JobAt(rank)]
		switch {
		case job.IsPickup():
			del[rank] = locate(job.Index + 1)
		case job.IsDelivery():
			pick[rank] = locate(job.Index - 1)
		}
	}
	s.MatchingDeliveryRank[v] = del
	s.MatchingPickupRank[v] = pick
}

func (s *State) rebuildPriority(v int) {
	r := s.Routes[v].Raw()
	n := r.Len()
	fwd := make([]int64, n)
	bwd := make([]int64, n)
	var running int64
	for i := 0; i < n; i++ {
		running += int64(s.Problem.Jobs[r.JobAt(i)].Priority)
		fwd[i] = running
	}
	running = 0
	for i := n - 1; i >= 0; i-- {
		running += int64(s.Problem.Jobs[r.JobAt(i)].Priority)
		bwd[i] = running
	}
	s.FwdPriority[v] = fwd
	s.BwdPriority[v] = bwd
}
