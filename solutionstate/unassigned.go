package solutionstate

// RecomputeUnassigned rebuilds the Unassigned set from scratch by scanning
// every route's job sequence; a job present in no route is unassigned
// (spec §3 invariant (e)).
func (s *State) RecomputeUnassigned() {
	assigned := make(map[int]struct{}, len(s.Problem.Jobs))
	for v := range s.Routes {
		r := s.Routes[v].Raw()
		for i := 0; i < r.Len(); i++ {
			assigned[r.JobAt(i)] = struct{}{}
		}
	}
	unassigned := make(map[int]struct{}, len(s.Problem.Jobs)-len(assigned))
	for j := range s.Problem.Jobs {
		if _, ok := assigned[j]; !ok {
			unassigned[j] = struct{}{}
		}
	}
	s.Unassigned = unassigned
}
