package solutionstate

// rebuildSkillRanks recomputes FwdSkillRank[v][*] and BwdSkillRank[v][*]:
// for each other vehicle v2, the longest prefix (resp. suffix) of route v
// every job of which v2 is skill-compatible with (spec §3).
func (s *State) rebuildSkillRanks(v int) {
	r := s.Routes[v].Raw()
	n := r.Len()
	compat := s.Problem.Compat

	for v2 := range s.Problem.Vehicles {
		prefix := 0
		for prefix < n && compat.VehicleOkWithJob[v2][r.JobAt(prefix)] {
			prefix++
		}
		s.FwdSkillRank[v][v2] = prefix

		suffix := 0
		for suffix < n && compat.VehicleOkWithJob[v2][r.JobAt(n-1-suffix)] {
			suffix++
		}
		s.BwdSkillRank[v][v2] = suffix
	}
}
