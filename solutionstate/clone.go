package solutionstate

// Clone returns a deep, independent copy of s: the same (shared, immutable)
// Problem, but entirely separate routes and derived caches, safe for a
// caller to mutate (or discard) without affecting s. Used by the
// local-search driver to snapshot the best-so-far solution before trying a
// round that might regress it (spec §4.8 step 2).
func (s *State) Clone() *State {
	out := New(s.Problem)
	for v := range s.Routes {
		out.Routes[v].SetSequence(append([]int(nil), s.Routes[v].Raw().JobRanks()...))
		out.RebuildVehicle(v)
	}
	return out
}
