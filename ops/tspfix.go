package ops

import (
	"time"

	"github.com/vrpstack/optiroute/solutionstate"
	"github.com/vrpstack/optiroute/tspfix"
)

// TSPFix re-solves route v's entire job ordering as a small TSP instance
// (Christofides construction plus 2-opt/or-opt/relocate improvement, spec
// §4.7) and accepts the result only if it strictly improves on the
// route's current cost (spec §4.6 "TSPFix"). Unlike every other operator
// here, the candidate sequence comes from an external solver rather than
// a hand-built splice, so routeFeasible still gates it before Apply is
// ever wired up — a cheaper reordering that happens to violate a time
// window is rejected like any other move.
type TSPFix struct{ baseMove }

func TryTSPFix(st *solutionstate.State, v int, opts tspfix.Options, deadline time.Time) (*TSPFix, bool) {
	raw := st.Routes[v].Raw()
	base := raw.JobRanks()
	if len(base) < 3 {
		return nil, false
	}

	reordered, err := tspfix.Solve(st.Problem, v, base, opts, deadline)
	if err != nil && err != tspfix.ErrTimeLimit {
		return nil, false
	}
	if !routeFeasible(st, v, reordered) {
		return nil, false
	}

	gain := totalGain(st.Problem, []routeChange{{v, st.RouteEval[v], reordered}})
	if gain.Cost <= 0 {
		return nil, false
	}

	m := &TSPFix{baseMove{gain: gain, valid: true, candidates: []int{v}}}
	m.applyFn = func() {
		st.Routes[v].SetSequence(reordered)
		st.RebuildVehicle(v)
	}
	return m, true
}
