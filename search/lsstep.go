package search

import (
	"fmt"

	"github.com/vrpstack/optiroute/ops"
	"github.com/vrpstack/optiroute/solutionstate"
)

// crossEdgeLens bounds the edge-length enumeration for the four
// edge-vs-edge/job-vs-edge exchange operators (CrossExchange,
// MixedExchange's edge side, IntraMixedExchange's edge side,
// IntraCrossExchange's two edges) to {1,2}. Longer edges exist in
// principle but blow up the per-pair scan combinatorially for a gain that
// shrinks fast as the edge grows; two elements already covers the
// adjacent-pair case OrOpt doesn't.
var crossEdgeLens = [2]int{1, 2}

// lsStep finds the single best-gain move across every ordered vehicle
// pair plus the RouteSplit scan, applies it, and reports whether it found
// one (spec §4.8 "ls-step"). It mutates st in place.
func lsStep(st *solutionstate.State, opts Options) bool {
	nv := len(st.Problem.Vehicles)
	var best ops.Move

	consider := func(m ops.Move) {
		if m == nil || !improves(m) {
			return
		}
		if best == nil || moveBetter(m, best) {
			best = m
		}
	}

	for s := 0; s < nv; s++ {
		for t := 0; t < nv; t++ {
			if s != t && !st.Problem.Compat.VehicleOkWithVehicle[s][t] {
				continue
			}
			if s == t {
				consider(bestIntraMove(st, s, opts))
			} else {
				consider(bestInterMove(st, s, t))
			}
		}
	}
	consider(bestRouteSplitMove(st))

	if best == nil {
		return false
	}
	best.Apply()
	if opts.StrictRecompute {
		verifyStrictRecompute(st, best.UpdateCandidates(), fmt.Sprintf("%T", best))
	}
	return true
}

// bestIntraMove returns the best-gain move found among every
// single-route operator applied to route v, or nil if none improves.
func bestIntraMove(st *solutionstate.State, v int, opts Options) ops.Move {
	n := st.Routes[v].Raw().Len()
	var best ops.Move
	take := func(m ops.Move, ok bool) {
		if !ok || !improves(m) {
			return
		}
		if best == nil || moveBetter(m, best) {
			best = m
		}
	}

	for rFrom := 0; rFrom < n; rFrom++ {
		for pTo := 0; pTo < n; pTo++ {
			take(ops.TryIntraRelocate(st, v, rFrom, pTo))
		}
	}
	for rX := 0; rX < n; rX++ {
		for rY := rX + 1; rY < n; rY++ {
			take(ops.TryIntraExchange(st, v, rX, rY))
		}
	}
	for rX := 0; rX < n; rX++ {
		for _, lenY := range crossEdgeLens {
			for firstY := 0; firstY+lenY-1 < n; firstY++ {
				take(ops.TryIntraMixedExchange(st, v, rX, firstY, firstY+lenY-1))
			}
		}
	}
	for _, lenX := range crossEdgeLens {
		for firstX := 0; firstX+lenX-1 < n; firstX++ {
			lastX := firstX + lenX - 1
			for _, lenY := range crossEdgeLens {
				for firstY := 0; firstY+lenY-1 < n; firstY++ {
					lastY := firstY + lenY - 1
					take(ops.TryIntraCrossExchange(st, v, firstX, lastX, firstY, lastY))
				}
			}
		}
	}
	for rFrom := 0; rFrom+1 < n; rFrom++ {
		for pTo := 0; pTo <= n-2; pTo++ {
			take(ops.TryIntraOrOpt(st, v, rFrom, pTo, false))
			take(ops.TryIntraOrOpt(st, v, rFrom, pTo, true))
		}
	}
	for first := 0; first < n; first++ {
		for last := first + 1; last < n; last++ {
			take(ops.TryIntraTwoOpt(st, v, first, last))
		}
	}
	if n >= 3 {
		take(ops.TryTSPFix(st, v, opts.TSPFix, opts.Deadline))
	}
	unassigned := sortedUnassigned(st)
	for _, fromEnd := range [2]bool{false, true} {
		for cutLen := 0; cutLen <= n; cutLen++ {
			for _, j := range unassigned {
				take(ops.TryPriorityReplace(st, v, fromEnd, cutLen, j))
			}
		}
	}
	for rOut := 0; rOut < n; rOut++ {
		for _, j := range unassigned {
			for pIn := 0; pIn < n; pIn++ {
				take(ops.TryUnassignedExchange(st, v, rOut, j, pIn))
			}
		}
	}

	return best
}

// bestInterMove returns the best-gain move found among every two-route
// operator applied to the ordered pair (s,t), or nil if none improves.
func bestInterMove(st *solutionstate.State, s, t int) ops.Move {
	nS := st.Routes[s].Raw().Len()
	nT := st.Routes[t].Raw().Len()
	var best ops.Move
	take := func(m ops.Move, ok bool) {
		if !ok || !improves(m) {
			return
		}
		if best == nil || moveBetter(m, best) {
			best = m
		}
	}

	for rFrom := 0; rFrom < nS; rFrom++ {
		for pTo := 0; pTo <= nT; pTo++ {
			take(ops.TryRelocate(st, s, rFrom, t, pTo))
		}
	}
	for rFrom := 0; rFrom+1 < nS; rFrom++ {
		for pTo := 0; pTo <= nT; pTo++ {
			take(ops.TryOrOpt(st, s, rFrom, t, pTo, false))
			take(ops.TryOrOpt(st, s, rFrom, t, pTo, true))
		}
	}
	for _, lenA := range crossEdgeLens {
		for firstA := 0; firstA+lenA-1 < nS; firstA++ {
			lastA := firstA + lenA - 1
			for _, lenB := range crossEdgeLens {
				for firstB := 0; firstB+lenB-1 < nT; firstB++ {
					lastB := firstB + lenB - 1
					take(ops.TryCrossExchange(st, s, firstA, lastA, t, firstB, lastB))
				}
			}
		}
	}
	for rA := 0; rA < nS; rA++ {
		for _, lenB := range crossEdgeLens {
			for firstB := 0; firstB+lenB-1 < nT; firstB++ {
				lastB := firstB + lenB - 1
				take(ops.TryMixedExchange(st, s, rA, t, firstB, lastB))
			}
		}
	}
	for rA := 0; rA < nS; rA++ {
		for rB := 0; rB < nT; rB++ {
			take(ops.TrySwapStar(st, s, rA, t, rB))
		}
	}
	for cutA := 0; cutA <= nS; cutA++ {
		for cutB := 0; cutB <= nT; cutB++ {
			take(ops.TryTwoOpt(st, s, cutA, t, cutB))
			take(ops.TryReverseTwoOpt(st, s, cutA, t, cutB))
		}
	}
	take(ops.TryRouteExchange(st, s, t))

	if del := st.MatchingDeliveryRank[s]; del != nil {
		for pRank, dRank := range del {
			if dRank >= 0 {
				take(ops.TryPDShift(st, s, pRank, dRank, t))
			}
		}
	}

	return best
}

// bestRouteSplitMove scans every (vSrc, vFirst, vSecond, splitRank)
// combination with vFirst and vSecond currently empty, the enumeration
// RouteSplit's own constructor leaves to its caller.
func bestRouteSplitMove(st *solutionstate.State) ops.Move {
	nv := len(st.Problem.Vehicles)
	var empties []int
	for v := 0; v < nv; v++ {
		if st.Routes[v].Raw().Len() == 0 {
			empties = append(empties, v)
		}
	}

	var best ops.Move
	for vSrc := 0; vSrc < nv; vSrc++ {
		n := st.Routes[vSrc].Raw().Len()
		if n < 2 {
			continue
		}
		for _, vFirst := range empties {
			if vFirst == vSrc {
				continue
			}
			for _, vSecond := range empties {
				if vSecond == vSrc || vSecond == vFirst {
					continue
				}
				for splitRank := 1; splitRank < n; splitRank++ {
					m, ok := ops.TryRouteSplit(st, vSrc, splitRank, vFirst, vSecond)
					if !ok || !improves(m) {
						continue
					}
					if best == nil || moveBetter(m, best) {
						best = m
					}
				}
			}
		}
	}
	return best
}

// verifyStrictRecompute rebuilds each of touched's vehicles from scratch
// against a fresh State built from st's own routes, and panics if the
// incrementally maintained RouteEval disagrees — the debug check
// SPEC_FULL.md §C calls StrictRecompute.
func verifyStrictRecompute(st *solutionstate.State, touched []int, opName string) {
	for _, v := range touched {
		scratch := solutionstate.New(st.Problem)
		scratch.Routes[v].SetSequence(append([]int(nil), st.Routes[v].Raw().JobRanks()...))
		scratch.RebuildVehicle(v)
		if scratch.RouteEval[v] != st.RouteEval[v] {
			panic(fmt.Sprintf("search: StrictRecompute mismatch after %s on vehicle %d: cached %+v, recomputed %+v",
				opName, v, st.RouteEval[v], scratch.RouteEval[v]))
		}
	}
}
