package tspfix

import (
	"time"

	"github.com/vrpstack/optiroute/model"
)

// routeCost evaluates jobs (global job IDs) as vehicle vehRank's complete
// route, the same formula ops.sequenceEval uses, duplicated locally so
// this package stays decoupled from ops.
func routeCost(problem *model.Problem, vehRank int, jobs []int) int64 {
	veh := problem.Vehicles[vehRank]
	loc := func(i int) int { return problem.Jobs[jobs[i]].LocationIndex }
	var total int64
	n := len(jobs)
	if n == 0 {
		return 0
	}
	if veh.HasStart() {
		total += problem.Eval(vehRank, veh.StartLocationIndex, loc(0)).Cost
	}
	for i := 0; i+1 < n; i++ {
		total += problem.Eval(vehRank, loc(i), loc(i+1)).Cost
	}
	if veh.HasEnd() {
		total += problem.Eval(vehRank, loc(n-1), veh.EndLocationIndex).Cost
	}
	return total
}

// improve runs first-improvement 2-opt, or-opt (segments of length
// 1/2/3, each direction), and relocate passes over jobs until a full
// sweep finds no improving move or the deadline expires, mirroring the
// teacher's tsp.TwoOpt restart-on-improvement structure generalized to
// the extra neighborhoods spec §4.7 names. opts.MaxImproveIters caps the
// total number of accepted moves across every neighborhood; 0 is
// unlimited.
func improve(problem *model.Problem, vehRank int, jobs []int, opts Options, deadline time.Time) ([]int, error) {
	n := len(jobs)
	if n < 3 {
		return jobs, nil
	}
	cur := append([]int(nil), jobs...)
	cost := routeCost(problem, vehRank, cur)

	hasDeadline := !deadline.IsZero()
	accepted := int64(0)
	step := 0
	checkDeadline := func() bool {
		step++
		if !hasDeadline || step&255 != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	for {
		improved := false

		// 2-opt: reverse segment [i..k].
		for i := 0; i+1 < n && !improved; i++ {
			for k := i + 1; k < n && !improved; k++ {
				cand := append([]int(nil), cur...)
				reverseInPlace(cand, i, k)
				if c := routeCost(problem, vehRank, cand); c < cost {
					cur, cost, improved = cand, c, true
					accepted++
				}
				if checkDeadline() {
					return cur, ErrTimeLimit
				}
			}
		}
		if improved {
			if opts.MaxImproveIters > 0 && accepted >= opts.MaxImproveIters {
				return cur, nil
			}
			continue
		}

		// Or-opt: relocate a contiguous segment of length segLen elsewhere
		// (segLen 1 is a pure relocate of a single job; 2 and 3 move a
		// short chain), trying both orientations of the moved segment.
		for segLen := 1; segLen <= 3 && !improved; segLen++ {
			if segLen >= n {
				break
			}
			for start := 0; start+segLen <= n && !improved; start++ {
				seg := append([]int(nil), cur[start:start+segLen]...)
				rest := append(append([]int(nil), cur[:start]...), cur[start+segLen:]...)
				for pos := 0; pos <= len(rest) && !improved; pos++ {
					for _, s := range [][]int{seg, reversedCopy(seg)} {
						cand := make([]int, 0, n)
						cand = append(cand, rest[:pos]...)
						cand = append(cand, s...)
						cand = append(cand, rest[pos:]...)
						if c := routeCost(problem, vehRank, cand); c < cost {
							cur, cost, improved = cand, c, true
							accepted++
							break
						}
						if checkDeadline() {
							return cur, ErrTimeLimit
						}
					}
				}
			}
		}
		if improved {
			if opts.MaxImproveIters > 0 && accepted >= opts.MaxImproveIters {
				return cur, nil
			}
			continue
		}

		break
	}

	return cur, nil
}

func reversedCopy(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
