package tspfix

// openPath turns cyclic job-index order cycle into the open path that is
// cheapest to attach to the vehicle's fixed start/end locations. A vehicle
// route has no "return to depot" edge the way classical Christofides
// assumes — start and end are themselves never members of the job set —
// so we choose which cyclic edge to break (and which of its two endpoints
// faces the start versus the end) by trying every break point and both
// orientations, keeping whichever minimizes startCost(first) +
// internalCost + endCost(last). internalCost is identical across
// orientations of the same break point under the symmetrized weight w
// used to build the cycle, so only n*2 cheap candidates need evaluating.
func openPath(cycle []int, w func(i, j int) int64, startCost, endCost func(jobIdx int) int64) []int {
	n := len(cycle)
	if n <= 1 {
		return append([]int(nil), cycle...)
	}

	total := int64(0)
	edgeW := make([]int64, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edgeW[i] = w(cycle[i], cycle[j])
		total += edgeW[i]
	}

	bestFound := false
	var bestCost int64
	bestBreak := 0
	bestReversed := false

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		internal := total - edgeW[i]

		// Orientation A: path runs cycle[j] ... cycle[i] (forward).
		costA := internal + startCost(cycle[j]) + endCost(cycle[i])
		// Orientation B: path runs cycle[i] ... cycle[j] (reversed).
		costB := internal + startCost(cycle[i]) + endCost(cycle[j])

		if !bestFound || costA < bestCost {
			bestFound, bestCost, bestBreak, bestReversed = true, costA, i, false
		}
		if costB < bestCost {
			bestCost, bestBreak, bestReversed = costB, i, true
		}
	}

	path := make([]int, n)
	j := (bestBreak + 1) % n
	for k := 0; k < n; k++ {
		path[k] = cycle[(j+k)%n]
	}
	if bestReversed {
		reverseInPlace(path, 0, n-1)
	}
	return path
}
