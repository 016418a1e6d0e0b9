package tspfix

import "math"

// hungarianAssign solves the square assignment problem over cost (n x n):
// find a permutation p minimizing sum(cost[i][p[i]]), via the classical
// O(n^3) potentials method (Kuhn-Munkres), 1-indexed internally to keep
// the "unassigned" sentinel at 0. This is the same algorithm and variable
// naming (u, v, p, way) used by a Hungarian-method assignment solver seen
// elsewhere in the retrieved corpus, adapted from float fares to int64
// routing costs.
func hungarianAssign(cost [][]int64) []int {
	n := len(cost)
	const inf = int64(math.MaxInt64 / 4)

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := 1; j <= n; j++ {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			j1 := -1
			delta := inf
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	res := make([]int, n)
	for j := 1; j <= n; j++ {
		res[p[j]-1] = j - 1
	}
	return res
}

// greedyMatch pairs the vertices in odd by repeatedly taking the last
// remaining vertex and its nearest (by w) still-unpaired partner, adding
// the pair as a parallel edge into adj. Mirrors the teacher's
// tsp.greedyMatch, generalized from a matrix.Matrix distance source to
// the w(i, j int) int64 callback used throughout this package.
func greedyMatch(odd []int, w func(i, j int) int64, adj [][]int) {
	rem := make([]int, len(odd))
	copy(rem, odd)

	for len(rem) > 1 {
		last := len(rem) - 1
		u := rem[last]
		rem = rem[:last]

		bestIdx := -1
		var bestW int64
		for i, v := range rem {
			cw := w(u, v)
			if bestIdx < 0 || cw < bestW || (cw == bestW && v < rem[bestIdx]) {
				bestW = cw
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		last = len(rem) - 1
		v := rem[bestIdx]
		rem[bestIdx] = rem[last]
		rem = rem[:last]

		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
}

// minimumWeightMatching augments adj with a matching over the odd-degree
// vertices. When opts selects HungarianMatch, it first runs assignment on
// the odd x odd cost submatrix (self-pairing forbidden via a large
// diagonal), accepts every mutually-consistent pair the assignment
// produces (p(p(i))==i), and hands whatever vertices that leaves
// unresolved — the "residual non-symmetric matches" spec §4.7 calls out —
// to greedyMatch. GreedyMatch skips the assignment stage entirely.
func minimumWeightMatching(odd []int, w func(i, j int) int64, adj [][]int, opts Options) {
	k := len(odd)
	if k == 0 {
		return
	}
	if opts.Matching == GreedyMatch || k < 2 {
		greedyMatch(odd, w, adj)
		return
	}

	const inf = int64(math.MaxInt64 / 4)
	cost := make([][]int64, k)
	for i := 0; i < k; i++ {
		cost[i] = make([]int64, k)
		for j := 0; j < k; j++ {
			if i == j {
				cost[i][j] = inf
				continue
			}
			cost[i][j] = w(odd[i], odd[j])
		}
	}
	assign := hungarianAssign(cost)

	paired := make([]bool, k)
	var residual []int
	for i := 0; i < k; i++ {
		if paired[i] {
			continue
		}
		j := assign[i]
		if j >= 0 && j < k && assign[j] == i && j != i {
			adj[odd[i]] = append(adj[odd[i]], odd[j])
			adj[odd[j]] = append(adj[odd[j]], odd[i])
			paired[i] = true
			paired[j] = true
		} else {
			residual = append(residual, odd[i])
		}
	}
	if len(residual) > 0 {
		greedyMatch(residual, w, adj)
	}
}
