package tspfix

// christofidesCycle builds an approximate minimum Hamiltonian cycle over
// job-indices {0..n-1} using symmetrized edge weights w: MST (Kruskal),
// minimum-weight matching on the MST's odd-degree vertices, Eulerian
// circuit over their union (Hierholzer), then shortcut to a Hamiltonian
// cycle (spec §4.7). Returns a permutation of {0..n-1} representing the
// cyclic visiting order (length n; no repeated closing element).
func christofidesCycle(n int, w func(i, j int) int64, opts Options) ([]int, error) {
	if n <= 2 {
		cyc := make([]int, n)
		for i := range cyc {
			cyc[i] = i
		}
		return cyc, nil
	}

	adj, err := kruskalMST(n, w)
	if err != nil {
		return nil, err
	}

	odd := make([]int, 0, n/2+1)
	for v := 0; v < n; v++ {
		if len(adj[v])%2 == 1 {
			odd = append(odd, v)
		}
	}
	minimumWeightMatching(odd, w, adj, opts)

	euler := eulerianCircuit(adj, 0)
	cycle := shortcutEulerianToHamiltonian(euler, n)
	if len(cycle) != n {
		return nil, ErrDisconnected
	}
	return cycle, nil
}
