package tspfix

// shortcutEulerianToHamiltonian skips revisits in euler to produce a
// permutation of {0..n-1} (each vertex exactly once), preserving visit
// order — the standard Christofides shortcut step, ported from the
// teacher's tsp.ShortcutEulerianToHamiltonian. The result is an open
// sequence here (not a closed tour with a repeated first/last element);
// attach.go is responsible for turning it into a route-shaped path.
func shortcutEulerianToHamiltonian(euler []int, n int) []int {
	visited := make([]bool, n)
	cycle := make([]int, 0, n)
	for _, v := range euler {
		if v < 0 || v >= n || visited[v] {
			continue
		}
		visited[v] = true
		cycle = append(cycle, v)
	}
	return cycle
}

// reverseInPlace reverses the inclusive segment s[i..j].
func reverseInPlace(s []int, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
