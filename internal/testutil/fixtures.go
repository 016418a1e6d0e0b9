// Package testutil generates small, deterministic, reproducible travel
// matrices and problem fixtures for the solver's table-driven and
// scenario tests.
//
// DenseMatrix and NewComplete are grounded on the teacher pack's
// builder.Complete constructor (github.com/katalvlaran/lvlath/builder,
// impl_complete.go): the same "emit every unordered pair {i,j}, i<j,
// exactly once, with a deterministic RNG-driven weight" recipe, rewritten
// over a plain int64 matrix instead of a *core.Graph since the core here
// never needs a mutable graph ADT (see DESIGN.md). NewRandomSparse starts
// from a NewComplete matrix and lowers the weight of a number of extra
// random pairs, producing matrices that are complete (the travel matrix
// contract requires every pair to resolve) but whose weights are not
// uniform, approximating a sparse road network's triangle-inequality
// violations.
package testutil

import "math/rand"

// DenseMatrix is a square, symmetric, in-memory travel matrix implementing
// model.TravelMatrix (cost == distance, duration derived from distance at a
// fixed nominal speed). It exists only for tests; the real travel-matrix
// provider is an external collaborator (spec §1, §6).
type DenseMatrix struct {
	n     int
	dist  []int64 // row-major n*n
	speed int64   // meters per second, nominal
}

// NewComplete builds an n-vertex complete symmetric DenseMatrix with
// deterministic weights in [minW, maxW], seeded by seed. Diagonal entries
// are always zero.
func NewComplete(n int, minW, maxW int64, seed int64) *DenseMatrix {
	m := &DenseMatrix{n: n, dist: make([]int64, n*n), speed: 10}
	if n <= 1 || maxW < minW {
		return m
	}
	r := rand.New(rand.NewSource(seed))
	span := maxW - minW
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := minW + r.Int63n(span+1)
			m.set(i, j, w)
			m.set(j, i, w)
		}
	}
	return m
}

// NewRandomSparse builds NewComplete(n, minW, maxW, seed), then draws
// extraEdges random vertex pairs (from a second RNG seeded with seed+1),
// skipping pairs of a vertex with itself, and gives each drawn pair a fresh
// weight in [minW, maxW] when that weight is lower than its current one —
// cheap and deterministic, and sufficient to give test problems a
// non-uniform, non-metric-exact cost landscape without requiring a real
// road network.
func NewRandomSparse(n int, minW, maxW int64, extraEdges int, seed int64) *DenseMatrix {
	m := NewComplete(n, minW, maxW, seed)
	if n <= 1 {
		return m
	}
	r := rand.New(rand.NewSource(seed + 1))
	span := maxW - minW
	for i := 0; i < extraEdges; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		w := minW + r.Int63n(span+1)
		if w < m.Distance(u, v) {
			m.set(u, v, w)
			m.set(v, u, w)
		}
	}
	return m
}

func (m *DenseMatrix) set(i, j int, w int64) { m.dist[i*m.n+j] = w }

func (m *DenseMatrix) Distance(from, to int) int64 {
	if from == to {
		return 0
	}
	return m.dist[from*m.n+to]
}

func (m *DenseMatrix) Duration(from, to int) int64 {
	if from == to {
		return 0
	}
	return m.Distance(from, to) / m.speed
}

func (m *DenseMatrix) Cost(from, to int) int64 {
	return m.Distance(from, to)
}

// N reports the matrix dimension.
func (m *DenseMatrix) N() int { return m.n }
