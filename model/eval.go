package model

import "math"

// Eval is the triple (cost, duration, distance) used as the primary
// incremental unit throughout the solver (spec §3). Cost is the primary
// comparison key; ties are broken by duration, then distance. Costs are
// always integers — there is no floating-point comparison on the hot path
// (spec §4.4 "Determinism").
type Eval struct {
	Cost     int64
	Duration int64
	Distance int64
}

// NoEval is the sentinel denoting the absence of a valid evaluation (e.g. no
// feasible insertion position exists). Its Cost is math.MaxInt64/2 rather
// than math.MaxInt64 so that a handful of NoEvals can still be summed or
// subtracted without signed overflow; any comparison against a real Eval
// still resolves correctly since no feasible route ever approaches that cost.
var NoEval = Eval{Cost: math.MaxInt64 / 2, Duration: math.MaxInt64 / 2, Distance: math.MaxInt64 / 2}

// IsNoEval reports whether e is the NoEval sentinel.
func (e Eval) IsNoEval() bool { return e.Cost >= NoEval.Cost }

// Add returns the pointwise sum e+o.
func (e Eval) Add(o Eval) Eval {
	return Eval{Cost: e.Cost + o.Cost, Duration: e.Duration + o.Duration, Distance: e.Distance + o.Distance}
}

// Sub returns the pointwise difference e-o.
func (e Eval) Sub(o Eval) Eval {
	return Eval{Cost: e.Cost - o.Cost, Duration: e.Duration - o.Duration, Distance: e.Distance - o.Distance}
}

// Neg returns the pointwise negation of e.
func (e Eval) Neg() Eval {
	return Eval{Cost: -e.Cost, Duration: -e.Duration, Distance: -e.Distance}
}

// Less reports whether e is strictly better (cheaper) than o under the
// lexicographic order: cost, then duration, then distance.
func (e Eval) Less(o Eval) bool {
	if e.Cost != o.Cost {
		return e.Cost < o.Cost
	}
	if e.Duration != o.Duration {
		return e.Duration < o.Duration
	}
	return e.Distance < o.Distance
}

// LessEq reports whether e is no worse than o under the same order as Less.
func (e Eval) LessEq(o Eval) bool {
	return e == o || e.Less(o)
}

// Zero is the additive identity.
var ZeroEval = Eval{}
