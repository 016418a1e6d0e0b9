package model

// TravelMatrix is the narrow external interface through which the core
// consumes distance/duration/cost data (spec §6). The core never builds,
// caches, or re-derives a matrix itself — implementations are square,
// from==to returns zero, and no triangle-inequality is assumed.
type TravelMatrix interface {
	// Distance returns a non-negative number of meters.
	Distance(from, to int) int64
	// Duration returns a non-negative number of seconds, before any
	// vehicle-specific speed scaling is applied.
	Duration(from, to int) int64
	// Cost returns a non-negative base cost unit, before any vehicle-specific
	// cost coefficients are applied.
	Cost(from, to int) int64
}

// Eval computes the deterministic, idempotent travel evaluation for vehicle
// v traveling from location `from` to location `to` (spec §4.1). Duration is
// scaled by the vehicle's speed factor; cost folds in the vehicle's
// per-kilometer and per-hour coefficients on top of the matrix's own base
// cost. Fixed cost is not included here — it is added once per non-empty
// route, not per edge (spec §4.5).
func (p *Problem) Eval(vehicleRank, from, to int) Eval {
	veh := p.Vehicles[vehicleRank]
	dist := p.Matrix.Distance(from, to)
	rawDur := p.Matrix.Duration(from, to)
	dur := veh.ScaleDuration(rawDur)
	baseCost := p.Matrix.Cost(from, to)
	cost := baseCost + (veh.PerKmCost*dist)/1000 + (veh.PerHourCost*dur)/3600
	return Eval{Cost: cost, Duration: dur, Distance: dist}
}
