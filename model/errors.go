package model

import "errors"

// Configuration errors are fatal and surfaced to the caller at construction
// time (spec §7); they never occur mid-solve.
var (
	// ErrDimensionMismatch indicates two Amounts (or an Amount and a
	// vehicle's capacity) do not share the same number of dimensions.
	ErrDimensionMismatch = errors.New("model: amount dimension mismatch")

	// ErrVehicleNoLocation indicates a vehicle has neither a start nor an
	// end location; at least one is required.
	ErrVehicleNoLocation = errors.New("model: vehicle has no start or end location")

	// ErrShipmentAmountMismatch indicates a pickup's amount does not equal
	// its matching delivery's amount.
	ErrShipmentAmountMismatch = errors.New("model: pickup/delivery amount mismatch")

	// ErrInconsistentBreaks indicates a vehicle's break windows are
	// internally contradictory (e.g. a break window that ends before it
	// starts, or a break duration that cannot fit in any of its windows).
	ErrInconsistentBreaks = errors.New("model: inconsistent break time windows")

	// ErrBadShipmentAdjacency indicates a pickup job is not immediately
	// followed by its delivery in the job table, violating the sole
	// pairing invariant (spec §3).
	ErrBadShipmentAdjacency = errors.New("model: pickup not immediately followed by its delivery")

	// ErrNoTimeWindows indicates a job was constructed with zero time
	// windows; every job must be reachable in at least one window.
	ErrNoTimeWindows = errors.New("model: job has no time windows")

	// ErrNegativeDuration indicates a negative service, setup, or travel
	// duration was supplied.
	ErrNegativeDuration = errors.New("model: negative duration")

	// ErrMixedLocationModes indicates a Problem mixed index-based and
	// coordinate-based Locations; a single Problem must use one addressing
	// mode consistently (see location.go).
	ErrMixedLocationModes = errors.New("model: mixed index-based and coordinate-based locations")
)
