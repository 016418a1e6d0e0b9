package route

import "github.com/vrpstack/optiroute/model"

// IsValidAdditionForCapacity is the O(1) conservative check (spec §4.2):
// given the pickup/delivery amount a single job would add at `rank`
// (0..Len(), the position it would be inserted at), report whether adding
// it anywhere in the route is safe against the vehicle's capacity using
// only the precomputed aggregate slacks. It is conservative — it can reject
// a position that the exact per-rank check (IsValidAdditionForCapacityMargins)
// would accept — and is meant as a cheap pre-filter.
func (r *RawRoute) IsValidAdditionForCapacity(pickup, delivery model.Amount, rank int) bool {
	vehCap := r.problem.Vehicles[r.vehicleRank].Capacity
	combined := pickup.Add(delivery).Add(r.maxLoad)
	return combined.LessEq(vehCap)
}

// IsValidAdditionForCapacityMargins is the exact, rank-aware check (spec
// §4.2): it asks whether inserting a pickup amount and delivery amount as a
// single unit *before* old rank `first`, pushing the route's existing
// content from `first` onward to the right (nothing removed — this is
// insertion, not replacement; see IsValidAdditionForCapacityInclusion for
// the splice/replace variant), keeps every rank's combined load within
// capacity: the new rank itself, every earlier rank (which now also carries
// `delivery`) and every later rank (which now also carries `pickup`).
// `last` is accepted for symmetry with the multi-job callers and is not
// read.
func (r *RawRoute) IsValidAdditionForCapacityMargins(pickup, delivery model.Amount, first, last int) bool {
	vehCap := r.problem.Vehicles[r.vehicleRank].Capacity
	_ = last

	fwdBefore := r.FwdPickupLoadAt(first - 1)
	bwdAfter := r.BwdDeliveryLoadAt(first)

	atInsertion := fwdBefore.Add(pickup).Add(delivery).Add(bwdAfter)
	if !atInsertion.LessEq(vehCap) {
		return false
	}
	if first > 0 && !r.MaxLoadBeforeSplit(first).Add(delivery).LessEq(vehCap) {
		return false
	}
	return first >= len(r.jobRanks) || r.MaxLoadAfterSplit(first).Add(pickup).LessEq(vehCap)
}

// IsValidAdditionForCapacityInclusion checks whether splicing the ordered
// job list `jobs` (dense indices, already known individually
// capacity-feasible in isolation) into the route in place of
// [firstRank, lastRank] keeps every rank within capacity. It walks the new
// jobs once building a local forward pickup / backward delivery profile
// seeded by the surrounding route's boundary loads, then checks the peak
// load of the kept ranks on each side against the change in delivery
// (ranks before the range) or pickup (ranks after it) that the splice
// causes, which scans the rest of the route once.
func (r *RawRoute) IsValidAdditionForCapacityInclusion(jobs []int, firstRank, lastRank int) bool {
	vehCap := r.problem.Vehicles[r.vehicleRank].Capacity

	fwdBefore := r.FwdPickupLoadAt(firstRank - 1)
	bwdAfter := r.BwdDeliveryLoadAt(lastRank + 1)

	// local forward pickup running sum seeded by fwdBefore
	localFwd := make([]model.Amount, len(jobs))
	running := fwdBefore
	for i, jIdx := range jobs {
		running = running.Add(r.problem.Jobs[jIdx].PickupAmount)
		localFwd[i] = running
	}
	newPickup := running.Sub(fwdBefore)
	// local backward delivery running sum seeded by bwdAfter
	localBwd := make([]model.Amount, len(jobs))
	running = bwdAfter
	for i := len(jobs) - 1; i >= 0; i-- {
		running = running.Add(r.problem.Jobs[jobs[i]].DeliveryAmount)
		localBwd[i] = running
	}
	newDelivery := running.Sub(bwdAfter)
	for i := range jobs {
		if !localFwd[i].Add(localBwd[i]).LessEq(vehCap) {
			return false
		}
	}
	deltaDelivery := newDelivery.Sub(r.DeliveryAmountRange(firstRank, lastRank))
	deltaPickup := newPickup.Sub(r.PickupAmountRange(firstRank, lastRank))
	if firstRank > 0 && !r.MaxLoadBeforeSplit(firstRank).Add(deltaDelivery).LessEq(vehCap) {
		return false
	}
	return lastRank+1 >= len(r.jobRanks) || r.MaxLoadAfterSplit(lastRank+1).Add(deltaPickup).LessEq(vehCap)
}
