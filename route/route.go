package route

import "github.com/vrpstack/optiroute/model"

// RawRoute is the ordered job sequence assigned to one vehicle, with its
// cached load profile (spec §3 "Route"). It is owned by the solver;
// operators borrow it for a single evaluate/apply cycle and never retain a
// reference past that (spec §9 "Design notes").
type RawRoute struct {
	problem     *model.Problem
	vehicleRank int

	// jobRanks[i] is the dense job index at route position i.
	jobRanks []int

	fwdPickupLoad   []model.Amount
	bwdDeliveryLoad []model.Amount

	maxLoad       model.Amount
	pickupSlack   model.Amount
	deliverySlack model.Amount
}

// New returns an empty RawRoute for the given vehicle.
func New(problem *model.Problem, vehicleRank int) *RawRoute {
	r := &RawRoute{problem: problem, vehicleRank: vehicleRank}
	r.recompute()
	return r
}

// Problem, VehicleRank, Len, JobRanks are read-only accessors.
func (r *RawRoute) Problem() *model.Problem   { return r.problem }
func (r *RawRoute) VehicleRank() int          { return r.vehicleRank }
func (r *RawRoute) Len() int                  { return len(r.jobRanks) }
func (r *RawRoute) Empty() bool               { return len(r.jobRanks) == 0 }
func (r *RawRoute) JobAt(rank int) int        { return r.jobRanks[rank] }
func (r *RawRoute) MaxLoad() model.Amount     { return r.maxLoad }
func (r *RawRoute) PickupSlack() model.Amount { return r.pickupSlack }
func (r *RawRoute) DeliverySlack() model.Amount {
	return r.deliverySlack
}

// JobRanks returns a defensive copy of the route's job sequence.
func (r *RawRoute) JobRanks() []int {
	cp := make([]int, len(r.jobRanks))
	copy(cp, r.jobRanks)
	return cp
}

// FwdPickupLoadAt / BwdDeliveryLoadAt expose the per-rank cache for the
// range-variant feasibility checks and for cost-delta helpers; -1 and Len()
// are valid "before first"/"after last" sentinels returning the zero Amount.
func (r *RawRoute) FwdPickupLoadAt(rank int) model.Amount {
	if rank < 0 {
		return model.ZeroAmount(r.problem.AmountDims)
	}
	return r.fwdPickupLoad[rank]
}

func (r *RawRoute) BwdDeliveryLoadAt(rank int) model.Amount {
	if rank >= len(r.jobRanks) {
		return model.ZeroAmount(r.problem.AmountDims)
	}
	return r.bwdDeliveryLoad[rank]
}

// Clone returns a deep copy with its own job sequence and load profile, so
// mutating the copy leaves the original unchanged.
func (r *RawRoute) Clone() *RawRoute {
	cp := &RawRoute{
		problem:     r.problem,
		vehicleRank: r.vehicleRank,
		jobRanks:    append([]int(nil), r.jobRanks...),
	}
	cp.recompute()
	return cp
}

// recompute rebuilds the entire load profile from jobRanks; called after
// every mutation (spec §4.2 "Every mutation recomputes the load profile").
func (r *RawRoute) recompute() {
	n := len(r.jobRanks)
	dims := r.problem.AmountDims
	r.fwdPickupLoad = make([]model.Amount, n)
	r.bwdDeliveryLoad = make([]model.Amount, n)

	running := model.ZeroAmount(dims)
	for i := 0; i < n; i++ {
		j := r.problem.Jobs[r.jobRanks[i]]
		running = running.Add(j.PickupAmount)
		r.fwdPickupLoad[i] = running
	}

	running = model.ZeroAmount(dims)
	for i := n - 1; i >= 0; i-- {
		j := r.problem.Jobs[r.jobRanks[i]]
		running = running.Add(j.DeliveryAmount)
		r.bwdDeliveryLoad[i] = running
	}

	maxLoad := model.ZeroAmount(dims)
	for i := 0; i < n; i++ {
		combined := r.fwdPickupLoad[i].Add(r.bwdDeliveryLoad[i])
		maxLoad = maxLoad.Max(combined)
	}
	r.maxLoad = maxLoad

	vehCap := r.problem.Vehicles[r.vehicleRank].Capacity
	lastFwd := model.ZeroAmount(dims)
	firstBwd := model.ZeroAmount(dims)
	if n > 0 {
		lastFwd = r.fwdPickupLoad[n-1]
		firstBwd = r.bwdDeliveryLoad[0]
	}
	r.pickupSlack = vehCap.Sub(lastFwd)
	r.deliverySlack = vehCap.Sub(firstBwd)
}

// Insert places jobIdx (a dense job index) at route position `position`
// (0 == head, Len() == tail); the caller must have already validated
// feasibility.
func (r *RawRoute) Insert(jobIdx int, position int) {
	jr := make([]int, 0, len(r.jobRanks)+1)
	jr = append(jr, r.jobRanks[:position]...)
	jr = append(jr, jobIdx)
	jr = append(jr, r.jobRanks[position:]...)
	r.jobRanks = jr
	r.recompute()
}

// InsertSlice places a contiguous slice of job indices at route position
// `position`, preserving slice order (used by edge/shipment moves).
func (r *RawRoute) InsertSlice(jobs []int, position int) {
	jr := make([]int, 0, len(r.jobRanks)+len(jobs))
	jr = append(jr, r.jobRanks[:position]...)
	jr = append(jr, jobs...)
	jr = append(jr, r.jobRanks[position:]...)
	r.jobRanks = jr
	r.recompute()
}

// Remove deletes `count` consecutive jobs starting at `position` and
// returns the removed dense job indices in their original order.
func (r *RawRoute) Remove(position int, count int) []int {
	removed := append([]int(nil), r.jobRanks[position:position+count]...)
	jr := make([]int, 0, len(r.jobRanks)-count)
	jr = append(jr, r.jobRanks[:position]...)
	jr = append(jr, r.jobRanks[position+count:]...)
	r.jobRanks = jr
	r.recompute()
	return removed
}

// Replace removes the contiguous range [firstRank, lastRank] (inclusive)
// and splices newJobs in its place, returning the removed dense job
// indices. newJobs may be a different length than the replaced range (spec
// §4.2 "replace(...)" is the general multi-job splice primitive every
// cross/exchange operator reduces to).
func (r *RawRoute) Replace(firstRank, lastRank int, newJobs []int) []int {
	removed := append([]int(nil), r.jobRanks[firstRank:lastRank+1]...)
	jr := make([]int, 0, len(r.jobRanks)-(lastRank-firstRank+1)+len(newJobs))
	jr = append(jr, r.jobRanks[:firstRank]...)
	jr = append(jr, newJobs...)
	jr = append(jr, r.jobRanks[lastRank+1:]...)
	r.jobRanks = jr
	r.recompute()
	return removed
}

// SetSequence replaces the entire job sequence (used by TSPFix and
// RouteExchange, which recompute the whole order at once).
func (r *RawRoute) SetSequence(jobs []int) {
	r.jobRanks = append([]int(nil), jobs...)
	r.recompute()
}
