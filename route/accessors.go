package route

import "github.com/vrpstack/optiroute/model"

// DeliveryAmountRange returns the sum of DeliveryAmount over ranks
// [first, last] (inclusive).
func (r *RawRoute) DeliveryAmountRange(first, last int) model.Amount {
	return r.BwdDeliveryLoadAt(first).Sub(r.BwdDeliveryLoadAt(last + 1))
}

// PickupAmountRange returns the sum of PickupAmount over ranks
// [first, last] (inclusive).
func (r *RawRoute) PickupAmountRange(first, last int) model.Amount {
	return r.FwdPickupLoadAt(last).Sub(r.FwdPickupLoadAt(first - 1))
}

// MaxLoadAfterSplit returns the peak combined load over ranks [rank, end],
// useful when an operator considers cutting the route at `rank` (e.g.
// RouteSplit).
func (r *RawRoute) MaxLoadAfterSplit(rank int) model.Amount {
	dims := r.problem.AmountDims
	peak := model.ZeroAmount(dims)
	for i := rank; i < len(r.jobRanks); i++ {
		peak = peak.Max(r.fwdPickupLoad[i].Add(r.bwdDeliveryLoad[i]))
	}
	return peak
}

// MaxLoadBeforeSplit returns the peak combined load over ranks [0, rank).
func (r *RawRoute) MaxLoadBeforeSplit(rank int) model.Amount {
	dims := r.problem.AmountDims
	peak := model.ZeroAmount(dims)
	for i := 0; i < rank && i < len(r.jobRanks); i++ {
		peak = peak.Max(r.fwdPickupLoad[i].Add(r.bwdDeliveryLoad[i]))
	}
	return peak
}
