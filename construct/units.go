package construct

import "github.com/vrpstack/optiroute/model"

// unit is a single job, or a pickup paired with its adjacent delivery,
// treated as one insertion candidate (spec §4.5 "For pickup/delivery
// pairs..."). Simplification from the full spec: a shipment is only ever
// considered for insertion as an adjacent (pickup_rank, pickup_rank+1)
// pair, not the full combinatorial sweep over every pickup_rank <=
// delivery_rank placement; see DESIGN.md.
type unit struct {
	jobs []int
}

func (u unit) primaryJob(problem *model.Problem) model.Job {
	return problem.Jobs[u.jobs[0]]
}

func buildUnits(problem *model.Problem) []unit {
	units := make([]unit, 0, len(problem.Jobs))
	for i := 0; i < len(problem.Jobs); i++ {
		j := problem.Jobs[i]
		switch {
		case j.IsDelivery():
			continue // consumed by the preceding pickup
		case j.IsPickup():
			units = append(units, unit{jobs: []int{i, i + 1}})
		default:
			units = append(units, unit{jobs: []int{i}})
		}
	}
	return units
}

func (u unit) skillCompatible(problem *model.Problem, vehRank int) bool {
	for _, j := range u.jobs {
		if !problem.Compat.VehicleOkWithJob[vehRank][j] {
			return false
		}
	}
	return true
}
