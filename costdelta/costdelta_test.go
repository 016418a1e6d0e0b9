package costdelta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/costdelta"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
)

func buildCostProblem(t *testing.T) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(4, 10, 10, 1) // every edge 10
	start := model.FromIndex(0)
	jobs := make([]model.JobInput, 0, 3)
	for i := 1; i <= 3; i++ {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 100000}}, Type: model.Single,
		})
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 100000},
		FixedCost: 50,
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestRemovalCostDeltaEmptiesRouteFoldsFixedCost(t *testing.T) {
	p := buildCostProblem(t)
	r := route.New(p, 0)
	r.Insert(0, 0) // depot -> j0 -> depot, cost 10+10=20, no fixed cost folded by Insert itself

	delta := costdelta.RemovalCostDelta(r, 0, 0)
	// removing the only job: old cost 20 -> new cost 0, and the vehicle's
	// fixed cost (50) is no longer owed since the route becomes empty.
	assert.Equal(t, int64(-20-50), delta.Cost)
}

func TestAdditionCostDeltaInsertIntoEmptyRouteAddsFixedCost(t *testing.T) {
	p := buildCostProblem(t)
	r := route.New(p, 0)

	straight, _ := costdelta.AdditionCostDelta(r, 0, -1, []int{0})
	// depot->j0->depot = 20, plus the vehicle's fixed cost since the route
	// was empty before.
	assert.Equal(t, int64(20+50), straight.Cost)
}

func TestInPlaceDeltaCostSameLengthNoFixedCost(t *testing.T) {
	p := buildCostProblem(t)
	r := route.New(p, 0)
	r.Insert(0, 0)

	delta := costdelta.InPlaceDeltaCost(r, 0, 1)
	// swapping job0 for job1 at the same rank: cost unchanged (symmetric
	// complete matrix, every edge 10), no fixed-cost change.
	assert.Equal(t, int64(0), delta.Cost)
}
