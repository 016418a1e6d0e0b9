package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
)

func buildProblem(t *testing.T, capacity int64) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(5, 1, 10, 1)
	start := model.FromIndex(0)
	jobs := make([]model.JobInput, 0, 4)
	for i := 1; i <= 4; i++ {
		jobs = append(jobs, model.JobInput{
			ID:             "j",
			Location:       model.FromIndex(i),
			DeliveryAmount: model.NewAmount(3),
			TimeWindows:    []model.TimeWindow{{Start: 0, End: 100000}},
			Type:           model.Single,
		})
	}
	vehicles := []model.VehicleInput{{
		ID:            "v0",
		StartLocation: &start,
		EndLocation:   &start,
		Capacity:      model.NewAmount(capacity),
		Shift:         model.TimeWindow{Start: 0, End: 100000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestRawRouteInsertRemove(t *testing.T) {
	p := buildProblem(t, 100)
	r := route.New(p, 0)
	assert.True(t, r.Empty())

	r.Insert(0, 0)
	r.Insert(1, 1)
	assert.Equal(t, []int{0, 1}, r.JobRanks())

	removed := r.Remove(0, 1)
	assert.Equal(t, []int{0}, removed)
	assert.Equal(t, []int{1}, r.JobRanks())
}

func TestRawRouteLoadProfileCapacity(t *testing.T) {
	p := buildProblem(t, 10) // each job delivers 3; capacity 10 allows at most 3 jobs
	r := route.New(p, 0)
	r.Insert(0, 0)
	r.Insert(1, 1)
	r.Insert(2, 2)
	// max combined load should be 9 (3 jobs x delivery 3, all onboard from start)
	assert.Equal(t, model.NewAmount(9), r.MaxLoad())

	// adding a 4th delivery job of amount 3 would push to 12 > 10
	ok := r.IsValidAdditionForCapacityMargins(model.NewAmount(0), model.NewAmount(3), 0, 0)
	assert.False(t, ok)
}

func TestRawRouteReplace(t *testing.T) {
	p := buildProblem(t, 100)
	r := route.New(p, 0)
	r.Insert(0, 0)
	r.Insert(1, 1)
	r.Insert(2, 2)

	removed := r.Replace(1, 1, []int{3})
	assert.Equal(t, []int{1}, removed)
	assert.Equal(t, []int{0, 3, 2}, r.JobRanks())
}

func TestDeliveryAmountRange(t *testing.T) {
	p := buildProblem(t, 100)
	r := route.New(p, 0)
	r.Insert(0, 0)
	r.Insert(1, 1)
	r.Insert(2, 2)
	assert.Equal(t, model.NewAmount(6), r.DeliveryAmountRange(0, 1))
	assert.Equal(t, model.NewAmount(9), r.DeliveryAmountRange(0, 2))
}
