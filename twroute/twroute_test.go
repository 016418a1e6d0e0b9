package twroute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
	"github.com/vrpstack/optiroute/twroute"
)

func buildTWProblem(t *testing.T, windows [][2]int64) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(4, 50, 50, 1) // every edge: distance 50, duration 50/speed(10)=5
	start := model.FromIndex(0)
	jobs := make([]model.JobInput, 0, len(windows))
	for i, w := range windows {
		jobs = append(jobs, model.JobInput{
			ID:              "j",
			Location:        model.FromIndex(i + 1),
			DeliveryAmount:  model.NewAmount(1),
			ServiceDuration: 2,
			TimeWindows:     []model.TimeWindow{{Start: w[0], End: w[1]}},
			Type:            model.Single,
		})
	}
	vehicles := []model.VehicleInput{{
		ID:            "v0",
		StartLocation: &start,
		EndLocation:   &start,
		Capacity:      model.NewAmount(10),
		Shift:         model.TimeWindow{Start: 0, End: 1000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestTWRouteFeasibleSchedule(t *testing.T) {
	p := buildTWProblem(t, [][2]int64{{0, 1000}, {0, 1000}})
	r := route.New(p, 0)
	r.Insert(0, 0)
	r.Insert(1, 1)
	tw := twroute.New(r)
	require.True(t, tw.Feasible())
	// depot(0) -> job0(loc1): duration 5, arrives at 5, window [0,1000) admits.
	assert.Equal(t, int64(5), tw.Earliest(0))
	// depart job0 at 5+2=7, travel 5 to job1: arrives 12.
	assert.Equal(t, int64(12), tw.Earliest(1))
	for r := 0; r < 2; r++ {
		assert.LessOrEqual(t, tw.Earliest(r), tw.Latest(r))
	}
}

func TestTWRouteInfeasibleWindow(t *testing.T) {
	p := buildTWProblem(t, [][2]int64{{0, 2}}) // window closes before arrival at t=5
	r := route.New(p, 0)
	r.Insert(0, 0)
	tw := twroute.New(r)
	assert.False(t, tw.Feasible())
}

func TestIsValidAdditionForTWInsertAcceptsInWindowArrival(t *testing.T) {
	p := buildTWProblem(t, [][2]int64{{0, 1000}})
	r := route.New(p, 0)
	tw := twroute.New(r)
	require.True(t, tw.Feasible())

	// job 0 has a window [0,1000); inserting it at the (empty) route's head
	// should be valid.
	assert.True(t, tw.IsValidAdditionForTWInsert([]int{0}, 0))
}

func TestIsValidAdditionForTWInsertRejectsWhenBreakCannotFit(t *testing.T) {
	mat := testutil.NewComplete(2, 50, 50, 1) // every edge: distance 50, duration 50/speed(10)=5
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "j0", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
			ServiceDuration: 2, TimeWindows: []model.TimeWindow{{Start: 0, End: 12}}, Type: model.Single},
	}
	vehicles := []model.VehicleInput{{
		ID:            "v0",
		StartLocation: &start,
		EndLocation:   &start,
		Capacity:      model.NewAmount(10),
		Shift:         model.TimeWindow{Start: 0, End: 1000},
		// Always available, so the forward pass greedily takes it
		// before departing the depot, the same way Rebuild's runForward
		// does once the insertion is actually applied.
		Breaks: []model.Break{{Duration: 10, Windows: []model.TimeWindow{{Start: 0, End: 1000}}}},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	r := route.New(p, 0)
	tw := twroute.New(r)
	require.True(t, tw.Feasible())

	// Without the break, traveling straight to job 0 arrives at t=5,
	// inside its [0,12) window. But the break consumes 10 time units
	// before the vehicle can depart, pushing the arrival to t=15 —
	// past the window close. The addition must be rejected even though
	// job 0's own window, considered alone, looks satisfiable.
	assert.False(t, tw.IsValidAdditionForTWInsert([]int{0}, 0))
}
