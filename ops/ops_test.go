package ops_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/ops"
	"github.com/vrpstack/optiroute/solutionstate"
	"github.com/vrpstack/optiroute/tspfix"
)

// buildProblem wires numJobs single jobs at distinct locations and
// numVehicles identical vehicles, all round-trips from location 0, over a
// complete matrix with a uniform weight of 10 per hop.
func buildProblem(t *testing.T, numJobs, numVehicles int, capacity int64) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(numJobs+1, 10, 10, 1)
	start := model.FromIndex(0)

	jobs := make([]model.JobInput, 0, numJobs)
	for i := 1; i <= numJobs; i++ {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single,
		})
	}
	vehicles := make([]model.VehicleInput, 0, numVehicles)
	for v := 0; v < numVehicles; v++ {
		vehicles = append(vehicles, model.VehicleInput{
			ID: "v", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(capacity), Shift: model.TimeWindow{Start: 0, End: 1000000},
		})
	}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func seed(t *testing.T, st *solutionstate.State, v int, jobs []int) {
	t.Helper()
	st.Routes[v].SetSequence(jobs)
	st.RebuildVehicle(v)
}

func TestTryRelocateMovesJobBetweenRoutes(t *testing.T) {
	p := buildProblem(t, 2, 2, 5)
	st := solutionstate.New(p)
	seed(t, st, 0, []int{0, 1})
	seed(t, st, 1, nil)

	m, ok := ops.TryRelocate(st, 0, 1, 1, 0)
	require.True(t, ok)
	// Uniform 10 per hop: [0,1] costs 30, while [0] and [1] cost 20 each,
	// so splitting the route loses 10.
	assert.Equal(t, int64(-10), m.Gain().Cost)

	m.Apply()
	assert.Equal(t, []int{0}, st.Routes[0].Raw().JobRanks())
	assert.Equal(t, []int{1}, st.Routes[1].Raw().JobRanks())
}

func TestTryRelocateRejectsCapacityOverflow(t *testing.T) {
	p := buildProblem(t, 2, 2, 1)
	st := solutionstate.New(p)
	seed(t, st, 0, []int{0})
	seed(t, st, 1, []int{1})

	// Vehicle 1's capacity is 1 and already holds job 1; relocating job 0
	// onto it too would need capacity 2.
	_, ok := ops.TryRelocate(st, 0, 0, 1, 0)
	assert.False(t, ok)
}

func TestTryIntraTwoOptRejectsPickupDeliveryCrossing(t *testing.T) {
	mat := testutil.NewComplete(4, 10, 10, 1)
	start := model.FromIndex(0)
	// Pairing adjacency is defined over the job INPUT order (pickup must
	// be immediately followed by its delivery there), independent of
	// route order: index 0 is the pickup, index 1 its delivery, index 2
	// an unrelated single job placed between them in the route.
	jobs := []model.JobInput{
		{ID: "pickup", Location: model.FromIndex(1), PickupAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Pickup},
		{ID: "delivery", Location: model.FromIndex(3), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Delivery},
		{ID: "x", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(2), Shift: model.TimeWindow{Start: 0, End: 1000000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	// Route order: pickup(0), x(2), delivery(1).
	seed(t, st, 0, []int{0, 2, 1})

	// Reversing the whole route -> delivery(1), x(2), pickup(0) puts the
	// delivery before its pickup: must be rejected.
	_, ok := ops.TryIntraTwoOpt(st, 0, 0, 2)
	assert.False(t, ok)
}

func TestTryPriorityReplacePrefersHigherPriorityJob(t *testing.T) {
	mat := testutil.NewComplete(3, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "low", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single, Priority: 1},
		{ID: "high", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single, Priority: 100},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(1), Shift: model.TimeWindow{Start: 0, End: 1000000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	seed(t, st, 0, []int{0})

	m, ok := ops.TryPriorityReplace(st, 0, false, 1, 1)
	require.True(t, ok)
	assert.Equal(t, int64(99), m.PriorityGain())
	assert.Equal(t, 0, m.AssignedCountDelta())

	m.Apply()
	assert.Equal(t, []int{1}, st.Routes[0].Raw().JobRanks())
	_, stillUnassigned := st.Unassigned[0]
	assert.True(t, stillUnassigned)
}

func TestTryRouteSplitVacatesSourceRoute(t *testing.T) {
	p := buildProblem(t, 4, 3, 10)
	st := solutionstate.New(p)
	seed(t, st, 0, []int{0, 1, 2, 3})
	seed(t, st, 1, nil)
	seed(t, st, 2, nil)

	m, ok := ops.TryRouteSplit(st, 0, 2, 1, 2)
	require.True(t, ok)
	m.Apply()

	assert.Equal(t, 0, st.Routes[0].Raw().Len())
	assert.Equal(t, []int{0, 1}, st.Routes[1].Raw().JobRanks())
	assert.Equal(t, []int{2, 3}, st.Routes[2].Raw().JobRanks())
}

func TestTryPDShiftMovesShipmentToAnotherRoute(t *testing.T) {
	mat := testutil.NewComplete(5, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "p", Location: model.FromIndex(1), PickupAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Pickup},
		{ID: "d", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Delivery},
	}
	vehicles := []model.VehicleInput{
		{ID: "v0", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(1), Shift: model.TimeWindow{Start: 0, End: 1000000}},
		{ID: "v1", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(1), Shift: model.TimeWindow{Start: 0, End: 1000000}},
	}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	seed(t, st, 0, []int{0, 1})
	seed(t, st, 1, nil)

	m, ok := ops.TryPDShift(st, 0, 0, 1, 1)
	require.True(t, ok)
	m.Apply()

	assert.Equal(t, 0, st.Routes[0].Raw().Len())
	assert.ElementsMatch(t, []int{0, 1}, st.Routes[1].Raw().JobRanks())
}

func TestTryTSPFixAcceptsStrictlyCheaperOrdering(t *testing.T) {
	mat := testutil.NewComplete(7, 1, 50, 42)
	start := model.FromIndex(0)
	jobs := make([]model.JobInput, 0, 6)
	for i := 1; i <= 6; i++ {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single,
		})
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 1000000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	// A pessimal ordering over a varied-weight complete matrix leaves
	// Christofides+improvement room to do at least as well; assert it
	// never regresses and stays a permutation of the same jobs.
	seed(t, st, 0, []int{5, 3, 1, 4, 0, 2})

	m, ok := ops.TryTSPFix(st, 0, tspfix.DefaultOptions(), time.Time{})
	if !ok {
		// No strictly cheaper feasible ordering exists: an acceptable outcome.
		return
	}
	assert.True(t, m.Gain().Cost > 0)
	m.Apply()
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, st.Routes[0].Raw().JobRanks())
}
