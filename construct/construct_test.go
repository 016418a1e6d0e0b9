package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
)

func buildSimpleProblem(t *testing.T, numJobs, numVehicles int) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(numJobs+1, 10, 10, 1)
	start := model.FromIndex(0)

	jobs := make([]model.JobInput, 0, numJobs)
	for i := 1; i <= numJobs; i++ {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 100000}}, Type: model.Single,
		})
	}
	vehicles := make([]model.VehicleInput, 0, numVehicles)
	for v := 0; v < numVehicles; v++ {
		vehicles = append(vehicles, model.VehicleInput{
			ID: "v", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(int64(numJobs)), Shift: model.TimeWindow{Start: 0, End: 100000},
		})
	}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestConstructBasicAssignsAllJobs(t *testing.T) {
	p := buildSimpleProblem(t, 3, 1)
	st := construct.Construct(p, construct.DefaultOptions())

	assert.Empty(t, st.Unassigned)
	assert.Equal(t, 3, st.Routes[0].Raw().Len())
}

func TestConstructDynamicAssignsAllJobs(t *testing.T) {
	p := buildSimpleProblem(t, 4, 2)
	opts := construct.NewOptions(construct.WithHeuristic(construct.Dynamic))
	st := construct.Construct(p, opts)

	assert.Empty(t, st.Unassigned)
	placed := 0
	for _, r := range st.Routes {
		placed += r.Raw().Len()
	}
	assert.Equal(t, 4, placed)
}

func TestConstructSkillIncompatibleJobLeftUnassigned(t *testing.T) {
	mat := testutil.NewComplete(2, 10, 10, 1)
	start := model.FromIndex(0)

	jobs := []model.JobInput{{
		ID: "needs-forklift", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
		TimeWindows:    []model.TimeWindow{{Start: 0, End: 100000}},
		Type:           model.Single,
		RequiredSkills: map[string]struct{}{"forklift": {}},
	}}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 100000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := construct.Construct(p, construct.DefaultOptions())

	assert.Len(t, st.Unassigned, 1)
	assert.Equal(t, 0, st.Routes[0].Raw().Len())
}

func TestConstructShipmentInsertedAsPair(t *testing.T) {
	mat := testutil.NewComplete(3, 10, 10, 1)
	start := model.FromIndex(0)

	jobs := []model.JobInput{
		{
			ID: "pickup", Location: model.FromIndex(1), PickupAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 100000}}, Type: model.Pickup,
		},
		{
			ID: "delivery", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 100000}}, Type: model.Delivery,
		},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(1), Shift: model.TimeWindow{Start: 0, End: 100000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := construct.Construct(p, construct.DefaultOptions())

	require.Empty(t, st.Unassigned)
	r := st.Routes[0].Raw()
	require.Equal(t, 2, r.Len())
	assert.Equal(t, 0, r.JobAt(0))
	assert.Equal(t, 1, r.JobAt(1))
}
