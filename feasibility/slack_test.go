package feasibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/feasibility"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

func TestVehicleSlackRespectsMaxTasks(t *testing.T) {
	mat := testutil.NewComplete(3, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "a", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single},
		{ID: "b", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 1000000}, MaxTasks: 2,
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	require.Equal(t, int64(2), feasibility.VehicleSlack(st, 0))

	st.Routes[0].SetSequence([]int{0})
	st.RebuildVehicle(0)
	require.Equal(t, int64(1), feasibility.VehicleSlack(st, 0))
}

func TestVehicleSlackUnboundedWithNoMaxTasks(t *testing.T) {
	mat := testutil.NewComplete(2, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "a", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 1000000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	st := solutionstate.New(p)
	require.Equal(t, int64(len(p.Jobs)), feasibility.VehicleSlack(st, 0))
}
