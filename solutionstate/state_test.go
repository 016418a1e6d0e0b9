package solutionstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solutionstate"
)

func buildStateProblem(t *testing.T) *model.Problem {
	t.Helper()
	mat := testutil.NewComplete(4, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{
		{ID: "a", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1), TimeWindows: []model.TimeWindow{{Start: 0, End: 1000}}, Priority: 3, Type: model.Single},
		{ID: "b", Location: model.FromIndex(2), DeliveryAmount: model.NewAmount(1), TimeWindows: []model.TimeWindow{{Start: 0, End: 1000}}, Priority: 5, Type: model.Single},
	}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 100000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestStateNewAllUnassigned(t *testing.T) {
	p := buildStateProblem(t)
	st := solutionstate.New(p)
	assert.Len(t, st.Unassigned, 2)
	assert.Equal(t, model.ZeroEval, st.RouteEval[0])
}

func TestStateRebuildAfterInsert(t *testing.T) {
	p := buildStateProblem(t)
	st := solutionstate.New(p)
	st.Routes[0].Insert(0, 0)
	st.Routes[0].Insert(1, 1)
	st.RebuildVehicle(0)

	assert.Len(t, st.Unassigned, 0)
	assert.Equal(t, int64(3), st.FwdPriority[0][0])
	assert.Equal(t, int64(8), st.FwdPriority[0][1])
	assert.Equal(t, int64(8), st.BwdPriority[0][0])
	assert.True(t, st.RouteEval[0].Cost > 0)
}
