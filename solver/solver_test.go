package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/solver"
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

func TestSolveAssignsAllJobsOnSimpleProblem(t *testing.T) {
	p := buildSimpleProblem(t, 5, 2)
	sol := solver.Solve(context.Background(), p, solver.DefaultOptions())

	assert.Empty(t, sol.UnassignedJobIDs)
	assert.Equal(t, int64(0), sol.UnassignedPrioritySum)
	placed := 0
	for _, v := range sol.Vehicles {
		placed += len(v.JobIDs)
	}
	assert.Equal(t, 5, placed)
	assert.GreaterOrEqual(t, sol.VehiclesUsed, 1)
}

func TestSolveSkillIncompatibleJobReportedUnassigned(t *testing.T) {
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

	sol := solver.Solve(context.Background(), p, solver.DefaultOptions())

	require.Len(t, sol.UnassignedJobIDs, 1)
	assert.Equal(t, "needs-forklift", sol.UnassignedJobIDs[0])
	assert.Equal(t, 0, sol.VehiclesUsed)
}

func TestSolveWaitingTimeAccountsForLateWindow(t *testing.T) {
	mat := testutil.NewComplete(2, 10, 10, 1)
	start := model.FromIndex(0)
	jobs := []model.JobInput{{
		ID: "late", Location: model.FromIndex(1), DeliveryAmount: model.NewAmount(1),
		TimeWindows: []model.TimeWindow{{Start: 500, End: 1000}}, Type: model.Single,
	}}
	vehicles := []model.VehicleInput{{
		ID: "v0", StartLocation: &start, EndLocation: &start,
		Capacity: model.NewAmount(10), Shift: model.TimeWindow{Start: 0, End: 100000},
	}}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)

	sol := solver.Solve(context.Background(), p, solver.DefaultOptions())

	require.Len(t, sol.Vehicles, 1)
	assert.Greater(t, sol.Vehicles[0].WaitingTime, int64(0))
	assert.Equal(t, sol.Vehicles[0].WaitingTime, sol.WaitingTimeSum)
}
