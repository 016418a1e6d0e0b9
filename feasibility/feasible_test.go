package feasibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/feasibility"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
)

func buildFeasibilityProblem(t *testing.T, jobSkills []map[string]struct{}, vehicleSkills []map[string]struct{}, maxTasks []int) *model.Problem {
	t.Helper()
	n := len(jobSkills) + 1
	mat := testutil.NewComplete(n, 10, 10, 1)
	start := model.FromIndex(0)

	jobs := make([]model.JobInput, 0, len(jobSkills))
	for i, skills := range jobSkills {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i + 1), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 1000000}}, Type: model.Single,
			RequiredSkills: skills,
		})
	}
	vehicles := make([]model.VehicleInput, 0, len(vehicleSkills))
	for i, skills := range vehicleSkills {
		vehicles = append(vehicles, model.VehicleInput{
			ID: "v", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(100), Shift: model.TimeWindow{Start: 0, End: 1000000},
			Skills: skills, MaxTasks: maxTasks[i],
		})
	}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestMaxAssignableAllCompatible(t *testing.T) {
	p := buildFeasibilityProblem(t, make([]map[string]struct{}, 3), make([]map[string]struct{}, 2), []int{2, 2})
	n := feasibility.MaxAssignable(p, []int{0, 1, 2}, []int{0, 1}, func(int) int64 { return 2 })
	require.Equal(t, int64(3), n)
}

func TestMaxAssignableBoundedBySlack(t *testing.T) {
	p := buildFeasibilityProblem(t, make([]map[string]struct{}, 3), make([]map[string]struct{}, 2), []int{1, 1})
	n := feasibility.MaxAssignable(p, []int{0, 1, 2}, []int{0, 1}, func(int) int64 { return 1 })
	require.Equal(t, int64(2), n)
}

func TestMaxAssignableBoundedBySkills(t *testing.T) {
	crane := map[string]struct{}{"crane": {}}
	jobSkills := []map[string]struct{}{crane, crane, nil}
	vehicleSkills := []map[string]struct{}{nil, nil}
	p := buildFeasibilityProblem(t, jobSkills, vehicleSkills, []int{3, 3})
	// Neither vehicle carries "crane", so only the unskilled job can be placed.
	n := feasibility.MaxAssignable(p, []int{0, 1, 2}, []int{0, 1}, func(int) int64 { return 3 })
	require.Equal(t, int64(1), n)
}

func TestRuinBatchFeasible(t *testing.T) {
	p := buildFeasibilityProblem(t, make([]map[string]struct{}, 2), make([]map[string]struct{}, 1), []int{5})
	require.True(t, feasibility.RuinBatchFeasible(p, []int{0, 1}, []int{0}, func(int) int64 { return 5 }))
	require.False(t, feasibility.RuinBatchFeasible(p, []int{0, 1}, []int{0}, func(int) int64 { return 1 }))
}

func TestMaxAssignableNoCandidates(t *testing.T) {
	p := buildFeasibilityProblem(t, make([]map[string]struct{}, 1), nil, nil)
	require.Equal(t, int64(0), feasibility.MaxAssignable(p, []int{0}, nil, func(int) int64 { return 0 }))
}
