package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/search"
	"github.com/vrpstack/optiroute/solutionstate"
)

// lineMatrix places every location on the integer line, so Distance is
// just |a-b| and crossing routes have an obvious, checkable fix.
type lineMatrix struct{ pos []int64 }

func (m lineMatrix) Distance(from, to int) int64 {
	d := m.pos[from] - m.pos[to]
	if d < 0 {
		d = -d
	}
	return d
}
func (m lineMatrix) Duration(from, to int) int64 { return m.Distance(from, to) }
func (m lineMatrix) Cost(from, to int) int64     { return m.Distance(from, to) }

// buildCrossedProblem places depot at 0 and four jobs at 1,2,3,4, with two
// vehicles of capacity 2, so that assigning jobs {1,3} to one
// vehicle and {2,4} to the other (an easy construction-time tie) crosses
// routes a nearer split would avoid.
func buildCrossedProblem(t *testing.T) *model.Problem {
	t.Helper()
	mat := lineMatrix{pos: []int64{0, 1, 2, 3, 4}}
	start := model.FromIndex(0)

	jobs := make([]model.JobInput, 0, 4)
	for i := 1; i <= 4; i++ {
		jobs = append(jobs, model.JobInput{
			ID: "j", Location: model.FromIndex(i), DeliveryAmount: model.NewAmount(1),
			TimeWindows: []model.TimeWindow{{Start: 0, End: 100000}}, Type: model.Single,
		})
	}
	vehicles := []model.VehicleInput{
		{ID: "v0", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(2), Shift: model.TimeWindow{Start: 0, End: 100000}},
		{ID: "v1", StartLocation: &start, EndLocation: &start,
			Capacity: model.NewAmount(2), Shift: model.TimeWindow{Start: 0, End: 100000}},
	}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	return p
}

func TestDriverNeverWorsensCost(t *testing.T) {
	p := buildCrossedProblem(t)
	st := solutionstate.New(p)
	// Deliberately crossed: v0 gets the far+near pair {3,0}, v1 gets {1,2}.
	st.Routes[0].SetSequence([]int{3, 0})
	st.RebuildVehicle(0)
	st.Routes[1].SetSequence([]int{1, 2})
	st.RebuildVehicle(1)

	before := st.RouteEval[0].Cost + st.RouteEval[1].Cost

	d := search.NewDriver(search.NewOptions(search.WithDepth(5), search.WithRuinEvery(0)))
	d.Run(context.Background(), st)

	after := st.RouteEval[0].Cost + st.RouteEval[1].Cost
	assert.LessOrEqual(t, after, before)
	assert.Empty(t, st.Unassigned)
}

func TestDriverImprovesOnConstructThenLocalSearch(t *testing.T) {
	p := buildCrossedProblem(t)
	st := construct.Construct(p, construct.DefaultOptions())
	before := model.ZeroEval
	for v := range st.Routes {
		before = before.Add(st.RouteEval[v])
	}

	d := search.NewDriver(search.NewOptions(search.WithDepth(10), search.WithRuinEvery(0)))
	d.Run(context.Background(), st)

	after := model.ZeroEval
	for v := range st.Routes {
		after = after.Add(st.RouteEval[v])
	}
	assert.True(t, after.LessEq(before))
	assert.Empty(t, st.Unassigned)
}

func TestDriverRespectsPastDeadline(t *testing.T) {
	p := buildCrossedProblem(t)
	st := solutionstate.New(p)
	st.Routes[0].SetSequence([]int{3, 0})
	st.RebuildVehicle(0)
	st.Routes[1].SetSequence([]int{1, 2})
	st.RebuildVehicle(1)

	seq0 := append([]int(nil), st.Routes[0].Raw().JobRanks()...)
	seq1 := append([]int(nil), st.Routes[1].Raw().JobRanks()...)

	d := search.NewDriver(search.NewOptions(
		search.WithDepth(10),
		search.WithDeadline(time.Now().Add(-time.Hour)),
	))
	d.Run(context.Background(), st)

	assert.Equal(t, seq0, st.Routes[0].Raw().JobRanks())
	assert.Equal(t, seq1, st.Routes[1].Raw().JobRanks())
}

func TestDriverRespectsCancelledContext(t *testing.T) {
	p := buildCrossedProblem(t)
	st := solutionstate.New(p)
	st.Routes[0].SetSequence([]int{3, 0})
	st.RebuildVehicle(0)
	st.Routes[1].SetSequence([]int{1, 2})
	st.RebuildVehicle(1)

	seq0 := append([]int(nil), st.Routes[0].Raw().JobRanks()...)
	seq1 := append([]int(nil), st.Routes[1].Raw().JobRanks()...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := search.NewDriver(search.NewOptions(search.WithDepth(10)))
	d.Run(ctx, st)

	assert.Equal(t, seq0, st.Routes[0].Raw().JobRanks())
	assert.Equal(t, seq1, st.Routes[1].Raw().JobRanks())
}

func TestRuinRefillsAllJobs(t *testing.T) {
	p := buildCrossedProblem(t)
	st := construct.Construct(p, construct.DefaultOptions())

	search.Ruin(st, search.DefaultOptions())

	assert.Empty(t, st.Unassigned)
}
