package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrpstack/optiroute/internal/testutil"
	"github.com/vrpstack/optiroute/model"
)

func simpleJob(id string, loc int, prio int) model.JobInput {
	return model.JobInput{
		ID:             id,
		Location:       model.FromIndex(loc),
		PickupAmount:   model.NewAmount(1),
		DeliveryAmount: model.NewAmount(1),
		TimeWindows:    []model.TimeWindow{{Start: 0, End: 1000}},
		Priority:       prio,
		Type:           model.Single,
	}
}

func simpleVehicle(id string, cap int64) model.VehicleInput {
	start := model.FromIndex(0)
	return model.VehicleInput{
		ID:            id,
		StartLocation: &start,
		EndLocation:   &start,
		Capacity:      model.NewAmount(cap),
		Shift:         model.TimeWindow{Start: 0, End: 10_000},
	}
}

func TestNewProblemBasic(t *testing.T) {
	mat := testutil.NewComplete(3, 1, 10, 1)
	jobs := []model.JobInput{simpleJob("j0", 1, 0), simpleJob("j1", 2, 0)}
	vehicles := []model.VehicleInput{simpleVehicle("v0", 10)}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	assert.Equal(t, 2, len(p.Jobs))
	assert.Equal(t, 1, len(p.Vehicles))
	assert.Equal(t, 3, p.NumLocations)
	assert.Equal(t, []int{0}, p.Compat.CompatibleVehiclesForJob[0])
}

func TestNewProblemVehicleNoLocation(t *testing.T) {
	mat := testutil.NewComplete(2, 1, 10, 1)
	jobs := []model.JobInput{simpleJob("j0", 1, 0)}
	vehicles := []model.VehicleInput{{ID: "v0", Capacity: model.NewAmount(5)}}
	_, err := model.NewProblem(jobs, vehicles, mat)
	assert.ErrorIs(t, err, model.ErrVehicleNoLocation)
}

func TestNewProblemBadShipmentAdjacency(t *testing.T) {
	mat := testutil.NewComplete(2, 1, 10, 1)
	pickup := simpleJob("p0", 1, 0)
	pickup.Type = model.Pickup
	jobs := []model.JobInput{pickup} // no following delivery
	vehicles := []model.VehicleInput{simpleVehicle("v0", 10)}
	_, err := model.NewProblem(jobs, vehicles, mat)
	assert.ErrorIs(t, err, model.ErrBadShipmentAdjacency)
}

func TestNewProblemShipmentAmountMismatch(t *testing.T) {
	mat := testutil.NewComplete(3, 1, 10, 1)
	pickup := simpleJob("p0", 1, 0)
	pickup.Type = model.Pickup
	pickup.PickupAmount = model.NewAmount(5)
	delivery := simpleJob("d0", 2, 0)
	delivery.Type = model.Delivery
	delivery.DeliveryAmount = model.NewAmount(3)
	jobs := []model.JobInput{pickup, delivery}
	vehicles := []model.VehicleInput{simpleVehicle("v0", 10)}
	_, err := model.NewProblem(jobs, vehicles, mat)
	assert.ErrorIs(t, err, model.ErrShipmentAmountMismatch)
}

func TestNewProblemSkillIncompatibility(t *testing.T) {
	mat := testutil.NewComplete(3, 1, 10, 1)
	job := simpleJob("j0", 1, 0)
	job.RequiredSkills = map[string]struct{}{"forklift": {}}
	jobs := []model.JobInput{job}
	vehicles := []model.VehicleInput{simpleVehicle("v0", 10)}
	p, err := model.NewProblem(jobs, vehicles, mat)
	require.NoError(t, err)
	assert.Empty(t, p.Compat.CompatibleVehiclesForJob[0])
	assert.False(t, p.Compat.VehicleOkWithJob[0][0])
}

func TestNewProblemInconsistentBreaks(t *testing.T) {
	mat := testutil.NewComplete(2, 1, 10, 1)
	jobs := []model.JobInput{simpleJob("j0", 1, 0)}
	veh := simpleVehicle("v0", 10)
	veh.Breaks = []model.Break{{Duration: 100, Windows: []model.TimeWindow{{Start: 50, End: 60}}}}
	vehicles := []model.VehicleInput{veh}
	_, err := model.NewProblem(jobs, vehicles, mat)
	assert.ErrorIs(t, err, model.ErrInconsistentBreaks)
}

func TestNewProblemDimensionMismatch(t *testing.T) {
	mat := testutil.NewComplete(2, 1, 10, 1)
	jobs := []model.JobInput{simpleJob("j0", 1, 0)}
	jobs[0].PickupAmount = model.NewAmount(1, 2)
	vehicles := []model.VehicleInput{simpleVehicle("v0", 10)}
	_, err := model.NewProblem(jobs, vehicles, mat)
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)
}
