package model

// Compatibility holds the three boolean/candidate matrices computed once at
// Problem construction (spec §4.1):
//
//   - VehicleOkWithJob[v][j]: vehicle v has every skill job j requires.
//   - VehicleOkWithVehicle[v1][v2]: some job is compatible with both v1 and v2.
//   - CompatibleVehiclesForJob[j]: vehicles that are skill-compatible with j
//     AND whose capacity alone (ignoring route-packing) can carry j's demand.
type Compatibility struct {
	VehicleOkWithJob         [][]bool
	VehicleOkWithVehicle     [][]bool
	CompatibleVehiclesForJob [][]int
}

func buildCompatibility(jobs []Job, vehicles []Vehicle) Compatibility {
	nv, nj := len(vehicles), len(jobs)

	okWithJob := make([][]bool, nv)
	for v := range vehicles {
		okWithJob[v] = make([]bool, nj)
		for j := range jobs {
			okWithJob[v][j] = jobs[j].HasSkills(vehicles[v].Skills)
		}
	}

	compatibleForJob := make([][]int, nj)
	for j := range jobs {
		demand := jobs[j].PickupAmount.Max(jobs[j].DeliveryAmount)
		for v := range vehicles {
			if !okWithJob[v][j] {
				continue
			}
			if !demand.LessEq(vehicles[v].Capacity) {
				continue
			}
			compatibleForJob[j] = append(compatibleForJob[j], v)
		}
	}

	okWithVehicle := make([][]bool, nv)
	for v1 := range vehicles {
		okWithVehicle[v1] = make([]bool, nv)
	}
	for j := range jobs {
		cands := compatibleForJob[j]
		for _, v1 := range cands {
			okWithVehicle[v1][v1] = true
			for _, v2 := range cands {
				okWithVehicle[v1][v2] = true
			}
		}
	}

	return Compatibility{
		VehicleOkWithJob:         okWithJob,
		VehicleOkWithVehicle:     okWithVehicle,
		CompatibleVehiclesForJob: compatibleForJob,
	}
}
