package model

// Problem is the immutable, validated input to the solver: jobs, vehicles,
// the resolved location count, and the precomputed compatibility matrices.
// It is built once by NewProblem and never mutated afterward; every
// downstream package holds a *Problem by reference.
type Problem struct {
	Jobs     []Job
	Vehicles []Vehicle
	Matrix   TravelMatrix

	// NumLocations is the size of the dense location index space resolved
	// across all jobs and vehicles: the number of distinct coordinates in
	// coordinate mode, or the largest index used plus one in index mode.
	NumLocations int

	// AmountDims is the shared dimensionality of every Amount in the
	// problem (capacities and demands alike).
	AmountDims int

	Compat Compatibility
}

// JobInput and VehicleInput mirror Job and Vehicle but omit the
// solver-assigned Index/Rank fields and carry Locations instead of
// already-resolved LocationIndex values; NewProblem performs the
// resolution, pairing, and validation that turns them into Problem.Jobs /
// Problem.Vehicles.
type JobInput struct {
	ID                string
	Location          Location
	ServiceDuration   int64
	SetupDuration     int64
	PerVehicleService map[int]int64
	PickupAmount      Amount
	DeliveryAmount    Amount
	TimeWindows       []TimeWindow
	RequiredSkills    map[string]struct{}
	Priority          int
	Type              JobType
}

type VehicleInput struct {
	ID              string
	StartLocation   *Location
	EndLocation     *Location
	Capacity        Amount
	Shift           TimeWindow
	Breaks          []Break
	Skills          map[string]struct{}
	MaxTasks        int
	MaxTravelTime   int64
	MaxDistance     int64
	FixedCost       int64
	PerHourCost     int64
	PerKmCost       int64
	SpeedFactorNum  int64
	SpeedFactorDen  int64
	RoutingProfile  string
}

// NewProblem validates and resolves jobInputs/vehicleInputs against matrix,
// returning a ready-to-solve Problem or the first configuration error (one
// of the sentinels declared in errors.go) encountered (spec §7).
func NewProblem(jobInputs []JobInput, vehicleInputs []VehicleInput, matrix TravelMatrix) (*Problem, error) {
	dims := -1
	checkDims := func(a Amount) error {
		if a.Dims() == 0 {
			return nil
		}
		if dims == -1 {
			dims = a.Dims()
		} else if a.Dims() != dims {
			return ErrDimensionMismatch
		}
		return nil
	}

	for i := range jobInputs {
		if err := checkDims(jobInputs[i].PickupAmount); err != nil {
			return nil, err
		}
		if err := checkDims(jobInputs[i].DeliveryAmount); err != nil {
			return nil, err
		}
		if len(jobInputs[i].TimeWindows) == 0 {
			return nil, ErrNoTimeWindows
		}
		if jobInputs[i].ServiceDuration < 0 || jobInputs[i].SetupDuration < 0 {
			return nil, ErrNegativeDuration
		}
	}
	for i := range vehicleInputs {
		if err := checkDims(vehicleInputs[i].Capacity); err != nil {
			return nil, err
		}
	}
	if dims == -1 {
		dims = 0
	}

	reg := newLocationRegistry()

	jobs := make([]Job, len(jobInputs))
	for i, ji := range jobInputs {
		jobs[i] = Job{
			Index:             i,
			ID:                ji.ID,
			LocationIndex:     reg.resolve(ji.Location),
			ServiceDuration:   ji.ServiceDuration,
			SetupDuration:     ji.SetupDuration,
			PerVehicleService: ji.PerVehicleService,
			PickupAmount:      zeroIfEmpty(ji.PickupAmount, dims),
			DeliveryAmount:    zeroIfEmpty(ji.DeliveryAmount, dims),
			TimeWindows:       ji.TimeWindows,
			RequiredSkills:    ji.RequiredSkills,
			Priority:          ji.Priority,
			Type:              ji.Type,
		}
	}

	// Pairing invariant: a pickup at index p must be immediately followed
	// by its matching delivery at p+1 (spec §3), and their amounts must
	// match (ErrShipmentAmountMismatch).
	for p := range jobs {
		if jobs[p].Type != Pickup {
			continue
		}
		if p+1 >= len(jobs) || jobs[p+1].Type != Delivery {
			return nil, ErrBadShipmentAdjacency
		}
		if !jobs[p].PickupAmount.LessEq(jobs[p+1].DeliveryAmount) || !jobs[p+1].DeliveryAmount.LessEq(jobs[p].PickupAmount) {
			return nil, ErrShipmentAmountMismatch
		}
	}

	vehicles := make([]Vehicle, len(vehicleInputs))
	for i, vi := range vehicleInputs {
		if vi.StartLocation == nil && vi.EndLocation == nil {
			return nil, ErrVehicleNoLocation
		}
		startIdx, endIdx := -1, -1
		if vi.StartLocation != nil {
			startIdx = reg.resolve(*vi.StartLocation)
		}
		if vi.EndLocation != nil {
			endIdx = reg.resolve(*vi.EndLocation)
		}
		if err := validateBreaks(vi.Breaks); err != nil {
			return nil, err
		}
		vehicles[i] = Vehicle{
			Rank:               i,
			ID:                 vi.ID,
			StartLocationIndex: startIdx,
			EndLocationIndex:   endIdx,
			Capacity:           zeroIfEmpty(vi.Capacity, dims),
			Shift:              vi.Shift,
			Breaks:             vi.Breaks,
			Skills:             vi.Skills,
			MaxTasks:           vi.MaxTasks,
			MaxTravelTime:      vi.MaxTravelTime,
			MaxDistance:        vi.MaxDistance,
			FixedCost:          vi.FixedCost,
			PerHourCost:        vi.PerHourCost,
			PerKmCost:          vi.PerKmCost,
			SpeedFactorNum:     vi.SpeedFactorNum,
			SpeedFactorDen:     vi.SpeedFactorDen,
			RoutingProfile:     vi.RoutingProfile,
		}
	}

	if reg.mixedModes() {
		return nil, ErrMixedLocationModes
	}

	return &Problem{
		Jobs:         jobs,
		Vehicles:     vehicles,
		Matrix:       matrix,
		NumLocations: reg.count(),
		AmountDims:   dims,
		Compat:       buildCompatibility(jobs, vehicles),
	}, nil
}

func zeroIfEmpty(a Amount, dims int) Amount {
	if a.Dims() == 0 {
		return ZeroAmount(dims)
	}
	return a
}

// validateBreaks rejects internally contradictory break configurations: a
// window that ends before (or coincides with the start of) its own start,
// or a break whose duration fits in none of its permitted windows.
func validateBreaks(breaks []Break) error {
	for _, b := range breaks {
		if b.Duration < 0 {
			return ErrNegativeDuration
		}
		if len(b.Windows) == 0 {
			return ErrInconsistentBreaks
		}
		fits := false
		for _, w := range b.Windows {
			if w.End <= w.Start {
				return ErrInconsistentBreaks
			}
			if w.End-w.Start >= b.Duration {
				fits = true
			}
		}
		if !fits {
			return ErrInconsistentBreaks
		}
	}
	return nil
}
