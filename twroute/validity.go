package twroute

// simulateForward walks a candidate job sequence starting from
// (startTime, startLoc), ignoring break placement (new segments are
// re-scheduled for breaks only once actually applied and rebuilt), and
// returns the departure time and location after the last job, or
// ok=false if any job's time windows reject the arrival.
func (t *TWRoute) simulateForward(startTime int64, startLoc int, haveLoc bool, jobs []int) (finishTime int64, finishLoc int, ok bool) {
	current := startTime
	loc := startLoc
	problem := t.raw.Problem()
	vehRank := t.raw.VehicleRank()
	veh := t.vehicle()
	for _, jIdx := range jobs {
		job := problem.Jobs[jIdx]
		if haveLoc {
			current += veh.ScaleDuration(problem.Matrix.Duration(loc, job.LocationIndex))
		}
		start, admitted := chooseEarliestWindow(job.TimeWindows, current)
		if !admitted {
			return 0, 0, false
		}
		current = start + job.ServiceDurationFor(vehRank) + job.SetupDuration
		loc = job.LocationIndex
		haveLoc = true
	}
	return current, loc, true
}

// boundaryBeforeRank returns the departure time and location available just
// before `rank` in the current (already-scheduled) route: the depot at
// shift start when rank == 0, otherwise the previous job's completion.
func (t *TWRoute) boundaryBeforeRank(rank int) (departure int64, loc int, haveLoc bool) {
	veh := t.vehicle()
	if rank == 0 {
		return veh.Shift.Start, veh.StartLocationIndex, veh.HasStart()
	}
	prevJob := t.raw.Problem().Jobs[t.raw.JobAt(rank - 1)]
	return t.earliest[rank-1] + t.actionTime(rank-1), prevJob.LocationIndex, true
}

// IsValidAdditionForTWInsert simulates inserting `jobs` (dense job indices,
// in order) at `position` without mutating the route, and reports whether
// the schedule remains feasible: every inserted job's window admits its
// arrival, the first untouched successor's arrival still fits within its
// already-known latest bound, and every mandatory break still fits
// somewhere in the resulting schedule (spec §4.3) — the rest of the
// route's feasibility follows transitively without re-simulating it.
//
// A vehicle with mandatory breaks loses that transitivity shortcut:
// where a break lands depends on cumulative timing from the depot
// onward, so splicing jobs into the middle of the route can shift every
// later break's placement. In that case this replays the whole
// candidate sequence instead of just the boundary.
func (t *TWRoute) IsValidAdditionForTWInsert(jobs []int, position int) bool {
	if !t.feasible && t.raw.Len() > 0 {
		return false
	}
	if len(t.vehicle().Breaks) > 0 {
		return t.simulateFullScheduleFeasible(t.sequenceWithInsert(jobs, position))
	}
	departure, loc, haveLoc := t.boundaryBeforeRank(position)
	finish, finishLoc, ok := t.simulateForward(departure, loc, haveLoc, jobs)
	if !ok {
		return false
	}
	return t.checkSuccessor(finish, finishLoc, position)
}

// IsValidAdditionForTWReplace simulates splicing `jobs` in place of the
// contiguous range [firstRank, lastRank] (inclusive). See
// IsValidAdditionForTWInsert for why a vehicle with mandatory breaks
// takes the full-replay path instead.
func (t *TWRoute) IsValidAdditionForTWReplace(jobs []int, firstRank, lastRank int) bool {
	if !t.feasible && t.raw.Len() > 0 {
		return false
	}
	if len(t.vehicle().Breaks) > 0 {
		return t.simulateFullScheduleFeasible(t.sequenceWithReplace(jobs, firstRank, lastRank))
	}
	departure, loc, haveLoc := t.boundaryBeforeRank(firstRank)
	finish, finishLoc, ok := t.simulateForward(departure, loc, haveLoc, jobs)
	if !ok {
		return false
	}
	return t.checkSuccessor(finish, finishLoc, lastRank+1)
}

// sequenceWithInsert returns the full dense-job-index sequence that
// results from inserting jobs at position, without mutating the route.
func (t *TWRoute) sequenceWithInsert(jobs []int, position int) []int {
	existing := t.raw.JobRanks()
	out := make([]int, 0, len(existing)+len(jobs))
	out = append(out, existing[:position]...)
	out = append(out, jobs...)
	out = append(out, existing[position:]...)
	return out
}

// sequenceWithReplace returns the full dense-job-index sequence that
// results from splicing jobs in place of [firstRank, lastRank].
func (t *TWRoute) sequenceWithReplace(jobs []int, firstRank, lastRank int) []int {
	existing := t.raw.JobRanks()
	out := make([]int, 0, len(existing)-(lastRank-firstRank+1)+len(jobs))
	out = append(out, existing[:firstRank]...)
	out = append(out, jobs...)
	out = append(out, existing[lastRank+1:]...)
	return out
}

// simulateFullScheduleFeasible replays the full candidate job sequence
// from the depot, placing mandatory breaks the same greedy way
// runForward does, and reports whether every job's time window, every
// break's window, and the shift end are all satisfiable.
func (t *TWRoute) simulateFullScheduleFeasible(jobs []int) bool {
	veh := t.vehicle()
	problem := t.raw.Problem()
	vehRank := t.raw.VehicleRank()

	current := veh.Shift.Start
	loc := veh.StartLocationIndex
	haveLoc := veh.HasStart()
	remaining := veh.Breaks

	placeBreaks := func() bool {
		for len(remaining) > 0 {
			b := remaining[0]
			start, ok := chooseEarliestWindow(b.Windows, current)
			if !ok {
				return true // can't place here; try at a later gap
			}
			if b.MaxLoadDuringBreak != nil && !t.raw.MaxLoad().LessEq(*b.MaxLoadDuringBreak) {
				return true
			}
			current = start + b.Duration
			remaining = remaining[1:]
		}
		return true
	}

	placeBreaks()

	for _, jIdx := range jobs {
		job := problem.Jobs[jIdx]
		if haveLoc {
			current += veh.ScaleDuration(problem.Matrix.Duration(loc, job.LocationIndex))
		}
		start, ok := chooseEarliestWindow(job.TimeWindows, current)
		if !ok {
			return false
		}
		current = start + job.ServiceDurationFor(vehRank) + job.SetupDuration
		loc = job.LocationIndex
		haveLoc = true
		placeBreaks()
	}

	if veh.HasEnd() {
		if haveLoc {
			current += veh.ScaleDuration(problem.Matrix.Duration(loc, veh.EndLocationIndex))
		}
		if current > veh.Shift.End {
			return false
		}
	}

	return len(remaining) == 0
}

// checkSuccessor verifies that arriving at `finishLoc` at time `finish`
// still lets the untouched remainder of the route (starting at oldRank) run
// to completion: if oldRank is within the route, the successor's earliest
// feasible start from this arrival must not exceed its already-known
// latest; if oldRank is past the end, the vehicle must still reach its end
// location (if any) within the shift.
func (t *TWRoute) checkSuccessor(finish int64, finishLoc int, oldRank int) bool {
	n := t.raw.Len()
	veh := t.vehicle()
	if oldRank < n {
		succJob := t.raw.Problem().Jobs[t.raw.JobAt(oldRank)]
		arrival := finish + veh.ScaleDuration(t.raw.Problem().Matrix.Duration(finishLoc, succJob.LocationIndex))
		start, ok := chooseEarliestWindow(succJob.TimeWindows, arrival)
		if !ok {
			return false
		}
		return start <= t.latest[oldRank]
	}
	if veh.HasEnd() {
		finish += veh.ScaleDuration(t.raw.Problem().Matrix.Duration(finishLoc, veh.EndLocationIndex))
		return finish <= veh.Shift.End
	}
	return true
}
