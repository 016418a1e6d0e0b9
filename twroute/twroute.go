package twroute

import (
	"math"

	"github.com/vrpstack/optiroute/model"
	"github.com/vrpstack/optiroute/route"
)

const sentinelLate = math.MaxInt64 / 4

// placedBreak records where the forward pass decided to take one of the
// vehicle's mandatory breaks.
type placedBreak struct {
	// afterRank is the job rank the break follows; -1 means the break is
	// taken before the first job (or, on an empty route, at the depot).
	afterRank int
	duration  int64
	windows   []model.TimeWindow
	earliest  int64
	latest    int64
}

// TWRoute wraps a route.RawRoute with a maintained schedule.
type TWRoute struct {
	raw *route.RawRoute

	earliest []int64
	latest   []int64
	breaks   []placedBreak

	feasible   bool
	finishTime int64
}

// New returns a TWRoute over an existing (possibly non-empty) RawRoute,
// building its initial schedule.
func New(raw *route.RawRoute) *TWRoute {
	t := &TWRoute{raw: raw}
	t.Rebuild()
	return t
}

// Raw exposes the underlying RawRoute for capacity checks and accessors.
func (t *TWRoute) Raw() *route.RawRoute { return t.raw }

// Feasible reports whether the current schedule satisfies every job's time
// windows, the vehicle's shift, and all mandatory breaks.
func (t *TWRoute) Feasible() bool { return t.feasible }

// FinishTime is the time the vehicle completes its shift (arrival at the end
// location, or last action's completion when the vehicle has no end).
func (t *TWRoute) FinishTime() int64 { return t.finishTime }

// Earliest/Latest return the maintained schedule bounds at rank r.
func (t *TWRoute) Earliest(r int) int64 { return t.earliest[r] }
func (t *TWRoute) Latest(r int) int64   { return t.latest[r] }

// Insert, Remove, Replace, SetSequence mirror route.RawRoute's mutation API,
// rebuilding the whole schedule after every call rather than stopping
// early once bounds stop changing (see DESIGN.md's twroute section).
func (t *TWRoute) Insert(jobIdx int, position int) {
	t.raw.Insert(jobIdx, position)
	t.Rebuild()
}

func (t *TWRoute) InsertSlice(jobs []int, position int) {
	t.raw.InsertSlice(jobs, position)
	t.Rebuild()
}

func (t *TWRoute) Remove(position, count int) []int {
	removed := t.raw.Remove(position, count)
	t.Rebuild()
	return removed
}

func (t *TWRoute) Replace(firstRank, lastRank int, newJobs []int) []int {
	removed := t.raw.Replace(firstRank, lastRank, newJobs)
	t.Rebuild()
	return removed
}

func (t *TWRoute) SetSequence(jobs []int) {
	t.raw.SetSequence(jobs)
	t.Rebuild()
}

// Rebuild recomputes the entire schedule (forward then backward pass) from
// the current job sequence.
func (t *TWRoute) Rebuild() {
	t.runForward()
	if t.feasible {
		t.runBackward()
	} else {
		t.fillLatestUnknown()
	}
}

func (t *TWRoute) fillLatestUnknown() {
	n := t.raw.Len()
	t.latest = make([]int64, n)
	for i := range t.latest {
		t.latest[i] = -sentinelLate
	}
}

func (t *TWRoute) vehicle() model.Vehicle {
	return t.raw.Problem().Vehicles[t.raw.VehicleRank()]
}

func (t *TWRoute) locationAt(rank int) int {
	job := t.raw.Problem().Jobs[t.raw.JobAt(rank)]
	return job.LocationIndex
}

func (t *TWRoute) actionTime(rank int) int64 {
	job := t.raw.Problem().Jobs[t.raw.JobAt(rank)]
	return job.ServiceDurationFor(t.raw.VehicleRank()) + job.SetupDuration
}

func (t *TWRoute) travel(from, to int) int64 {
	veh := t.vehicle()
	raw := t.raw.Problem().Matrix.Duration(from, to)
	return veh.ScaleDuration(raw)
}

// chooseEarliestWindow returns the earliest feasible service start not
// before lowerBound, scanning windows in ascending order.
func chooseEarliestWindow(windows []model.TimeWindow, lowerBound int64) (int64, bool) {
	for _, w := range windows {
		if lowerBound < w.End {
			start := lowerBound
			if start < w.Start {
				start = w.Start
			}
			if start < w.End {
				return start, true
			}
		}
	}
	return 0, false
}

// chooseLatestWindow returns the latest feasible service start not after
// upperBound, scanning windows in descending order.
func chooseLatestWindow(windows []model.TimeWindow, upperBound int64) (int64, bool) {
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if w.Start > upperBound {
			continue
		}
		end := upperBound
		if end >= w.End {
			end = w.End - 1
		}
		if end >= w.Start {
			return end, true
		}
	}
	return 0, false
}

func (t *TWRoute) runForward() {
	n := t.raw.Len()
	veh := t.vehicle()
	t.earliest = make([]int64, n)
	t.breaks = t.breaks[:0]

	current := veh.Shift.Start
	loc := veh.StartLocationIndex
	haveLoc := veh.HasStart()

	remaining := veh.Breaks

	placeBreaksAt := func(afterRank int) bool {
		for len(remaining) > 0 {
			b := remaining[0]
			start, ok := chooseEarliestWindow(b.Windows, current)
			if !ok {
				return true // can't place here; try at a later gap
			}
			if b.MaxLoadDuringBreak != nil {
				// conservative: approximate load at this point using the
				// route's cached max load; a tighter per-rank check would
				// need the raw route's profile at this exact rank.
				if !t.raw.MaxLoad().LessEq(*b.MaxLoadDuringBreak) {
					return true
				}
			}
			t.breaks = append(t.breaks, placedBreak{
				afterRank: afterRank,
				duration:  b.Duration,
				windows:   b.Windows,
				earliest:  start,
			})
			current = start + b.Duration
			remaining = remaining[1:]
		}
		return true
	}

	placeBreaksAt(-1)

	for r := 0; r < n; r++ {
		jobLoc := t.locationAt(r)
		if haveLoc {
			current += t.travel(loc, jobLoc)
		}
		job := t.raw.Problem().Jobs[t.raw.JobAt(r)]
		start, ok := chooseEarliestWindow(job.TimeWindows, current)
		if !ok {
			t.feasible = false
			t.finishTime = sentinelLate
			return
		}
		t.earliest[r] = start
		current = start + t.actionTime(r)
		loc = jobLoc
		haveLoc = true
		placeBreaksAt(r)
	}

	if veh.HasEnd() {
		if haveLoc {
			current += t.travel(loc, veh.EndLocationIndex)
		}
		if current > veh.Shift.End {
			t.feasible = false
			t.finishTime = sentinelLate
			return
		}
	}

	if len(remaining) > 0 {
		t.feasible = false
		t.finishTime = sentinelLate
		return
	}

	t.feasible = true
	t.finishTime = current
}

func (t *TWRoute) runBackward() {
	n := t.raw.Len()
	veh := t.vehicle()
	t.latest = make([]int64, n)

	current := veh.Shift.End
	haveEnd := veh.HasEnd()
	loc := veh.EndLocationIndex

	breakIdx := len(t.breaks) - 1

	consumeBreaksAfter := func(rank int) bool {
		for breakIdx >= 0 && t.breaks[breakIdx].afterRank == rank {
			b := &t.breaks[breakIdx]
			upper := current - b.duration
			start, ok := chooseLatestWindow(b.windows, upper)
			if !ok || start < b.earliest {
				return false
			}
			b.latest = start
			current = start
			breakIdx--
		}
		return true
	}

	if haveEnd {
		if !consumeBreaksAfter(n - 1) {
			t.fillLatestUnknown()
			t.feasible = false
			return
		}
	}

	for r := n - 1; r >= 0; r-- {
		jobLoc := t.locationAt(r)
		if haveEnd || r < n-1 {
			current -= t.travel(jobLoc, loc)
		}
		upper := current - t.actionTime(r)
		job := t.raw.Problem().Jobs[t.raw.JobAt(r)]
		start, ok := chooseLatestWindow(job.TimeWindows, upper)
		if !ok || start < t.earliest[r] {
			t.fillLatestUnknown()
			t.feasible = false
			return
		}
		t.latest[r] = start
		current = start
		loc = jobLoc
		if !consumeBreaksAfter(r - 1) {
			t.fillLatestUnknown()
			t.feasible = false
			return
		}
	}
}
