package search

import (
	"context"
	"time"

	"github.com/vrpstack/optiroute/construct"
	"github.com/vrpstack/optiroute/solutionstate"
)

// Driver runs the iterated local-search loop described in spec §4.8.
type Driver struct {
	Options Options
}

// NewDriver returns a Driver configured with opts.
func NewDriver(opts Options) *Driver {
	return &Driver{Options: opts}
}

// Run repeatedly applies ls-steps to st in place, snapshotting the
// best-so-far solution around every round and restoring it on a
// non-improving round, interleaving a regret-based refill of anything an
// ls-step leaves unassigned and, every RuinEvery rounds, a
// ruin-and-recreate escape (spec §4.8). It returns once Options.Depth
// rounds have run, ctx is done, or the deadline passes; st ends up holding
// the best solution found, whether or not the final round improved on it.
// A nil ctx is treated as context.Background.
func (d *Driver) Run(ctx context.Context, st *solutionstate.State) {
	opts := d.Options
	depth := opts.Depth
	if depth <= 0 {
		depth = 1
	}

	best := st.Clone()
	bestTuple := computeTuple(best)

	adopt := func() {
		tuple := computeTuple(st)
		if tuple.better(bestTuple) {
			best, bestTuple = st.Clone(), tuple
		} else {
			restoreInto(st, best)
		}
	}

	for round := 0; round < depth; round++ {
		if stopped(ctx, opts.Deadline) {
			break
		}
		runLsSteps(ctx, st, opts)
		if len(st.Unassigned) > 0 {
			construct.InsertUnassigned(st, decayedRegretCoefficient(opts.RefillRegretCoefficientPercent, round, depth))
		}
		adopt()

		if opts.RuinEvery > 0 && round > 0 && round%opts.RuinEvery == 0 && !stopped(ctx, opts.Deadline) {
			Ruin(st, opts)
			runLsSteps(ctx, st, opts)
			adopt()
		}
	}

	restoreInto(st, best)
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && !time.Now().Before(deadline)
}

// stopped reports whether the driver should stop starting new work,
// because ctx was cancelled/timed out or the wall-clock deadline passed.
func stopped(ctx context.Context, deadline time.Time) bool {
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	return pastDeadline(deadline)
}

// decayedRegretCoefficient linearly decays base toward 0 as round
// approaches depth (spec §4.8 step 4): early rounds weight regret
// heavily, favoring jobs that would become much harder to place later;
// by the final rounds the refill falls back to plain cheapest-insertion,
// since by then there is little left to plan around.
func decayedRegretCoefficient(base int64, round, depth int) int64 {
	if depth <= 1 {
		return base
	}
	return base * int64(depth-round) / int64(depth)
}

// restoreInto overwrites dst's routes and every derived cache with a copy
// of src's, vehicle by vehicle, the same rebuild-from-sequence approach
// solutionstate.State.Clone uses.
func restoreInto(dst, src *solutionstate.State) {
	for v := range src.Routes {
		dst.Routes[v].SetSequence(append([]int(nil), src.Routes[v].Raw().JobRanks()...))
		dst.RebuildVehicle(v)
	}
}

// runLsSteps applies ls-steps to st until one doesn't improve, ctx is
// done, or the deadline passes.
func runLsSteps(ctx context.Context, st *solutionstate.State, opts Options) {
	for {
		if stopped(ctx, opts.Deadline) {
			return
		}
		if !lsStep(st, opts) {
			return
		}
	}
}
