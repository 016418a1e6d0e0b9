package ops

import "github.com/vrpstack/optiroute/model"

// Move is the contract every operator satisfies (spec §4.6). Gain is the
// Eval saved by applying (may be negative — the driver filters). IsValid
// reports whether the instance preserves every hard constraint. Apply
// mutates the involved routes and rebuilds the touched solution-state
// tables. UpdateCandidates names the vehicle ranks Apply touched, for any
// cache the driver keeps above solutionstate.State.
type Move interface {
	Gain() model.Eval
	IsValid() bool
	Apply()
	UpdateCandidates() []int
}

// baseMove is embedded by every concrete operator below.
type baseMove struct {
	gain       model.Eval
	valid      bool
	candidates []int
	applyFn    func()
}

func (m *baseMove) Gain() model.Eval        { return m.gain }
func (m *baseMove) IsValid() bool           { return m.valid }
func (m *baseMove) UpdateCandidates() []int { return m.candidates }
func (m *baseMove) Apply() {
	if m.valid && m.applyFn != nil {
		m.applyFn()
	}
}
