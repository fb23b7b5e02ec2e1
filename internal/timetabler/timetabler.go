package timetabler

import (
	"time"

	"coursegraph/internal/model"
	"coursegraph/internal/solver"
)

type Timetabler interface {
	Build(instance model.Instance) (solver.Result, error)

	Verify(instance model.Instance, assignment map[uint64]solver.Candidate) bool
}

type exhaustiveTimetabler struct {
	budget time.Duration
}

// NewExhaustiveTimetabler builds timetables with the time-bounded
// backtracking solver. A budget <= 0 means unbounded search.
func NewExhaustiveTimetabler(budget time.Duration) Timetabler {
	return &exhaustiveTimetabler{
		budget: budget,
	}
}

func (timetabler *exhaustiveTimetabler) Build(instance model.Instance) (solver.Result, error) {
	candidates, err := solver.Candidates(instance)
	if err != nil {
		return solver.Result{}, err
	}
	return solver.Solve(candidates, timetabler.budget), nil
}

func (timetabler *exhaustiveTimetabler) Verify(instance model.Instance, assignment map[uint64]solver.Candidate) bool {
	return verify(instance, assignment)
}
