package solver

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

type Outcome int

const (
	// Feasible: a full conflict-free assignment was found.
	Feasible Outcome = iota
	// StructurallyInfeasible: some section has zero candidates; detected
	// before any search step.
	StructurallyInfeasible
	// ProvenInfeasible: the whole search tree was exhausted within the
	// budget without a solution. A definitive negative.
	ProvenInfeasible
	// TimedOut: the budget ran out before the tree was exhausted. Not a
	// proof of infeasibility.
	TimedOut
)

func (outcome Outcome) String() string {
	switch outcome {
	case Feasible:
		return "feasible"
	case StructurallyInfeasible:
		return "structurally-infeasible"
	case ProvenInfeasible:
		return "proven-infeasible"
	case TimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

type Result struct {
	Outcome    Outcome
	Assignment map[uint64]Candidate // section -> chosen candidate
	Elapsed    time.Duration
}

// Solve searches for one candidate per section such that no chosen pair
// conflicts. Sections are branched on in fail-first order (fewest
// candidates first); within a section candidates are tried in generation
// order, so the search is fully deterministic. A budget <= 0 means
// unbounded. The budget is checked once per search-tree node and doubles
// as the only cancellation mechanism.
func Solve(candidates *CandidateSet, budget time.Duration) Result {
	start := time.Now()

	//** Structural check: empty candidate list means no search at all
	for section := uint64(0); section < candidates.Sections(); section++ {
		if len(candidates.PerSection(section)) == 0 {
			return Result{Outcome: StructurallyInfeasible, Elapsed: time.Since(start)}
		}
	}

	//** Fail-first ordering: fewest candidates first, ties by section id
	order := lo.RangeFrom(uint64(0), int(candidates.Sections()))
	slices.SortStableFunc(order, func(a, b uint64) int {
		return len(candidates.PerSection(a)) - len(candidates.PerSection(b))
	})

	committed := make([]Candidate, 0, len(order))
	timedOut := false

	var search func(depth int) bool
	search = func(depth int) bool {
		if budget > 0 && time.Since(start) > budget {
			timedOut = true
			return false
		}
		if depth == len(order) {
			return true
		}

		for _, candidate := range candidates.PerSection(order[depth]) {
			if conflictsCommitted(candidates, committed, candidate) {
				continue
			}
			committed = append(committed, candidate)
			if search(depth + 1) {
				return true
			}
			committed = committed[:len(committed)-1]
			if timedOut {
				return false
			}
		}
		return false
	}

	if search(0) {
		assignment := make(map[uint64]Candidate, len(committed))
		for _, candidate := range committed {
			assignment[candidate.Section] = candidate
		}
		return Result{Outcome: Feasible, Assignment: assignment, Elapsed: time.Since(start)}
	}
	if timedOut {
		return Result{Outcome: TimedOut, Elapsed: time.Since(start)}
	}
	return Result{Outcome: ProvenInfeasible, Elapsed: time.Since(start)}
}

func conflictsCommitted(candidates *CandidateSet, committed []Candidate, candidate Candidate) bool {
	for _, chosen := range committed {
		if candidates.Conflicts(chosen, candidate) {
			return true
		}
	}
	return false
}
