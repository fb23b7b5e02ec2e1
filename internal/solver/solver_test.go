package solver

import (
	"fmt"
	"testing"
	"time"

	"coursegraph/internal/model"

	"github.com/stretchr/testify/assert"
)

// Every section has exactly one candidate and the candidates are pairwise
// disjoint in teacher, room and period.
func disjointInstance(t *testing.T) model.Instance {
	return mustInstance(t, model.RawInstance{
		Name:    "disjoint",
		Periods: 3,
		Curricula: []model.RawCurriculum{
			{Name: "C1", Students: 10, Courses: []string{"Course-A"}},
			{Name: "C2", Students: 10, Courses: []string{"Course-B"}},
			{Name: "C3", Students: 10, Courses: []string{"Course-C"}},
		},
		Rooms: []model.RawRoom{
			{Name: "R1", Capacity: 30, Availability: []uint64{0}},
			{Name: "R2", Capacity: 30, Availability: []uint64{1}},
			{Name: "R3", Capacity: 30, Availability: []uint64{2}},
		},
		Teachers: []model.RawTeacher{
			{Name: "T1", Courses: []string{"Course-A"}, Availability: []uint64{0}},
			{Name: "T2", Courses: []string{"Course-B"}, Availability: []uint64{1}},
			{Name: "T3", Courses: []string{"Course-C"}, Availability: []uint64{2}},
		},
	})
}

// All sections mutually conflict through a single shared curriculum.
func mutualConflictInstance(t *testing.T, sections, periods uint64) model.Instance {
	courses := make([]string, sections)
	for i := range courses {
		courses[i] = fmt.Sprintf("Course-%v", i+1)
	}

	rawInstance := model.RawInstance{
		Name:    "mutual-conflict",
		Periods: periods,
		Curricula: []model.RawCurriculum{
			{Name: "C1", Students: 10, Courses: courses},
		},
	}
	for i := uint64(0); i < sections; i++ {
		rawInstance.Rooms = append(rawInstance.Rooms, model.RawRoom{
			Name: fmt.Sprintf("R%v", i+1), Capacity: 30, Availability: allPeriods(periods),
		})
		rawInstance.Teachers = append(rawInstance.Teachers, model.RawTeacher{
			Name: fmt.Sprintf("T%v", i+1), Courses: courses, Availability: allPeriods(periods),
		})
	}
	return mustInstance(t, rawInstance)
}

func TestSolve(t *testing.T) {
	t.Run("pairwise disjoint sections are feasible with no backtracking", func(t *testing.T) {
		// Arrange
		instance := disjointInstance(t)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)
		for section := uint64(0); section < candidates.Sections(); section++ {
			assert.Len(t, candidates.PerSection(section), 1)
		}

		// Act
		result := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, Feasible, result.Outcome)
		assert.Len(t, result.Assignment, 3)
		assertConflictFree(t, candidates, result)
	})

	t.Run("mutually conflicting sections exceeding the periods are proven infeasible", func(t *testing.T) {
		// Arrange: 4 sections sharing a curriculum, only 3 periods
		instance := mutualConflictInstance(t, 4, 3)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)
		for section := uint64(0); section < candidates.Sections(); section++ {
			assert.NotEmpty(t, candidates.PerSection(section))
		}

		// Act
		result := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, ProvenInfeasible, result.Outcome)
		assert.Nil(t, result.Assignment)
	})

	t.Run("proven infeasibility is stable under an unbounded budget", func(t *testing.T) {
		// Arrange
		instance := mutualConflictInstance(t, 4, 3)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)

		// Act
		bounded := Solve(candidates, time.Minute)
		unbounded := Solve(candidates, 0)

		// Assert
		assert.Equal(t, ProvenInfeasible, bounded.Outcome)
		assert.Equal(t, ProvenInfeasible, unbounded.Outcome)
	})

	t.Run("enough periods make the mutual conflict feasible", func(t *testing.T) {
		// Arrange
		instance := mutualConflictInstance(t, 4, 4)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)

		// Act
		result := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, Feasible, result.Outcome)
		assert.Len(t, result.Assignment, 4)
		assertConflictFree(t, candidates, result)
	})

	t.Run("an empty candidate list is structurally infeasible without search", func(t *testing.T) {
		// Arrange: the only room is never available, so the section has no
		// candidates at all
		instance := mustInstance(t, model.RawInstance{
			Name:    "structural",
			Periods: 2,
			Curricula: []model.RawCurriculum{
				{Name: "C1", Students: 30, Courses: []string{"Course-A"}},
			},
			Rooms: []model.RawRoom{
				{Name: "Closed", Capacity: 100, Availability: nil},
			},
			Teachers: []model.RawTeacher{
				{Name: "T1", Courses: []string{"Course-A"}, Availability: allPeriods(2)},
			},
		})
		candidates, err := Candidates(instance)
		assert.Nil(t, err)
		assert.Empty(t, candidates.PerSection(0))

		// Act
		result := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, StructurallyInfeasible, result.Outcome)
		assert.Nil(t, result.Assignment)
	})

	t.Run("a course with no qualified teacher is structurally infeasible", func(t *testing.T) {
		// Arrange
		instance := mustInstance(t, model.RawInstance{
			Name:    "unteachable",
			Periods: 2,
			Curricula: []model.RawCurriculum{
				{Name: "C1", Students: 30, Courses: []string{"Course-A"}},
			},
			Rooms: []model.RawRoom{
				{Name: "R1", Capacity: 100, Availability: allPeriods(2)},
			},
			Teachers: []model.RawTeacher{
				{Name: "T1", Courses: []string{}, Availability: allPeriods(2)},
			},
		})
		candidates, err := Candidates(instance)
		assert.Nil(t, err)
		assert.Empty(t, candidates.PerSection(0))

		// Act
		result := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, StructurallyInfeasible, result.Outcome)
	})

	t.Run("an exceeded budget is reported as timed out, not infeasible", func(t *testing.T) {
		// Arrange: large feasible search space, vanishing budget
		instance := mutualConflictInstance(t, 8, 8)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)

		// Act
		result := Solve(candidates, time.Nanosecond)

		// Assert
		assert.Equal(t, TimedOut, result.Outcome)
		assert.Nil(t, result.Assignment)
	})

	t.Run("identical inputs yield identical assignments", func(t *testing.T) {
		// Arrange
		instance := mutualConflictInstance(t, 4, 5)
		candidates, err := Candidates(instance)
		assert.Nil(t, err)

		// Act
		first := Solve(candidates, time.Minute)
		second := Solve(candidates, time.Minute)

		// Assert
		assert.Equal(t, Feasible, first.Outcome)
		assert.Equal(t, first.Assignment, second.Assignment)
	})
}

func assertConflictFree(t *testing.T, candidates *CandidateSet, result Result) {
	t.Helper()
	chosen := make([]Candidate, 0, len(result.Assignment))
	for section := uint64(0); section < candidates.Sections(); section++ {
		candidate, ok := result.Assignment[section]
		assert.True(t, ok)
		assert.Equal(t, section, candidate.Section)
		chosen = append(chosen, candidate)
	}
	for i := range chosen {
		for j := i + 1; j < len(chosen); j++ {
			assert.False(t, candidates.Conflicts(chosen[i], chosen[j]))
		}
	}
}
