package timetabler

import (
	"testing"
	"time"

	"coursegraph/internal/coloring"
	"coursegraph/internal/model"
	"coursegraph/internal/solver"

	"github.com/stretchr/testify/assert"
)

func mustInstance(t *testing.T, rawInstance model.RawInstance) model.Instance {
	t.Helper()
	instance, err := model.ProcessRawInstance(rawInstance)
	assert.Nil(t, err)
	return instance
}

func allPeriods(periods uint64) []uint64 {
	result := make([]uint64, periods)
	for i := range result {
		result[i] = uint64(i)
	}
	return result
}

// Two disjoint curricula, ample rooms and teachers. Solvable by every
// timetabler.
func easyInstance(t *testing.T) model.Instance {
	return mustInstance(t, model.RawInstance{
		Name:    "easy",
		Periods: 3,
		Curricula: []model.RawCurriculum{
			{Name: "C1", Students: 20, Courses: []string{"Course-A"}},
			{Name: "C2", Students: 20, Courses: []string{"Course-B"}},
		},
		Rooms: []model.RawRoom{
			{Name: "R1", Capacity: 50, Availability: allPeriods(3)},
			{Name: "R2", Capacity: 50, Availability: allPeriods(3)},
		},
		Teachers: []model.RawTeacher{
			{Name: "T1", Courses: []string{"Course-A", "Course-B"}, Availability: allPeriods(3)},
			{Name: "T2", Courses: []string{"Course-A", "Course-B"}, Availability: allPeriods(3)},
		},
	})
}

// Four sections of one curriculum but only three periods. No timetabler
// can place them.
func crowdedInstance(t *testing.T) model.Instance {
	courses := []string{"Course-A", "Course-B", "Course-C", "Course-D"}
	return mustInstance(t, model.RawInstance{
		Name:    "crowded",
		Periods: 3,
		Curricula: []model.RawCurriculum{
			{Name: "C1", Students: 20, Courses: courses},
		},
		Rooms: []model.RawRoom{
			{Name: "R1", Capacity: 50, Availability: allPeriods(3)},
			{Name: "R2", Capacity: 50, Availability: allPeriods(3)},
			{Name: "R3", Capacity: 50, Availability: allPeriods(3)},
			{Name: "R4", Capacity: 50, Availability: allPeriods(3)},
		},
		Teachers: []model.RawTeacher{
			{Name: "T1", Courses: courses, Availability: allPeriods(3)},
			{Name: "T2", Courses: courses, Availability: allPeriods(3)},
			{Name: "T3", Courses: courses, Availability: allPeriods(3)},
			{Name: "T4", Courses: courses, Availability: allPeriods(3)},
		},
	})
}

func TestExhaustiveTimetabler(t *testing.T) {
	t.Run("builds a verifiable timetable", func(t *testing.T) {
		// Arrange
		instance := easyInstance(t)
		engine := NewExhaustiveTimetabler(time.Minute)

		// Act
		result, err := engine.Build(instance)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, solver.Feasible, result.Outcome)
		assert.True(t, engine.Verify(instance, result.Assignment))
	})

	t.Run("reports infeasibility on crowded instances", func(t *testing.T) {
		// Arrange
		instance := crowdedInstance(t)
		engine := NewExhaustiveTimetabler(time.Minute)

		// Act
		result, err := engine.Build(instance)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, solver.ProvenInfeasible, result.Outcome)
	})
}

func TestHeuristicTimetabler(t *testing.T) {
	strategies := []coloring.Strategy{
		coloring.DSatur(42),
		coloring.RLF(),
	}

	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			t.Run("builds a verifiable timetable", func(t *testing.T) {
				// Arrange
				instance := easyInstance(t)
				engine := NewHeuristicTimetabler(strategy)

				// Act
				result, err := engine.Build(instance)

				// Assert
				assert.Nil(t, err)
				assert.Equal(t, solver.Feasible, result.Outcome)
				assert.True(t, engine.Verify(instance, result.Assignment))
			})

			t.Run("fails when the coloring needs more periods than available", func(t *testing.T) {
				// Arrange
				instance := crowdedInstance(t)
				engine := NewHeuristicTimetabler(strategy)

				// Act
				_, err := engine.Build(instance)

				// Assert
				assert.ErrorIs(t, err, ErrUnassignable)
			})
		})
	}

	t.Run("fails when no room fits a section in its period", func(t *testing.T) {
		// Arrange: both sections clash, but only period 0 has a usable room
		instance := mustInstance(t, model.RawInstance{
			Name:    "tight-rooms",
			Periods: 2,
			Curricula: []model.RawCurriculum{
				{Name: "C1", Students: 40, Courses: []string{"Course-A", "Course-B"}},
			},
			Rooms: []model.RawRoom{
				{Name: "R1", Capacity: 50, Availability: []uint64{0}},
			},
			Teachers: []model.RawTeacher{
				{Name: "T1", Courses: []string{"Course-A", "Course-B"}, Availability: allPeriods(2)},
			},
		})
		engine := NewHeuristicTimetabler(coloring.RLF())

		// Act
		_, err := engine.Build(instance)

		// Assert
		assert.ErrorIs(t, err, ErrUnassignable)
	})
}

func TestVerify(t *testing.T) {
	feasible := func(t *testing.T) (model.Instance, map[uint64]solver.Candidate) {
		t.Helper()
		instance := easyInstance(t)
		result, err := NewExhaustiveTimetabler(time.Minute).Build(instance)
		assert.Nil(t, err)
		assert.Equal(t, solver.Feasible, result.Outcome)
		return instance, result.Assignment
	}

	t.Run("rejects an incomplete assignment", func(t *testing.T) {
		// Arrange
		instance, assignment := feasible(t)
		delete(assignment, 0)

		// Act && Assert
		assert.False(t, verify(instance, assignment))
	})

	t.Run("rejects an out-of-range period", func(t *testing.T) {
		// Arrange
		instance, assignment := feasible(t)
		tampered := assignment[0]
		tampered.Period = instance.Periods
		assignment[0] = tampered

		// Act && Assert
		assert.False(t, verify(instance, assignment))
	})

	t.Run("rejects a double-booked room", func(t *testing.T) {
		// Arrange
		instance, assignment := feasible(t)
		tampered := assignment[1]
		tampered.Period = assignment[0].Period
		tampered.Room = assignment[0].Room
		assignment[1] = tampered

		// Act && Assert
		assert.False(t, verify(instance, assignment))
	})

	t.Run("rejects an unqualified teacher", func(t *testing.T) {
		// Arrange: T2 only teaches Course-B
		instance := mustInstance(t, model.RawInstance{
			Name:    "specialists",
			Periods: 2,
			Curricula: []model.RawCurriculum{
				{Name: "C1", Students: 20, Courses: []string{"Course-A"}},
			},
			Rooms: []model.RawRoom{
				{Name: "R1", Capacity: 50, Availability: allPeriods(2)},
			},
			Teachers: []model.RawTeacher{
				{Name: "T1", Courses: []string{"Course-A"}, Availability: allPeriods(2)},
				{Name: "T2", Courses: []string{"Course-A"}, Availability: allPeriods(2)},
			},
		})
		assignment := map[uint64]solver.Candidate{
			0: {Section: 0, Period: 0, Room: 0, Teacher: 0},
		}
		assert.True(t, verify(instance, assignment))

		// Act: swap in a teacher with no qualification for the course
		broken := mustInstance(t, model.RawInstance{
			Name:    "specialists",
			Periods: 2,
			Curricula: []model.RawCurriculum{
				{Name: "C1", Students: 20, Courses: []string{"Course-A", "Course-B"}},
			},
			Rooms: []model.RawRoom{
				{Name: "R1", Capacity: 50, Availability: allPeriods(2)},
				{Name: "R2", Capacity: 50, Availability: allPeriods(2)},
			},
			Teachers: []model.RawTeacher{
				{Name: "T1", Courses: []string{"Course-A"}, Availability: allPeriods(2)},
				{Name: "T2", Courses: []string{"Course-B"}, Availability: allPeriods(2)},
			},
		})
		unqualified := map[uint64]solver.Candidate{
			0: {Section: 0, Period: 0, Room: 0, Teacher: 1}, // T2 cannot teach Course-A
			1: {Section: 1, Period: 1, Room: 0, Teacher: 1},
		}

		// Assert
		assert.False(t, verify(broken, unqualified))
	})
}
