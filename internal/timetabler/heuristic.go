package timetabler

import (
	"errors"
	"fmt"
	"time"

	"coursegraph/internal/coloring"
	"coursegraph/internal/model"
	"coursegraph/internal/solver"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// ErrUnassignable marks instances the heuristic could not fully assign.
// It is not a proof of infeasibility: the exhaustive timetabler may still
// find a solution, and falling back to it is the caller's decision.
var ErrUnassignable = errors.New("heuristic could not assign all sections")

type heuristicTimetabler struct {
	strategy coloring.Strategy
}

// NewHeuristicTimetabler builds timetables in polynomial time by coloring
// the section clash graph (colors are periods) with the given strategy
// and then matching rooms and teachers per period. The coloring step is
// unaware of capacity; capacity and availability are recovered by the
// matching, which reports unassignable sections instead of degrading
// constraints.
func NewHeuristicTimetabler(strategy coloring.Strategy) Timetabler {
	return &heuristicTimetabler{
		strategy: strategy,
	}
}

func (timetabler *heuristicTimetabler) Build(instance model.Instance) (solver.Result, error) {
	start := time.Now()

	//** Assign periods by coloring the curriculum clash graph
	clashGraph := solver.SectionClashGraph(instance)
	sectionColoring, err := coloring.Color(clashGraph, timetabler.strategy)
	if err != nil {
		return solver.Result{}, err
	}
	if sectionColoring.ColorCount() > instance.Periods {
		return solver.Result{}, fmt.Errorf("%w: coloring uses %v periods but the instance has %v", ErrUnassignable, sectionColoring.ColorCount(), instance.Periods)
	}

	//** Assign rooms and teachers within each period by maximum matching
	assignment := make(map[uint64]solver.Candidate, len(instance.Sections))
	for color, sections := range sectionColoring.Classes {
		period := uint64(color)

		rooms, err := matchSections(sections, allRooms(instance), func(section, room uint64) bool {
			return instance.Fits(section, room) && instance.RoomAvailable(room, period)
		})
		if err != nil {
			return solver.Result{}, fmt.Errorf("%w: no room assignment for period %v", ErrUnassignable, period)
		}

		teachers, err := matchSections(sections, allTeachers(instance), func(section, teacher uint64) bool {
			return instance.Qualified(teacher, section) && instance.TeacherAvailable(teacher, period)
		})
		if err != nil {
			return solver.Result{}, fmt.Errorf("%w: no teacher assignment for period %v", ErrUnassignable, period)
		}

		for _, section := range sections {
			assignment[section] = solver.Candidate{
				Section: section,
				Period:  period,
				Room:    rooms[section],
				Teacher: teachers[section],
			}
		}
	}

	return solver.Result{
		Outcome:    solver.Feasible,
		Assignment: assignment,
		Elapsed:    time.Since(start),
	}, nil
}

func (timetabler *heuristicTimetabler) Verify(instance model.Instance, assignment map[uint64]solver.Candidate) bool {
	return verify(instance, assignment)
}

// matchSections computes a maximum bipartite matching between sections
// and resources and fails when some section stays unmatched.
func matchSections(sections, resources []uint64, allowed func(section, resource uint64) bool) (map[uint64]uint64, error) {
	neighbors := func(sectionAny any, resourceAny any) (bool, error) {
		return allowed(sectionAny.(uint64), resourceAny.(uint64)), nil
	}

	// Transform sections and resources to slices of any
	sectionsAny := lo.Map(sections, func(section uint64, _ int) any { return section })
	resourcesAny := lo.Map(resources, func(resource uint64, _ int) any { return resource })

	bipartite, err := bipartitegraph.NewBipartiteGraph(sectionsAny, resourcesAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := bipartite.LargestMatching()
	if len(matching) < len(sections) {
		return nil, ErrUnassignable
	}

	assignments := make(map[uint64]uint64, len(sections))
	for _, edge := range matching {
		sectionIndex, resourceIndex := edge.Node1, edge.Node2-len(sections)
		assignments[sections[sectionIndex]] = resources[resourceIndex]
	}
	return assignments, nil
}

func allRooms(instance model.Instance) []uint64 {
	return lo.Map(instance.Rooms, func(room model.Room, _ int) uint64 { return room.Id })
}

func allTeachers(instance model.Instance) []uint64 {
	return lo.Map(instance.Teachers, func(teacher model.Teacher, _ int) uint64 { return teacher.Id })
}
