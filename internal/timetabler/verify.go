package timetabler

import (
	"coursegraph/internal/model"
	"coursegraph/internal/solver"
)

// verify checks every hard constraint of a full assignment:
// - every section assigned exactly once, to a known period
// - the teacher is qualified and available, the room available
// - the room holds the section's enrollment
// - no teacher, room or curriculum is double-booked within a period
func verify(instance model.Instance, assignment map[uint64]solver.Candidate) bool {
	if len(assignment) != len(instance.Sections) {
		return false
	}

	teacherBusy := make(map[[2]uint64]bool)
	roomBusy := make(map[[2]uint64]bool)
	curriculumBusy := make(map[[2]uint64]bool)

	for _, section := range instance.Sections {
		candidate, ok := assignment[section.Id]
		if !ok || candidate.Section != section.Id {
			return false
		}
		if candidate.Period >= instance.Periods ||
			candidate.Room >= uint64(len(instance.Rooms)) ||
			candidate.Teacher >= uint64(len(instance.Teachers)) {
			return false
		}

		if !instance.Qualified(candidate.Teacher, section.Id) ||
			!instance.TeacherAvailable(candidate.Teacher, candidate.Period) ||
			!instance.RoomAvailable(candidate.Room, candidate.Period) ||
			!instance.Fits(section.Id, candidate.Room) {
			return false
		}

		if teacherBusy[[2]uint64{candidate.Teacher, candidate.Period}] ||
			roomBusy[[2]uint64{candidate.Room, candidate.Period}] {
			return false
		}
		teacherBusy[[2]uint64{candidate.Teacher, candidate.Period}] = true
		roomBusy[[2]uint64{candidate.Room, candidate.Period}] = true

		for _, curriculum := range section.Curricula {
			if curriculumBusy[[2]uint64{curriculum, candidate.Period}] {
				return false
			}
			curriculumBusy[[2]uint64{curriculum, candidate.Period}] = true
		}
	}
	return true
}
