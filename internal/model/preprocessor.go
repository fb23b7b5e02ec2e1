package model

import (
	"slices"

	"github.com/samber/lo"
)

// buildSections derives the schedulable sections from the curricula. A
// course attended by more students than the largest room holds is split
// into multiple sections, keeping each curriculum's students together
// whenever they fit.
func buildSections(instance Instance) []Section {
	maxCapacity := lo.Max(lo.Map(instance.Rooms, func(room Room, _ int) uint64 { return room.Capacity }))

	// Courses in sorted order so section ids are stable across runs
	courses := make([]string, 0)
	for _, curriculum := range instance.Curricula {
		for _, course := range curriculum.Courses {
			if !slices.Contains(courses, course) {
				courses = append(courses, course)
			}
		}
	}
	slices.Sort(courses)

	sections := make([]Section, 0, len(courses))
	for _, course := range courses {
		attendance := courseAttendance(instance, course)
		total := lo.Sum(lo.Map(attendance, func(part curriculumShare, _ int) uint64 { return part.students }))
		if total == 0 {
			continue
		}

		if total <= maxCapacity {
			sections = append(sections, newSection(uint64(len(sections)), course, 0, attendance))
			continue
		}

		for i, split := range splitCourse(attendance, maxCapacity) {
			sections = append(sections, newSection(uint64(len(sections)), course, uint64(i+1), split))
		}
	}
	return sections
}

type curriculumShare struct {
	curriculum uint64
	students   uint64
}

func courseAttendance(instance Instance, course string) []curriculumShare {
	attendance := make([]curriculumShare, 0)
	for _, curriculum := range instance.Curricula {
		if slices.Contains(curriculum.Courses, course) && curriculum.Students > 0 {
			attendance = append(attendance, curriculumShare{curriculum: curriculum.Id, students: curriculum.Students})
		}
	}
	return attendance
}

// splitCourse partitions the course's curriculum shares into groups whose
// totals fit maxCapacity: curricula larger than a room are carved into
// full-capacity slices first, then the remainders are packed greedily in
// descending size order.
func splitCourse(attendance []curriculumShare, maxCapacity uint64) [][]curriculumShare {
	splits := make([][]curriculumShare, 0)

	remainders := make([]curriculumShare, 0, len(attendance))
	for _, share := range attendance {
		students := share.students
		for students > maxCapacity {
			splits = append(splits, []curriculumShare{{curriculum: share.curriculum, students: maxCapacity}})
			students -= maxCapacity
		}
		if students > 0 {
			remainders = append(remainders, curriculumShare{curriculum: share.curriculum, students: students})
		}
	}

	// Descending by students, ascending curriculum id on ties
	slices.SortFunc(remainders, func(a, b curriculumShare) int {
		if a.students != b.students {
			return int(b.students) - int(a.students)
		}
		return int(a.curriculum) - int(b.curriculum)
	})

	current := make([]curriculumShare, 0)
	var currentTotal uint64 = 0
	for _, share := range remainders {
		if currentTotal+share.students > maxCapacity && len(current) > 0 {
			splits = append(splits, current)
			current = make([]curriculumShare, 0)
			currentTotal = 0
		}
		current = append(current, share)
		currentTotal += share.students
	}
	if len(current) > 0 {
		splits = append(splits, current)
	}
	return splits
}

func newSection(id uint64, course string, index uint64, attendance []curriculumShare) Section {
	curricula := lo.Map(attendance, func(share curriculumShare, _ int) uint64 { return share.curriculum })
	slices.Sort(curricula)
	return Section{
		Id:         id,
		Course:     course,
		Index:      index,
		Enrollment: lo.Sum(lo.Map(attendance, func(share curriculumShare, _ int) uint64 { return share.students })),
		Curricula:  curricula,
	}
}
