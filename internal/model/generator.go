package model

import (
	"fmt"
	"math/rand"
	"slices"
)

// GeneratorConfig sizes a randomly generated instance. Identical configs
// (seed included) always produce identical instances.
type GeneratorConfig struct {
	Courses   uint64
	Curricula uint64
	Rooms     uint64
	Teachers  uint64
	Periods   uint64
	Seed      int64

	// MinCapacity and MaxCapacity bound room sizes; zero values default
	// to 30 and 120.
	MinCapacity uint64
	MaxCapacity uint64
}

// RandomInstance builds a random, well-formed instance: every curriculum
// gets at least one course, every course at least one qualified teacher,
// and every room and teacher at least one available period. The output
// goes through the same validation path as JSON inputs.
func RandomInstance(config GeneratorConfig) (Instance, error) {
	if config.Courses == 0 || config.Curricula == 0 || config.Rooms == 0 || config.Teachers == 0 || config.Periods == 0 {
		return Instance{}, fmt.Errorf("%w: generator config requires at least one course, curriculum, room, teacher and period", ErrMalformed)
	}

	minCapacity, maxCapacity := config.MinCapacity, config.MaxCapacity
	if minCapacity == 0 {
		minCapacity = 30
	}
	if maxCapacity < minCapacity {
		maxCapacity = minCapacity + 90
	}

	random := rand.New(rand.NewSource(config.Seed))

	courses := make([]string, config.Courses)
	for i := range courses {
		courses[i] = fmt.Sprintf("Course-%v", i+1)
	}

	rawInstance := RawInstance{
		Name:    fmt.Sprintf("random-%v", config.Seed),
		Periods: config.Periods,
	}

	//** Curricula: partition courses round-robin, then sprinkle extras
	curriculumCourses := make([][]string, config.Curricula)
	for i, course := range courses {
		curriculumCourses[uint64(i)%config.Curricula] = append(curriculumCourses[uint64(i)%config.Curricula], course)
	}
	for i := range curriculumCourses {
		extra := courses[random.Intn(len(courses))]
		if !slices.Contains(curriculumCourses[i], extra) {
			curriculumCourses[i] = append(curriculumCourses[i], extra)
		}
		rawInstance.Curricula = append(rawInstance.Curricula, RawCurriculum{
			Name:     fmt.Sprintf("Curriculum-%v", i+1),
			Students: minCapacity + uint64(random.Intn(int(maxCapacity-minCapacity+1))),
			Courses:  curriculumCourses[i],
		})
	}

	//** Rooms: random capacity, dense availability with random gaps
	for i := uint64(0); i < config.Rooms; i++ {
		rawInstance.Rooms = append(rawInstance.Rooms, RawRoom{
			Name:         fmt.Sprintf("Room-%v", i+1),
			Capacity:     minCapacity + uint64(random.Intn(int(maxCapacity-minCapacity+1))),
			Availability: randomPeriods(random, config.Periods),
		})
	}
	// The largest room must hold the largest curriculum, otherwise the
	// section splitter can emit sections no room fits
	rawInstance.Rooms[0].Capacity = maxCapacity

	//** Teachers: random qualification subsets covering every course
	for i := uint64(0); i < config.Teachers; i++ {
		qualified := []string{courses[uint64(i)%config.Courses]}
		for _, course := range courses {
			if random.Intn(3) == 0 && !slices.Contains(qualified, course) {
				qualified = append(qualified, course)
			}
		}
		rawInstance.Teachers = append(rawInstance.Teachers, RawTeacher{
			Name:         fmt.Sprintf("Teacher-%v", i+1),
			Courses:      qualified,
			Availability: randomPeriods(random, config.Periods),
		})
	}

	return ProcessRawInstance(rawInstance)
}

// randomPeriods returns a non-empty subset of 0..periods-1, keeping each
// period with probability 3/4.
func randomPeriods(random *rand.Rand, periods uint64) []uint64 {
	available := make([]uint64, 0, periods)
	for period := uint64(0); period < periods; period++ {
		if random.Intn(4) != 0 {
			available = append(available, period)
		}
	}
	if len(available) == 0 {
		available = append(available, uint64(random.Intn(int(periods))))
	}
	return available
}
