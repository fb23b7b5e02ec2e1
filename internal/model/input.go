package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ErrMalformed marks instance inputs whose referenced availability,
// qualification or capacity data is missing or inconsistent. The engine
// fails fast on these instead of silently skipping constraints.
var ErrMalformed = errors.New("malformed instance")

type RawRoom struct {
	Name         string
	Capacity     uint64
	Availability []uint64
}

type RawTeacher struct {
	Name         string
	Courses      []string
	Availability []uint64
}

type RawCurriculum struct {
	Name     string
	Students uint64
	Courses  []string
}

type RawInstance struct {
	Name      string
	Periods   uint64
	Curricula []RawCurriculum
	Rooms     []RawRoom
	Teachers  []RawTeacher
}

func InstanceFromJson(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, err
	}

	var rawInstance RawInstance
	if err := mapstructure.Decode(inputJson, &rawInstance); err != nil {
		return Instance{}, err
	}
	return ProcessRawInstance(rawInstance)
}

// ProcessRawInstance validates a raw input and builds the instance model,
// assigning ids, expanding availability-period lists into flat period
// vectors and splitting oversized courses into sections.
func ProcessRawInstance(rawInstance RawInstance) (Instance, error) {
	instance := Instance{
		Name:    rawInstance.Name,
		Periods: rawInstance.Periods,
	}

	if rawInstance.Periods == 0 {
		return Instance{}, fmt.Errorf("%w: instance declares no periods", ErrMalformed)
	}
	if len(rawInstance.Rooms) == 0 {
		return Instance{}, fmt.Errorf("%w: instance declares no rooms", ErrMalformed)
	}

	//** Manage curricula
	courses := make(map[string]bool)
	for i, rawCurriculum := range rawInstance.Curricula {
		if lo.SomeBy(instance.Curricula, func(curriculum Curriculum) bool { return curriculum.Name == rawCurriculum.Name }) {
			return Instance{}, fmt.Errorf("%w: duplicate curriculum %q", ErrMalformed, rawCurriculum.Name)
		}
		if len(rawCurriculum.Courses) == 0 {
			return Instance{}, fmt.Errorf("%w: curriculum %q has no courses", ErrMalformed, rawCurriculum.Name)
		}

		curriculum := Curriculum{
			Id:       uint64(i),
			Name:     rawCurriculum.Name,
			Students: rawCurriculum.Students,
			Courses:  slices.Clone(rawCurriculum.Courses),
		}
		slices.Sort(curriculum.Courses)
		for _, course := range curriculum.Courses {
			courses[course] = true
		}
		instance.Curricula = append(instance.Curricula, curriculum)
	}

	//** Manage rooms
	for i, rawRoom := range rawInstance.Rooms {
		if lo.SomeBy(instance.Rooms, func(room Room) bool { return room.Name == rawRoom.Name }) {
			return Instance{}, fmt.Errorf("%w: duplicate room %q", ErrMalformed, rawRoom.Name)
		}
		if rawRoom.Capacity == 0 {
			return Instance{}, fmt.Errorf("%w: room %q has zero capacity", ErrMalformed, rawRoom.Name)
		}

		availability, err := expandAvailability(rawRoom.Availability, rawInstance.Periods)
		if err != nil {
			return Instance{}, fmt.Errorf("%w: room %q: %v", ErrMalformed, rawRoom.Name, err)
		}
		instance.Rooms = append(instance.Rooms, Room{
			Id:           uint64(i),
			Name:         rawRoom.Name,
			Capacity:     rawRoom.Capacity,
			Availability: availability,
		})
	}

	//** Manage teachers
	for i, rawTeacher := range rawInstance.Teachers {
		if lo.SomeBy(instance.Teachers, func(teacher Teacher) bool { return teacher.Name == rawTeacher.Name }) {
			return Instance{}, fmt.Errorf("%w: duplicate teacher %q", ErrMalformed, rawTeacher.Name)
		}

		qualifications := make(map[string]bool)
		for _, course := range rawTeacher.Courses {
			if !courses[course] {
				return Instance{}, fmt.Errorf("%w: teacher %q is qualified for unknown course %q", ErrMalformed, rawTeacher.Name, course)
			}
			qualifications[course] = true
		}

		availability, err := expandAvailability(rawTeacher.Availability, rawInstance.Periods)
		if err != nil {
			return Instance{}, fmt.Errorf("%w: teacher %q: %v", ErrMalformed, rawTeacher.Name, err)
		}
		instance.Teachers = append(instance.Teachers, Teacher{
			Id:           uint64(i),
			Name:         rawTeacher.Name,
			Courses:      qualifications,
			Availability: availability,
		})
	}

	//** Manage sections
	instance.Sections = buildSections(instance)
	return instance, nil
}

func expandAvailability(periods []uint64, totalPeriods uint64) ([]bool, error) {
	availability := make([]bool, totalPeriods)
	for _, period := range periods {
		if period >= totalPeriods {
			return nil, fmt.Errorf("availability references period %v but the instance has %v periods", period, totalPeriods)
		}
		availability[period] = true
	}
	return availability, nil
}
