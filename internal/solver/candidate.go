package solver

import (
	"fmt"

	"coursegraph/internal/model"
)

// Candidate is a feasible (section, period, room, teacher) tuple: the
// room holds the section, the teacher is qualified for its course, and
// both room and teacher are available in the period.
type Candidate struct {
	Section uint64
	Period  uint64
	Room    uint64
	Teacher uint64
}

// CandidateSet is the arena of generated candidates: the implicit
// conflict graph's vertex set. Candidates are indexed per section (in
// generation order) and flat (arena order), and the pairwise curricula
// clash between sections is precomputed so conflict checks stay O(1).
type CandidateSet struct {
	bySection [][]Candidate
	flat      []Candidate
	clash     [][]bool // clash[i][j]: sections i and j share a curriculum
}

// Candidates enumerates every feasible candidate per section. Order is
// deterministic: period ascending, then room, then teacher. A section may
// end up with no candidates; Solve treats that as structural
// infeasibility.
func Candidates(instance model.Instance) (*CandidateSet, error) {
	if err := checkShape(instance); err != nil {
		return nil, err
	}

	candidates := &CandidateSet{
		bySection: make([][]Candidate, len(instance.Sections)),
		clash:     buildClashMatrix(instance),
	}

	for _, section := range instance.Sections {
		list := make([]Candidate, 0)
		for period := uint64(0); period < instance.Periods; period++ {
			for _, room := range instance.Rooms {
				if !instance.Fits(section.Id, room.Id) || !instance.RoomAvailable(room.Id, period) {
					continue
				}
				for _, teacher := range instance.Teachers {
					if !instance.Qualified(teacher.Id, section.Id) || !instance.TeacherAvailable(teacher.Id, period) {
						continue
					}
					list = append(list, Candidate{
						Section: section.Id,
						Period:  period,
						Room:    room.Id,
						Teacher: teacher.Id,
					})
				}
			}
		}
		candidates.bySection[section.Id] = list
		candidates.flat = append(candidates.flat, list...)
	}

	return candidates, nil
}

// PerSection returns the candidate list of the given section in
// generation order. The returned slice must not be mutated.
func (candidates *CandidateSet) PerSection(section uint64) []Candidate {
	return candidates.bySection[section]
}

func (candidates *CandidateSet) Sections() uint64 {
	return uint64(len(candidates.bySection))
}

// Len returns the total number of candidates: the conflict graph's
// vertex count.
func (candidates *CandidateSet) Len() uint64 {
	return uint64(len(candidates.flat))
}

// At returns the candidate with the given arena index.
func (candidates *CandidateSet) At(index uint64) Candidate {
	return candidates.flat[index]
}

// checkShape fails fast on instances whose availability or qualification
// data cannot back a candidate enumeration.
func checkShape(instance model.Instance) error {
	if instance.Periods == 0 {
		return fmt.Errorf("%w: instance declares no periods", model.ErrMalformed)
	}
	for _, room := range instance.Rooms {
		if uint64(len(room.Availability)) != instance.Periods {
			return fmt.Errorf("%w: room %q availability covers %v of %v periods", model.ErrMalformed, room.Name, len(room.Availability), instance.Periods)
		}
	}
	for _, teacher := range instance.Teachers {
		if uint64(len(teacher.Availability)) != instance.Periods {
			return fmt.Errorf("%w: teacher %q availability covers %v of %v periods", model.ErrMalformed, teacher.Name, len(teacher.Availability), instance.Periods)
		}
		if teacher.Courses == nil {
			return fmt.Errorf("%w: teacher %q has no qualification data", model.ErrMalformed, teacher.Name)
		}
	}
	for _, section := range instance.Sections {
		for _, curriculum := range section.Curricula {
			if curriculum >= uint64(len(instance.Curricula)) {
				return fmt.Errorf("%w: section %q references unknown curriculum %v", model.ErrMalformed, section.Course, curriculum)
			}
		}
	}
	return nil
}

// buildClashMatrix precomputes which section pairs share a curriculum.
// The diagonal is true for completeness.
func buildClashMatrix(instance model.Instance) [][]bool {
	total := len(instance.Sections)
	clash := make([][]bool, total)
	for i := range clash {
		clash[i] = make([]bool, total)
		clash[i][i] = true
	}

	for i := 0; i < total-1; i++ {
		for j := i + 1; j < total; j++ {
			if shareCurriculum(instance.Sections[i], instance.Sections[j]) {
				clash[i][j] = true
				clash[j][i] = true
			}
		}
	}
	return clash
}

func shareCurriculum(a, b model.Section) bool {
	// Both curricula lists are ascending, so a merge walk suffices
	i, j := 0, 0
	for i < len(a.Curricula) && j < len(b.Curricula) {
		switch {
		case a.Curricula[i] == b.Curricula[j]:
			return true
		case a.Curricula[i] < b.Curricula[j]:
			i++
		default:
			j++
		}
	}
	return false
}
