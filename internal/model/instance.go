package model

// Curriculum is a named group of courses assumed to share students: no two
// of its courses may occupy the same period.
type Curriculum struct {
	Id       uint64
	Name     string
	Students uint64
	Courses  []string
}

type Room struct {
	Id           uint64
	Name         string
	Capacity     uint64
	Availability []bool // indexed by period
}

type Teacher struct {
	Id           uint64
	Name         string
	Courses      map[string]bool // courses the teacher is qualified for
	Availability []bool          // indexed by period
}

// Section is one schedulable unit of a course requiring exactly one
// (period, room, teacher) assignment. Index is 0 when the course has a
// single section, 1.. when the course was split.
type Section struct {
	Id         uint64
	Course     string
	Index      uint64
	Enrollment uint64
	Curricula  []uint64 // ascending curriculum ids
}

type Instance struct {
	Name      string
	Periods   uint64
	Curricula []Curriculum
	Rooms     []Room
	Teachers  []Teacher
	Sections  []Section
}

// Qualified checks whether the teacher may teach the section's course.
func (instance Instance) Qualified(teacher, section uint64) bool {
	return instance.Teachers[teacher].Courses[instance.Sections[section].Course]
}

func (instance Instance) TeacherAvailable(teacher, period uint64) bool {
	return instance.Teachers[teacher].Availability[period]
}

func (instance Instance) RoomAvailable(room, period uint64) bool {
	return instance.Rooms[room].Availability[period]
}

// Fits checks whether the section's enrollment does not exceed the room's
// capacity.
func (instance Instance) Fits(section, room uint64) bool {
	return instance.Sections[section].Enrollment <= instance.Rooms[room].Capacity
}
