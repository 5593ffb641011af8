package domain

import (
	apperrors "uniplan/internal/platform/errors"
)

// CourseRef carries the course attributes the planner displays and sums.
// Records whose course is missing from the current catalog keep only the
// denormalized code and name from the backend record.
type CourseRef struct {
	ID        int64
	Code      string
	Name      string
	Credits   int
	StudyArea string
}

// PlannedCourse is a course tagged with its target semester label. At most
// one PlannedCourse exists per course id.
type PlannedCourse struct {
	CourseRef
	PlannedSemester string
}

// Plan is the client-side planning state machine. Each add attempt moves
// through idle -> pending -> confirmed or cancelled -> idle. Confirmation is
// two-step: ConfirmAdd validates and hands back the entry to synchronize,
// CommitAdd inserts it after the backend accepted it.
type Plan struct {
	planned []PlannedCourse
	pending *CourseRef
}

// Load replaces the planned set, e.g. from the backend's records at session
// start.
func (p *Plan) Load(planned []PlannedCourse) {
	p.planned = append([]PlannedCourse(nil), planned...)
}

func (p *Plan) Planned() []PlannedCourse {
	return append([]PlannedCourse(nil), p.planned...)
}

func (p *Plan) Contains(courseID int64) bool {
	for _, entry := range p.planned {
		if entry.ID == courseID {
			return true
		}
	}
	return false
}

// RequestAdd enters the pending state. Re-adding a planned course is
// rejected here, before any network call.
func (p *Plan) RequestAdd(course CourseRef) error {
	if p.Contains(course.ID) {
		return apperrors.ErrDuplicateCourse
	}
	pending := course
	p.pending = &pending
	return nil
}

func (p *Plan) Pending() (CourseRef, bool) {
	if p.pending == nil {
		return CourseRef{}, false
	}
	return *p.pending, true
}

// ConfirmAdd resolves the pending course against the chosen semester and
// returns the entry to be synchronized. The pending state is kept until
// CommitAdd or CancelAdd, so a failed backend call leaves the attempt open.
func (p *Plan) ConfirmAdd(semester string) (PlannedCourse, error) {
	if p.pending == nil {
		return PlannedCourse{}, apperrors.ErrNoPendingCourse
	}
	if semester == "" {
		return PlannedCourse{}, apperrors.ErrInvalidInput
	}
	return PlannedCourse{CourseRef: *p.pending, PlannedSemester: semester}, nil
}

// CommitAdd inserts the confirmed entry and returns to idle.
func (p *Plan) CommitAdd(entry PlannedCourse) {
	p.planned = append(p.planned, entry)
	p.pending = nil
}

// CancelAdd discards the pending course without side effects.
func (p *Plan) CancelAdd() {
	p.pending = nil
}

// Move retags a planned course with a new semester label.
func (p *Plan) Move(courseID int64, semester string) bool {
	for idx := range p.planned {
		if p.planned[idx].ID == courseID {
			p.planned[idx].PlannedSemester = semester
			return true
		}
	}
	return false
}

// Remove drops a planned course, preserving order of the rest.
func (p *Plan) Remove(courseID int64) (PlannedCourse, bool) {
	for idx, entry := range p.planned {
		if entry.ID == courseID {
			p.planned = append(p.planned[:idx], p.planned[idx+1:]...)
			return entry, true
		}
	}
	return PlannedCourse{}, false
}

// TotalCredits is a derived sum over current local state; never persisted.
func (p *Plan) TotalCredits() int {
	total := 0
	for _, entry := range p.planned {
		total += entry.Credits
	}
	return total
}

// SemesterGroup is the planned courses of one semester with their credit sum.
type SemesterGroup struct {
	Label   string
	Credits int
	Courses []PlannedCourse
}

// GroupBySemester buckets planned courses under the registry's labels, in
// registry order. Courses targeting a label outside the registry are
// appended as trailing groups so nothing silently disappears.
func (p *Plan) GroupBySemester(labels []string) []SemesterGroup {
	groups := make([]SemesterGroup, 0, len(labels))
	index := make(map[string]int, len(labels))
	for _, label := range labels {
		index[label] = len(groups)
		groups = append(groups, SemesterGroup{Label: label})
	}
	for _, entry := range p.planned {
		idx, ok := index[entry.PlannedSemester]
		if !ok {
			index[entry.PlannedSemester] = len(groups)
			groups = append(groups, SemesterGroup{Label: entry.PlannedSemester})
			idx = index[entry.PlannedSemester]
		}
		groups[idx].Courses = append(groups[idx].Courses, entry)
		groups[idx].Credits += entry.Credits
	}
	return groups
}

// HasCourseIn reports whether any planned course targets the given label.
func (p *Plan) HasCourseIn(label string) bool {
	for _, entry := range p.planned {
		if entry.PlannedSemester == label {
			return true
		}
	}
	return false
}
