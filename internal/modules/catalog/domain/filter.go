package domain

import (
	"slices"
	"strconv"
	"strings"
)

// FilterAll is the wildcard value disabling one categorical criterion.
const FilterAll = "all"

// Criteria combines the free-text query with the four categorical filters.
// Zero values mean unconstrained.
type Criteria struct {
	Query      string
	Assessment string
	Level      string
	StudyArea  string
	Semester   string
}

// Filter returns the subsequence of courses satisfying every criterion.
// It is pure and stable: catalog order is preserved, the input is untouched.
func Filter(courses []Course, criteria Criteria) []Course {
	var matched []Course
	for _, course := range courses {
		if criteria.Matches(course) {
			matched = append(matched, course)
		}
	}
	return matched
}

// Matches reports whether one course satisfies all five criteria. The
// criteria are independent, so the result is the same whichever order they
// are checked in.
func (c Criteria) Matches(course Course) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		name := strings.ToLower(course.Name)
		code := strings.ToLower(course.Code)
		if !strings.Contains(name, q) && !strings.Contains(code, q) {
			return false
		}
	}
	if !wildcard(c.Assessment) && string(course.AssessmentType) != c.Assessment {
		return false
	}
	// Levels compare by string form, matching the selector values.
	if !wildcard(c.Level) && strconv.Itoa(course.Level) != c.Level {
		return false
	}
	if !wildcard(c.StudyArea) && string(course.StudyArea) != c.StudyArea {
		return false
	}
	if !wildcard(c.Semester) && !slices.Contains(course.OfferedSemesters(), c.Semester) {
		return false
	}
	return true
}

func wildcard(value string) bool {
	return value == "" || value == FilterAll
}
