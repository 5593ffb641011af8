package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Registry is the ordered list of semesters a user can plan into. The set is
// always a contiguous prefix 1..N: creation appends N+1, deletion removes
// only N.
type Registry struct {
	labels []string
}

const defaultSemesterCount = 4

func SemesterLabel(number int) string {
	return fmt.Sprintf("Semester %d", number)
}

// SemesterNumber extracts the ordinal from a label; 1 when none is found,
// matching the original client's lenient parse.
func SemesterNumber(label string) int {
	fields := strings.Fields(label)
	for _, field := range fields {
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// NewRegistry builds a registry from backend semester numbers, normalized to
// ascending label order.
func NewRegistry(numbers []int) *Registry {
	r := &Registry{}
	for _, n := range numbers {
		r.labels = append(r.labels, SemesterLabel(n))
	}
	return r
}

// DefaultRegistry is the cosmetic fallback shown when unauthenticated or
// when the backend fetch fails: four semesters with no backend binding.
func DefaultRegistry() *Registry {
	numbers := make([]int, defaultSemesterCount)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return NewRegistry(numbers)
}

func (r *Registry) Labels() []string {
	return append([]string(nil), r.labels...)
}

func (r *Registry) Len() int { return len(r.labels) }

func (r *Registry) Contains(label string) bool {
	for _, l := range r.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Append adds the backend-allocated semester number to the end of the list.
func (r *Registry) Append(number int) {
	r.labels = append(r.labels, SemesterLabel(number))
}

// DropLast removes the highest-numbered semester. Only the last element is
// ever deletable.
func (r *Registry) DropLast() {
	if len(r.labels) == 0 {
		return
	}
	r.labels = r.labels[:len(r.labels)-1]
}

// Last returns the highest-numbered semester label.
func (r *Registry) Last() (string, bool) {
	if len(r.labels) == 0 {
		return "", false
	}
	return r.labels[len(r.labels)-1], true
}
