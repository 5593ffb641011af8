package service

import (
	"fmt"
	"sync"

	"uniplan/internal/modules/planner/domain"
)

func errSemesterUnknown(label string) error {
	return fmt.Errorf("semester %q is not in the registry", label)
}

// PlannerService owns the local planned-course collection and the semester
// registry for the lifetime of a session. Mutations are serialized with a
// mutex so CLI invocations are as safe as the single-threaded TUI loop.
type PlannerService struct {
	mu       sync.Mutex
	plan     domain.Plan
	registry *domain.Registry
}

func NewPlannerService() *PlannerService {
	return &PlannerService{registry: domain.DefaultRegistry()}
}

func (s *PlannerService) Reset(registry *domain.Registry, planned []domain.PlannedCourse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = registry
	s.plan.Load(planned)
}

func (s *PlannerService) Snapshot() ([]string, []domain.SemesterGroup, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := s.registry.Labels()
	return labels, s.plan.GroupBySemester(labels), s.plan.TotalCredits()
}

func (s *PlannerService) RequestAdd(course domain.CourseRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.RequestAdd(course)
}

func (s *PlannerService) Pending() (domain.CourseRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Pending()
}

func (s *PlannerService) ConfirmAdd(semester string) (domain.PlannedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.registry.Contains(semester) {
		return domain.PlannedCourse{}, errSemesterUnknown(semester)
	}
	return s.plan.ConfirmAdd(semester)
}

func (s *PlannerService) CommitAdd(entry domain.PlannedCourse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.CommitAdd(entry)
}

func (s *PlannerService) CancelAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.CancelAdd()
}

func (s *PlannerService) Move(courseID int64, semester string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Move(courseID, semester)
}

func (s *PlannerService) Remove(courseID int64) (domain.PlannedCourse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Remove(courseID)
}

func (s *PlannerService) AppendSemester(number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Append(number)
}

func (s *PlannerService) DropLastSemester() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.DropLast()
}
