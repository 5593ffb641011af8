package service

import (
	"context"
	"sync"

	"uniplan/internal/modules/catalog/domain"
	catalogout "uniplan/internal/modules/catalog/port/out"
)

// CatalogService fetches the course collection once per process and keeps it
// in memory; filtering is recomputed over that collection on every criterion
// change. This is a working set, not an offline cache: a failed fetch is a
// failed load.
type CatalogService struct {
	api catalogout.CatalogAPI

	mu      sync.Mutex
	courses []domain.Course
	loaded  bool
}

func NewCatalogService(api catalogout.CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) Courses(ctx context.Context) ([]domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		courses, err := s.api.ListCourses(ctx)
		if err != nil {
			return nil, err
		}
		s.courses = courses
		s.loaded = true
	}
	return s.courses, nil
}

func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = nil
	s.loaded = false
}

func (s *CatalogService) Course(ctx context.Context, id int64) (domain.CourseDetail, error) {
	return s.api.GetCourse(ctx, id)
}

// FindCourse resolves a catalog course by id from the in-memory collection.
func (s *CatalogService) FindCourse(ctx context.Context, id int64) (domain.Course, bool, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return domain.Course{}, false, err
	}
	for _, course := range courses {
		if course.ID == id {
			return course, true, nil
		}
	}
	return domain.Course{}, false, nil
}
