package out

import (
	"context"

	"uniplan/internal/modules/catalog/domain"
)

type CatalogAPI interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id int64) (domain.CourseDetail, error)
	AssessmentTypes(ctx context.Context) ([]domain.Option, error)
	StudyAreas(ctx context.Context) ([]domain.Option, error)
	ProgramLevels(ctx context.Context) ([]domain.Option, error)
}
