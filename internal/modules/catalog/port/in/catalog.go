package in

import (
	"context"

	"uniplan/internal/modules/catalog/dto"
)

type Usecase interface {
	// ListCourses fetches the catalog (memoized per process) and applies the
	// filter criteria client-side.
	ListCourses(ctx context.Context, filter dto.FilterInput) ([]dto.CourseOutput, error)
	// Refresh drops the memoized catalog so the next list re-fetches.
	Refresh(ctx context.Context) error
	GetCourse(ctx context.Context, id int64) (dto.CourseDetailOutput, error)
	AssessmentTypes(ctx context.Context) ([]dto.OptionOutput, error)
	StudyAreas(ctx context.Context) ([]dto.OptionOutput, error)
	ProgramLevels(ctx context.Context) ([]dto.OptionOutput, error)
}
