package in

import (
	"context"

	catalogdto "uniplan/internal/modules/catalog/dto"
	catalogin "uniplan/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, query, assessment, level, area, semester string) ([]catalogdto.CourseOutput, error) {
	return h.usecase.ListCourses(ctx, catalogdto.FilterInput{
		Query:      query,
		Assessment: assessment,
		Level:      level,
		StudyArea:  area,
		Semester:   semester,
	})
}

func (h CLIHandler) Show(ctx context.Context, id int64) (catalogdto.CourseDetailOutput, error) {
	return h.usecase.GetCourse(ctx, id)
}

func (h CLIHandler) AssessmentTypes(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return h.usecase.AssessmentTypes(ctx)
}

func (h CLIHandler) StudyAreas(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return h.usecase.StudyAreas(ctx)
}

func (h CLIHandler) ProgramLevels(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return h.usecase.ProgramLevels(ctx)
}
