package usecase

import (
	"context"

	"uniplan/internal/modules/catalog/domain"
	catalogdto "uniplan/internal/modules/catalog/dto"
	catalogin "uniplan/internal/modules/catalog/port/in"
	catalogout "uniplan/internal/modules/catalog/port/out"
	"uniplan/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
	api catalogout.CatalogAPI
}

func NewInteractor(svc *service.CatalogService, api catalogout.CatalogAPI) catalogin.Usecase {
	return &Interactor{svc: svc, api: api}
}

func (i *Interactor) ListCourses(ctx context.Context, filter catalogdto.FilterInput) ([]catalogdto.CourseOutput, error) {
	courses, err := i.svc.Courses(ctx)
	if err != nil {
		return nil, err
	}
	matched := domain.Filter(courses, domain.Criteria{
		Query:      filter.Query,
		Assessment: filter.Assessment,
		Level:      filter.Level,
		StudyArea:  filter.StudyArea,
		Semester:   filter.Semester,
	})
	outputs := make([]catalogdto.CourseOutput, len(matched))
	for idx, course := range matched {
		outputs[idx] = toCourseOutput(course)
	}
	return outputs, nil
}

func (i *Interactor) Refresh(context.Context) error {
	i.svc.Invalidate()
	return nil
}

func (i *Interactor) GetCourse(ctx context.Context, id int64) (catalogdto.CourseDetailOutput, error) {
	detail, err := i.svc.Course(ctx, id)
	if err != nil {
		return catalogdto.CourseDetailOutput{}, err
	}
	out := catalogdto.CourseDetailOutput{
		CourseOutput:  toCourseOutput(detail.Course),
		AverageRating: detail.AverageRating,
		TotalReviews:  detail.TotalReviews,
	}
	for _, a := range detail.Assessments {
		out.Assessments = append(out.Assessments, catalogdto.AssessmentOutput{
			Category:          a.Category,
			Task:              a.Task,
			Mode:              a.Mode,
			GradingType:       a.GradingType,
			Weight:            a.Weight,
			Description:       a.Description,
			Hurdle:            a.Hurdle,
			HurdleDescription: a.HurdleDescription,
		})
	}
	return out, nil
}

func (i *Interactor) AssessmentTypes(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return i.options(ctx, i.api.AssessmentTypes)
}

func (i *Interactor) StudyAreas(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return i.options(ctx, i.api.StudyAreas)
}

func (i *Interactor) ProgramLevels(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return i.options(ctx, i.api.ProgramLevels)
}

func (i *Interactor) options(ctx context.Context, fetch func(context.Context) ([]domain.Option, error)) ([]catalogdto.OptionOutput, error) {
	options, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]catalogdto.OptionOutput, len(options))
	for idx, option := range options {
		outputs[idx] = catalogdto.OptionOutput{Value: option.Value, Label: option.Label}
	}
	return outputs, nil
}

func toCourseOutput(course domain.Course) catalogdto.CourseOutput {
	return catalogdto.CourseOutput{
		ID:             course.ID,
		Code:           course.Code,
		Name:           course.Name,
		Credits:        course.Credits,
		Level:          course.Level,
		StudyArea:      string(course.StudyArea),
		AssessmentType: string(course.AssessmentType),
		Semesters:      course.OfferedSemesters(),
		Description:    course.Description,
		Aim:            course.Aim,
		Prerequisites:  course.Prerequisites,
	}
}
