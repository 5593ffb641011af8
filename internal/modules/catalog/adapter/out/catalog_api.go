package out

import (
	"context"
	"fmt"

	"uniplan/internal/modules/catalog/domain"
	catalogout "uniplan/internal/modules/catalog/port/out"
	"uniplan/internal/platform/httpx"
)

type HTTPCatalogAPI struct {
	client *httpx.Client
}

func NewHTTPCatalogAPI(client *httpx.Client) catalogout.CatalogAPI {
	return &HTTPCatalogAPI{client: client}
}

// courseRecord is the wire shape of one catalog course.
type courseRecord struct {
	ID             int64    `json:"id"`
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Credits        int      `json:"credits"`
	Level          int      `json:"level"`
	StudyArea      string   `json:"study_area"`
	AssessmentType string   `json:"assessment_type"`
	OfferedSem1    bool     `json:"offered_sem_1"`
	OfferedSem2    bool     `json:"offered_sem_2"`
	OfferedSummer  bool     `json:"offered_summer"`
	Description    string   `json:"description"`
	Aim            string   `json:"aim"`
	Prerequisites  []string `json:"prerequisites"`
}

type assessmentRecord struct {
	ID                int64  `json:"id"`
	Category          string `json:"category"`
	Task              string `json:"task"`
	Mode              string `json:"mode"`
	GradingType       string `json:"grading_type"`
	Weight            *int   `json:"weight"`
	Description       string `json:"description"`
	Hurdle            bool   `json:"hurdle"`
	HurdleDescription string `json:"hurdle_description"`
}

type courseDetailRecord struct {
	courseRecord
	Assessments   []assessmentRecord `json:"assessments"`
	AverageRating float64            `json:"average_rating"`
	TotalReviews  int                `json:"total_reviews"`
}

type optionRecord struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (a *HTTPCatalogAPI) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var records []courseRecord
	if err := a.client.Get(ctx, "courses/", nil, &records); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses := make([]domain.Course, len(records))
	for idx, record := range records {
		courses[idx] = transformCourse(record)
	}
	return courses, nil
}

func (a *HTTPCatalogAPI) GetCourse(ctx context.Context, id int64) (domain.CourseDetail, error) {
	var record courseDetailRecord
	if err := a.client.Get(ctx, fmt.Sprintf("courses/%d/", id), nil, &record); err != nil {
		return domain.CourseDetail{}, fmt.Errorf("get course %d: %w", id, err)
	}
	detail := domain.CourseDetail{
		Course:        transformCourse(record.courseRecord),
		AverageRating: record.AverageRating,
		TotalReviews:  record.TotalReviews,
	}
	for _, ar := range record.Assessments {
		detail.Assessments = append(detail.Assessments, domain.Assessment{
			ID:                ar.ID,
			Category:          ar.Category,
			Task:              ar.Task,
			Mode:              ar.Mode,
			GradingType:       ar.GradingType,
			Weight:            ar.Weight,
			Description:       ar.Description,
			Hurdle:            ar.Hurdle,
			HurdleDescription: ar.HurdleDescription,
		})
	}
	return detail, nil
}

func (a *HTTPCatalogAPI) AssessmentTypes(ctx context.Context) ([]domain.Option, error) {
	return a.lookup(ctx, "catalog/assessment-types/")
}

func (a *HTTPCatalogAPI) StudyAreas(ctx context.Context) ([]domain.Option, error) {
	return a.lookup(ctx, "catalog/study-areas/")
}

func (a *HTTPCatalogAPI) ProgramLevels(ctx context.Context) ([]domain.Option, error) {
	return a.lookup(ctx, "catalog/program-levels/")
}

func (a *HTTPCatalogAPI) lookup(ctx context.Context, path string) ([]domain.Option, error) {
	var records []optionRecord
	if err := a.client.Get(ctx, path, nil, &records); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	options := make([]domain.Option, len(records))
	for idx, record := range records {
		options[idx] = domain.Option{Value: record.Value, Label: record.Label}
	}
	return options, nil
}

// transformCourse maps the wire record to the internal course shape. Unknown
// enum values fall back to EAIT / MIX rather than failing the load.
func transformCourse(record courseRecord) domain.Course {
	return domain.Course{
		ID:             record.ID,
		Code:           record.Code,
		Name:           record.Name,
		Credits:        record.Credits,
		Level:          record.Level,
		StudyArea:      domain.ParseStudyArea(record.StudyArea),
		AssessmentType: domain.ParseAssessmentType(record.AssessmentType),
		OfferedSem1:    record.OfferedSem1,
		OfferedSem2:    record.OfferedSem2,
		OfferedSummer:  record.OfferedSummer,
		Description:    record.Description,
		Aim:            record.Aim,
		Prerequisites:  record.Prerequisites,
	}
}
