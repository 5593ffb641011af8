package out

import (
	"context"
	"fmt"

	plannerout "uniplan/internal/modules/planner/port/out"
	"uniplan/internal/platform/httpx"
)

type HTTPPlannerAPI struct {
	client *httpx.Client
}

func NewHTTPPlannerAPI(client *httpx.Client) plannerout.PlannerAPI {
	return &HTTPPlannerAPI{client: client}
}

// plannedRecord is the wire row; PATCH and DELETE are body-keyed by
// course_id rather than path-keyed.
type plannedRecord struct {
	ID         int64  `json:"id,omitempty"`
	CourseID   int64  `json:"course_id"`
	CourseCode string `json:"course_code,omitempty"`
	CourseName string `json:"course_name,omitempty"`
	Semester   int    `json:"semester"`
}

func (a *HTTPPlannerAPI) ListPlanned(ctx context.Context) ([]plannerout.PlannedRecord, error) {
	var records []plannedRecord
	if err := a.client.Get(ctx, "planned-courses/", nil, &records); err != nil {
		return nil, fmt.Errorf("list planned courses: %w", err)
	}
	out := make([]plannerout.PlannedRecord, len(records))
	for idx, record := range records {
		out[idx] = plannerout.PlannedRecord{
			ID:         record.ID,
			CourseID:   record.CourseID,
			CourseCode: record.CourseCode,
			CourseName: record.CourseName,
			Semester:   record.Semester,
		}
	}
	return out, nil
}

func (a *HTTPPlannerAPI) Upsert(ctx context.Context, record plannerout.PlannedRecord) error {
	body := plannedRecord{
		CourseID:   record.CourseID,
		CourseCode: record.CourseCode,
		CourseName: record.CourseName,
		Semester:   record.Semester,
	}
	if err := a.client.Post(ctx, "planned-courses/", body, nil); err != nil {
		return fmt.Errorf("upsert planned course %d: %w", record.CourseID, err)
	}
	return nil
}

func (a *HTTPPlannerAPI) UpdateSemester(ctx context.Context, courseID int64, semester int) error {
	body := map[string]any{"course_id": courseID, "semester": semester}
	if err := a.client.Patch(ctx, "planned-courses/", body, nil); err != nil {
		return fmt.Errorf("update planned course %d: %w", courseID, err)
	}
	return nil
}

func (a *HTTPPlannerAPI) Delete(ctx context.Context, courseID int64) error {
	body := map[string]any{"course_id": courseID}
	if err := a.client.Delete(ctx, "planned-courses/", body); err != nil {
		return fmt.Errorf("delete planned course %d: %w", courseID, err)
	}
	return nil
}

type HTTPSemesterAPI struct {
	client *httpx.Client
}

func NewHTTPSemesterAPI(client *httpx.Client) plannerout.SemesterAPI {
	return &HTTPSemesterAPI{client: client}
}

type semesterRecord struct {
	ID             int64 `json:"id,omitempty"`
	SemesterNumber int   `json:"semester_number"`
}

func (a *HTTPSemesterAPI) ListSemesters(ctx context.Context) ([]int, error) {
	var records []semesterRecord
	if err := a.client.Get(ctx, "planned-courses/semesters/", nil, &records); err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	numbers := make([]int, len(records))
	for idx, record := range records {
		numbers[idx] = record.SemesterNumber
	}
	return numbers, nil
}

func (a *HTTPSemesterAPI) AddSemester(ctx context.Context) (int, error) {
	var record semesterRecord
	if err := a.client.Post(ctx, "planned-courses/semesters/", nil, &record); err != nil {
		return 0, fmt.Errorf("add semester: %w", err)
	}
	return record.SemesterNumber, nil
}

func (a *HTTPSemesterAPI) DeleteLastSemester(ctx context.Context) error {
	if err := a.client.Delete(ctx, "planned-courses/semesters/", nil); err != nil {
		return fmt.Errorf("delete semester: %w", err)
	}
	return nil
}
