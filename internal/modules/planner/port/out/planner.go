package out

import "context"

// PlannedRecord is the backend's planned-course row, keyed by (user, course).
type PlannedRecord struct {
	ID         int64
	CourseID   int64
	CourseCode string
	CourseName string
	Semester   int
}

type PlannerAPI interface {
	ListPlanned(ctx context.Context) ([]PlannedRecord, error)
	// Upsert creates or updates the record for the given course id.
	Upsert(ctx context.Context, record PlannedRecord) error
	UpdateSemester(ctx context.Context, courseID int64, semester int) error
	Delete(ctx context.Context, courseID int64) error
}

type SemesterAPI interface {
	// ListSemesters returns the user's semester numbers; the backend
	// auto-provisions 1..4 on first fetch.
	ListSemesters(ctx context.Context) ([]int, error)
	// AddSemester allocates and returns the next contiguous number.
	AddSemester(ctx context.Context) (int, error)
	// DeleteLastSemester removes the highest-numbered semester; the backend
	// rejects it with a structured detail when planned courses target it.
	DeleteLastSemester(ctx context.Context) error
}
