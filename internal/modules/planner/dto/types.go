package dto

type PlannedCourseOutput struct {
	CourseID        int64
	Code            string
	Name            string
	Credits         int
	StudyArea       string
	PlannedSemester string
}

type SemesterGroupOutput struct {
	Label   string
	Credits int
	Courses []PlannedCourseOutput
}

type PlanOutput struct {
	Semesters    []string
	Groups       []SemesterGroupOutput
	TotalCredits int
}

type PendingOutput struct {
	CourseID int64
	Code     string
	Name     string
	Credits  int
}
