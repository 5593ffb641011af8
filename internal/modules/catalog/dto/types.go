package dto

type FilterInput struct {
	Query      string
	Assessment string
	Level      string
	StudyArea  string
	Semester   string
}

type CourseOutput struct {
	ID             int64
	Code           string
	Name           string
	Credits        int
	Level          int
	StudyArea      string
	AssessmentType string
	Semesters      []string
	Description    string
	Aim            string
	Prerequisites  []string
}

type AssessmentOutput struct {
	Category          string
	Task              string
	Mode              string
	GradingType       string
	Weight            *int
	Description       string
	Hurdle            bool
	HurdleDescription string
}

type CourseDetailOutput struct {
	CourseOutput
	Assessments   []AssessmentOutput
	AverageRating float64
	TotalReviews  int
}

type OptionOutput struct {
	Value string
	Label string
}
