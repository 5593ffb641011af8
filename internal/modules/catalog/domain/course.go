package domain

// StudyArea is the faculty grouping a course belongs to.
type StudyArea string

const (
	StudyAreaBEL  StudyArea = "BEL"
	StudyAreaEAIT StudyArea = "EAIT"
	StudyAreaHABS StudyArea = "HABS"
	StudyAreaHMB  StudyArea = "HMB"
	StudyAreaHASS StudyArea = "HASS"
	StudyAreaSCI  StudyArea = "SCI"
)

// ParseStudyArea maps a wire value onto the known set, defaulting to EAIT.
// The fallback is a compatibility policy for unrecognized backend values,
// not validation.
func ParseStudyArea(value string) StudyArea {
	switch StudyArea(value) {
	case StudyAreaBEL, StudyAreaEAIT, StudyAreaHABS, StudyAreaHMB, StudyAreaHASS, StudyAreaSCI:
		return StudyArea(value)
	}
	return StudyAreaEAIT
}

// AssessmentType is how a course is predominantly assessed.
type AssessmentType string

const (
	AssessmentExam       AssessmentType = "EXAM"
	AssessmentAssignment AssessmentType = "ASSIGNMENT"
	AssessmentProject    AssessmentType = "PROJECT"
	AssessmentMix        AssessmentType = "MIX"
)

// ParseAssessmentType maps a wire value onto the known set, defaulting to MIX.
func ParseAssessmentType(value string) AssessmentType {
	switch AssessmentType(value) {
	case AssessmentExam, AssessmentAssignment, AssessmentProject, AssessmentMix:
		return AssessmentType(value)
	}
	return AssessmentMix
}

// Course is an immutable catalog record. The client only reads it.
type Course struct {
	ID             int64
	Code           string
	Name           string
	Credits        int
	Level          int
	StudyArea      StudyArea
	AssessmentType AssessmentType
	OfferedSem1    bool
	OfferedSem2    bool
	OfferedSummer  bool
	Description    string
	Aim            string
	Prerequisites  []string
}

const (
	SemesterOneLabel    = "Semester 1"
	SemesterTwoLabel    = "Semester 2"
	SummerSemesterLabel = "Summer Semester"
)

// OfferedSemesters derives the display list from the three offering flags;
// the flags stay the single source of truth.
func (c Course) OfferedSemesters() []string {
	var semesters []string
	if c.OfferedSem1 {
		semesters = append(semesters, SemesterOneLabel)
	}
	if c.OfferedSem2 {
		semesters = append(semesters, SemesterTwoLabel)
	}
	if c.OfferedSummer {
		semesters = append(semesters, SummerSemesterLabel)
	}
	return semesters
}

// Assessment is one assessment item on a course detail record.
type Assessment struct {
	ID                int64
	Category          string
	Task              string
	Mode              string
	GradingType       string
	Weight            *int
	Description       string
	Hurdle            bool
	HurdleDescription string
}

// CourseDetail is a Course plus its assessments and the server-derived
// review aggregate. The client never recomputes the aggregate.
type CourseDetail struct {
	Course
	Assessments   []Assessment
	AverageRating float64
	TotalReviews  int
}

// Option is one {value,label} entry of a backend lookup table.
type Option struct {
	Value string
	Label string
}
