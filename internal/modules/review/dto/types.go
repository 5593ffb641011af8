package dto

import (
	"time"

	catalogdto "uniplan/internal/modules/catalog/dto"
)

type ReviewOutput struct {
	ID          int64
	Rating      int
	Description string
	User        string
	CreatedAt   time.Time
}

type SubmitInput struct {
	CourseID    int64
	Rating      int
	Description string
}

// SubmitOutput carries the two independent re-fetches performed after a
// successful submission: the review list and the course detail with the
// updated server-side aggregate.
type SubmitOutput struct {
	Reviews []ReviewOutput
	Course  catalogdto.CourseDetailOutput
}
