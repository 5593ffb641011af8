package in

import (
	"context"

	reviewdto "uniplan/internal/modules/review/dto"
	reviewin "uniplan/internal/modules/review/port/in"
)

type CLIHandler struct {
	usecase reviewin.Usecase
}

func NewCLIHandler(usecase reviewin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, courseID int64) ([]reviewdto.ReviewOutput, error) {
	return h.usecase.List(ctx, courseID)
}

func (h CLIHandler) Submit(ctx context.Context, courseID int64, rating int, description string) (reviewdto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, reviewdto.SubmitInput{CourseID: courseID, Rating: rating, Description: description})
}
