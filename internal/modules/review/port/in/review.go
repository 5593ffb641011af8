package in

import (
	"context"

	"uniplan/internal/modules/review/dto"
)

type Usecase interface {
	List(ctx context.Context, courseID int64) ([]dto.ReviewOutput, error)
	// Submit posts the review and re-fetches both the review list and the
	// course detail; it fails with ErrUnauthorized when no token is held.
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
}
