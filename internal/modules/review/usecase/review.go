package usecase

import (
	"context"

	catalogin "uniplan/internal/modules/catalog/port/in"
	"uniplan/internal/modules/review/domain"
	reviewdto "uniplan/internal/modules/review/dto"
	reviewin "uniplan/internal/modules/review/port/in"
	reviewout "uniplan/internal/modules/review/port/out"
	sessionin "uniplan/internal/modules/session/port/in"
	apperrors "uniplan/internal/platform/errors"
)

type Interactor struct {
	api     reviewout.ReviewAPI
	catalog catalogin.Usecase
	session sessionin.Usecase
}

func NewInteractor(api reviewout.ReviewAPI, catalog catalogin.Usecase, session sessionin.Usecase) reviewin.Usecase {
	return &Interactor{api: api, catalog: catalog, session: session}
}

func (i *Interactor) List(ctx context.Context, courseID int64) ([]reviewdto.ReviewOutput, error) {
	reviews, err := i.api.List(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return toOutputs(reviews), nil
}

func (i *Interactor) Submit(ctx context.Context, input reviewdto.SubmitInput) (reviewdto.SubmitOutput, error) {
	if !i.session.Status(ctx).Authenticated {
		return reviewdto.SubmitOutput{}, apperrors.ErrUnauthorized
	}
	if err := i.api.Submit(ctx, input.CourseID, input.Rating, input.Description); err != nil {
		return reviewdto.SubmitOutput{}, err
	}

	// The aggregate lives on the server; refresh it with two independent
	// round trips rather than recomputing locally.
	reviews, err := i.api.List(ctx, input.CourseID)
	if err != nil {
		return reviewdto.SubmitOutput{}, err
	}
	course, err := i.catalog.GetCourse(ctx, input.CourseID)
	if err != nil {
		return reviewdto.SubmitOutput{}, err
	}
	return reviewdto.SubmitOutput{Reviews: toOutputs(reviews), Course: course}, nil
}

func toOutputs(reviews []domain.Review) []reviewdto.ReviewOutput {
	outputs := make([]reviewdto.ReviewOutput, len(reviews))
	for idx, review := range reviews {
		outputs[idx] = reviewdto.ReviewOutput{
			ID:          review.ID,
			Rating:      review.Rating,
			Description: review.Description,
			User:        review.User,
			CreatedAt:   review.CreatedAt,
		}
	}
	return outputs
}
