package out

import (
	"context"

	"uniplan/internal/modules/review/domain"
)

type ReviewAPI interface {
	List(ctx context.Context, courseID int64) ([]domain.Review, error)
	Submit(ctx context.Context, courseID int64, rating int, description string) error
}
