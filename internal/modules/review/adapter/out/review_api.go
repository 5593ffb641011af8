package out

import (
	"context"
	"fmt"
	"math"
	"time"

	"uniplan/internal/modules/review/domain"
	reviewout "uniplan/internal/modules/review/port/out"
	"uniplan/internal/platform/httpx"
)

type HTTPReviewAPI struct {
	client *httpx.Client
}

func NewHTTPReviewAPI(client *httpx.Client) reviewout.ReviewAPI {
	return &HTTPReviewAPI{client: client}
}

// reviewRecord is the wire row. The backend stores ratings as decimals, so
// the field decodes as float and is rounded into the 1-5 integer scale.
type reviewRecord struct {
	ID          int64   `json:"id"`
	Review      float64 `json:"review"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	User        string  `json:"user"`
}

func (a *HTTPReviewAPI) List(ctx context.Context, courseID int64) ([]domain.Review, error) {
	var records []reviewRecord
	path := fmt.Sprintf("courses/%d/reviews/", courseID)
	if err := a.client.Get(ctx, path, nil, &records); err != nil {
		return nil, fmt.Errorf("list reviews for course %d: %w", courseID, err)
	}
	reviews := make([]domain.Review, len(records))
	for idx, record := range records {
		createdAt, _ := time.Parse(time.RFC3339, record.CreatedAt)
		reviews[idx] = domain.Review{
			ID:          record.ID,
			Rating:      int(math.Round(record.Review)),
			Description: record.Description,
			User:        record.User,
			CreatedAt:   createdAt,
		}
	}
	return reviews, nil
}

func (a *HTTPReviewAPI) Submit(ctx context.Context, courseID int64, rating int, description string) error {
	body := map[string]any{"review": rating}
	if description != "" {
		body["description"] = description
	}
	path := fmt.Sprintf("courses/%d/reviews/", courseID)
	if err := a.client.Post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("submit review for course %d: %w", courseID, err)
	}
	return nil
}
