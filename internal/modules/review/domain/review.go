package domain

import "time"

// Review is one user's rating of a course. The rating range (1-5) is
// enforced by the submitting control and the backend; this layer does not
// re-validate it. Course-level averages are server-derived only.
type Review struct {
	ID          int64
	Rating      int
	Description string
	User        string
	CreatedAt   time.Time
}
