package in

import (
	"context"

	"uniplan/internal/modules/planner/dto"
)

type Usecase interface {
	// Load populates the semester registry and the planned set from the
	// backend; unauthenticated sessions get the cosmetic default registry.
	Load(ctx context.Context) (dto.PlanOutput, error)
	Plan(ctx context.Context) dto.PlanOutput

	// RequestAdd starts a pending add attempt for a catalog course.
	RequestAdd(ctx context.Context, courseID int64) (dto.PendingOutput, error)
	Pending(ctx context.Context) (dto.PendingOutput, bool)
	ConfirmAdd(ctx context.Context, semester string) (dto.PlanOutput, error)
	CancelAdd(ctx context.Context)

	Move(ctx context.Context, courseID int64, semester string) (dto.PlanOutput, error)
	Remove(ctx context.Context, courseID int64) (dto.PlanOutput, error)

	AddSemester(ctx context.Context) (dto.PlanOutput, error)
	DeleteSemester(ctx context.Context) (dto.PlanOutput, error)
}
