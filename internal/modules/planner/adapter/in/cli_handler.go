package in

import (
	"context"

	plannerdto "uniplan/internal/modules/planner/dto"
	plannerin "uniplan/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (plannerdto.PlanOutput, error) {
	return h.usecase.Load(ctx)
}

// Add runs the full two-step flow for the CLI: request, then confirm with
// the given semester label.
func (h CLIHandler) Add(ctx context.Context, courseID int64, semester string) (plannerdto.PlanOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	if _, err := h.usecase.RequestAdd(ctx, courseID); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	out, err := h.usecase.ConfirmAdd(ctx, semester)
	if err != nil {
		h.usecase.CancelAdd(ctx)
		return plannerdto.PlanOutput{}, err
	}
	return out, nil
}

func (h CLIHandler) Move(ctx context.Context, courseID int64, semester string) (plannerdto.PlanOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	return h.usecase.Move(ctx, courseID, semester)
}

func (h CLIHandler) Remove(ctx context.Context, courseID int64) (plannerdto.PlanOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	return h.usecase.Remove(ctx, courseID)
}

func (h CLIHandler) AddSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	return h.usecase.AddSemester(ctx)
}

func (h CLIHandler) DeleteSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	if _, err := h.usecase.Load(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	return h.usecase.DeleteSemester(ctx)
}
