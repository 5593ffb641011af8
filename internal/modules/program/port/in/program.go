package in

import (
	"context"

	"uniplan/internal/modules/program/dto"
)

type Usecase interface {
	// Search queries the program lookup, scoped by level. Responses racing a
	// newer search come back marked Stale with no programs.
	Search(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error)
}
