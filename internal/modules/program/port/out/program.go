package out

import (
	"context"

	"uniplan/internal/modules/program/domain"
)

type ProgramAPI interface {
	Search(ctx context.Context, level, query string) ([]domain.Program, error)
}
