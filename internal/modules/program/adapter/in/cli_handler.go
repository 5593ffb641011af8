package in

import (
	"context"

	programdto "uniplan/internal/modules/program/dto"
	programin "uniplan/internal/modules/program/port/in"
)

type CLIHandler struct {
	usecase programin.Usecase
}

func NewCLIHandler(usecase programin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, level, query string) ([]programdto.ProgramOutput, error) {
	out, err := h.usecase.Search(ctx, programdto.SearchInput{Level: level, Query: query})
	if err != nil {
		return nil, err
	}
	return out.Programs, nil
}
