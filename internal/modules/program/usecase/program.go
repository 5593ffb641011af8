package usecase

import (
	"context"

	"uniplan/internal/modules/program/domain"
	programdto "uniplan/internal/modules/program/dto"
	programin "uniplan/internal/modules/program/port/in"
	programout "uniplan/internal/modules/program/port/out"
)

type Interactor struct {
	api programout.ProgramAPI
	seq domain.Sequencer
}

func NewInteractor(api programout.ProgramAPI) programin.Usecase {
	return &Interactor{api: api}
}

// Search issues a sequence number before the network call and re-checks it
// at resolution time: the last issued search wins, whatever order the
// responses arrive in.
func (i *Interactor) Search(ctx context.Context, input programdto.SearchInput) (programdto.SearchOutput, error) {
	seq := i.seq.Issue()
	programs, err := i.api.Search(ctx, input.Level, input.Query)
	if err != nil {
		return programdto.SearchOutput{}, err
	}
	if !i.seq.Accept(seq) {
		return programdto.SearchOutput{Seq: seq, Stale: true}, nil
	}
	outputs := make([]programdto.ProgramOutput, len(programs))
	for idx, program := range programs {
		outputs[idx] = programdto.ProgramOutput{ID: program.ID, Value: program.Value, Label: program.Label}
	}
	return programdto.SearchOutput{Seq: seq, Programs: outputs}, nil
}
