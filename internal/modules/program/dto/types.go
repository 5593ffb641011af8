package dto

type SearchInput struct {
	Level string
	Query string
}

type ProgramOutput struct {
	ID    int64
	Value string
	Label string
}

// SearchOutput reports the sequenced result of one search. Stale marks a
// response that resolved after a newer search was issued; callers discard
// the programs of a stale result.
type SearchOutput struct {
	Seq      uint64
	Stale    bool
	Programs []ProgramOutput
}
