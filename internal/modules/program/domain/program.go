package domain

import (
	"sync"
	"time"
)

// Program is one entry of the program lookup, used during registration and
// profile editing.
type Program struct {
	ID    int64
	Value string
	Label string
}

// DebounceInterval is the quiet period between a keystroke and the issued
// search.
const DebounceInterval = 300 * time.Millisecond

// Sequencer orders overlapping searches. Each issued search takes the next
// sequence number; a response is accepted only when its number is still the
// latest issued, so a stale in-flight response can never overwrite a newer
// one regardless of arrival order.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
}

func (s *Sequencer) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

func (s *Sequencer) Accept(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.latest
}
