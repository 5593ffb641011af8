package clock

import "time"

// Clock abstracts wall time so cookie-expiry decisions stay deterministic
// under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }
