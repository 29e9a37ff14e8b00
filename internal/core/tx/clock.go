package tx

import "time"

// Clock abstracts wall-clock time so tests can drive auction deadlines
// and fee accrual deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
