package components

import "time"

// Timer counts up to Limit and wraps back to zero.
type Timer struct {
	Limit   time.Duration
	Current time.Duration
}

func NewTimer(limit time.Duration) Timer {
	return Timer{Limit: limit}
}

// AdvanceCyclic adds dt and reports whether the limit was reached, in which
// case the timer starts over.
func (t *Timer) AdvanceCyclic(dt time.Duration) bool {
	t.Current += dt
	if t.Current >= t.Limit {
		t.Current = 0
		return true
	}
	return false
}

func (t *Timer) HasReached(d time.Duration) bool {
	return t.Current >= d
}

func (t *Timer) Reset() {
	t.Current = 0
}
