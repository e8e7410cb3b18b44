package clock

import "time"

// Clock abstracts time so that due dates, fines and hold expiries can be
// computed against a fixed instant in tests.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func NewSystem() *System { return &System{} }

func (*System) Now() time.Time { return time.Now().UTC() }

// Fixed is a manually advanced clock for tests.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{now: t} }

func (f *Fixed) Now() time.Time { return f.now }

// Advance moves the clock forward by d and returns the new instant.
func (f *Fixed) Advance(d time.Duration) time.Time {
	f.now = f.now.Add(d)
	return f.now
}

// Set pins the clock to t.
func (f *Fixed) Set(t time.Time) { f.now = t }
