package input

import "time"

// Clock measures frame-to-frame wall time. The zero value is ready to
// use; the first Delta returns the nominal 60 Hz step.
type Clock struct {
	last time.Time
	now  func() time.Time
}

// NewClock returns a Clock reading wall time. Tests inject their own
// time source with NewClockFunc.
func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc returns a Clock reading from now.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Delta returns seconds elapsed since the previous call, clamped to
// [0, 0.1] so a stalled frame (window drag, suspend) does not slingshot
// the simulation.
func (c *Clock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 1.0 / 60.0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if dt > 0.1 {
		dt = 0.1
	}
	return dt
}
