package input

import (
	"testing"
	"time"
)

func TestClockDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	times := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(36 * time.Millisecond),
		base.Add(5 * time.Second), // stalled frame
		base.Add(5 * time.Second), // same instant
	}
	i := 0
	c := NewClockFunc(func() time.Time {
		tm := times[i]
		i++
		return tm
	})

	if got := c.Delta(); got != 1.0/60.0 {
		t.Errorf("first delta = %v, want nominal frame", got)
	}
	if got := c.Delta(); got != 0.016 {
		t.Errorf("second delta = %v, want 0.016", got)
	}
	if got := c.Delta(); got != 0.020 {
		t.Errorf("third delta = %v, want 0.020", got)
	}
	if got := c.Delta(); got != 0.1 {
		t.Errorf("stalled delta = %v, want clamp 0.1", got)
	}
	if got := c.Delta(); got != 0 {
		t.Errorf("zero-elapsed delta = %v, want 0", got)
	}
}
