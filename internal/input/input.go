// Package input aggregates the host signals the simulation reads each
// frame: scroll depth, session time, pointer position, and drag
// velocity. Event sources post immutable events to a queue that the
// render loop drains once per frame, so the data flow stays
// single-writer and testable without a live window.
package input

import (
	"github.com/johannesstruweg/struwegstudio/internal/config"
)

// Pointer is the pointer position with its active (pressed/touching) flag.
type Pointer struct {
	X, Y   float64
	Active bool
}

// State is the per-frame snapshot the simulation core reads. It is
// recomputed by Drain and never mutated by consumers.
type State struct {
	// ScrollDepth is the normalized scroll position in [0,1]; 0 when
	// the content is not scrollable.
	ScrollDepth float64

	// SessionTime is seconds since the aggregator started.
	SessionTime float64

	Pointer Pointer

	// DragVX, DragVY is the smoothed pointer velocity while dragging,
	// in pixels per frame, decayed each frame after release.
	DragVX, DragVY float64
}

// Kind discriminates queued events.
type Kind int

const (
	KindScroll Kind = iota
	KindPointerMove
	KindPointerDown
	KindPointerUp
	KindResize
)

// Event is one immutable input occurrence. X,Y carry the wheel delta,
// pointer position, or new viewport size depending on Kind.
type Event struct {
	Kind Kind
	X, Y float64
}

// Aggregator owns the event queue and folds drained events into a
// State snapshot. It is not safe for concurrent use; the render loop
// is its only caller.
type Aggregator struct {
	queue []Event

	scrollOffset  float64
	contentHeight float64
	viewH         float64

	pointer  Pointer
	lastPX   float64
	lastPY   float64
	dragging bool
	dragVX   float64
	dragVY   float64

	sessionTime float64
}

// NewAggregator sizes the scrollable content from the viewport height.
func NewAggregator(viewW, viewH float64) *Aggregator {
	a := &Aggregator{}
	a.Resize(viewW, viewH)
	return a
}

// Resize updates the viewport and derived content height. The scroll
// offset is re-clamped so depth stays in range.
func (a *Aggregator) Resize(viewW, viewH float64) {
	a.viewH = viewH
	a.contentHeight = viewH * config.ContentPages
	a.scrollOffset = clampScroll(a.scrollOffset, a.contentHeight, a.viewH)
}

// Push queues one event for the next Drain.
func (a *Aggregator) Push(ev Event) {
	a.queue = append(a.queue, ev)
}

// Drain folds all queued events into the aggregator, advances the
// session clock by dt seconds, and returns the resulting snapshot.
func (a *Aggregator) Drain(dt float64) State {
	for _, ev := range a.queue {
		switch ev.Kind {
		case KindScroll:
			a.scrollOffset = clampScroll(a.scrollOffset+ev.Y*config.ScrollStep, a.contentHeight, a.viewH)
		case KindPointerMove:
			if a.dragging {
				a.dragVX = ev.X - a.lastPX
				a.dragVY = ev.Y - a.lastPY
			}
			a.lastPX, a.lastPY = ev.X, ev.Y
			a.pointer.X, a.pointer.Y = ev.X, ev.Y
		case KindPointerDown:
			a.dragging = true
			a.pointer.Active = true
			a.lastPX, a.lastPY = ev.X, ev.Y
			a.pointer.X, a.pointer.Y = ev.X, ev.Y
		case KindPointerUp:
			a.dragging = false
			a.pointer.Active = false
		case KindResize:
			a.Resize(ev.X, ev.Y)
		}
	}
	a.queue = a.queue[:0]

	if !a.dragging {
		a.dragVX *= config.DragDecay
		a.dragVY *= config.DragDecay
	}
	a.sessionTime += dt

	return State{
		ScrollDepth: NormalizeScroll(a.scrollOffset, a.contentHeight, a.viewH),
		SessionTime: a.sessionTime,
		Pointer:     a.pointer,
		DragVX:      a.dragVX,
		DragVY:      a.dragVY,
	}
}

// NormalizeScroll maps a scroll offset to [0,1] over the scrollable
// range. Content no taller than the viewport yields 0, never NaN.
func NormalizeScroll(offset, contentHeight, viewHeight float64) float64 {
	scrollable := contentHeight - viewHeight
	if scrollable <= 0 {
		return 0
	}
	d := offset / scrollable
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

func clampScroll(offset, contentHeight, viewHeight float64) float64 {
	max := contentHeight - viewHeight
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
