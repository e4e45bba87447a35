package kernel

import (
	"testing"

	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

func TestFlowFieldStaysInBounds(t *testing.T) {
	const w, h = 640.0, 480.0
	f := NewFlowField(200, w, h, 11)

	for frame := 0; frame < 600; frame++ {
		f.Step(1.0/60.0, float64(frame), 0.0016, 55)
	}

	for i, tr := range f.Tracers {
		if tr.X < 0 || tr.X >= w || tr.Y < 0 || tr.Y >= h {
			t.Errorf("tracer %d out of bounds: (%v, %v)", i, tr.X, tr.Y)
		}
		if !vmath.Finite(tr.X, tr.Y) {
			t.Errorf("tracer %d not finite", i)
		}
	}
}

// A wrapped tracer must not report a previous position on the far
// side of the viewport, or it would draw a full-width segment.
func TestFlowFieldWrapResetsSegment(t *testing.T) {
	f := NewFlowField(1, 100, 100, 1)
	f.Tracers[0].X = 99.9
	f.Tracers[0].Y = 50

	for frame := 0; frame < 300; frame++ {
		f.Step(1.0/60.0, float64(frame), 0.0016, 200)
		tr := f.Tracers[0]
		segX := tr.X - tr.PrevX
		segY := tr.Y - tr.PrevY
		if segX > 50 || segX < -50 || segY > 50 || segY < -50 {
			t.Fatalf("frame %d: wrap produced a cross-viewport segment (%v, %v)", frame, segX, segY)
		}
	}
}

func TestFlowFieldResize(t *testing.T) {
	f := NewFlowField(50, 640, 480, 5)
	f.Resize(320, 200)

	for frame := 0; frame < 300; frame++ {
		f.Step(1.0/60.0, float64(frame), 0.0016, 120)
	}
	for i, tr := range f.Tracers {
		if tr.X < 0 || tr.X >= 320 || tr.Y < 0 || tr.Y >= 200 {
			t.Errorf("tracer %d escaped resized bounds: (%v, %v)", i, tr.X, tr.Y)
		}
	}
}
