package kernel

import (
	"math"
	"testing"

	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

func TestTargetClosedForm(t *testing.T) {
	a, b, c, d := 1.4, -2.3, 2.4, -2.1
	x, y := 0.3, -0.2

	nx, ny := Target(x, y, a, b, c, d)
	wantX := math.Sin(a*y) - math.Cos(b*x)
	wantY := math.Sin(c*x) - math.Cos(d*y)

	if nx != wantX || ny != wantY {
		t.Errorf("Target = (%v, %v), want (%v, %v)", nx, ny, wantX, wantY)
	}
}

// Increasing the step fraction must strictly shrink the remaining
// distance to the direct-iteration target.
func TestDampedStepConvergence(t *testing.T) {
	a, b, c, d := 1.4, -2.3, 2.4, -2.1
	x, y := 0.3, -0.2
	tx, ty := Target(x, y, a, b, c, d)

	prevDist := math.Inf(1)
	for k := 0.05; k < 1.0; k += 0.05 {
		nx, ny := DampedStep(x, y, a, b, c, d, k)
		dist := math.Hypot(tx-nx, ty-ny)
		if dist >= prevDist {
			t.Fatalf("distance did not shrink at k=%v: %v -> %v", k, prevDist, dist)
		}
		if dist == 0 {
			t.Fatalf("damped step reached the target exactly at k=%v", k)
		}
		prevDist = dist
	}
}

func TestStepDirectMatchesRecurrence(t *testing.T) {
	at := NewAttractor(4, 99)
	a, b, c, d := -1.7, 1.8, -1.9, -0.4

	var want [][2]float64
	for _, tr := range at.Tracers {
		nx, ny := Target(tr.X, tr.Y, a, b, c, d)
		want = append(want, [2]float64{nx, ny})
	}

	at.StepDirect(a, b, c, d)
	for i, tr := range at.Tracers {
		if tr.X != want[i][0] || tr.Y != want[i][1] {
			t.Errorf("tracer %d = (%v, %v), want (%v, %v)", i, tr.X, tr.Y, want[i][0], want[i][1])
		}
	}
}

func TestStepDampedKeepsTracersFinite(t *testing.T) {
	at := NewAttractor(64, 7)
	for i := 0; i < 500; i++ {
		at.StepDamped(1.4, -2.3, 2.4, -2.1, 0.3, 1.0/60.0, 5)
	}
	for i, tr := range at.Tracers {
		if !vmath.Finite(tr.X, tr.Y) {
			t.Fatalf("tracer %d diverged: (%v, %v)", i, tr.X, tr.Y)
		}
	}
}

func TestDivergedTracerIsReseeded(t *testing.T) {
	at := NewAttractor(1, 5)
	at.Tracers[0].X = math.NaN()
	at.Tracers[0].Y = math.Inf(1)

	at.StepDirect(1.4, -2.3, 2.4, -2.1)

	tr := at.Tracers[0]
	if !vmath.Finite(tr.X, tr.Y, tr.PrevX, tr.PrevY) {
		t.Errorf("tracer not reseeded: %+v", tr)
	}
}
