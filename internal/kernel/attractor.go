package kernel

import (
	"math"
	"math/rand"

	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

// Tracer is one attractor particle. Phase is a fixed per-tracer color
// offset assigned at creation; PrevX/PrevY keep the previous position
// for segment drawing.
type Tracer struct {
	X, Y         float64
	PrevX, PrevY float64
	Phase        float64
}

// Attractor iterates the de Jong / Clifford style recurrence
//
//	x' = sin(a·y) − cos(b·x)
//	y' = sin(c·x) − cos(d·y)
//
// over a fixed tracer set, either directly (one exact iteration per
// frame) or by damped integration toward the iteration target.
type Attractor struct {
	Tracers []Tracer
	rng     *rand.Rand
}

// NewAttractor seeds n tracers in the unit square around the origin.
func NewAttractor(n int, seed int64) *Attractor {
	a := &Attractor{rng: rand.New(rand.NewSource(seed))}
	a.Tracers = make([]Tracer, n)
	for i := range a.Tracers {
		a.reseed(&a.Tracers[i], float64(i)/float64(n))
	}
	return a
}

func (a *Attractor) reseed(t *Tracer, phase float64) {
	t.X = a.rng.Float64()*2 - 1
	t.Y = a.rng.Float64()*2 - 1
	t.PrevX, t.PrevY = t.X, t.Y
	t.Phase = phase
}

// Target computes one exact iteration of the recurrence.
func Target(x, y, a, b, c, d float64) (nx, ny float64) {
	nx = math.Sin(a*y) - math.Cos(b*x)
	ny = math.Sin(c*x) - math.Cos(d*y)
	return nx, ny
}

// DampedStep moves (x, y) a fraction k toward its iteration target and
// returns the new position. Exposed for property testing of the
// convergence behavior.
func DampedStep(x, y, a, b, c, d, k float64) (nx, ny float64) {
	tx, ty := Target(x, y, a, b, c, d)
	return x + (tx-x)*k, y + (ty-y)*k
}

// StepDirect applies one exact iteration per tracer. Maximal structure,
// no frame-rate independence.
func (at *Attractor) StepDirect(a, b, c, d float64) {
	for i := range at.Tracers {
		t := &at.Tracers[i]
		t.PrevX, t.PrevY = t.X, t.Y
		t.X, t.Y = Target(t.X, t.Y, a, b, c, d)
		at.guard(t)
	}
}

// StepDamped runs substeps fractional moves toward the iteration
// target. The per-substep fraction scales with dt (seconds) against
// the 16.666 ms reference frame so motion speed is refresh-rate
// independent.
func (at *Attractor) StepDamped(a, b, c, d, speedFactor, dt float64, substeps int) {
	if substeps < 1 {
		substeps = 1
	}
	k := speedFactor * (dt * 1000 / 16.666) / float64(substeps)
	if k > 1 {
		k = 1
	}
	for i := range at.Tracers {
		t := &at.Tracers[i]
		t.PrevX, t.PrevY = t.X, t.Y
		for s := 0; s < substeps; s++ {
			t.X, t.Y = DampedStep(t.X, t.Y, a, b, c, d, k)
		}
		at.guard(t)
	}
}

// guard resets a tracer that diverged to NaN/Inf. The recurrence is
// bounded for bounded coefficients, so this is a tolerance measure,
// not an expected path.
func (at *Attractor) guard(t *Tracer) {
	if !vmath.Finite(t.X, t.Y) {
		at.reseed(t, t.Phase)
	}
}
