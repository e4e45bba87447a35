package kernel

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// FlowTracer is one flow-field particle, advected along a simplex
// noise direction field.
type FlowTracer struct {
	X, Y         float64
	PrevX, PrevY float64
	Hue          float64
}

// FlowField advects tracers through a time-varying simplex noise
// direction field over the viewport, wrapping at the edges.
type FlowField struct {
	Tracers []FlowTracer
	noise   opensimplex.Noise
	width   float64
	height  float64
	rng     *rand.Rand
}

// NewFlowField scatters n tracers uniformly over the viewport.
func NewFlowField(n int, width, height float64, seed int64) *FlowField {
	f := &FlowField{
		noise:  opensimplex.New(seed),
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	f.Tracers = make([]FlowTracer, n)
	for i := range f.Tracers {
		f.Tracers[i] = FlowTracer{
			X:   f.rng.Float64() * width,
			Y:   f.rng.Float64() * height,
			Hue: f.rng.Float64(),
		}
	}
	return f
}

// Resize updates the wrap bounds. Tracers outside the new viewport
// wrap naturally on the next step.
func (f *FlowField) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Step advects every tracer along the noise field. noiseScale sets the
// field's spatial frequency, speed the advection rate in px/s, and t
// the slow field evolution.
func (f *FlowField) Step(dt, t, noiseScale, speed float64) {
	for i := range f.Tracers {
		tr := &f.Tracers[i]
		tr.PrevX, tr.PrevY = tr.X, tr.Y

		ang := f.noise.Eval3(tr.X*noiseScale, tr.Y*noiseScale, t*0.03) * 2 * math.Pi
		tr.X += math.Cos(ang) * speed * dt
		tr.Y += math.Sin(ang) * speed * dt

		if f.wrap(tr) {
			// A wrapped tracer must not draw a segment across the
			// whole viewport.
			tr.PrevX, tr.PrevY = tr.X, tr.Y
		}
	}
}

func (f *FlowField) wrap(tr *FlowTracer) bool {
	wrapped := false
	if tr.X < 0 {
		tr.X += f.width
		wrapped = true
	} else if tr.X >= f.width {
		tr.X -= f.width
		wrapped = true
	}
	if tr.Y < 0 {
		tr.Y += f.height
		wrapped = true
	} else if tr.Y >= f.height {
		tr.Y -= f.height
		wrapped = true
	}
	return wrapped
}
