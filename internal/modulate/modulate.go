// Package modulate derives the per-frame simulation constants from the
// input snapshot. Derive is a pure function: identical snapshots yield
// identical parameters.
package modulate

import (
	"math"

	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/input"
)

// Params is the per-frame constant set consumed by the kernels and the
// renderer. Recomputed from scratch every frame, never persisted.
type Params struct {
	// Attractor recurrence coefficients.
	A, B, C, D float64

	// Wave-field terms.
	Frequency float64
	Amplitude float64

	// Symmetry is the rotational copy count, always in
	// [config.MinSymmetry, config.MaxSymmetry].
	Symmetry int

	Hue   float64
	Alpha float64
	Scale float64
}

// Engagement saturates session time into [0,1] over the engagement
// window.
func Engagement(sessionTime float64) float64 {
	e := sessionTime / config.EngagementWindow
	if e > 1 {
		return 1
	}
	if e < 0 {
		return 0
	}
	return e
}

// Derive computes the frame parameters for one preset. Coefficients and
// scale are affine in scroll depth and engagement; hue adds a slow
// sinusoidal drift in session time on top of its scroll sweep.
func Derive(st input.State, p config.Preset) Params {
	s := st.ScrollDepth
	e := Engagement(st.SessionTime)

	return Params{
		A: p.Coeff[0] + s*p.ScrollCoeff[0] + e*p.EngageCoeff[0],
		B: p.Coeff[1] + s*p.ScrollCoeff[1] + e*p.EngageCoeff[1],
		C: p.Coeff[2] + s*p.ScrollCoeff[2] + e*p.EngageCoeff[2],
		D: p.Coeff[3] + s*p.ScrollCoeff[3] + e*p.EngageCoeff[3],

		Frequency: p.Frequency + s*p.FrequencySweep,
		Amplitude: p.Amplitude + e*p.AmplitudeSweep,

		Symmetry: symmetry(s),

		Hue:   p.BaseHue + s*p.HueSweep + math.Sin(st.SessionTime*p.HueDriftRate)*p.HueDriftAmp,
		Alpha: p.BaseAlpha + e*p.AlphaSweep,
		Scale: p.BaseScale + s*p.ScaleSweep,
	}
}

// symmetry maps scroll depth onto the bounded integer fold count,
// non-decreasing in depth.
func symmetry(scrollDepth float64) int {
	span := float64(config.MaxSymmetry - config.MinSymmetry)
	m := config.MinSymmetry + int(math.Floor(scrollDepth*span+0.5))
	if m < config.MinSymmetry {
		m = config.MinSymmetry
	}
	if m > config.MaxSymmetry {
		m = config.MaxSymmetry
	}
	return m
}
