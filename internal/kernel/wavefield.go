// Package kernel holds the per-frame simulation steps: the wave grid,
// the chaotic attractor tracers, the spherical point cloud, and the
// noise flow field. Each kernel owns its entity set and mutates it in
// place once per frame.
package kernel

import "math"

// WaveField is the N×N logical grid whose vertical displacement is a
// sum of three traveling sinusoids. The grid itself is implicit; only
// the geometry constants are stored.
type WaveField struct {
	N    int
	Cell float64
}

// NewWaveField derives the cell size from the viewport.
func NewWaveField(n int, width, height float64, cellFactor float64) *WaveField {
	m := math.Min(width, height)
	return &WaveField{
		N:    n,
		Cell: m / float64(n) * cellFactor,
	}
}

// Resize recomputes the cell size for a new viewport.
func (f *WaveField) Resize(width, height float64, cellFactor float64) {
	m := math.Min(width, height)
	f.Cell = m / float64(f.N) * cellFactor
}

// Height returns the vertical displacement of grid point (i, j) at
// frame time t for the given frequency and amplitude. Total over all
// finite inputs.
func (f *WaveField) Height(i, j int, freq, amp, t float64) float64 {
	dx := (float64(i) - float64(f.N)/2) * f.Cell
	dy := (float64(j) - float64(f.N)/2) * f.Cell
	return amp * (math.Sin(dx*0.05*freq+t*0.05) +
		math.Cos(dy*0.05*freq+t*0.03) +
		math.Sin((dx+dy)*0.02*freq+t*0.07))
}

// ColorRatio normalizes a displacement into [0,1] for hue/lightness
// mapping. The three-sinusoid sum spans ±3·amp, so the ratio is
// clamped at the extremes.
func ColorRatio(z, amp float64) float64 {
	if amp == 0 {
		return 0.5
	}
	r := (z + amp) / (2 * amp)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
