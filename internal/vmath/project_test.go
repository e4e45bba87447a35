package vmath

import (
	"math"
	"testing"
)

func TestProjectZeroRotationClosedForm(t *testing.T) {
	cam := Camera{Depth: 900, Width: 1280, Height: 800}

	tests := []struct {
		name string
		p    Vec3
	}{
		{name: "origin", p: Vec3{}},
		{name: "off-axis", p: Vec3{X: 120, Y: -80, Z: 200}},
		{name: "near plane", p: Vec3{X: -300, Y: 50, Z: -400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, scale := cam.Project(tt.p, 0, 0)

			wantScale := cam.Depth / (cam.Depth + tt.p.Z)
			wantX := cam.Width/2 + tt.p.X*wantScale
			wantY := cam.Height/2 + tt.p.Y*wantScale

			if math.Abs(scale-wantScale) > 1e-12 {
				t.Errorf("scale = %v, want %v", scale, wantScale)
			}
			if math.Abs(sx-wantX) > 1e-9 || math.Abs(sy-wantY) > 1e-9 {
				t.Errorf("screen = (%v, %v), want (%v, %v)", sx, sy, wantX, wantY)
			}
		})
	}
}

func TestProjectDepthScaleOrdering(t *testing.T) {
	cam := Camera{Depth: 900, Width: 1280, Height: 800}

	_, _, near := cam.Project(Vec3{Z: -200}, 0, 0)
	_, _, mid := cam.Project(Vec3{Z: 0}, 0, 0)
	_, _, far := cam.Project(Vec3{Z: 200}, 0, 0)

	if !(near > mid && mid > far) {
		t.Errorf("expected near > mid > far, got %v, %v, %v", near, mid, far)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := Camera{Depth: 500, Width: 100, Height: 100}
	sx, sy, scale := cam.Project(Vec3{Z: -600}, 0, 0)
	if scale != 0 {
		t.Errorf("expected zero scale behind camera, got %v", scale)
	}
	if sx != 50 || sy != 50 {
		t.Errorf("expected center fallback, got (%v, %v)", sx, sy)
	}
}

func TestClampPitch(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 1.0, want: 1.0},
		{in: 2.0, want: MaxPitch},
		{in: -2.0, want: -MaxPitch},
	}
	for _, tt := range tests {
		if got := ClampPitch(tt.in); got != tt.want {
			t.Errorf("ClampPitch(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{X: 3, Y: -4, Z: 12}
	want := V3Len(v)
	for _, ang := range []float64{0.1, 1.3, -2.2, math.Pi} {
		if got := V3Len(RotateY(v, ang)); math.Abs(got-want) > 1e-9 {
			t.Errorf("RotateY(%v) length = %v, want %v", ang, got, want)
		}
		if got := V3Len(RotateX(v, ang)); math.Abs(got-want) > 1e-9 {
			t.Errorf("RotateX(%v) length = %v, want %v", ang, got, want)
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, -2.5, 0) {
		t.Error("expected finite")
	}
	if Finite(math.NaN()) {
		t.Error("NaN reported finite")
	}
	if Finite(1, math.Inf(1)) {
		t.Error("Inf reported finite")
	}
}
