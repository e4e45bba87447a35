package vmath

import "math"

// MaxPitch bounds the camera tilt so the cloud never flips over.
const MaxPitch = math.Pi / 3

// Camera is a weak-perspective camera centered on the viewport. Depth
// is the distance constant D in scale = D / (D + z).
type Camera struct {
	Depth  float64
	Width  float64
	Height float64
}

// ClampPitch limits a rotation-about-X angle to ±MaxPitch.
func ClampPitch(ang float64) float64 {
	if ang > MaxPitch {
		return MaxPitch
	}
	if ang < -MaxPitch {
		return -MaxPitch
	}
	return ang
}

// Project applies yaw then pitch rotation and a perspective divide.
// The returned scale grows as the point nears the camera; callers size
// and fade points by it.
func (c Camera) Project(p Vec3, yaw, pitch float64) (sx, sy, scale float64) {
	r := RotateX(RotateY(p, yaw), ClampPitch(pitch))
	denom := c.Depth + r.Z
	if denom <= 0 {
		// Behind the camera; caller skips zero-scale points.
		return c.Width / 2, c.Height / 2, 0
	}
	scale = c.Depth / denom
	sx = c.Width/2 + r.X*scale
	sy = c.Height/2 + r.Y*scale
	return sx, sy, scale
}
