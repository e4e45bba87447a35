package kernel

import (
	"math"
	"math/rand"

	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

// CloudPoint is one sphere-cloud particle. Base is the sampled rest
// position; Wobble is the current wave-displaced position recomputed
// each frame; Offset is the accumulated 2D pointer-repulsion
// displacement applied in screen space.
type CloudPoint struct {
	Base   vmath.Vec3
	Wobble vmath.Vec3
	Offset vmath.Vec2
	Hue    float64
}

// Cloud is the fixed-size spherical point set with its accumulated
// rotation state.
type Cloud struct {
	Points []CloudPoint
	Radius float64

	RotY, RotX float64
	velY, velX float64

	rng *rand.Rand
}

// NewCloud samples n points uniformly by volume within radius r using
// the cube-root radial distribution.
func NewCloud(n int, r float64, seed int64) *Cloud {
	c := &Cloud{
		Radius: r,
		rng:    rand.New(rand.NewSource(seed)),
	}
	c.Points = make([]CloudPoint, n)
	for i := range c.Points {
		c.Points[i] = c.sample()
	}
	return c
}

func (c *Cloud) sample() CloudPoint {
	u := c.rng.Float64()
	v := c.rng.Float64()
	w := c.rng.Float64()

	theta := math.Acos(2*u - 1)
	phi := 2 * math.Pi * v
	r := c.Radius * math.Cbrt(w)

	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	p := vmath.Vec3{
		X: r * st * cp,
		Y: r * st * sp,
		Z: r * ct,
	}
	return CloudPoint{Base: p, Wobble: p, Hue: c.rng.Float64()}
}

// Resize sets the radius for a new viewport: r = min(w,h)·factor. The
// point set is regenerated in full only when the target count differs;
// otherwise it is left untouched.
func (c *Cloud) Resize(width, height float64, factor float64, targetCount int) {
	c.Radius = math.Min(width, height) * factor
	if len(c.Points) == targetCount {
		return
	}
	c.Points = make([]CloudPoint, targetCount)
	for i := range c.Points {
		c.Points[i] = c.sample()
	}
}

// Step advances the cloud one frame: radial traveling wave with the
// slow breathing pulse, rotation drift plus drag and pointer torque
// with decay, and relaxation of the repulsion offsets. t is the
// frame-counter time; pointerTorque is the yaw impulse from pointer
// proximity, zero while the pointer is idle.
func (c *Cloud) Step(t, amplitude, dragVX, dragVY, pointerTorque float64) {
	pulse := math.Sin(t*0.04)*0.3 + 0.7
	for i := range c.Points {
		p := &c.Points[i]
		dist := vmath.V3Len(p.Base)
		wave := math.Sin(dist/10 - t*0.1)
		p.Wobble = p.Base
		p.Wobble.Z += wave * amplitude * pulse

		p.Offset = vmath.V2Scale(p.Offset, config.CloudOffsetRelax)
	}

	c.velY += dragVX*0.0004 + pointerTorque
	c.velX += dragVY * 0.0004
	c.velY *= config.DragDecay
	c.velX *= config.DragDecay

	c.RotY += 0.002 + c.velY
	c.RotX = vmath.ClampPitch(c.RotX + c.velX)
}

// Repel pushes projected points away from the pointer. px, py are the
// pointer position; each point's screen position must be supplied by
// the caller, which receives the push to accumulate into the point's
// offset. Strength falls off as (1 − d/radius)^falloff inside the
// influence radius.
func Repel(px, py, sx, sy, radius, falloff float64) vmath.Vec2 {
	dx := sx - px
	dy := sy - py
	d := math.Hypot(dx, dy)
	if d >= radius || d == 0 {
		return vmath.Vec2{}
	}
	strength := math.Pow(1-d/radius, falloff)
	return vmath.Vec2{
		X: dx / d * strength * 14,
		Y: dy / d * strength * 14,
	}
}

// AddOffset accumulates a repulsion push on point i.
func (c *Cloud) AddOffset(i int, push vmath.Vec2) {
	c.Points[i].Offset = vmath.V2Add(c.Points[i].Offset, push)
}
