package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/kernel"
	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

var kernelNames = map[KernelKind]string{
	KernelWave:      "wave grid",
	KernelAttractor: "attractor",
	KernelCloud:     "point cloud",
	KernelFlow:      "flow field",
}

// Draw implements ebiten.Game. Everything renders into the persistent
// trail buffer, which is faded a little each frame so moving points
// leave streaks.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.phase != PhaseRunning {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.trail == nil || s.trail.Bounds().Dx() != w || s.trail.Bounds().Dy() != h {
		s.trail = ebiten.NewImage(w, h)
		s.trail.Fill(color.RGBA{R: 8, G: 10, B: 16, A: 255})
	}

	vector.DrawFilledRect(s.trail, 0, 0, float32(w), float32(h),
		color.RGBA{R: 8, G: 10, B: 16, A: config.TrailFadeAlpha}, false)

	switch s.kind {
	case KernelWave:
		s.drawWave(s.trail)
	case KernelAttractor:
		s.drawAttractor(s.trail)
	case KernelCloud:
		s.drawCloud(s.trail)
	case KernelFlow:
		s.drawFlow(s.trail)
	}

	screen.DrawImage(s.trail, nil)

	if s.showHUD {
		s.drawHUD(screen)
	}
}

func (s *Scene) drawWave(dst *ebiten.Image) {
	amp := s.params.Amplitude * (1 + s.level)
	yaw := s.t * 0.002
	const pitch = 1.0

	for i := 0; i < s.wave.N; i++ {
		for j := 0; j < s.wave.N; j++ {
			z := s.wave.Height(i, j, s.params.Frequency, amp, s.t)
			ratio := kernel.ColorRatio(z, amp)

			dx := (float64(i) - float64(s.wave.N)/2) * s.wave.Cell
			dy := (float64(j) - float64(s.wave.N)/2) * s.wave.Cell
			sx, sy, scale := s.cam.Project(vmath.Vec3{X: dx, Y: -z, Z: dy}, yaw, pitch)
			if scale == 0 {
				continue
			}

			c := hsvaColor(s.params.Hue+ratio*80, 0.7, 0.25+0.65*ratio, s.params.Alpha*scale)
			size := float32(1 + scale)
			vector.DrawFilledRect(dst, float32(sx), float32(sy), size, size, c, false)
		}
	}
}

func (s *Scene) drawAttractor(dst *ebiten.Image) {
	cx := s.cam.Width / 2
	cy := s.cam.Height / 2
	m := s.params.Symmetry
	scale := s.params.Scale

	for k := 0; k < m; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(m))
		for i := range s.attractor.Tracers {
			tr := &s.attractor.Tracers[i]

			x1, y1 := rotate2(tr.PrevX*scale, tr.PrevY*scale, sin, cos)
			x2, y2 := rotate2(tr.X*scale, tr.Y*scale, sin, cos)

			c := hsvaColor(s.params.Hue+tr.Phase*60+float64(k)*6, 0.85, 0.9, s.params.Alpha)
			vector.StrokeLine(dst, float32(cx+x1), float32(cy+y1), float32(cx+x2), float32(cy+y2), 1, c, false)
		}
	}
}

func (s *Scene) drawCloud(dst *ebiten.Image) {
	for i := range s.cloud.Points {
		p := &s.cloud.Points[i]
		sx, sy, scale := s.cam.Project(p.Wobble, s.cloud.RotY, s.cloud.RotX)
		if scale == 0 {
			continue
		}

		// Nearer points are larger and more opaque.
		a := clamp01(scale*scale*0.9) * s.params.Alpha
		c := hsvaColor(s.params.Hue+p.Hue*40, 0.6, 0.95, a)
		r := float32(0.8 + 1.8*scale)
		vector.DrawFilledCircle(dst, float32(sx+p.Offset.X), float32(sy+p.Offset.Y), r, c, false)
	}
}

func (s *Scene) drawFlow(dst *ebiten.Image) {
	for i := range s.flow.Tracers {
		tr := &s.flow.Tracers[i]
		c := hsvaColor(s.params.Hue+tr.Hue*90, 0.75, 0.9, s.params.Alpha*0.8)
		vector.StrokeLine(dst, float32(tr.PrevX), float32(tr.PrevY), float32(tr.X), float32(tr.Y), 1.2, c, false)
	}
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | preset %s | scroll %3.0f%% | 1-4 kernel, 0 auto, P preset, M music, H hud, Q quit",
		kernelNames[s.kind], s.presets[s.presetIdx].Name, s.st.ScrollDepth*100)
	if s.ambient.Playing() {
		status += " | Space pause"
	}
	if s.lastErr != nil {
		status += " | Error: " + s.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func rotate2(x, y, sin, cos float64) (float64, float64) {
	return x*cos - y*sin, x*sin + y*cos
}
