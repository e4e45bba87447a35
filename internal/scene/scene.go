// Package scene owns the render loop: it drains input, derives the
// frame parameters, steps the active kernel, and draws the result with
// symmetry folds and a fade trail. The loop is an explicit state
// machine (Uninitialized -> Running -> Disposed) with Advance as the
// single-step entry point, so frames can be driven deterministically
// in tests without a display.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/johannesstruweg/struwegstudio/internal/audio"
	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/input"
	"github.com/johannesstruweg/struwegstudio/internal/kernel"
	"github.com/johannesstruweg/struwegstudio/internal/modulate"
	"github.com/johannesstruweg/struwegstudio/internal/vmath"
)

// Phase is the render loop state.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseRunning
	PhaseDisposed
)

// KernelKind selects the active background effect.
type KernelKind int

const (
	KernelWave KernelKind = iota
	KernelAttractor
	KernelCloud
	KernelFlow

	kernelCount
)

// ErrNotStartable is returned by Start outside the Uninitialized phase.
var ErrNotStartable = errors.New("scene: not in a startable state")

// Scene implements ebiten.Game over the simulation core.
type Scene struct {
	phase Phase

	agg   *input.Aggregator
	clock *input.Clock

	presets   []config.Preset
	presetIdx int

	kind     KernelKind
	override bool

	wave      *kernel.WaveField
	attractor *kernel.Attractor
	cloud     *kernel.Cloud
	flow      *kernel.FlowField

	cam   vmath.Camera
	trail *ebiten.Image

	// t is the frame-counter time: +1 per frame at the 60 Hz
	// reference rate.
	t      float64
	st     input.State
	params modulate.Params
	level  float64

	w, h int

	ambient *audio.Ambient
	lastErr error

	prevKey map[ebiten.Key]bool
	showHUD bool
}

// New returns an Uninitialized scene.
func New(presets []config.Preset) *Scene {
	return &Scene{
		presets: presets,
		ambient: audio.NewAmbient(),
		prevKey: map[ebiten.Key]bool{},
		showHUD: true,
	}
}

// Phase returns the current loop state.
func (s *Scene) Phase() Phase { return s.phase }

// Kind returns the active kernel.
func (s *Scene) Kind() KernelKind { return s.kind }

// Cloud exposes the point set for resize assertions.
func (s *Scene) Cloud() *kernel.Cloud { return s.cloud }

// Attractor exposes the tracer set.
func (s *Scene) Attractor() *kernel.Attractor { return s.attractor }

// Start builds the entity sets for the given viewport and enters
// Running. It fails outside the Uninitialized phase; a failed mount
// leaves the effect absent rather than broken.
func (s *Scene) Start(width, height int) error {
	if s.phase != PhaseUninitialized {
		return ErrNotStartable
	}
	if width <= 0 || height <= 0 {
		return errors.New("scene: no drawable viewport")
	}
	if len(s.presets) == 0 {
		return errors.New("scene: no presets")
	}

	s.w, s.h = width, height
	fw, fh := float64(width), float64(height)

	s.agg = input.NewAggregator(fw, fh)
	s.clock = input.NewClock()
	s.cam = vmath.Camera{Depth: config.CameraDepth, Width: fw, Height: fh}

	s.wave = kernel.NewWaveField(config.WaveGridSize, fw, fh, config.WaveCellFactor)
	s.attractor = kernel.NewAttractor(config.AttractorTracerCount, 1)
	s.cloud = kernel.NewCloud(config.CloudPointCount, min(fw, fh)*config.CloudRadiusFactor, 2)
	s.flow = kernel.NewFlowField(config.FlowTracerCount, fw, fh, 3)

	s.phase = PhaseRunning
	return nil
}

// Stop tears the loop down unconditionally: listeners are implicit in
// ebiten, so disposal just releases audio and marks the terminal
// phase. A disposed scene never runs again.
func (s *Scene) Stop() {
	if s.phase == PhaseDisposed {
		return
	}
	s.ambient.Close()
	s.phase = PhaseDisposed
}

// PushEvent posts one input event for the next frame. Host callbacks
// and tests feed the loop through here; events pushed outside the
// Running phase are dropped.
func (s *Scene) PushEvent(ev input.Event) {
	if s.phase == PhaseRunning {
		s.agg.Push(ev)
	}
}

// Update implements ebiten.Game: gather host input as events, then
// advance exactly one frame.
func (s *Scene) Update() error {
	switch s.phase {
	case PhaseUninitialized:
		return nil
	case PhaseDisposed:
		return ebiten.Termination
	}

	s.collectInput()
	if s.handleKeys() {
		s.Stop()
		return ebiten.Termination
	}

	s.Advance(s.clock.Delta())
	return nil
}

// Advance drains the event queue, derives the frame parameters, and
// steps the active kernel by dt seconds.
func (s *Scene) Advance(dt float64) {
	if s.phase != PhaseRunning {
		return
	}

	s.st = s.agg.Drain(dt)
	s.t += dt * 60
	s.level = s.ambient.Level()

	if !s.override {
		s.kind = kindForDepth(s.st.ScrollDepth)
	}
	s.params = modulate.Derive(s.st, s.presets[s.presetIdx])

	// Playing audio breathes into the amplitude.
	amp := s.params.Amplitude * (1 + s.level)

	switch s.kind {
	case KernelAttractor:
		p := s.presets[s.presetIdx]
		if p.Damped {
			s.attractor.StepDamped(s.params.A, s.params.B, s.params.C, s.params.D, p.SpeedFactor, dt, p.Substeps)
		} else {
			s.attractor.StepDirect(s.params.A, s.params.B, s.params.C, s.params.D)
		}
	case KernelCloud:
		s.cloud.Step(s.t, amp*0.4, s.st.DragVX, s.st.DragVY, s.pointerTorque())
		s.repelCloud()
	case KernelFlow:
		s.flow.Step(dt, s.t, config.FlowNoiseScale, config.FlowSpeed)
	}
	// The wave field is stateless; it is sampled at draw time.
}

// pointerTorque converts horizontal pointer offset from center into a
// small yaw impulse while the pointer is active.
func (s *Scene) pointerTorque() float64 {
	if !s.st.Pointer.Active || s.cam.Width == 0 {
		return 0
	}
	return (s.st.Pointer.X - s.cam.Width/2) / s.cam.Width * 0.0006
}

// repelCloud applies pointer repulsion in screen space while the
// pointer is active.
func (s *Scene) repelCloud() {
	if !s.st.Pointer.Active {
		return
	}
	for i := range s.cloud.Points {
		p := &s.cloud.Points[i]
		sx, sy, scale := s.cam.Project(p.Wobble, s.cloud.RotY, s.cloud.RotX)
		if scale == 0 {
			continue
		}
		push := kernel.Repel(s.st.Pointer.X, s.st.Pointer.Y,
			sx+p.Offset.X, sy+p.Offset.Y,
			config.CloudInfluenceRadius, config.CloudRepulsionFalloff)
		if push.X != 0 || push.Y != 0 {
			s.cloud.AddOffset(i, push)
		}
	}
}

// collectInput translates ebiten's polled state into queued events.
func (s *Scene) collectInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel-up scrolls the page down.
		s.agg.Push(input.Event{Kind: input.KindScroll, Y: -wy})
	}

	cx, cy := ebiten.CursorPosition()
	s.agg.Push(input.Event{Kind: input.KindPointerMove, X: float64(cx), Y: float64(cy)})

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.agg.Push(input.Event{Kind: input.KindPointerDown, X: float64(cx), Y: float64(cy)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.agg.Push(input.Event{Kind: input.KindPointerUp, X: float64(cx), Y: float64(cy)})
	}
}

// handleKeys reacts to the hotkeys; it reports whether the scene
// should terminate.
func (s *Scene) handleKeys() bool {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !s.prevKey[k]
		s.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return true
	}
	if justPressed(ebiten.KeyDigit1) {
		s.setOverride(KernelWave)
	}
	if justPressed(ebiten.KeyDigit2) {
		s.setOverride(KernelAttractor)
	}
	if justPressed(ebiten.KeyDigit3) {
		s.setOverride(KernelCloud)
	}
	if justPressed(ebiten.KeyDigit4) {
		s.setOverride(KernelFlow)
	}
	if justPressed(ebiten.KeyDigit0) {
		s.override = false
	}
	if justPressed(ebiten.KeyP) {
		s.presetIdx = (s.presetIdx + 1) % len(s.presets)
	}
	if justPressed(ebiten.KeyH) {
		s.showHUD = !s.showHUD
	}
	if justPressed(ebiten.KeyM) {
		if err := s.ambient.OpenDialog(); err != nil {
			s.lastErr = err
		}
	}
	if justPressed(ebiten.KeySpace) {
		s.ambient.TogglePause()
	}
	return false
}

func (s *Scene) setOverride(k KernelKind) {
	s.kind = k
	s.override = true
}

// Layout implements ebiten.Game. A changed viewport resizes the
// camera, the aggregator, and every kernel; the point cloud follows
// the keep-or-regenerate rule, never a partial update.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return s.w, s.h
	}
	if s.phase == PhaseRunning && (outsideWidth != s.w || outsideHeight != s.h) {
		s.resize(outsideWidth, outsideHeight)
	}
	s.w, s.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (s *Scene) resize(width, height int) {
	fw, fh := float64(width), float64(height)
	s.cam.Width, s.cam.Height = fw, fh
	s.agg.Push(input.Event{Kind: input.KindResize, X: fw, Y: fh})
	s.wave.Resize(fw, fh, config.WaveCellFactor)
	s.cloud.Resize(fw, fh, config.CloudRadiusFactor, config.CloudPointCount)
	s.flow.Resize(fw, fh)
	s.trail = nil
}

// kindForDepth maps the page's scroll bands to their background
// effects.
func kindForDepth(depth float64) KernelKind {
	k := KernelKind(depth * float64(kernelCount))
	if k >= kernelCount {
		k = kernelCount - 1
	}
	return k
}
