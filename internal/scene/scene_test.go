package scene

import (
	"testing"

	"github.com/johannesstruweg/struwegstudio/internal/config"
	"github.com/johannesstruweg/struwegstudio/internal/input"
)

// scrollTo pushes one scroll event that lands the aggregator on the
// requested depth for the scene's initial viewport.
func scrollTo(s *Scene, depth float64, viewH float64) {
	scrollable := viewH * (config.ContentPages - 1)
	s.PushEvent(input.Event{Kind: input.KindScroll, Y: depth * scrollable / config.ScrollStep})
}

func newRunning(t *testing.T) *Scene {
	t.Helper()
	s := New(config.Presets)
	if err := s.Start(1280, 800); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestLifecycle(t *testing.T) {
	s := New(config.Presets)
	if s.Phase() != PhaseUninitialized {
		t.Fatalf("new scene phase = %v", s.Phase())
	}

	if err := s.Start(1280, 800); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Phase() != PhaseRunning {
		t.Fatalf("started scene phase = %v", s.Phase())
	}

	// Running is not startable again.
	if err := s.Start(1280, 800); err == nil {
		t.Error("second Start should fail")
	}

	s.Stop()
	if s.Phase() != PhaseDisposed {
		t.Fatalf("stopped scene phase = %v", s.Phase())
	}

	// Disposed is terminal.
	if err := s.Start(1280, 800); err == nil {
		t.Error("Start after Stop should fail")
	}
	s.Stop() // idempotent
	if s.Phase() != PhaseDisposed {
		t.Error("Stop changed a disposed scene")
	}
}

func TestStartRejectsEmptyViewport(t *testing.T) {
	s := New(config.Presets)
	if err := s.Start(0, 600); err == nil {
		t.Error("expected error for zero width")
	}
	if s.Phase() != PhaseUninitialized {
		t.Error("failed mount must stay Uninitialized")
	}
}

func TestAdvanceOutsideRunningIsNoop(t *testing.T) {
	s := New(config.Presets)
	s.Advance(1.0 / 60.0) // must not panic before Start

	s = newRunning(t)
	s.Stop()
	s.Advance(1.0 / 60.0)
}

func TestKernelFollowsScrollBands(t *testing.T) {
	tests := []struct {
		name  string
		depth float64
		want  KernelKind
	}{
		{name: "hero section", depth: 0.0, want: KernelWave},
		{name: "second band", depth: 0.3, want: KernelAttractor},
		{name: "third band", depth: 0.6, want: KernelCloud},
		{name: "footer", depth: 1.0, want: KernelFlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunning(t)
			scrollTo(s, tt.depth, 800)
			s.Advance(1.0 / 60.0)
			if s.Kind() != tt.want {
				t.Errorf("kind at depth %v = %v, want %v", tt.depth, s.Kind(), tt.want)
			}
		})
	}
}

func TestAdvanceStepsAttractor(t *testing.T) {
	s := newRunning(t)
	scrollTo(s, 0.3, 800)

	s.Advance(1.0 / 60.0)
	before := make([][2]float64, len(s.Attractor().Tracers))
	for i, tr := range s.Attractor().Tracers {
		before[i] = [2]float64{tr.X, tr.Y}
	}

	s.Advance(1.0 / 60.0)
	moved := 0
	for i, tr := range s.Attractor().Tracers {
		if tr.X != before[i][0] || tr.Y != before[i][1] {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no tracer moved after one frame")
	}
}

func TestLayoutResizeRegeneratesGeometry(t *testing.T) {
	s := newRunning(t)

	w, h := s.Layout(1000, 700)
	if w != 1000 || h != 700 {
		t.Fatalf("Layout = (%d, %d)", w, h)
	}

	if want := 700 * config.CloudRadiusFactor; s.Cloud().Radius != want {
		t.Errorf("cloud radius = %v, want %v", s.Cloud().Radius, want)
	}
	if len(s.Cloud().Points) != config.CloudPointCount {
		t.Errorf("cloud count changed on resize: %d", len(s.Cloud().Points))
	}
}

func TestRepulsionRespondsToActivePointer(t *testing.T) {
	s := newRunning(t)
	scrollTo(s, 0.6, 800) // cloud band

	// Press in the viewport center where projected points live.
	s.Advance(1.0 / 60.0)
	s.PushEvent(input.Event{Kind: input.KindPointerDown, X: 640, Y: 400})
	s.Advance(1.0 / 60.0)

	displaced := 0
	for _, p := range s.Cloud().Points {
		if p.Offset.X != 0 || p.Offset.Y != 0 {
			displaced++
		}
	}
	if displaced == 0 {
		t.Error("no cloud point displaced by an active pointer at center")
	}
}
