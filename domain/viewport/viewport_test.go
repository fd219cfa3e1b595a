package viewport

import (
	"image"
	"math"
	"testing"
)

func TestFit_CentersSmallContent(t *testing.T) {
	p := Fit(Size{W: 100, H: 50}, Size{W: 200, H: 200}, 1.0, DefaultOptions())
	if p.FitScale != 1.0 || p.Scale != 1.0 {
		t.Fatalf("small content must not grow: fit=%v scale=%v", p.FitScale, p.Scale)
	}
	if p.Scaled != (Size{W: 100, H: 50}) {
		t.Fatalf("unexpected scaled size %+v", p.Scaled)
	}
	left, right := p.Offset.X, 200-p.Offset.X-p.Scaled.W
	top, bottom := p.Offset.Y, 200-p.Offset.Y-p.Scaled.H
	if abs(left-right) > 1 || abs(top-bottom) > 1 {
		t.Fatalf("not centred: left=%d right=%d top=%d bottom=%d", left, right, top, bottom)
	}
}

func TestFit_ShrinksLargeContent(t *testing.T) {
	p := Fit(Size{W: 2000, H: 1000}, Size{W: 1000, H: 800}, 1.0, DefaultOptions())
	if want := 0.45; math.Abs(p.FitScale-want) > 1e-9 {
		t.Fatalf("fit scale %v want %v", p.FitScale, want)
	}
	if p.Scaled != (Size{W: 900, H: 450}) {
		t.Fatalf("scaled %+v", p.Scaled)
	}
	if p.Offset != image.Pt(50, 175) {
		t.Fatalf("offset %v", p.Offset)
	}
}

func TestFit_ZoomBeyondViewportClampsOffset(t *testing.T) {
	p := Fit(Size{W: 300, H: 300}, Size{W: 400, H: 400}, 5.0, DefaultOptions())
	if p.Scaled.W != 1500 || p.Offset != (image.Point{}) {
		t.Fatalf("expected oversize content at origin, got scaled=%+v offset=%v", p.Scaled, p.Offset)
	}
}

func TestFit_ZeroViewportDegradesToMinimum(t *testing.T) {
	p := Fit(Size{W: 100, H: 100}, Size{}, 1.0, DefaultOptions())
	if p.Viewport != (Size{W: 200, H: 200}) {
		t.Fatalf("viewport %+v", p.Viewport)
	}
	if p.Scaled != (Size{W: 100, H: 100}) || p.Offset != image.Pt(50, 50) {
		t.Fatalf("unexpected placement %+v", p)
	}
}

func TestFit_EmptyContent(t *testing.T) {
	p := Fit(Size{}, Size{W: 300, H: 300}, 2.0, DefaultOptions())
	if p.Scale != 0 || p.Scaled != (Size{}) {
		t.Fatalf("empty content should give zero placement: %+v", p)
	}
}

func TestState_ZoomClampConverges(t *testing.T) {
	s := NewState(DefaultOptions())
	for i := 0; i < 100; i++ {
		s.ZoomIn()
	}
	if s.Zoom() != 5.0 {
		t.Fatalf("zoom in should stop at 5.0, got %v", s.Zoom())
	}
	if s.ZoomIn() != 5.0 {
		t.Fatalf("zoom kept growing past the limit")
	}
	for i := 0; i < 100; i++ {
		s.ZoomOut()
	}
	if s.Zoom() != 0.2 {
		t.Fatalf("zoom out should stop at 0.2, got %v", s.Zoom())
	}
}

func TestState_ClampAppliedAfterMultiply(t *testing.T) {
	s := NewState(DefaultOptions())
	for s.Zoom() < 5.0 {
		s.ZoomIn()
	}
	// One step back from the boundary is 5.0/1.1, not the pre-clamp value divided.
	got := s.ZoomOut()
	if math.Abs(got-5.0/1.1) > 1e-12 {
		t.Fatalf("expected %v got %v", 5.0/1.1, got)
	}
}

func TestState_ZoomIsStickyAcrossResize(t *testing.T) {
	s := NewState(DefaultOptions())
	s.ZoomIn()
	s.Resize(800, 600)
	s.Resize(0, 0)
	if math.Abs(s.Zoom()-1.1) > 1e-12 {
		t.Fatalf("zoom lost on resize: %v", s.Zoom())
	}
	p := s.Place(Size{W: 100, H: 100})
	if p.Viewport != (Size{W: 200, H: 200}) {
		t.Fatalf("zero viewport should degrade to minimum, got %+v", p.Viewport)
	}
	s.Reset()
	if s.Zoom() != 1.0 {
		t.Fatalf("reset should restore 1.0")
	}
}

func TestPlacement_ToView(t *testing.T) {
	p := Fit(Size{W: 2000, H: 1000}, Size{W: 1000, H: 800}, 1.0, DefaultOptions())
	if got := p.ToView(image.Pt(1000, 500)); got != image.Pt(500, 400) {
		t.Fatalf("content centre should map to viewport centre, got %v", got)
	}
}

func TestState_NilSafe(t *testing.T) {
	var s *State
	s.ZoomIn()
	s.Resize(10, 10)
	if s.Zoom() != 1.0 {
		t.Fatalf("nil state zoom")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
