package viewport

import (
	"image"
	"math"
)

// Size is a width/height pair in pixels.
type Size struct{ W, H int }

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Options tunes fitting and zoom behaviour.
type Options struct {
	Margin      float64 // fraction of the viewport the fitted content may occupy
	MinViewport int     // viewport axes below this are raised to it
	ZoomStep    float64
	ZoomMin     float64
	ZoomMax     float64
}

// DefaultOptions returns the standard fitting margin, minimum viewport and zoom limits.
func DefaultOptions() Options {
	return Options{Margin: 0.9, MinViewport: 200, ZoomStep: 1.1, ZoomMin: 0.2, ZoomMax: 5.0}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	if o.MinViewport <= 0 {
		o.MinViewport = d.MinViewport
	}
	if o.ZoomStep <= 1 {
		o.ZoomStep = d.ZoomStep
	}
	if o.ZoomMin <= 0 {
		o.ZoomMin = d.ZoomMin
	}
	if o.ZoomMax < o.ZoomMin {
		o.ZoomMax = math.Max(d.ZoomMax, o.ZoomMin)
	}
	return o
}

// Placement is the mapping from content pixels to the viewport.
type Placement struct {
	Viewport Size // effective viewport after the minimum is applied
	FitScale float64
	Scale    float64 // FitScale * zoom
	Scaled   Size
	Offset   image.Point
}

// ToView maps a content-space point to viewport coordinates.
func (p Placement) ToView(pt image.Point) image.Point {
	return image.Pt(p.Offset.X+int(float64(pt.X)*p.Scale), p.Offset.Y+int(float64(pt.Y)*p.Scale))
}

// Fit computes the placement of content inside viewport at the given zoom. The base fit
// only shrinks content (never above native size) before zoom is applied, and the scaled
// content is centred with offsets clamped at zero.
func Fit(content, view Size, zoom float64, opts Options) Placement {
	opts = opts.normalized()
	if view.W < opts.MinViewport {
		view.W = opts.MinViewport
	}
	if view.H < opts.MinViewport {
		view.H = opts.MinViewport
	}
	p := Placement{Viewport: view}
	if content.Empty() {
		return p
	}
	sw := float64(view.W) * opts.Margin / float64(content.W)
	sh := float64(view.H) * opts.Margin / float64(content.H)
	p.FitScale = math.Min(math.Min(sw, sh), 1.0)
	p.Scale = p.FitScale * zoom
	p.Scaled = Size{W: int(float64(content.W) * p.Scale), H: int(float64(content.H) * p.Scale)}
	p.Offset = image.Pt(max((view.W-p.Scaled.W)/2, 0), max((view.H-p.Scaled.H)/2, 0))
	return p
}

// State is the sticky zoom factor and last known viewport size of a display surface.
// The zero value is not ready; use NewState.
type State struct {
	opts Options
	zoom float64
	view Size
}

// NewState returns a State at zoom 1.0 with an unset viewport.
func NewState(opts Options) *State {
	return &State{opts: opts.normalized(), zoom: 1.0}
}

// Zoom returns the current zoom factor.
func (s *State) Zoom() float64 {
	if s == nil {
		return 1.0
	}
	return s.zoom
}

// ZoomIn multiplies the zoom factor by the step, then clamps.
func (s *State) ZoomIn() float64 {
	if s == nil {
		return 1.0
	}
	s.zoom = s.clamp(s.zoom * s.opts.ZoomStep)
	return s.zoom
}

// ZoomOut divides the zoom factor by the step, then clamps.
func (s *State) ZoomOut() float64 {
	if s == nil {
		return 1.0
	}
	s.zoom = s.clamp(s.zoom / s.opts.ZoomStep)
	return s.zoom
}

// Reset restores zoom 1.0.
func (s *State) Reset() {
	if s == nil {
		return
	}
	s.zoom = 1.0
}

func (s *State) clamp(z float64) float64 {
	return math.Max(s.opts.ZoomMin, math.Min(z, s.opts.ZoomMax))
}

// Resize records the viewport size. Non-positive sizes are kept and degrade to the
// minimum viewport at Place time.
func (s *State) Resize(w, h int) {
	if s == nil {
		return
	}
	s.view = Size{W: w, H: h}
}

// Viewport returns the last recorded viewport size.
func (s *State) Viewport() Size {
	if s == nil {
		return Size{}
	}
	return s.view
}

// Place fits content into the current viewport at the current zoom.
func (s *State) Place(content Size) Placement {
	if s == nil {
		return Fit(content, Size{}, 1.0, DefaultOptions())
	}
	return Fit(content, s.view, s.zoom, s.opts)
}
