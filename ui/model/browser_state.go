package model

import (
	"fmt"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/domain/overlay"
	"github.com/Lumos7-3/A1-Internship-Project/domain/viewport"
)

// EmptyCatalogMessage is shown when the image directory holds no frames.
const EmptyCatalogMessage = "No images found in the image folder."

// BrowserState is the plate browser session: the frame catalog with its cursor,
// the zoom and viewport state and the renderer. Only the UI thread touches it.
type BrowserState struct {
	Catalog  *catalog.Catalog
	View     *viewport.State
	Renderer *overlay.Renderer

	renders uint64
}

// NewBrowserState wires a session around an already scanned catalog.
func NewBrowserState(c *catalog.Catalog, v *viewport.State, r *overlay.Renderer) *BrowserState {
	if v == nil {
		v = viewport.NewState(viewport.DefaultOptions())
	}
	if r == nil {
		r = overlay.NewRenderer(overlay.PlatePalette())
	}
	return &BrowserState{Catalog: c, View: v, Renderer: r}
}

// Rendered counts one completed render.
func (s *BrowserState) Rendered() {
	if s == nil {
		return
	}
	s.renders++
}

// Renders returns the number of completed renders.
func (s *BrowserState) Renders() uint64 {
	if s == nil {
		return 0
	}
	return s.renders
}

// InfoTone selects the color of the info line.
type InfoTone int

const (
	ToneNeutral InfoTone = iota
	ToneIntact
	ToneBroken
	ToneError
)

// InfoToneOf colors a frame's info line by its status; unreadable frames are errors.
func InfoToneOf(s catalog.FrameSummary) InfoTone {
	switch {
	case !s.Readable:
		return ToneError
	case s.Status == annotation.StatusBroken:
		return ToneBroken
	case s.Status == annotation.StatusIntact:
		return ToneIntact
	}
	return ToneNeutral
}

// InfoText formats the info line for a frame summary.
func InfoText(s catalog.FrameSummary) string {
	if !s.Readable {
		return fmt.Sprintf("Cannot read %s", s.ID)
	}
	return fmt.Sprintf("%s | Intact: %d, Broken: %d, Status: %s", s.ID, s.Intact, s.Broken, s.Status)
}

// PositionText formats a 1-based "i / n" cursor position.
func PositionText(index, count int) string {
	if count <= 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", index+1, count)
}

// ZoomText formats the zoom factor as a percentage.
func ZoomText(zoom float64) string {
	return fmt.Sprintf("%.0f%%", zoom*100)
}
