// Package gui runs the live tracker Tk window.
package gui

import (
	"fmt"

	"github.com/Lumos7-3/A1-Internship-Project/app/tracker"
	"github.com/Lumos7-3/A1-Internship-Project/ui/theme"
	"github.com/Lumos7-3/A1-Internship-Project/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TrackerTitle is the live tracker window title and heading.
const TrackerTitle = "Real-time Face Tracking"

// Preview size limit inside the tracker window.
const (
	previewMaxW = 800
	previewMaxH = 500
)

type trackerApp struct {
	c       *tracker.Container
	afterID string
}

// RunTracker shows the live tracker window, starts capturing and blocks until the
// window is closed.
func RunTracker(c *tracker.Container, width, height int) {
	a := &trackerApp{c: c}

	App.WmTitle(TrackerTitle)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	theme.InitStyles()

	v := view.NewTrackerView(TrackerTitle, previewMaxW, previewMaxH, view.TrackerHandlers{
		ToggleCapture: func() { c.CapturePresenter.Toggle() },
		Snapshot:      a.snapshot,
		Quit:          a.exitHandler,
	})
	c.Bind(v, a.scheduleUpdate)

	c.CapturePresenter.Enable()

	App.Wait()
}

// snapshot reports its outcome on the status line.
func (a *trackerApp) snapshot() {
	_ = a.c.TrackerPresenter.SaveSnapshot()
}

func (a *trackerApp) scheduleUpdate() {
	a.afterID = TclAfter(tracker.Tick, func() { a.c.Loop.Tick() })
}

func (a *trackerApp) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if err := a.c.Close(); err != nil && a.c.Logger != nil {
		a.c.Logger.Warn("tracker close", "error", err)
	}
	Destroy(App)
}
