// Package gui runs the plate browser Tk window.
package gui

import (
	"context"
	"fmt"

	"github.com/Lumos7-3/A1-Internship-Project/app"
	"github.com/Lumos7-3/A1-Internship-Project/ui/theme"
	"github.com/Lumos7-3/A1-Internship-Project/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// BrowserTitle is the plate browser window title.
const BrowserTitle = "License Plate Character Detection"

type browserApp struct {
	c       *app.BrowserContainer
	view    *view.BrowserView
	afterID string
}

// RunBrowser shows the plate browser window and blocks until it is closed.
func RunBrowser(ctx context.Context, c *app.BrowserContainer, width, height int) {
	a := &browserApp{c: c}

	App.WmTitle(BrowserTitle)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	theme.InitStyles()

	// Handlers resolve the presenter lazily; it is bound after the view exists.
	a.view = view.NewBrowserView(c.Config.Browser.TableRows, view.BrowserHandlers{
		Next:      func() { c.Presenter.Next() },
		Previous:  func() { c.Presenter.Previous() },
		ZoomIn:    func() { c.Presenter.ZoomIn() },
		ZoomOut:   func() { c.Presenter.ZoomOut() },
		Wheel:     func(d int) { c.Presenter.Wheel(d) },
		ResetZoom: func() { c.Presenter.ResetZoom() },
		Jump:      func(i int) { c.Presenter.Jump(i) },
		Exit:      a.exitHandler,
	})
	c.Bind(a.view, a.scheduleUpdate)
	if c.Watcher != nil {
		c.Watcher.Start(ctx)
	}

	a.syncPaneSize()
	c.Presenter.Init()
	c.Loop.Start()

	App.Wait()
}

func (a *browserApp) update() {
	a.syncPaneSize()
	a.c.Loop.Tick()
}

// syncPaneSize feeds the current pane estimate to the presenter, which re-renders on change.
func (a *browserApp) syncPaneSize() {
	if w, h, ok := a.view.PaneSize(); ok {
		a.c.Presenter.Resize(w, h)
	}
}

func (a *browserApp) scheduleUpdate() {
	a.afterID = TclAfter(app.BrowserTick, func() { a.update() })
}

func (a *browserApp) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if err := a.c.Close(); err != nil && a.c.Logger != nil {
		a.c.Logger.Warn("watcher close", "error", err)
	}
	Destroy(App)
}
