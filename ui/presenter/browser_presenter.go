package presenter

import (
	"context"
	"errors"
	"image"
	"log/slog"

	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/domain/viewport"
	"github.com/Lumos7-3/A1-Internship-Project/ui/images"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
)

// BrowserView is the surface the plate browser draws on.
type BrowserView interface {
	// ShowImage displays a viewport-sized image; nil clears the pane.
	ShowImage(img image.Image)
	SetInfo(text string, tone model.InfoTone)
	// SetRows shows rows starting at list position start with selected highlighted.
	SetRows(rows []catalog.Row, start, selected int)
	SetPosition(text string)
}

// BrowserPresenter drives the plate browser: navigation, zoom, resize and refresh
// after files change on disk. All methods run on the UI thread; a render requested
// while one is in progress is folded into a single follow-up render.
type BrowserPresenter struct {
	state     *model.BrowserState
	view      BrowserView
	logger    *slog.Logger
	tableRows int

	// Changes delivers changed file names from a catalog.Watcher; nil disables refresh.
	Changes <-chan string

	rendering bool
	pending   bool

	rows       []catalog.Row
	overlayID  string
	overlayImg image.Image
}

// NewBrowserPresenter constructs a browser presenter showing tableRows listing rows.
func NewBrowserPresenter(state *model.BrowserState, view BrowserView, tableRows int, logger *slog.Logger) *BrowserPresenter {
	if tableRows <= 0 {
		tableRows = 30
	}
	return &BrowserPresenter{state: state, view: view, tableRows: tableRows, logger: logger}
}

func (p *BrowserPresenter) ready() bool {
	return p != nil && p.state != nil && p.state.Catalog != nil && p.view != nil
}

// Init populates the listing and shows the first frame.
func (p *BrowserPresenter) Init() {
	if !p.ready() {
		return
	}
	p.rows = p.state.Catalog.Rows()
	if n := p.state.Catalog.Skipped(); n > 0 && p.logger != nil {
		p.logger.Warn("malformed label lines skipped", "count", n)
	}
	p.Show()
}

// Show renders the current frame and refreshes the listing selection.
func (p *BrowserPresenter) Show() {
	if !p.ready() {
		return
	}
	if p.rendering {
		p.pending = true
		return
	}
	p.rendering = true
	defer func() { p.rendering = false }()
	for {
		p.pending = false
		p.render()
		if !p.pending {
			return
		}
	}
}

func (p *BrowserPresenter) render() {
	cat := p.state.Catalog
	cur, ok := cat.Current()
	if !ok {
		p.view.ShowImage(nil)
		p.view.SetInfo(model.EmptyCatalogMessage, model.ToneError)
		p.view.SetRows(nil, 0, -1)
		p.view.SetPosition(model.PositionText(0, 0))
		return
	}
	idx := cat.Index()
	p.updateRows(idx)
	p.view.SetPosition(model.PositionText(idx, cat.Count()) + "  " + model.ZoomText(p.state.View.Zoom()))

	img, sum, err := p.overlay(cur.ID)
	if err != nil {
		if p.logger != nil {
			level := slog.LevelError
			if errors.Is(err, catalog.ErrUnreadable) {
				level = slog.LevelWarn
			}
			p.logger.Log(context.Background(), level, "render frame", "frame", cur.ID, "error", err)
		}
		p.view.ShowImage(nil)
		p.view.SetInfo(model.InfoText(sum), model.ToneError)
		return
	}
	b := img.Bounds()
	place := p.state.View.Place(viewport.Size{W: b.Dx(), H: b.Dy()})
	p.view.ShowImage(images.Compose(img, place))
	p.view.SetInfo(model.InfoText(sum), model.InfoToneOf(sum))
	p.state.Rendered()
}

// overlay returns the annotated frame, reusing the last one while the frame is unchanged.
func (p *BrowserPresenter) overlay(id string) (image.Image, catalog.FrameSummary, error) {
	cat := p.state.Catalog
	if p.overlayID == id && p.overlayImg != nil {
		return p.overlayImg, cat.Summary(id), nil
	}
	fr, err := cat.Frame(id)
	if err != nil {
		p.overlayID, p.overlayImg = "", nil
		return nil, fr.Summary, err
	}
	p.overlayID = id
	p.overlayImg = p.state.Renderer.Render(fr.Image, fr.Shapes)
	return p.overlayImg, fr.Summary, nil
}

func (p *BrowserPresenter) updateRows(idx int) {
	start := catalog.VisibleWindow(idx, len(p.rows), p.tableRows)
	end := start + p.tableRows
	if end > len(p.rows) {
		end = len(p.rows)
	}
	p.view.SetRows(p.rows[start:end], start, idx)
}

// Next shows the following frame, wrapping around.
func (p *BrowserPresenter) Next() {
	if !p.ready() || p.state.Catalog.Count() == 0 {
		return
	}
	p.state.Catalog.Next()
	p.Show()
}

// Previous shows the preceding frame, wrapping around.
func (p *BrowserPresenter) Previous() {
	if !p.ready() || p.state.Catalog.Count() == 0 {
		return
	}
	p.state.Catalog.Previous()
	p.Show()
}

// Jump shows the frame at list position i. Out-of-range positions are ignored.
func (p *BrowserPresenter) Jump(i int) {
	if !p.ready() {
		return
	}
	if p.state.Catalog.Jump(i) {
		p.Show()
	}
}

// ZoomIn multiplies the zoom by the zoom step and re-renders.
func (p *BrowserPresenter) ZoomIn() {
	if !p.ready() {
		return
	}
	p.state.View.ZoomIn()
	p.Show()
}

// ZoomOut divides the zoom by the zoom step and re-renders.
func (p *BrowserPresenter) ZoomOut() {
	if !p.ready() {
		return
	}
	p.state.View.ZoomOut()
	p.Show()
}

// Wheel zooms by the sign of a mouse wheel delta: positive zooms in, negative out.
// Windows reports multiples of 120 and macOS small integers; only the sign is used.
func (p *BrowserPresenter) Wheel(delta int) {
	switch {
	case delta > 0:
		p.ZoomIn()
	case delta < 0:
		p.ZoomOut()
	}
}

// ResetZoom restores 100% and re-renders.
func (p *BrowserPresenter) ResetZoom() {
	if !p.ready() {
		return
	}
	p.state.View.Reset()
	p.Show()
}

// Resize records the image pane size and re-renders when it changed.
func (p *BrowserPresenter) Resize(w, h int) {
	if !p.ready() {
		return
	}
	before := p.state.View.Viewport()
	p.state.View.Resize(w, h)
	if p.state.View.Viewport() != before {
		p.Show()
	}
}

// Refresh invalidates frames affected by the changed file names. Image file changes
// also trigger a rescan so added and removed frames show up. When anything changed the
// listing is rebuilt and the current frame re-rendered.
func (p *BrowserPresenter) Refresh(names []string) {
	if !p.ready() || len(names) == 0 {
		return
	}
	cat := p.state.Catalog
	changed := false
	rescan := false
	for _, n := range names {
		ids := cat.IDsForFile(n)
		if catalog.IsImageFile(n) {
			rescan = true
		}
		for _, id := range ids {
			cat.Invalidate(id)
			if id == p.overlayID {
				p.overlayID, p.overlayImg = "", nil
			}
			changed = true
		}
	}
	if rescan {
		if err := cat.Rescan(); err != nil && p.logger != nil {
			p.logger.Warn("rescan", "error", err)
		}
		p.overlayID, p.overlayImg = "", nil
		changed = true
	}
	if !changed {
		return
	}
	if p.logger != nil {
		p.logger.Debug("catalog refreshed", "files", len(names), "rescan", rescan)
	}
	p.rows = cat.Rows()
	p.Show()
}

// Poll drains pending file changes and refreshes. Called from the loop tick.
func (p *BrowserPresenter) Poll() {
	if p == nil || p.Changes == nil {
		return
	}
	p.Refresh(catalog.Drain(p.Changes))
}
