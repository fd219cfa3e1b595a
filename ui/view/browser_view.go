package view

import (
	"image"

	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/domain/viewport"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
	"github.com/Lumos7-3/A1-Internship-Project/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// BrowserHandlers are the user actions the browser view forwards.
type BrowserHandlers struct {
	Next, Previous  func()
	ZoomIn, ZoomOut func()
	Wheel           func(delta int)
	ResetZoom       func()
	Jump            func(int)
	Exit            func()
}

// BrowserView is the plate browser window: navigation buttons and the summary table
// on the left, the info line and the image pane on the right.
type BrowserView struct {
	info     *LabelWidget
	position *LabelWidget
	table    *SummaryTable
	pane     *ImagePane

	leftWidth int
}

// Chrome sizes subtracted from the window to estimate the image pane.
const (
	browserLeftWidth  = 420
	browserInfoHeight = 60
	browserPanePad    = 20
)

// NewBrowserView builds the layout in the root window.
func NewBrowserView(tableRows int, h BrowserHandlers) *BrowserView {
	pal := theme.CurrentPalette()
	v := &BrowserView{leftWidth: browserLeftWidth}

	left := Frame(Background(pal.Panel), Width(browserLeftWidth))
	Grid(left, Row(0), Column(0), Sticky("nsw"))
	right := Frame(Background(pal.AppBg))
	Grid(right, Row(0), Column(1), Sticky("nsew"))
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(0))
	GridColumnConfigure(App, 1, Weight(1))

	nav := Frame(Background(pal.Panel))
	Grid(nav, In(left), Row(0), Column(0), Columnspan(4), Pady("2m"))
	prev := Button(Txt("< Previous"), Command(h.Previous), Background(pal.Accent), Foreground(pal.Text), Borderwidth(0))
	Grid(prev, In(nav), Row(0), Column(0), Padx("1m"))
	next := Button(Txt("Next >"), Command(h.Next), Background(pal.Accent), Foreground(pal.Text), Borderwidth(0))
	Grid(next, In(nav), Row(0), Column(1), Padx("1m"))
	v.position = Label(Txt(""), Background(pal.Panel), Foreground(pal.TextMuted))
	Grid(v.position, In(nav), Row(1), Column(0), Columnspan(2), Pady("1m"))

	v.table = NewSummaryTable(left, 1, tableRows, h.Jump)

	v.info = Label(Txt(""), Background(pal.AppBg), Foreground(pal.Text))
	Grid(v.info, In(right), Row(0), Column(0), Sticky("we"), Pady("2m"))
	GridRowConfigure(right.Window, 1, Weight(1))
	GridColumnConfigure(right.Window, 0, Weight(1))
	v.pane = NewImagePane(right, 1, 0, pal.ImageBg, 200, 200)

	Bind(App, "<Right>", Command(h.Next))
	Bind(App, "<Left>", Command(h.Previous))
	Bind(App, "<Button-4>", Command(h.ZoomIn))
	Bind(App, "<Button-5>", Command(h.ZoomOut))
	Bind(App, "<MouseWheel>", Command(func(e *Event) {
		if h.Wheel != nil {
			h.Wheel(e.Delta)
		}
	}))
	Bind(App, "<Key-plus>", Command(h.ZoomIn))
	Bind(App, "<Key-equal>", Command(h.ZoomIn))
	Bind(App, "<Key-minus>", Command(h.ZoomOut))
	Bind(App, "<Key-0>", Command(h.ResetZoom))
	Bind(App, "<Escape>", Command(h.Exit))
	return v
}

// ShowImage displays a composed viewport image; nil clears the pane.
func (v *BrowserView) ShowImage(img image.Image) {
	if v == nil {
		return
	}
	v.pane.Show(img)
}

// SetInfo updates the info line in the color of its tone.
func (v *BrowserView) SetInfo(text string, tone model.InfoTone) {
	if v == nil || v.info == nil {
		return
	}
	pal := theme.CurrentPalette()
	fg := pal.Text
	switch tone {
	case model.ToneIntact:
		fg = pal.Intact
	case model.ToneBroken:
		fg = pal.Broken
	case model.ToneError:
		fg = pal.Error
	}
	v.info.Configure(Txt(text), Foreground(fg))
}

// SetRows forwards to the summary table.
func (v *BrowserView) SetRows(rows []catalog.Row, start, selected int) {
	if v == nil {
		return
	}
	v.table.SetRows(rows, start, selected)
}

// SetPosition updates the position label under the navigation buttons.
func (v *BrowserView) SetPosition(text string) {
	if v == nil || v.position == nil {
		return
	}
	v.position.Configure(Txt(text))
}

// PaneSize estimates the image pane size from the current window geometry.
func (v *BrowserView) PaneSize() (int, int, bool) {
	if v == nil {
		return 0, 0, false
	}
	size, _, ok := viewport.ParseGeometry(WmGeometry(App))
	if !ok {
		return 0, 0, false
	}
	return size.W - v.leftWidth - browserPanePad, size.H - browserInfoHeight - browserPanePad, true
}
