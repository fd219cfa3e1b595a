package view

import (
	"image"
	"time"

	"github.com/Lumos7-3/A1-Internship-Project/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TrackerHandlers are the user actions the tracker view forwards.
type TrackerHandlers struct {
	ToggleCapture func()
	Snapshot      func()
	Quit          func()
}

// TrackerView is the live face overlay window: title, preview, stats line, status
// line and the Webcam/Snapshot/Quit buttons.
type TrackerView struct {
	pane     *ImagePane
	stats    *SessionStats
	status   *LabelWidget
	toggle   *ButtonWidget
	previewW int
	previewH int
}

// NewTrackerView builds the layout in the root window with a preview of at most w x h.
func NewTrackerView(title string, w, h int, hd TrackerHandlers) *TrackerView {
	pal := theme.CurrentPalette()
	v := &TrackerView{previewW: w, previewH: h}

	frame := Frame(Background(pal.AppBg))
	Grid(frame, Row(0), Column(0), Sticky("nsew"))
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	GridColumnConfigure(frame.Window, 0, Weight(1))

	heading := Label(Txt(title), Background(pal.Panel), Foreground(pal.Text))
	Grid(heading, In(frame), Row(0), Column(0), Sticky("we"))

	v.pane = NewImagePane(frame, 1, 0, pal.ImageBg, 640, 480)
	v.pane.Widget().Configure(Borderwidth(5), Relief("sunken"))
	GridRowConfigure(frame.Window, 1, Weight(1))

	v.stats = NewSessionStats(frame, 2, 0, pal.AppBg, pal.TextMuted)
	v.status = Label(Txt(""), Background(pal.AppBg), Foreground(pal.Text))
	Grid(v.status, In(frame), Row(3), Column(0), Sticky("we"))

	buttons := Frame(Background(pal.AppBg))
	Grid(buttons, In(frame), Row(4), Column(0), Pady("3m"))
	v.toggle = Button(Txt("Start Webcam"), Command(hd.ToggleCapture), Background(pal.Go), Foreground(pal.Text))
	Grid(v.toggle, In(buttons), Row(0), Column(0), Padx("2m"))
	snap := Button(Txt("Snapshot"), Command(hd.Snapshot), Background(pal.Snapshot), Foreground(pal.Text))
	Grid(snap, In(buttons), Row(0), Column(1), Padx("2m"))
	quit := Button(Txt("Quit"), Command(hd.Quit), Background(pal.Quit), Foreground(pal.Text))
	Grid(quit, In(buttons), Row(0), Column(2), Padx("2m"))

	Bind(App, "<Key-space>", Command(hd.ToggleCapture))
	Bind(App, "<Key-s>", Command(hd.Snapshot))
	Bind(App, "<Escape>", Command(hd.Quit))
	return v
}

// UpdatePreview shows the annotated frame scaled to the preview size.
func (v *TrackerView) UpdatePreview(img image.Image) {
	if v == nil {
		return
	}
	v.pane.ShowScaled(img, v.previewW, v.previewH)
}

// SetStatus updates the status line.
func (v *TrackerView) SetStatus(text string) {
	if v == nil || v.status == nil {
		return
	}
	v.status.Configure(Txt(text))
}

// SetSession forwards to the stats line.
func (v *TrackerView) SetSession(session, total time.Duration, frames uint64, faces int) {
	if v == nil {
		return
	}
	v.stats.SetSession(session, total, frames, faces)
}

// PreviewReset clears the preview.
func (v *TrackerView) PreviewReset() {
	if v == nil {
		return
	}
	v.pane.Reset()
}

// SetCapturing relabels the toggle button.
func (v *TrackerView) SetCapturing(on bool) {
	if v == nil || v.toggle == nil {
		return
	}
	if on {
		v.toggle.Configure(Txt("Stop Webcam"))
		return
	}
	v.toggle.Configure(Txt("Start Webcam"))
}
