package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the live session duration, total duration and frame counters.
type SessionStats struct {
	label *LabelWidget
}

// NewSessionStats creates the stats label in parent at (row, col).
func NewSessionStats(parent *FrameWidget, row, col int, bg, fg string) *SessionStats {
	s := &SessionStats{label: Label(Txt(FormatSession(0, 0, 0, 0)), Background(bg), Foreground(fg))}
	if parent != nil {
		Grid(s.label, In(parent), Row(row), Column(col), Sticky("we"), Padx("0.2m"))
	} else {
		Grid(s.label, Row(row), Column(col), Sticky("we"), Padx("0.2m"))
	}
	return s
}

// SetSession updates the display.
func (s *SessionStats) SetSession(session, total time.Duration, frames uint64, faces int) {
	if s == nil || s.label == nil {
		return
	}
	s.label.Configure(Txt(FormatSession(session, total, frames, faces)))
}

// FormatSession renders "Session: mm:ss  Total: mm:ss  Frames: n  Faces: k".
func FormatSession(session, total time.Duration, frames uint64, faces int) string {
	return fmt.Sprintf("Session: %s  Total: %s  Frames: %d  Faces: %d", mmss(session), mmss(total), frames, faces)
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
