package presenter

import (
	"time"

	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
)

// CaptureEnabledModel reports whether capture is enabled.
type CaptureEnabledModel interface{ Enabled() bool }

// SessionView displays live session durations and frame counters.
type SessionView interface {
	SetSession(session, total time.Duration, frames uint64, faces int)
}

// SessionPresenter formats live session values from the model to the view.
type SessionPresenter struct {
	sess *model.LiveSession
	cap  CaptureEnabledModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.LiveSession, cap CaptureEnabledModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, cap: cap, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.cap == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.cap.Enabled(), now)
	s, t := p.sess.Values()
	frames, faces := p.sess.Frames()
	p.view.SetSession(s, t, frames, faces)
}
