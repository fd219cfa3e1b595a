package model

import (
	"time"
)

// LiveSession tracks how long live capture has run and how many frames were rendered.
// It is decoupled from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type LiveSession struct {
	active              bool
	captureStart        time.Time
	lastSessionDuration time.Duration
	accumulated         time.Duration

	frames    uint64
	lastFaces int
}

// NewLiveSession returns a pointer to a ready-to-use LiveSession.
func NewLiveSession() *LiveSession { return &LiveSession{} }

// OnTick updates the durations using the current capture state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *LiveSession) OnTick(capturing bool, now time.Time) {
	if m == nil {
		return
	}
	if capturing {
		if !m.active { // transition off -> on
			m.active = true
			m.captureStart = now
			m.lastSessionDuration = 0
		}
		m.lastSessionDuration = now.Sub(m.captureStart)
	} else if m.active { // transition on -> off
		m.lastSessionDuration = now.Sub(m.captureStart)
		m.accumulated += m.lastSessionDuration
		m.active = false
	}
}

// OnFrame records one rendered frame with the number of faces found in it.
func (m *LiveSession) OnFrame(faces int) {
	if m == nil {
		return
	}
	m.frames++
	m.lastFaces = faces
}

// Values returns the current session duration and the total accumulated duration.
// The total includes the ongoing session when active.
func (m *LiveSession) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastSessionDuration
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}

// Frames returns the rendered frame count and the face count of the last frame.
func (m *LiveSession) Frames() (frames uint64, lastFaces int) {
	if m == nil {
		return 0, 0
	}
	return m.frames, m.lastFaces
}
