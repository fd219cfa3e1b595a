package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// Each Tick runs the sub-presenters and then invokes the scheduler callback while
// Active reports true. Once inactive the loop stops rescheduling until Start is
// called again. The zero value is usable (methods are nil-safe). Only the UI
// thread may call Tick or Start.
type Loop struct {
	Session  *SessionPresenter
	Tracker  *TrackerPresenter
	Browser  *BrowserPresenter
	Active   func() bool // nil means always active
	Schedule func()

	scheduled bool
}

func NewLoop(sess *SessionPresenter, tracker *TrackerPresenter, browser *BrowserPresenter, active func() bool, schedule func()) *Loop {
	return &Loop{Session: sess, Tracker: tracker, Browser: browser, Active: active, Schedule: schedule}
}

// Start runs a tick now unless a tick is already pending.
func (l *Loop) Start() {
	if l == nil || l.scheduled {
		return
	}
	l.Tick()
}

// Pending reports whether a future tick is scheduled.
func (l *Loop) Pending() bool {
	return l != nil && l.scheduled
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	l.scheduled = false
	now := time.Now()
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Tracker != nil {
		l.Tracker.ProcessFrame()
	}
	if l.Browser != nil {
		l.Browser.Poll()
	}
	if l.Active != nil && !l.Active() {
		return
	}
	if l.Schedule != nil {
		l.scheduled = true
		l.Schedule()
	}
}
