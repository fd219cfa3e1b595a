package model

import (
	"image"
	"sync/atomic"
)

// CaptureModel tracks whether capture is enabled and holds the most recently rendered
// frame for snapshot export. The zero value is disabled and usable.
// Concurrency-safe via atomics because UI callbacks and presenter ticks may race.
type CaptureModel struct {
	enabled atomic.Bool
	frame   atomic.Pointer[image.NRGBA]
}

// Enabled reports whether capture is currently enabled.
func (m *CaptureModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *CaptureModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}

// SetFrame replaces the latest rendered frame. The model keeps the pointer; callers
// must not mutate img afterwards.
func (m *CaptureModel) SetFrame(img *image.NRGBA) {
	if m == nil {
		return
	}
	m.frame.Store(img)
}

// Frame returns the latest rendered frame, or nil before the first one.
func (m *CaptureModel) Frame() *image.NRGBA {
	if m == nil {
		return nil
	}
	return m.frame.Load()
}
