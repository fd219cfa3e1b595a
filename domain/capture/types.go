package capture

import (
	"image"
	"time"
)

// Grabber produces one frame per call. Implementations need not be safe for concurrent
// use; the service calls Grab from a single goroutine.
type Grabber interface {
	Grab() (*image.RGBA, error)
	Close() error
}

// FrameSnapshot is one grabbed frame. Sequence starts at 1 and grows by one per frame;
// the zero snapshot means nothing was grabbed yet.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats reports grab counts and timings. Skipped counts failed or empty grabs;
// FailStreak is the number of failures since the last good frame and LastError the
// most recent failure other than ErrNoFrame.
type CaptureStats struct {
	Captures       uint64
	Skipped        uint64
	FailStreak     uint64
	LastError      string
	AvgCapture     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to captured frames.
// LatestFrame returns the freshest snapshot while Running reports activity.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// ServiceContract exposes basic lifecycle control for capture services.
type ServiceContract interface {
	Start()
	Stop()
	Running() bool
}

// Service is the capture service interface used by higher-level components.
type Service interface{ CaptureService }
