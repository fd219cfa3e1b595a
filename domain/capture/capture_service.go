package capture

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const captureStatsLogInterval = 5 * time.Second

// ErrNoFrame is returned by grabbers that produced no image for this attempt.
var ErrNoFrame = errors.New("no frame")

// CaptureService acquires frames from a Grabber on a background goroutine and exposes
// the latest capture alongside instrumentation data. Use NewCaptureService to
// construct an instance.
type CaptureService interface {
	Start()
	Stop()
	LatestFrame() FrameSnapshot
	Running() bool
	Stats() CaptureStats
	Close() error
}

// Options tunes the acquisition loop.
type Options struct {
	// Interval is the pause between successful grabs.
	Interval time.Duration
	// RetryDelay is the pause after a failed grab.
	RetryDelay time.Duration
}

type captureService struct {
	grabber      Grabber
	opts         Options
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	logger       *slog.Logger
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
	failStreak   atomic.Uint64
	lastErr      atomic.Pointer[string]

	mu   sync.Mutex // guards done and grabber use across Stop/Start/Close
	done chan struct{}
}

func newCaptureService(logger *slog.Logger, g Grabber, opts Options) *captureService {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Millisecond
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Millisecond
	}
	return &captureService{grabber: g, opts: opts, logger: logger}
}

// NewCaptureService constructs a capture service that polls g for frames.
func NewCaptureService(logger *slog.Logger, g Grabber, opts Options) CaptureService {
	return newCaptureService(logger, g, opts)
}

func (s *captureService) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *captureService) Running() bool { return s.running.Load() }

func (s *captureService) Stats() CaptureStats {
	captures := s.captures.Load()
	skipped := s.skipped.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
	}
	lastErr := ""
	if e := s.lastErr.Load(); e != nil {
		lastErr = *e
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return CaptureStats{
		Captures:       captures,
		Skipped:        skipped,
		FailStreak:     s.failStreak.Load(),
		LastError:      lastErr,
		AvgCapture:     avg,
		LastCapture:    snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

func (s *captureService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() || s.grabber == nil {
		return
	}
	s.running.Store(true)
	s.done = make(chan struct{})
	go s.loop(s.done)
}

// Stop ends the loop and waits for the in-flight grab to finish.
func (s *captureService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	<-s.done
}

// Close stops the loop and releases the grabber.
func (s *captureService) Close() error {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grabber == nil {
		return nil
	}
	err := s.grabber.Close()
	s.grabber = nil
	return err
}

func (s *captureService) loop(done chan struct{}) {
	defer close(done)
	logTicker := time.NewTicker(captureStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		img, err := s.grabber.Grab()
		if err != nil || img == nil {
			if err != nil && !errors.Is(err, ErrNoFrame) {
				msg := err.Error()
				s.lastErr.Store(&msg)
				if s.logger != nil {
					s.logger.Error("capture grab", "error", err)
				}
			}
			s.skipped.Add(1)
			s.failStreak.Add(1)
			time.Sleep(s.opts.RetryDelay)
			continue
		}

		elapsed := time.Since(start)
		s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
		s.captures.Add(1)
		s.failStreak.Store(0)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}

		time.Sleep(s.opts.Interval)
	}
}

func (s *captureService) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
		"age", stats.LatestFrameAge,
	)
}
