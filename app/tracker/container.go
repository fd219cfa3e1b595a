// Package tracker assembles the live face tracker: frame source, face models,
// capture service, pipeline and presenters.
package tracker

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/capture"
	"github.com/Lumos7-3/A1-Internship-Project/domain/capture/webcam"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack/cascade"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack/dlib"
	"github.com/Lumos7-3/A1-Internship-Project/domain/snapshot"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
	"github.com/Lumos7-3/A1-Internship-Project/ui/presenter"
)

// Tick is the tracker's UI loop period, short so the preview follows the capture rate.
const Tick = 15 * time.Millisecond

// View is everything the tracker presenters draw on.
type View interface {
	presenter.TrackerView
	presenter.CaptureView
	presenter.SessionView
}

// Container assembles the live tracker's capture service, pipeline and presenters.
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	Capture    *model.CaptureModel
	Session    *model.LiveSession
	CaptureSvc capture.CaptureService
	Pipeline   *facetrack.Pipeline

	SessionPresenter *presenter.SessionPresenter
	TrackerPresenter *presenter.TrackerPresenter
	CapturePresenter *presenter.CapturePresenter
	Loop             *presenter.Loop

	closers []io.Closer
}

// OpenGrabber opens the configured frame source.
func OpenGrabber(t config.TrackerConfig) (capture.Grabber, error) {
	switch t.Source {
	case "screen":
		return &capture.ScreenGrabber{Region: image.Rect(t.RegionX, t.RegionY, t.RegionX+t.RegionW, t.RegionY+t.RegionH)}, nil
	default:
		g, err := webcam.Open(t.Device)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// OpenAnalyzer loads the configured face models. The returned closers release them.
// With the cascade detector, dlib landmarks are added when the models directory loads.
func OpenAnalyzer(t config.TrackerConfig, logger *slog.Logger) (facetrack.Analyzer, []io.Closer, error) {
	switch t.Detector {
	case "dlib":
		eng, err := dlib.Open(t.ModelsDir)
		if err != nil {
			return nil, nil, err
		}
		return eng, []io.Closer{eng}, nil
	default:
		det, err := cascade.Load(t.CascadePath)
		if err != nil {
			return nil, nil, err
		}
		closers := []io.Closer{det}
		var est facetrack.LandmarkEstimator
		if t.ModelsDir != "" {
			if eng, err := dlib.Open(t.ModelsDir); err != nil {
				if logger != nil {
					logger.Warn("landmarks disabled", "error", err)
				}
			} else {
				est = eng
				closers = append(closers, eng)
			}
		}
		return facetrack.Combine(det, est), closers, nil
	}
}

// Build opens the configured source and face models. A model load failure is
// logged and frames are shown without annotations; a source failure is returned.
func Build(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	g, err := OpenGrabber(cfg.Tracker)
	if err != nil {
		return nil, fmt.Errorf("frame source: %w", err)
	}
	a, closers, err := OpenAnalyzer(cfg.Tracker, logger)
	if err != nil && logger != nil {
		logger.Warn("face analysis disabled", "detector", cfg.Tracker.Detector, "error", err)
	}
	return assemble(cfg, logger, g, a, closers)
}

// assemble builds the container and hands it the closers. On failure the grabber and
// closers are released here since no container owns them yet.
func assemble(cfg *config.Config, logger *slog.Logger, g capture.Grabber, a facetrack.Analyzer, closers []io.Closer) (*Container, error) {
	c, err := BuildWith(cfg, logger, g, a)
	if err != nil {
		if g != nil {
			_ = g.Close()
		}
		for _, cl := range closers {
			_ = cl.Close()
		}
		return nil, err
	}
	c.closers = append(c.closers, closers...)
	return c, nil
}

// BuildWith constructs the tracker around an already opened grabber and analyzer.
func BuildWith(cfg *config.Config, logger *slog.Logger, g capture.Grabber, a facetrack.Analyzer) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if g == nil {
		return nil, errors.New("nil grabber")
	}
	scheme, err := annotation.Scheme(cfg.Tracker.LandmarkScheme)
	if err != nil {
		if logger != nil {
			logger.Warn("landmark scheme", "error", err)
		}
		scheme = annotation.MediaPipeScheme
	}
	c := &Container{Config: cfg, Logger: logger}
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewLiveSession()
	c.CaptureSvc = capture.NewCaptureService(logger, g, capture.Options{
		Interval: time.Duration(cfg.Tracker.IntervalMs) * time.Millisecond,
	})
	c.Pipeline = facetrack.NewPipeline(a, scheme, logger)
	return c, nil
}

// Bind wires presenters and the loop to a view and a scheduler callback.
func (c *Container) Bind(view View, schedule func()) {
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, view)
	c.TrackerPresenter = presenter.NewTrackerPresenter(c.CaptureSvc, c.Pipeline, view, c.Capture, c.Session,
		presenter.SnapshotTarget{
			Path:    c.Config.Tracker.SnapshotPath,
			Options: snapshot.Options{Quality: c.Config.Tracker.SnapshotQuality},
		}, c.Logger)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.TrackerPresenter, nil, c.Capture.Enabled, schedule)
	c.CapturePresenter = presenter.NewCapturePresenter(c.Capture, c.CaptureSvc, c.Loop, view)
}

// Close stops capture, the presenter worker and releases devices and models.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.TrackerPresenter.Close()
	var errs []error
	if c.CaptureSvc != nil {
		errs = append(errs, c.CaptureSvc.Close())
	}
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}
