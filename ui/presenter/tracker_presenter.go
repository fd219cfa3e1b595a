package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/Lumos7-3/A1-Internship-Project/domain/capture"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack"
	"github.com/Lumos7-3/A1-Internship-Project/domain/snapshot"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
)

// FrameSource supplies the most recent captured frame.
type FrameSource interface {
	Running() bool
	LatestFrame() capture.FrameSnapshot
}

// FrameProcessor annotates one frame.
type FrameProcessor interface {
	Process(img image.Image) facetrack.Result
}

// TrackerView describes the UI surface updated by the presenter.
type TrackerView interface {
	UpdatePreview(img image.Image)
	SetStatus(text string)
}

type trackerResult struct {
	sequence uint64
	res      facetrack.Result
}

// TrackerPresenter pulls the latest frame on each tick, annotates it on a worker
// goroutine and pushes finished frames to the view. At most one frame is queued;
// a newer frame replaces an unprocessed older one.
type TrackerPresenter struct {
	Source   FrameSource
	Pipeline FrameProcessor
	View     TrackerView
	Model    *model.CaptureModel
	Session  *model.LiveSession
	Snapshot SnapshotTarget
	logger   *slog.Logger

	workerOnce sync.Once
	closeOnce  sync.Once
	workCh     chan capture.FrameSnapshot
	resultCh   chan trackerResult

	lastSeq uint64
	closed  bool
}

// SnapshotTarget is where Snapshot writes.
type SnapshotTarget struct {
	Path    string
	Options snapshot.Options
}

// NewTrackerPresenter constructs a tracker presenter.
func NewTrackerPresenter(source FrameSource, pipeline FrameProcessor, view TrackerView, m *model.CaptureModel, sess *model.LiveSession, target SnapshotTarget, logger *slog.Logger) *TrackerPresenter {
	return &TrackerPresenter{
		Source:   source,
		Pipeline: pipeline,
		View:     view,
		Model:    m,
		Session:  sess,
		Snapshot: target,
		logger:   logger,
		workCh:   make(chan capture.FrameSnapshot, 1),
		resultCh: make(chan trackerResult, 1),
	}
}

// ProcessFrame applies finished results and dispatches the newest captured frame.
func (p *TrackerPresenter) ProcessFrame() {
	if p == nil || p.closed || p.Source == nil || p.Pipeline == nil || p.View == nil {
		return
	}
	p.ensureWorker()

	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			goto drained
		}
	}

drained:
	if !p.Model.Enabled() || !p.Source.Running() {
		return
	}
	snap := p.Source.LatestFrame()
	if snap.Image == nil || snap.Sequence == 0 || snap.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snap.Sequence
	p.dispatch(snap)
}

func (p *TrackerPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *TrackerPresenter) runWorker() {
	for snap := range p.workCh {
		res := trackerResult{sequence: snap.Sequence, res: p.Pipeline.Process(snap.Image)}
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *TrackerPresenter) dispatch(snap capture.FrameSnapshot) {
	select {
	case p.workCh <- snap:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- snap:
		default:
		}
	}
}

func (p *TrackerPresenter) handleResult(r trackerResult) {
	if r.res.Image == nil {
		return
	}
	p.Model.SetFrame(r.res.Image)
	p.Session.OnFrame(r.res.Faces)
	p.View.UpdatePreview(r.res.Image)
	if p.logger != nil && r.res.Stats.Skipped > 0 {
		p.logger.Debug("landmarks skipped", "sequence", r.sequence, "skipped", r.res.Stats.Skipped)
	}
}

// SaveSnapshot writes the latest rendered frame. With nothing rendered yet it reports
// snapshot.ErrNoFrame and writes nothing.
func (p *TrackerPresenter) SaveSnapshot() error {
	if p == nil {
		return snapshot.ErrNoFrame
	}
	path := p.Snapshot.Path
	if path == "" {
		path = snapshot.DefaultPath
	}
	err := snapshot.ErrNoFrame
	if frame := p.Model.Frame(); frame != nil {
		err = snapshot.Save(frame, path, p.Snapshot.Options)
	}
	switch {
	case errors.Is(err, snapshot.ErrNoFrame):
		p.status("No frame to save yet")
	case err != nil:
		if p.logger != nil {
			p.logger.Error("snapshot", "path", path, "error", err)
		}
		p.status(fmt.Sprintf("Snapshot failed: %v", err))
	default:
		if p.logger != nil {
			p.logger.Info("snapshot saved", "path", path)
		}
		p.status("Snapshot saved as " + path)
	}
	return err
}

func (p *TrackerPresenter) status(text string) {
	if p.View != nil {
		p.View.SetStatus(text)
	}
}

// Close stops the worker goroutine. Call it from the UI thread.
func (p *TrackerPresenter) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed = true
		close(p.workCh)
	})
}
