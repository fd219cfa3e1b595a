// Package facetrack turns frames into face boxes and facial landmark points.
package facetrack

import (
	"errors"
	"image"
	"log/slog"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/overlay"
)

// FaceDetector finds face boxes relative to the frame.
type FaceDetector interface {
	DetectFaces(img image.Image) ([]annotation.Detection, error)
}

// LandmarkEstimator estimates one landmark set per face, relative to the frame.
type LandmarkEstimator interface {
	EstimateLandmarks(img image.Image) ([]annotation.Landmarks, error)
}

// Analyzer produces boxes and landmarks in one pass.
type Analyzer interface {
	Analyze(img image.Image) ([]annotation.Detection, []annotation.Landmarks, error)
}

// AnalyzerFunc adapts a function to Analyzer.
type AnalyzerFunc func(img image.Image) ([]annotation.Detection, []annotation.Landmarks, error)

// Analyze calls f.
func (f AnalyzerFunc) Analyze(img image.Image) ([]annotation.Detection, []annotation.Landmarks, error) {
	return f(img)
}

// Combine runs a detector and an estimator independently. Either may be nil. A failure
// of one keeps the other's output and is reported in the joined error.
func Combine(d FaceDetector, e LandmarkEstimator) Analyzer {
	return AnalyzerFunc(func(img image.Image) ([]annotation.Detection, []annotation.Landmarks, error) {
		var (
			dets  []annotation.Detection
			marks []annotation.Landmarks
			errD  error
			errE  error
		)
		if d != nil {
			dets, errD = d.DetectFaces(img)
			if errD != nil {
				dets = nil
			}
		}
		if e != nil {
			marks, errE = e.EstimateLandmarks(img)
			if errE != nil {
				marks = nil
			}
		}
		return dets, marks, errors.Join(errD, errE)
	})
}

// Result is one processed frame.
type Result struct {
	Image  *image.NRGBA
	Shapes []annotation.Shape
	Faces  int
	Stats  annotation.DecodeStats
}

// Pipeline analyzes a frame, decodes the findings into shapes and draws them.
type Pipeline struct {
	Analyzer Analyzer
	Scheme   annotation.LandmarkScheme
	Renderer *overlay.Renderer
	Logger   *slog.Logger
}

// NewPipeline builds a pipeline drawing with the face palette and labels 10px above boxes.
func NewPipeline(a Analyzer, scheme annotation.LandmarkScheme, logger *slog.Logger) *Pipeline {
	r := overlay.NewRenderer(overlay.FacePalette())
	r.LabelLift = 10
	return &Pipeline{Analyzer: a, Scheme: scheme, Renderer: r, Logger: logger}
}

// Process returns the annotated copy of img. Analyzer errors are logged and the
// frame is drawn with whatever was found, possibly nothing.
func (p *Pipeline) Process(img image.Image) Result {
	if img == nil {
		return Result{}
	}
	var (
		dets  []annotation.Detection
		marks []annotation.Landmarks
	)
	if p.Analyzer != nil {
		var err error
		dets, marks, err = p.Analyzer.Analyze(img)
		if err != nil && p.Logger != nil {
			p.Logger.Warn("face analysis", "error", err)
		}
	}
	b := img.Bounds()
	// Render clones onto a zero-origin canvas, so shapes stay frame-relative.
	shapes, stats := annotation.DecodeFaces(dets, marks, p.Scheme, b.Dx(), b.Dy())
	return Result{
		Image:  p.Renderer.Render(img, shapes),
		Shapes: shapes,
		Faces:  len(dets),
		Stats:  stats,
	}
}

// Normalize converts a pixel rectangle in a frame of the given bounds to a Detection.
func Normalize(r image.Rectangle, bounds image.Rectangle) annotation.Detection {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return annotation.Detection{}
	}
	r = r.Sub(bounds.Min)
	return annotation.Detection{
		XMin:   float64(r.Min.X) / w,
		YMin:   float64(r.Min.Y) / h,
		Width:  float64(r.Dx()) / w,
		Height: float64(r.Dy()) / h,
	}
}

// NormalizePoints converts pixel landmark points to frame-relative ones.
func NormalizePoints(pts []image.Point, bounds image.Rectangle) annotation.Landmarks {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 || h == 0 {
		return nil
	}
	out := make(annotation.Landmarks, len(pts))
	for i, p := range pts {
		p = p.Sub(bounds.Min)
		out[i] = annotation.NormPoint{X: float64(p.X) / w, Y: float64(p.Y) / h}
	}
	return out
}
