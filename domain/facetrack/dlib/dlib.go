// Package dlib finds faces and their landmark shapes with dlib through go-face.
package dlib

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/Kagami/go-face"
	"github.com/disintegration/imaging"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack"
)

// Engine runs the dlib face recognizer loaded from a models directory
// (shape_predictor_5_face_landmarks.dat and friends). Its landmarks follow the
// "dlib5" scheme.
type Engine struct {
	mu  sync.Mutex
	rec *face.Recognizer
	buf bytes.Buffer
}

// Open loads the models in dir.
func Open(dir string) (*Engine, error) {
	rec, err := face.NewRecognizer(dir)
	if err != nil {
		return nil, fmt.Errorf("load dlib models from %s: %w", dir, err)
	}
	return &Engine{rec: rec}, nil
}

// Analyze returns the face boxes and landmark sets of img in one recognizer pass.
func (e *Engine) Analyze(img image.Image) ([]annotation.Detection, []annotation.Landmarks, error) {
	faces, err := e.recognize(img)
	if err != nil {
		return nil, nil, err
	}
	b := image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())
	dets := make([]annotation.Detection, 0, len(faces))
	marks := make([]annotation.Landmarks, 0, len(faces))
	for _, f := range faces {
		dets = append(dets, facetrack.Normalize(f.Rectangle, b))
		marks = append(marks, facetrack.NormalizePoints(f.Shapes, b))
	}
	return dets, marks, nil
}

// DetectFaces implements facetrack.FaceDetector.
func (e *Engine) DetectFaces(img image.Image) ([]annotation.Detection, error) {
	dets, _, err := e.Analyze(img)
	return dets, err
}

// EstimateLandmarks implements facetrack.LandmarkEstimator.
func (e *Engine) EstimateLandmarks(img image.Image) ([]annotation.Landmarks, error) {
	_, marks, err := e.Analyze(img)
	return marks, err
}

func (e *Engine) recognize(img image.Image) ([]face.Face, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rec == nil {
		return nil, fmt.Errorf("dlib engine closed")
	}
	e.buf.Reset()
	if err := imaging.Encode(&e.buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	faces, err := e.rec.Recognize(e.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}
	return faces, nil
}

// Close frees the recognizer.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rec != nil {
		e.rec.Close()
		e.rec = nil
	}
	return nil
}
