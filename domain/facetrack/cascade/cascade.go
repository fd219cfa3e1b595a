// Package cascade detects faces with an OpenCV Haar cascade.
package cascade

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/facetrack"
)

// Detector wraps a loaded cascade classifier.
type Detector struct {
	mu  sync.Mutex
	clf gocv.CascadeClassifier
	ok  bool
}

// Load reads the cascade XML at path.
func Load(path string) (*Detector, error) {
	clf := gocv.NewCascadeClassifier()
	if !clf.Load(path) {
		clf.Close()
		return nil, fmt.Errorf("load cascade %s", path)
	}
	return &Detector{clf: clf, ok: true}, nil
}

// DetectFaces returns one frame-relative detection per face found.
func (d *Detector) DetectFaces(img image.Image) ([]annotation.Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.ok {
		return nil, fmt.Errorf("cascade closed")
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("frame to mat: %w", err)
	}
	defer mat.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	rects := d.clf.DetectMultiScale(gray)
	bounds := image.Rect(0, 0, mat.Cols(), mat.Rows())
	out := make([]annotation.Detection, 0, len(rects))
	for _, r := range rects {
		out = append(out, facetrack.Normalize(r, bounds))
	}
	return out, nil
}

// Close releases the classifier.
func (d *Detector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.ok {
		return nil
	}
	d.ok = false
	return d.clf.Close()
}
