// Package webcam grabs frames from a video device through OpenCV.
package webcam

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"gocv.io/x/gocv"

	"github.com/Lumos7-3/A1-Internship-Project/domain/capture"
)

// Grabber reads frames from an OpenCV video capture device.
type Grabber struct {
	mu  sync.Mutex
	cap *gocv.VideoCapture
	mat gocv.Mat
}

// Open opens the video device with the given index.
func Open(device int) (*Grabber, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open video device %d: %w", device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open video device %d: not opened", device)
	}
	return &Grabber{cap: vc, mat: gocv.NewMat()}, nil
}

// Grab reads one frame. A failed or empty read returns capture.ErrNoFrame so the
// caller retries on its next tick.
func (g *Grabber) Grab() (*image.RGBA, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cap == nil {
		return nil, fmt.Errorf("webcam closed")
	}
	if ok := g.cap.Read(&g.mat); !ok || g.mat.Empty() {
		return nil, capture.ErrNoFrame
	}
	img, err := g.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// Close releases the device and the frame buffer.
func (g *Grabber) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cap == nil {
		return nil
	}
	err := g.cap.Close()
	g.mat.Close()
	g.cap = nil
	return err
}
