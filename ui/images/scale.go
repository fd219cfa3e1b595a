package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/Lumos7-3/A1-Internship-Project/domain/viewport"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Background is the fill color of the display surface around placed content.
var Background = color.NRGBA{A: 255}

// Compose renders src into a viewport-sized buffer using placement p: src is resized to
// p.Scaled and pasted at p.Offset on a Background canvas. Content larger than the
// viewport is clipped on the right and bottom. A nil or zero-size result yields an
// empty canvas.
func Compose(src image.Image, p viewport.Placement) *image.NRGBA {
	vw, vh := p.Viewport.W, p.Viewport.H
	if vw < 1 {
		vw = 1
	}
	if vh < 1 {
		vh = 1
	}
	canvas := imaging.New(vw, vh, Background)
	if src == nil || p.Scaled.Empty() {
		return canvas
	}
	scaled := Scale(src, p.Scaled)
	return imaging.Paste(canvas, scaled, p.Offset)
}

// Scale resizes src to exactly size. The source is returned unchanged when it already
// has that size. Linear filtering is used for shrinking and enlarging alike.
func Scale(src image.Image, size viewport.Size) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() == size.W && b.Dy() == size.H {
		return src
	}
	w, h := size.W, size.H
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(src, w, h, imaging.Linear)
}

// ScaleToFit scales src so that it fits within maxW x maxH preserving aspect ratio.
// If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	return imaging.Fit(src, maxW, maxH, imaging.Linear)
}
