package overlay

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
)

// Renderer draws decoded shapes onto a copy of a frame.
type Renderer struct {
	Palette Palette
	Stroke  int // box outline thickness in pixels
	Radius  int // point disc radius in pixels
	// LabelLift is how far above the box top the label baseline sits.
	LabelLift int
	Face      font.Face
}

// NewRenderer returns a renderer with a 2px stroke, radius-6 points and labels 5px above boxes.
func NewRenderer(p Palette) *Renderer {
	return &Renderer{Palette: p, Stroke: 2, Radius: 6, LabelLift: 5, Face: basicfont.Face7x13}
}

// Render returns a new image with every shape drawn on a clone of src. src is never
// modified. Drawing outside the frame is clipped.
func (r *Renderer) Render(src image.Image, shapes []annotation.Shape) *image.NRGBA {
	if src == nil {
		return nil
	}
	dst := imaging.Clone(src)
	if r == nil {
		return dst
	}
	for _, s := range shapes {
		st := r.Palette.Style(s.Class)
		switch s.Kind {
		case annotation.KindBox:
			r.drawBox(dst, s.Box, st.Color)
			label := s.Label
			if label == "" {
				label = st.Name
			}
			r.drawLabel(dst, label, image.Pt(s.Box.Min.X, s.Box.Min.Y-r.LabelLift), st.Color)
		case annotation.KindPoint:
			r.drawDisc(dst, s.Point, st.Color)
		}
	}
	return dst
}

// drawBox outlines the rectangle with its corners taken as given (not canonicalized),
// the stroke straddling the edge.
func (r *Renderer) drawBox(dst *image.NRGBA, b image.Rectangle, c color.NRGBA) {
	x1, y1, x2, y2 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	t := r.Stroke
	if t < 1 {
		t = 1
	}
	lo, hi := t/2, t-t/2
	fill(dst, image.Rect(x1-lo, y1-lo, x2+hi, y1+hi), c) // top
	fill(dst, image.Rect(x1-lo, y2-lo, x2+hi, y2+hi), c) // bottom
	fill(dst, image.Rect(x1-lo, y1-lo, x1+hi, y2+hi), c) // left
	fill(dst, image.Rect(x2-lo, y1-lo, x2+hi, y2+hi), c) // right
}

func (r *Renderer) drawDisc(dst *image.NRGBA, p image.Point, c color.NRGBA) {
	rad := r.Radius
	if rad < 1 {
		rad = 1
	}
	area := image.Rect(p.X-rad, p.Y-rad, p.X+rad+1, p.Y+rad+1).Intersect(dst.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx, dy := x-p.X, y-p.Y
			if dx*dx+dy*dy <= rad*rad {
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}

func (r *Renderer) drawLabel(dst *image.NRGBA, text string, baseline image.Point, c color.NRGBA) {
	if text == "" {
		return
	}
	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(baseline.X, baseline.Y),
	}
	d.DrawString(text)
}

func fill(dst *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
}
