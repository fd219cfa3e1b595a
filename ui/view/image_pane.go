package view

import (
	"image"

	"github.com/Lumos7-3/A1-Internship-Project/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePane is a label showing one image at a time. Each update replaces the Tk
// photo and deletes the previous one so off-screen pixel data is not retained.
type ImagePane struct {
	label       *LabelWidget
	photo       *Img
	placeholder image.Rectangle
}

// NewImagePane creates the pane label inside parent (nil for the root window)
// showing a black placeholder of the given size.
func NewImagePane(parent *FrameWidget, row, col int, bg string, w, h int) *ImagePane {
	p := &ImagePane{placeholder: image.Rect(0, 0, w, h)}
	p.photo = NewPhoto(Data(images.EncodePNG(image.NewRGBA(p.placeholder))))
	p.label = Label(Image(p.photo), Background(bg), Borderwidth(0))
	if parent != nil {
		Grid(p.label, In(parent), Row(row), Column(col), Sticky("nsew"), Padx("2m"), Pady("2m"))
	} else {
		Grid(p.label, Row(row), Column(col), Sticky("nsew"), Padx("2m"), Pady("2m"))
	}
	return p
}

// Widget returns the underlying label for event bindings.
func (p *ImagePane) Widget() *LabelWidget {
	if p == nil {
		return nil
	}
	return p.label
}

// Show displays img; nil shows the placeholder.
func (p *ImagePane) Show(img image.Image) {
	if p == nil || p.label == nil {
		return
	}
	if img == nil {
		p.Reset()
		return
	}
	p.replace(images.EncodePNG(img))
}

// ShowScaled displays img scaled down to fit w x h.
func (p *ImagePane) ShowScaled(img image.Image, w, h int) {
	if p == nil || p.label == nil || img == nil {
		return
	}
	p.replace(images.EncodePNG(images.ScaleToFit(img, w, h)))
}

// Reset restores the placeholder.
func (p *ImagePane) Reset() {
	if p == nil || p.label == nil {
		return
	}
	p.replace(images.EncodePNG(image.NewRGBA(p.placeholder)))
}

func (p *ImagePane) replace(pngBytes []byte) {
	if len(pngBytes) == 0 {
		return
	}
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(pngBytes))
	p.label.Configure(Image(p.photo))
}
