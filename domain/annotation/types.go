package annotation

import "image"

// ClassID identifies an annotation class. Plate labels use a small fixed set but any
// id decodes; styling falls back for ids without a configured entry.
type ClassID int

const (
	ClassPlate ClassID = iota
	ClassCharacterIntact
	ClassCharacterBroken
)

// Face tracker classes. Kept apart from the plate ids so one palette can hold both.
const (
	ClassFace     ClassID = 100
	ClassLandmark ClassID = 101
)

// Kind distinguishes box shapes from point shapes.
type Kind int

const (
	KindBox Kind = iota
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Shape is one decoded annotation in pixel space. Coordinates are not clipped to the
// image and may fall outside it.
type Shape struct {
	Class ClassID
	Kind  Kind
	Box   image.Rectangle // valid when Kind == KindBox (Min = x1,y1; Max = x2,y2)
	Point image.Point     // valid when Kind == KindPoint
	Label string          // optional per-shape label overriding the class display name
}

// DecodeStats reports how many annotation records were seen and how many were skipped.
type DecodeStats struct {
	Records int
	Skipped int
	// ReadErr is set when the input could not be read to the end.
	ReadErr error
}

// Add accumulates other into s. The first read error is kept.
func (s *DecodeStats) Add(other DecodeStats) {
	s.Records += other.Records
	s.Skipped += other.Skipped
	if s.ReadErr == nil {
		s.ReadErr = other.ReadErr
	}
}
