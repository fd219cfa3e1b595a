package annotation

import (
	"encoding/json"
	"fmt"
	"image"
	"sort"

	"github.com/Lumos7-3/A1-Internship-Project/assets"
)

// Detection is a face bounding box relative to the frame (all fields in [0,1]).
type Detection struct {
	XMin, YMin    float64
	Width, Height float64
}

// NormPoint is a landmark position relative to the frame.
type NormPoint struct{ X, Y float64 }

// Landmarks is the full landmark set estimated for one face, indexed by the
// estimator's own numbering.
type Landmarks []NormPoint

// LandmarkScheme names the landmark indices used for the nose tip and the two eye centres.
type LandmarkScheme struct {
	Nose     int   `json:"nose"`
	LeftEye  []int `json:"left_eye"`
	RightEye []int `json:"right_eye"`
}

// MediaPipeScheme is the 468-point face mesh layout.
var MediaPipeScheme = LandmarkScheme{
	Nose:     1,
	LeftEye:  []int{33, 133, 159, 145, 153, 154},
	RightEye: []int{263, 362, 386, 374, 380, 385},
}

// maxIndex returns the largest landmark index the scheme reads.
func (s LandmarkScheme) maxIndex() int {
	m := s.Nose
	for _, i := range s.LeftEye {
		if i > m {
			m = i
		}
	}
	for _, i := range s.RightEye {
		if i > m {
			m = i
		}
	}
	return m
}

// Valid reports whether every index is non-negative and both eyes have at least one index.
func (s LandmarkScheme) Valid() bool {
	if s.Nose < 0 || len(s.LeftEye) == 0 || len(s.RightEye) == 0 {
		return false
	}
	for _, i := range append(append([]int(nil), s.LeftEye...), s.RightEye...) {
		if i < 0 {
			return false
		}
	}
	return true
}

// ParseSchemes decodes a JSON object of named schemes.
func ParseSchemes(data []byte) (map[string]LandmarkScheme, error) {
	out := map[string]LandmarkScheme{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse landmark schemes: %w", err)
	}
	for name, s := range out {
		if !s.Valid() {
			return nil, fmt.Errorf("landmark scheme %q: invalid indices", name)
		}
	}
	return out, nil
}

// SchemeNames lists the embedded scheme presets.
func SchemeNames() []string {
	schemes, err := ParseSchemes(assets.LandmarkSchemesJSON)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scheme returns the embedded preset with the given name.
func Scheme(name string) (LandmarkScheme, error) {
	schemes, err := ParseSchemes(assets.LandmarkSchemesJSON)
	if err != nil {
		return LandmarkScheme{}, err
	}
	s, ok := schemes[name]
	if !ok {
		return LandmarkScheme{}, fmt.Errorf("unknown landmark scheme %q", name)
	}
	return s, nil
}

// DecodeFaces converts detector boxes and per-face landmark sets into pixel-space shapes
// for a width x height frame: one labelled box per detection, then the nose tip and both
// eye centres for each landmark set. Landmark sets too short for the scheme are skipped
// and counted in the stats.
func DecodeFaces(dets []Detection, faces []Landmarks, scheme LandmarkScheme, width, height int) ([]Shape, DecodeStats) {
	var stats DecodeStats
	w, h := float64(width), float64(height)
	shapes := make([]Shape, 0, len(dets)+3*len(faces))
	for i, d := range dets {
		stats.Records++
		x1 := int(d.XMin * w)
		y1 := int(d.YMin * h)
		// Raw corners; image.Rect would canonicalize negative sizes.
		shapes = append(shapes, Shape{
			Class: ClassFace,
			Kind:  KindBox,
			Box: image.Rectangle{
				Min: image.Pt(x1, y1),
				Max: image.Pt(x1+int(d.Width*w), y1+int(d.Height*h)),
			},
			Label: fmt.Sprintf("Face-%d", i+1),
		})
	}
	need := scheme.maxIndex()
	for _, lm := range faces {
		stats.Records++
		if !scheme.Valid() || len(lm) <= need {
			stats.Skipped++
			continue
		}
		nose := lm[scheme.Nose]
		left := meanPoint(lm, scheme.LeftEye)
		right := meanPoint(lm, scheme.RightEye)
		for _, p := range []NormPoint{nose, left, right} {
			shapes = append(shapes, Shape{
				Class: ClassLandmark,
				Kind:  KindPoint,
				Point: image.Pt(int(p.X*w), int(p.Y*h)),
			})
		}
	}
	return shapes, stats
}

func meanPoint(lm Landmarks, idx []int) NormPoint {
	var sx, sy float64
	for _, i := range idx {
		sx += lm[i].X
		sy += lm[i].Y
	}
	n := float64(len(idx))
	return NormPoint{X: sx / n, Y: sy / n}
}
