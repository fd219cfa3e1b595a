package annotation

import (
	"image"
	"testing"
)

func uniformMesh(n int, p NormPoint) Landmarks {
	lm := make(Landmarks, n)
	for i := range lm {
		lm[i] = p
	}
	return lm
}

func TestDecodeFaces_BoxesAndPoints(t *testing.T) {
	mesh := uniformMesh(468, NormPoint{X: 0.5, Y: 0.5})
	mesh[1] = NormPoint{X: 0.25, Y: 0.75}
	// Left eye indices average to (0.125, 0.25); right eye to (0.75, 0.25).
	for _, i := range MediaPipeScheme.LeftEye {
		mesh[i] = NormPoint{X: 0.125, Y: 0.25}
	}
	for j, i := range MediaPipeScheme.RightEye {
		if j%2 == 0 {
			mesh[i] = NormPoint{X: 0.5, Y: 0.25}
		} else {
			mesh[i] = NormPoint{X: 1.0, Y: 0.25}
		}
	}
	dets := []Detection{{XMin: 0.25, YMin: 0.5, Width: 0.5, Height: 0.25}}
	shapes, stats := DecodeFaces(dets, []Landmarks{mesh}, MediaPipeScheme, 640, 480)
	if stats.Records != 2 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(shapes) != 4 {
		t.Fatalf("expected 1 box + 3 points, got %d", len(shapes))
	}
	box := shapes[0]
	if box.Kind != KindBox || box.Class != ClassFace || box.Label != "Face-1" {
		t.Fatalf("unexpected box shape %+v", box)
	}
	if box.Box != (image.Rectangle{Min: image.Pt(160, 240), Max: image.Pt(480, 360)}) {
		t.Fatalf("unexpected face box %v", box.Box)
	}
	want := []image.Point{{160, 360}, {80, 120}, {480, 120}}
	for i, p := range want {
		s := shapes[i+1]
		if s.Kind != KindPoint || s.Class != ClassLandmark || s.Point != p {
			t.Fatalf("point %d: got %+v want %v", i, s, p)
		}
	}
}

func TestDecodeFaces_ShortMeshSkipped(t *testing.T) {
	shapes, stats := DecodeFaces(nil, []Landmarks{uniformMesh(10, NormPoint{})}, MediaPipeScheme, 100, 100)
	if len(shapes) != 0 || stats.Skipped != 1 {
		t.Fatalf("short mesh must be skipped: shapes=%v stats=%+v", shapes, stats)
	}
}

func TestDecodeFaces_LabelsNumberDetections(t *testing.T) {
	dets := []Detection{{}, {}, {}}
	shapes, _ := DecodeFaces(dets, nil, MediaPipeScheme, 10, 10)
	for i, s := range shapes {
		if want := "Face-" + string(rune('1'+i)); s.Label != want {
			t.Fatalf("detection %d labelled %q want %q", i, s.Label, want)
		}
	}
}

func TestScheme_EmbeddedPresets(t *testing.T) {
	mp, err := Scheme("mediapipe468")
	if err != nil {
		t.Fatalf("mediapipe preset: %v", err)
	}
	if mp.Nose != MediaPipeScheme.Nose || len(mp.LeftEye) != 6 || len(mp.RightEye) != 6 {
		t.Fatalf("mediapipe preset mismatch: %+v", mp)
	}
	if _, err := Scheme("nope"); err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	names := SchemeNames()
	if len(names) != 3 || names[0] != "dlib5" {
		t.Fatalf("unexpected scheme names %v", names)
	}
}

func TestParseSchemes_RejectsNegativeIndex(t *testing.T) {
	_, err := ParseSchemes([]byte(`{"bad":{"nose":-1,"left_eye":[0],"right_eye":[1]}}`))
	if err == nil {
		t.Fatalf("expected invalid scheme error")
	}
}
