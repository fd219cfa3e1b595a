package model

import (
	"testing"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
)

func TestInfoText(t *testing.T) {
	s := catalog.FrameSummary{ID: "car.png", Intact: 1, Broken: 1, Status: annotation.StatusBroken, Readable: true}
	if got, want := InfoText(s), "car.png | Intact: 1, Broken: 1, Status: Broken"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	bad := catalog.FrameSummary{ID: "bad.jpg", Status: annotation.StatusUnreadable}
	if got := InfoText(bad); got != "Cannot read bad.jpg" {
		t.Fatalf("got %q", got)
	}
}

func TestPositionAndZoomText(t *testing.T) {
	if PositionText(0, 0) != "0 / 0" || PositionText(2, 10) != "3 / 10" {
		t.Fatalf("position text")
	}
	if ZoomText(1.1) != "110%" {
		t.Fatalf("zoom text %q", ZoomText(1.1))
	}
}

func TestBrowserState_Defaults(t *testing.T) {
	s := NewBrowserState(nil, nil, nil)
	if s.View == nil || s.Renderer == nil {
		t.Fatalf("defaults not applied")
	}
	s.Rendered()
	if s.Renders() != 1 {
		t.Fatalf("renders %d", s.Renders())
	}
	var nilState *BrowserState
	nilState.Rendered()
	if nilState.Renders() != 0 {
		t.Fatalf("nil state")
	}
}

func TestInfoToneOf(t *testing.T) {
	cases := []struct {
		name string
		sum  catalog.FrameSummary
		want InfoTone
	}{
		{"intact", catalog.FrameSummary{Readable: true, Status: annotation.StatusIntact}, ToneIntact},
		{"broken", catalog.FrameSummary{Readable: true, Status: annotation.StatusBroken, Broken: 1}, ToneBroken},
		{"unreadable", catalog.FrameSummary{Status: annotation.StatusUnreadable}, ToneError},
	}
	for _, tc := range cases {
		if got := InfoToneOf(tc.sum); got != tc.want {
			t.Fatalf("%s: tone=%d want %d", tc.name, got, tc.want)
		}
	}
}
