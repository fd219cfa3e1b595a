package annotation

import (
	"strings"
	"testing"
)

func box(c ClassID) Shape { return Shape{Class: c, Kind: KindBox} }

func TestAggregate_StatusFollowsBrokenCount(t *testing.T) {
	cases := []struct {
		name   string
		shapes []Shape
		want   Status
		intact int
		broken int
	}{
		{"plate only", []Shape{box(ClassPlate)}, StatusIntact, 0, 0},
		{"intact chars", []Shape{box(ClassPlate), box(ClassCharacterIntact), box(ClassCharacterIntact)}, StatusIntact, 2, 0},
		{"one broken", []Shape{box(ClassCharacterIntact), box(ClassCharacterBroken)}, StatusBroken, 1, 1},
		{"broken first", []Shape{box(ClassCharacterBroken), box(ClassPlate)}, StatusBroken, 0, 1},
		{"unknown class ignored", []Shape{box(9), box(9)}, StatusIntact, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.shapes, DefaultPolicy)
			if got.Status != tc.want {
				t.Fatalf("status %v want %v", got.Status, tc.want)
			}
			if got.Intact(DefaultPolicy) != tc.intact || got.Broken(DefaultPolicy) != tc.broken {
				t.Fatalf("counts intact=%d broken=%d want %d/%d", got.Intact(DefaultPolicy), got.Broken(DefaultPolicy), tc.intact, tc.broken)
			}
		})
	}
}

// A plate with no character boxes at all reports Intact. This mirrors the
// long-standing listing behaviour and is kept deliberately even though it reads oddly.
func TestAggregate_NoShapesIsVacuouslyIntact(t *testing.T) {
	got := Aggregate(nil, DefaultPolicy)
	if got.Status != StatusIntact {
		t.Fatalf("empty plate should report Intact, got %v", got.Status)
	}
}

func TestAggregate_IgnoresPointsAndOrder(t *testing.T) {
	a := []Shape{box(ClassCharacterBroken), {Class: ClassCharacterBroken, Kind: KindPoint}, box(ClassCharacterIntact)}
	b := []Shape{box(ClassCharacterIntact), box(ClassCharacterBroken)}
	ta, tb := Aggregate(a, DefaultPolicy), Aggregate(b, DefaultPolicy)
	if ta.Counts[ClassCharacterBroken] != 1 || tb.Counts[ClassCharacterBroken] != 1 {
		t.Fatalf("points must not be counted: %v %v", ta.Counts, tb.Counts)
	}
	if ta.Status != tb.Status {
		t.Fatalf("order changed status")
	}
}

func TestAggregate_CustomPolicy(t *testing.T) {
	p := StatusPolicy{Intact: 5, Broken: 6}
	got := Aggregate([]Shape{box(ClassCharacterBroken), box(6)}, p)
	if got.Status != StatusBroken || got.Broken(p) != 1 {
		t.Fatalf("custom policy not honoured: %+v", got)
	}
}

func TestDecodeAndAggregate_PlateExample(t *testing.T) {
	in := "0 0.5 0.5 0.2 0.1\n1 0.3 0.3 0.05 0.05\n2 0.7 0.7 0.05 0.05\n"
	shapes, _ := DecodeBoxes(strings.NewReader(in), 640, 480)
	got := Aggregate(shapes, DefaultPolicy)
	if got.Intact(DefaultPolicy) != 1 || got.Broken(DefaultPolicy) != 1 || got.Status != StatusBroken {
		t.Fatalf("unexpected tally %+v", got)
	}
	if got.Status.String() != "Broken" {
		t.Fatalf("status string %q", got.Status.String())
	}
}
