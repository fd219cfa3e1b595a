package overlay

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
)

// Style is the display name and color for one class.
type Style struct {
	Name  string
	Color color.NRGBA
}

// Palette maps class ids to styles. Classes without an entry get a neutral gray style
// named after their id.
type Palette map[annotation.ClassID]Style

var fallbackColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// Style returns the style for class c.
func (p Palette) Style(c annotation.ClassID) Style {
	if s, ok := p[c]; ok {
		return s
	}
	return Style{Name: fmt.Sprintf("class-%d", int(c)), Color: fallbackColor}
}

// PlatePalette is the plate/character palette: plate blue, intact green, broken red.
func PlatePalette() Palette {
	return Palette{
		annotation.ClassPlate:           {Name: "plate", Color: color.NRGBA{B: 255, A: 255}},
		annotation.ClassCharacterIntact: {Name: "character_intact", Color: color.NRGBA{G: 255, A: 255}},
		annotation.ClassCharacterBroken: {Name: "character_broken", Color: color.NRGBA{R: 255, A: 255}},
	}
}

// FacePalette styles face boxes green and landmark points red.
func FacePalette() Palette {
	return Palette{
		annotation.ClassFace:     {Name: "face", Color: color.NRGBA{G: 255, A: 255}},
		annotation.ClassLandmark: {Name: "landmark", Color: color.NRGBA{R: 255, A: 255}},
	}
}

// PaletteFromConfig builds a palette from configured class styles. Entries with an
// unparsable color keep the fallback color.
func PaletteFromConfig(classes []config.ClassStyle) Palette {
	p := Palette{}
	for _, c := range classes {
		col, err := ParseHexColor(c.Color)
		if err != nil {
			col = fallbackColor
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("class-%d", c.ID)
		}
		p[annotation.ClassID(c.ID)] = Style{Name: name, Color: col}
	}
	return p
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
