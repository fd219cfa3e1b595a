package viewport

import (
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]-?\d+)([+-]-?\d+)$`)

// ParseGeometry parses a Tk geometry string into a size and screen position.
func ParseGeometry(g string) (Size, image.Point, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return Size{}, image.Point{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, err1 := strconv.Atoi(strings.TrimPrefix(m[3], "+"))
	y, err2 := strconv.Atoi(strings.TrimPrefix(m[4], "+"))
	if w <= 0 || h <= 0 || err1 != nil || err2 != nil {
		return Size{}, image.Point{}, false
	}
	return Size{W: w, H: h}, image.Pt(x, y), true
}
