package annotation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const boxFields = 5

// DecodeBoxes parses YOLO-style records (class x_center y_center width height, geometry
// normalized to the image) into pixel-space boxes for an image of width x height.
// Lines with a field count other than five, or with non-numeric fields, are skipped and
// counted in the returned stats. Blank lines are ignored entirely. A read failure, or a
// line longer than the scanner limit, stops decoding: the rest of the input counts as
// one skipped record and the error is kept in stats.ReadErr.
func DecodeBoxes(r io.Reader, width, height int) ([]Shape, DecodeStats) {
	var (
		shapes []Shape
		stats  DecodeStats
	)
	if r == nil {
		return nil, stats
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stats.Records++
		s, ok := decodeBoxLine(line, width, height)
		if !ok {
			stats.Skipped++
			continue
		}
		shapes = append(shapes, s)
	}
	if err := sc.Err(); err != nil {
		stats.Records++
		stats.Skipped++
		stats.ReadErr = err
	}
	return shapes, stats
}

func decodeBoxLine(line string, width, height int) (Shape, bool) {
	parts := strings.Fields(line)
	if len(parts) != boxFields {
		return Shape{}, false
	}
	var v [boxFields]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Shape{}, false
		}
		v[i] = f
	}
	w, h := float64(width), float64(height)
	xc, yc := v[1]*w, v[2]*h
	bw, bh := v[3]*w, v[4]*h
	s := Shape{Class: ClassID(int(v[0])), Kind: KindBox}
	s.Box.Min.X = int(xc - bw/2)
	s.Box.Min.Y = int(yc - bh/2)
	s.Box.Max.X = int(xc + bw/2)
	s.Box.Max.Y = int(yc + bh/2)
	return s, true
}

// DecodeFile decodes the label file at path. A missing file is not an error and yields
// no shapes. When reading stops early the shapes decoded so far are returned with the error.
func DecodeFile(path string, width, height int) ([]Shape, DecodeStats, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, DecodeStats{}, nil
		}
		return nil, DecodeStats{}, fmt.Errorf("open labels %s: %w", path, err)
	}
	defer f.Close()
	shapes, stats := DecodeBoxes(f, width, height)
	if stats.ReadErr != nil {
		return shapes, stats, fmt.Errorf("read labels %s: %w", path, stats.ReadErr)
	}
	return shapes, stats, nil
}
