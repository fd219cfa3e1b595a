// Package snapshot writes the most recently rendered frame to disk.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// DefaultPath is used when no destination is configured.
const DefaultPath = "snapshot.jpg"

// ErrNoFrame is returned when there is nothing to save yet.
var ErrNoFrame = errors.New("no frame rendered yet")

// Options controls encoding. Quality applies to JPEG and lossy WebP.
type Options struct {
	Quality  int
	Lossless bool
}

// Save encodes img to path, choosing the format from the extension: .jpg/.jpeg,
// .png or .webp. Unknown extensions are written as JPEG. The file is written to a
// temporary sibling first and renamed into place.
func Save(img image.Image, path string, opts Options) error {
	if empty(img) {
		return ErrNoFrame
	}
	if path == "" {
		path = DefaultPath
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 92
	}
	ext := strings.ToLower(filepath.Ext(path))
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*"+ext)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	switch ext {
	case ".webp":
		err = webp.Encode(tmp, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)})
	case ".png":
		err = imaging.Encode(tmp, img, imaging.PNG)
	default:
		err = imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("snapshot %s: encode: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

// empty reports whether img holds no pixels, including typed nil frame pointers.
func empty(img image.Image) bool {
	switch f := img.(type) {
	case nil:
		return true
	case *image.NRGBA:
		if f == nil {
			return true
		}
	case *image.RGBA:
		if f == nil {
			return true
		}
	}
	return img.Bounds().Empty()
}
