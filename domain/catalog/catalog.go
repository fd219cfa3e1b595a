package catalog

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	_ "golang.org/x/image/webp" // register webp for imaging.Open

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
)

// ErrUnreadable is returned by Frame when the image could not be decoded.
var ErrUnreadable = errors.New("image unreadable")

// Options configures where frames and labels are found.
type Options struct {
	ImageDir  string
	LabelDir  string
	LabelExt  string
	Policy    annotation.StatusPolicy
	CacheSize int
	Logger    *slog.Logger
	// Open decodes an image file; defaults to imaging.Open.
	Open func(path string) (image.Image, error)
}

// Entry is one frame known to the catalog. ID is the image file name.
type Entry struct {
	ID        string
	ImagePath string
	LabelPath string
}

// FrameSummary is the cached per-frame listing record.
type FrameSummary struct {
	ID       string
	Counts   map[annotation.ClassID]int
	Intact   int
	Broken   int
	Status   annotation.Status
	Readable bool
	Skipped  int // malformed label records
}

// Row is one line of the listing view.
type Row struct {
	Filename string
	Intact   int
	Broken   int
	Status   string
}

// Frame is a decoded frame ready for rendering.
type Frame struct {
	Entry
	Image   image.Image
	Shapes  []annotation.Shape
	Summary FrameSummary
}

type frameData struct {
	summary FrameSummary
	shapes  []annotation.Shape
}

// Catalog is the ordered set of frames with a navigation cursor. Order is the sorted
// directory listing and stays stable until Rescan. Decoded summaries are memoized per
// frame until invalidated; decoded images sit in a bounded LRU.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	opts    Options
	entries []Entry
	byID    map[string]int
	index   int
	data    map[string]frameData
	images  *lru.Cache[string, image.Image]
}

// New returns an empty catalog. Call Scan to discover frames.
func New(opts Options) (*Catalog, error) {
	if opts.LabelExt == "" {
		opts.LabelExt = ".txt"
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 32
	}
	if opts.Open == nil {
		opts.Open = func(path string) (image.Image, error) { return imaging.Open(path) }
	}
	if opts.Policy == (annotation.StatusPolicy{}) {
		opts.Policy = annotation.DefaultPolicy
	}
	cache, err := lru.New[string, image.Image](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("image cache: %w", err)
	}
	return &Catalog{opts: opts, byID: map[string]int{}, data: map[string]frameData{}, images: cache}, nil
}

// IsImageFile reports whether name has a supported raster extension.
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// Scan lists the image directory. A missing directory leaves the catalog empty and
// returns the error for the caller to report.
func (c *Catalog) Scan() error {
	if c == nil {
		return nil
	}
	entries, err := os.ReadDir(c.opts.ImageDir)
	c.entries = c.entries[:0]
	c.byID = map[string]int{}
	c.index = 0
	if err != nil {
		return fmt.Errorf("scan %s: %w", c.opts.ImageDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, n := range names {
		c.byID[n] = len(c.entries)
		c.entries = append(c.entries, Entry{
			ID:        n,
			ImagePath: filepath.Join(c.opts.ImageDir, n),
			LabelPath: c.labelPath(n),
		})
	}
	return nil
}

// Rescan re-lists the image directory, keeping the cursor on the same frame when it
// still exists. Cached data for frames still present is kept.
func (c *Catalog) Rescan() error {
	if c == nil {
		return nil
	}
	cur, hadCur := c.Current()
	err := c.Scan()
	for id := range c.data {
		if _, ok := c.byID[id]; !ok {
			c.Invalidate(id)
		}
	}
	if hadCur {
		if i, ok := c.byID[cur.ID]; ok {
			c.index = i
		}
	}
	return err
}

func (c *Catalog) labelPath(imageName string) string {
	base := strings.TrimSuffix(imageName, filepath.Ext(imageName))
	return filepath.Join(c.opts.LabelDir, base+c.opts.LabelExt)
}

// Count returns the number of frames.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Index returns the cursor position; it is meaningless when the catalog is empty.
func (c *Catalog) Index() int {
	if c == nil {
		return 0
	}
	return c.index
}

// Current returns the entry under the cursor.
func (c *Catalog) Current() (Entry, bool) {
	if c == nil || len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[c.index], true
}

// Next advances the cursor, wrapping from the last frame to the first. No-op when empty.
func (c *Catalog) Next() {
	if c == nil || len(c.entries) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.entries)
}

// Previous moves the cursor back, wrapping from the first frame to the last. No-op when empty.
func (c *Catalog) Previous() {
	if c == nil || len(c.entries) == 0 {
		return
	}
	n := len(c.entries)
	c.index = (c.index - 1 + n) % n
}

// Jump moves the cursor to i. Out-of-range positions are ignored.
func (c *Catalog) Jump(i int) bool {
	if c == nil || i < 0 || i >= len(c.entries) {
		return false
	}
	c.index = i
	return true
}

// Entries returns a copy of the ordered entries.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Lookup returns the entry with the given id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Position returns the list position of id.
func (c *Catalog) Position(id string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.byID[id]
	return i, ok
}

// IDsForFile maps an image or label file name to the frame ids it affects.
func (c *Catalog) IDsForFile(name string) []string {
	if c == nil {
		return nil
	}
	name = filepath.Base(name)
	if _, ok := c.byID[name]; ok {
		return []string{name}
	}
	if !strings.EqualFold(filepath.Ext(name), c.opts.LabelExt) {
		return nil
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	var ids []string
	for _, e := range c.entries {
		if strings.TrimSuffix(e.ID, filepath.Ext(e.ID)) == base {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Invalidate drops the memoized summary, shapes and decoded image of id.
func (c *Catalog) Invalidate(id string) {
	if c == nil {
		return
	}
	delete(c.data, id)
	c.images.Remove(id)
}

// Frame decodes the frame with the given id. The summary and shapes are computed once
// and memoized; the image comes from the LRU when present. An unreadable image yields
// a frame with a readable=false summary, no shapes and an error wrapping ErrUnreadable.
func (c *Catalog) Frame(id string) (Frame, error) {
	if c == nil {
		return Frame{}, fmt.Errorf("frame %s: nil catalog", id)
	}
	e, ok := c.Lookup(id)
	if !ok {
		return Frame{}, fmt.Errorf("frame %s: not in catalog", id)
	}
	img, err := c.image(e)
	if err != nil {
		sum := FrameSummary{ID: id, Counts: map[annotation.ClassID]int{}, Status: annotation.StatusUnreadable}
		c.data[id] = frameData{summary: sum}
		return Frame{Entry: e, Summary: sum}, fmt.Errorf("frame %s: %w: %v", id, ErrUnreadable, err)
	}
	d, ok := c.data[id]
	if !ok || !d.summary.Readable {
		d = c.compute(e, img)
		c.data[id] = d
	}
	return Frame{Entry: e, Image: img, Shapes: d.shapes, Summary: d.summary}, nil
}

func (c *Catalog) image(e Entry) (image.Image, error) {
	if img, ok := c.images.Get(e.ID); ok {
		return img, nil
	}
	img, err := c.opts.Open(e.ImagePath)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("empty image")
	}
	c.images.Add(e.ID, img)
	return img, nil
}

func (c *Catalog) compute(e Entry, img image.Image) frameData {
	b := img.Bounds()
	shapes, stats, err := annotation.DecodeFile(e.LabelPath, b.Dx(), b.Dy())
	if err != nil && c.opts.Logger != nil {
		c.opts.Logger.Warn("labels unreadable", "frame", e.ID, "error", err)
	}
	t := annotation.Aggregate(shapes, c.opts.Policy)
	return frameData{
		shapes: shapes,
		summary: FrameSummary{
			ID:       e.ID,
			Counts:   t.Counts,
			Intact:   t.Intact(c.opts.Policy),
			Broken:   t.Broken(c.opts.Policy),
			Status:   t.Status,
			Readable: true,
			Skipped:  stats.Skipped,
		},
	}
}

// Summary returns the memoized summary of id, computing it on first use.
func (c *Catalog) Summary(id string) FrameSummary {
	if c == nil {
		return FrameSummary{ID: id}
	}
	if d, ok := c.data[id]; ok {
		return d.summary
	}
	f, err := c.Frame(id)
	if err != nil && c.opts.Logger != nil && !errors.Is(err, ErrUnreadable) {
		c.opts.Logger.Warn("summary", "frame", id, "error", err)
	}
	return f.Summary
}

// Summaries returns one summary per frame in catalog order.
func (c *Catalog) Summaries() []FrameSummary {
	if c == nil {
		return nil
	}
	out := make([]FrameSummary, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, c.Summary(e.ID))
	}
	return out
}

// Rows returns the listing rows in catalog order.
func (c *Catalog) Rows() []Row {
	sums := c.Summaries()
	rows := make([]Row, len(sums))
	for i, s := range sums {
		rows[i] = RowOf(s)
	}
	return rows
}

// RowOf converts a summary into a listing row.
func RowOf(s FrameSummary) Row {
	return Row{Filename: s.ID, Intact: s.Intact, Broken: s.Broken, Status: s.Status.String()}
}

// Skipped returns the total malformed label records across cached summaries.
func (c *Catalog) Skipped() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, d := range c.data {
		n += d.summary.Skipped
	}
	return n
}

// CachedImages returns how many decoded images are held.
func (c *Catalog) CachedImages() int {
	if c == nil {
		return 0
	}
	return c.images.Len()
}

// VisibleWindow returns the first row to show in a list of count rows displaying
// rows at a time so that index is in view, keeping it centred where possible.
func VisibleWindow(index, count, rows int) int {
	if rows <= 0 || count <= rows {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	start := index - rows/2
	if start < 0 {
		start = 0
	}
	if start > count-rows {
		start = count - rows
	}
	return start
}
