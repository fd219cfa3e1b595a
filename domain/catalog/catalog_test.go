package catalog

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
)

type fixture struct {
	images, labels string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{images: filepath.Join(root, "images"), labels: filepath.Join(root, "labels")}
	for _, d := range []string{f.images, f.labels} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	return f
}

func (f fixture) image(t *testing.T, name string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{A: 255})
	if err := imaging.Save(img, filepath.Join(f.images, name)); err != nil {
		t.Fatalf("save image: %v", err)
	}
}

func (f fixture) label(t *testing.T, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.labels, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write label: %v", err)
	}
}

func (f fixture) catalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(Options{ImageDir: f.images, LabelDir: f.labels})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Scan(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return c
}

func TestCatalog_EndToEndSummary(t *testing.T) {
	f := newFixture(t)
	f.image(t, "car.png", 640, 480)
	f.label(t, "car.txt", "0 0.5 0.5 0.2 0.1\n1 0.3 0.3 0.05 0.05\n2 0.7 0.7 0.05 0.05\n")
	c := f.catalog(t)

	s := c.Summary("car.png")
	if !s.Readable || s.Intact != 1 || s.Broken != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Status != annotation.StatusBroken || s.Status.String() != "Broken" {
		t.Fatalf("status %v", s.Status)
	}
	rows := c.Rows()
	if len(rows) != 1 || rows[0] != (Row{Filename: "car.png", Intact: 1, Broken: 1, Status: "Broken"}) {
		t.Fatalf("rows %+v", rows)
	}
	fr, err := c.Frame("car.png")
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if len(fr.Shapes) != 3 || fr.Image.Bounds().Dx() != 640 {
		t.Fatalf("frame shapes=%d bounds=%v", len(fr.Shapes), fr.Image.Bounds())
	}
}

func TestCatalog_ScanFiltersAndSorts(t *testing.T) {
	f := newFixture(t)
	f.image(t, "b.jpg", 10, 10)
	f.image(t, "a.png", 10, 10)
	if err := os.WriteFile(filepath.Join(f.images, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := f.catalog(t)
	ents := c.Entries()
	if len(ents) != 2 || ents[0].ID != "a.png" || ents[1].ID != "b.jpg" {
		t.Fatalf("entries %+v", ents)
	}
	if ents[1].LabelPath != filepath.Join(f.labels, "b.txt") {
		t.Fatalf("label path %s", ents[1].LabelPath)
	}
}

func TestCatalog_MissingLabelsIsIntact(t *testing.T) {
	f := newFixture(t)
	f.image(t, "empty.png", 20, 20)
	c := f.catalog(t)
	s := c.Summary("empty.png")
	if s.Status != annotation.StatusIntact || s.Intact != 0 || s.Broken != 0 {
		t.Fatalf("summary %+v", s)
	}
}

func TestCatalog_UnreadableImage(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(filepath.Join(f.images, "bad.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := f.catalog(t)
	_, err := c.Frame("bad.jpg")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	row := c.Rows()[0]
	if row.Status != "Cannot read image" || row.Intact != 0 || row.Broken != 0 {
		t.Fatalf("row %+v", row)
	}
}

func TestCatalog_CyclicNavigation(t *testing.T) {
	f := newFixture(t)
	for _, n := range []string{"a.png", "b.png", "c.png"} {
		f.image(t, n, 4, 4)
	}
	c := f.catalog(t)
	c.Previous()
	if cur, _ := c.Current(); cur.ID != "c.png" {
		t.Fatalf("previous from first should wrap to last, got %s", cur.ID)
	}
	c.Next()
	if c.Index() != 0 {
		t.Fatalf("next from last should wrap to first, got %d", c.Index())
	}
	if c.Jump(5) || c.Index() != 0 {
		t.Fatalf("out of range jump must be ignored")
	}
	if !c.Jump(2) || c.Index() != 2 {
		t.Fatalf("jump failed")
	}
}

func TestCatalog_EmptyIsNoop(t *testing.T) {
	f := newFixture(t)
	c := f.catalog(t)
	c.Next()
	c.Previous()
	if _, ok := c.Current(); ok || c.Count() != 0 || len(c.Rows()) != 0 {
		t.Fatalf("empty catalog should stay empty")
	}
}

func TestCatalog_MissingDirectory(t *testing.T) {
	c, err := New(Options{ImageDir: filepath.Join(t.TempDir(), "nope")})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Scan(); err == nil {
		t.Fatalf("expected scan error")
	}
	if c.Count() != 0 {
		t.Fatalf("catalog should be empty")
	}
}

func TestCatalog_SummaryMemoizedUntilInvalidated(t *testing.T) {
	f := newFixture(t)
	f.image(t, "x.png", 100, 100)
	f.label(t, "x.txt", "1 0.5 0.5 0.1 0.1\n")
	opens := 0
	c, _ := New(Options{ImageDir: f.images, LabelDir: f.labels, Open: func(p string) (image.Image, error) {
		opens++
		return imaging.Open(p)
	}})
	_ = c.Scan()

	if c.Summary("x.png").Status != annotation.StatusIntact {
		t.Fatalf("want intact")
	}
	f.label(t, "x.txt", "2 0.5 0.5 0.1 0.1\n")
	if c.Summary("x.png").Status != annotation.StatusIntact {
		t.Fatalf("summary should be memoized")
	}
	if opens != 1 {
		t.Fatalf("image opened %d times", opens)
	}
	for _, id := range c.IDsForFile("x.txt") {
		c.Invalidate(id)
	}
	if c.Summary("x.png").Status != annotation.StatusBroken {
		t.Fatalf("invalidated summary should be recomputed")
	}
}

func TestCatalog_RescanKeepsCursor(t *testing.T) {
	f := newFixture(t)
	f.image(t, "b.png", 4, 4)
	f.image(t, "c.png", 4, 4)
	c := f.catalog(t)
	c.Next() // c.png
	f.image(t, "a.png", 4, 4)
	if err := c.Rescan(); err != nil {
		t.Fatal(err)
	}
	if cur, _ := c.Current(); cur.ID != "c.png" || c.Index() != 2 {
		t.Fatalf("cursor moved to %s (%d)", cur.ID, c.Index())
	}
}

func TestIDsForFile(t *testing.T) {
	f := newFixture(t)
	f.image(t, "a.png", 4, 4)
	c := f.catalog(t)
	if ids := c.IDsForFile("a.png"); len(ids) != 1 {
		t.Fatalf("image ids %v", ids)
	}
	if ids := c.IDsForFile("/tmp/labels/a.txt"); len(ids) != 1 || ids[0] != "a.png" {
		t.Fatalf("label ids %v", ids)
	}
	if ids := c.IDsForFile("zzz.txt"); len(ids) != 0 {
		t.Fatalf("unknown ids %v", ids)
	}
}

func TestVisibleWindow(t *testing.T) {
	cases := []struct{ index, count, rows, want int }{
		{0, 5, 10, 0},
		{0, 100, 10, 0},
		{50, 100, 10, 45},
		{99, 100, 10, 90},
		{3, 100, 0, 0},
	}
	for _, tc := range cases {
		if got := VisibleWindow(tc.index, tc.count, tc.rows); got != tc.want {
			t.Fatalf("VisibleWindow(%d,%d,%d)=%d want %d", tc.index, tc.count, tc.rows, got, tc.want)
		}
	}
}

func TestDrain(t *testing.T) {
	ch := make(chan string, 4)
	ch <- "a"
	ch <- "b"
	if got := Drain(ch); len(got) != 2 {
		t.Fatalf("drain %v", got)
	}
	if got := Drain(ch); len(got) != 0 {
		t.Fatalf("second drain %v", got)
	}
}
