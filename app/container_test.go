package app

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
)

type browserViewMock struct {
	shown    int
	info     string
	isError  bool
	rows     []catalog.Row
	position string
}

func (v *browserViewMock) ShowImage(img image.Image) {
	if img != nil {
		v.shown++
	}
}
func (v *browserViewMock) SetInfo(text string, tone model.InfoTone) {
	v.info, v.isError = text, tone == model.ToneError
}
func (v *browserViewMock) SetRows(rows []catalog.Row, _, _ int) {
	v.rows = append(v.rows[:0], rows...)
}
func (v *browserViewMock) SetPosition(text string) { v.position = text }

func browserConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Browser.ImageDir = filepath.Join(root, "images")
	cfg.Browser.LabelDir = filepath.Join(root, "labels")
	cfg.Browser.Watch = false
	for _, d := range []string{cfg.Browser.ImageDir, cfg.Browser.LabelDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	return cfg
}

func TestBuildBrowser_ShowsFirstFrame(t *testing.T) {
	cfg := browserConfig(t)
	img := imaging.New(64, 48, color.NRGBA{A: 255})
	if err := imaging.Save(img, filepath.Join(cfg.Browser.ImageDir, "a.png")); err != nil {
		t.Fatalf("save: %v", err)
	}
	label := "1 0.5 0.5 0.2 0.2\n2 0.25 0.25 0.1 0.1\n"
	if err := os.WriteFile(filepath.Join(cfg.Browser.LabelDir, "a.txt"), []byte(label), 0o644); err != nil {
		t.Fatalf("label: %v", err)
	}

	c, err := BuildBrowser(cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer c.Close()
	if c.Watcher != nil {
		t.Fatalf("watcher created with watching disabled")
	}
	v := &browserViewMock{}
	scheduled := 0
	c.Bind(v, func() { scheduled++ })
	c.Presenter.Init()
	c.Loop.Start()

	if v.shown != 1 || v.isError {
		t.Fatalf("shown=%d isError=%v", v.shown, v.isError)
	}
	if !strings.HasPrefix(v.info, "a.png | Intact: 1, Broken: 1") {
		t.Fatalf("info=%q", v.info)
	}
	if len(v.rows) != 1 || v.rows[0].Filename != "a.png" {
		t.Fatalf("rows=%+v", v.rows)
	}
	if scheduled != 1 || !c.Loop.Pending() {
		t.Fatalf("scheduled=%d pending=%v", scheduled, c.Loop.Pending())
	}
}

func TestBuildBrowser_MissingDirectoryIsEmpty(t *testing.T) {
	cfg := browserConfig(t)
	cfg.Browser.ImageDir = filepath.Join(t.TempDir(), "absent")
	c, err := BuildBrowser(cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	v := &browserViewMock{}
	c.Bind(v, nil)
	c.Presenter.Init()
	if !v.isError || v.shown != 0 {
		t.Fatalf("expected empty catalog message, got %q", v.info)
	}
}
