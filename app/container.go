// Package app assembles the plate browser from configuration. The live tracker is
// assembled in app/tracker so the browser and report do not link the face stack.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/domain/annotation"
	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
	"github.com/Lumos7-3/A1-Internship-Project/domain/overlay"
	"github.com/Lumos7-3/A1-Internship-Project/domain/viewport"
	"github.com/Lumos7-3/A1-Internship-Project/ui/model"
	"github.com/Lumos7-3/A1-Internship-Project/ui/presenter"
)

// BrowserTick is the browser's UI loop period.
const BrowserTick = 100 * time.Millisecond

// BrowserContainer assembles the plate browser's catalog, state and presenter.
type BrowserContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Catalog *catalog.Catalog
	State   *model.BrowserState
	Watcher *catalog.Watcher

	Presenter *presenter.BrowserPresenter
	Loop      *presenter.Loop
}

// ViewportOptions maps the browser config onto viewport options.
func ViewportOptions(b config.BrowserConfig) viewport.Options {
	return viewport.Options{
		Margin:      b.FitMargin,
		MinViewport: b.MinViewport,
		ZoomStep:    b.ZoomStep,
		ZoomMin:     b.ZoomMin,
		ZoomMax:     b.ZoomMax,
	}
}

// NewCatalog builds and scans the catalog described by the browser config. A scan
// failure is logged and leaves the catalog empty.
func NewCatalog(b config.BrowserConfig, logger *slog.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.New(catalog.Options{
		ImageDir:  b.ImageDir,
		LabelDir:  b.LabelDir,
		LabelExt:  b.LabelExt,
		Policy:    annotation.StatusPolicy{Intact: annotation.ClassID(b.IntactClass), Broken: annotation.ClassID(b.BrokenClass)},
		CacheSize: b.ImageCacheSize,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if err := cat.Scan(); err != nil && logger != nil {
		logger.Warn("image directory unavailable", "dir", b.ImageDir, "error", err)
	}
	return cat, nil
}

// BuildBrowser constructs the browser components. Side-effects limited to the
// directory scan and, when enabled, the file watcher.
func BuildBrowser(cfg *config.Config, logger *slog.Logger) (*BrowserContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &BrowserContainer{Config: cfg, Logger: logger}
	cat, err := NewCatalog(cfg.Browser, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c.Catalog = cat
	c.State = model.NewBrowserState(cat,
		viewport.NewState(ViewportOptions(cfg.Browser)),
		overlay.NewRenderer(overlay.PaletteFromConfig(cfg.Browser.Classes)))
	if cfg.Browser.Watch {
		w, err := catalog.NewWatcher(logger, cfg.Browser.ImageDir, cfg.Browser.LabelDir)
		if err != nil {
			if logger != nil {
				logger.Warn("file watching disabled", "error", err)
			}
		} else {
			c.Watcher = w
		}
	}
	if logger != nil {
		logger.Info("catalog ready", "frames", cat.Count(), "image_dir", cfg.Browser.ImageDir, "label_dir", cfg.Browser.LabelDir)
	}
	return c, nil
}

// Bind wires the presenter and loop to a view and a scheduler callback.
func (c *BrowserContainer) Bind(view presenter.BrowserView, schedule func()) {
	c.Presenter = presenter.NewBrowserPresenter(c.State, view, c.Config.Browser.TableRows, c.Logger)
	if c.Watcher != nil {
		c.Presenter.Changes = c.Watcher.Changes()
	}
	c.Loop = presenter.NewLoop(nil, nil, c.Presenter, nil, schedule)
}

// Close stops the watcher.
func (c *BrowserContainer) Close() error {
	if c == nil || c.Watcher == nil {
		return nil
	}
	return c.Watcher.Close()
}
