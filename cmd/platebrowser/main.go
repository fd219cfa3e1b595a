// Command platebrowser browses license plate frames with their character annotations.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Lumos7-3/A1-Internship-Project/app"
	"github.com/Lumos7-3/A1-Internship-Project/app/gui"
	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/logging"
	"github.com/Lumos7-3/A1-Internship-Project/debug"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file")
	images := flag.String("images", "", "image directory (overrides config)")
	labels := flag.String("labels", "", "label directory (overrides config)")
	watch := flag.Bool("watch", true, "refresh when files in the directories change")
	verbose := flag.Bool("debug", false, "debug logging and runtime stats")
	flag.Parse()

	logger := logging.NewLogger(os.Stdout, logging.Level(*verbose, slog.LevelInfo)).With("session", uuid.NewString(), "tool", "platebrowser")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *configPath, "error", err)
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		logger.Warn("dotenv", "path", *envFile, "error", err)
	}
	if *images != "" {
		cfg.Browser.ImageDir = *images
	}
	if *labels != "" {
		cfg.Browser.LabelDir = *labels
	}
	cfg.Browser.Watch = cfg.Browser.Watch && *watch
	cfg.Debug = cfg.Debug || *verbose
	_ = cfg.Validate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := app.BuildBrowser(cfg, logger)
	if err != nil {
		logger.Error("startup", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		debug.StartRuntimeLogger(ctx, 10*time.Second, logger, func() []slog.Attr {
			return []slog.Attr{slog.Int("cached_images", c.Catalog.CachedImages())}
		})
	}
	gui.RunBrowser(ctx, c, 1400, 900)
}
