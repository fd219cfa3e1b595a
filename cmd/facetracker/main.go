// Command facetracker shows a live camera or screen feed with face boxes and landmarks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Lumos7-3/A1-Internship-Project/app/tracker"
	"github.com/Lumos7-3/A1-Internship-Project/app/tracker/gui"
	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/logging"
	"github.com/Lumos7-3/A1-Internship-Project/debug"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file")
	source := flag.String("source", "", "frame source: webcam or screen (overrides config)")
	device := flag.Int("device", -1, "webcam device index (overrides config)")
	detector := flag.String("detector", "", "face detector: cascade or dlib (overrides config)")
	snapshotPath := flag.String("snapshot", "", "snapshot output path (overrides config)")
	verbose := flag.Bool("debug", false, "debug logging and runtime stats")
	flag.Parse()

	logger := logging.NewLogger(os.Stdout, logging.Level(*verbose, slog.LevelInfo)).With("session", uuid.NewString(), "tool", "facetracker")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *configPath, "error", err)
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		logger.Warn("dotenv", "path", *envFile, "error", err)
	}
	if *source != "" {
		cfg.Tracker.Source = *source
	}
	if *device >= 0 {
		cfg.Tracker.Device = *device
	}
	if *detector != "" {
		cfg.Tracker.Detector = *detector
	}
	if *snapshotPath != "" {
		cfg.Tracker.SnapshotPath = *snapshotPath
	}
	cfg.Debug = cfg.Debug || *verbose
	_ = cfg.Validate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := tracker.Build(cfg, logger)
	if err != nil {
		logger.Error("could not open frame source", "source", cfg.Tracker.Source, "device", cfg.Tracker.Device, "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		debug.StartRuntimeLogger(ctx, 10*time.Second, logger, func() []slog.Attr {
			st := c.CaptureSvc.Stats()
			return []slog.Attr{
				slog.Uint64("captures", st.Captures),
				slog.Uint64("skipped", st.Skipped),
				slog.Uint64("fail_streak", st.FailStreak),
				slog.String("last_error", st.LastError),
				slog.Duration("avg_capture", st.AvgCapture),
			}
		})
	}
	gui.RunTracker(c, 950, 700)
}
