// Command platereport prints the per-frame character summary of a plate dataset.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Lumos7-3/A1-Internship-Project/app"
	"github.com/Lumos7-3/A1-Internship-Project/config"
	"github.com/Lumos7-3/A1-Internship-Project/logging"
	"github.com/Lumos7-3/A1-Internship-Project/domain/catalog"
)

func main() {
	configPath := flag.String("config", "config.json", "JSON configuration file")
	envFile := flag.String("env", ".env", "optional dotenv file")
	images := flag.String("images", "", "image directory (overrides config)")
	labels := flag.String("labels", "", "label directory (overrides config)")
	format := flag.String("format", FormatTable, "output format: table, csv or json")
	verbose := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := logging.NewLogger(os.Stderr, logging.Level(*verbose, slog.LevelWarn)).With("session", uuid.NewString(), "tool", "platereport")

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
	_ = cfg.Validate()

	cat, err := app.NewCatalog(cfg.Browser, logger)
	if err != nil {
		logger.Error("catalog", "error", err)
		os.Exit(1)
	}
	sums := cat.Summaries()
	rows := make([]catalog.Row, len(sums))
	for i, s := range sums {
		rows[i] = catalog.RowOf(s)
	}
	if n := cat.Skipped(); n > 0 {
		logger.Warn("malformed label lines skipped", "count", n)
	}
	if err := WriteReport(os.Stdout, *format, rows, Summarize(sums)); err != nil {
		logger.Error("report", "error", err)
		os.Exit(1)
	}
}
