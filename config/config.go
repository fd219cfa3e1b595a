package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ClassStyle maps an annotation class id to its display name and hex color.
type ClassStyle struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// BrowserConfig configures the plate annotation browser.
type BrowserConfig struct {
	ImageDir string       `json:"image_dir"`
	LabelDir string       `json:"label_dir"`
	LabelExt string       `json:"label_ext"`
	Classes  []ClassStyle `json:"classes"`

	// Class ids feeding the Intact/Broken status.
	IntactClass int `json:"intact_class"`
	BrokenClass int `json:"broken_class"`

	// Viewport fitting and zoom.
	FitMargin   float64 `json:"fit_margin"`
	MinViewport int     `json:"min_viewport"`
	ZoomStep    float64 `json:"zoom_step"`
	ZoomMin     float64 `json:"zoom_min"`
	ZoomMax     float64 `json:"zoom_max"`

	ImageCacheSize int  `json:"image_cache_size"`
	TableRows      int  `json:"table_rows"`
	Watch          bool `json:"watch"`
}

// TrackerConfig configures the live face overlay viewer.
type TrackerConfig struct {
	Source         string `json:"source"` // webcam | screen
	Device         int    `json:"device"`
	IntervalMs     int    `json:"interval_ms"`
	Detector       string `json:"detector"` // cascade | dlib
	CascadePath    string `json:"cascade_path"`
	ModelsDir      string `json:"models_dir"`
	LandmarkScheme string `json:"landmark_scheme"`

	SnapshotPath    string `json:"snapshot_path"`
	SnapshotQuality int    `json:"snapshot_quality"`

	// Optional screen region for the screen source; zero width/height means full screen.
	RegionX int `json:"region_x"`
	RegionY int `json:"region_y"`
	RegionW int `json:"region_w"`
	RegionH int `json:"region_h"`
}

// Config holds runtime configuration for both tools.
// Fields may be loaded from a JSON file and overridden by environment and command-line flags.
type Config struct {
	Debug   bool          `json:"debug"`
	Browser BrowserConfig `json:"browser"`
	Tracker TrackerConfig `json:"tracker"`
}

// DefaultClasses returns the plate/character class table.
func DefaultClasses() []ClassStyle {
	return []ClassStyle{
		{ID: 0, Name: "plate", Color: "#0000FF"},
		{ID: 1, Name: "character_intact", Color: "#00FF00"},
		{ID: 2, Name: "character_broken", Color: "#FF0000"},
	}
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
		Browser: BrowserConfig{
			ImageDir:       "images",
			LabelDir:       "labels",
			LabelExt:       ".txt",
			Classes:        DefaultClasses(),
			IntactClass:    1,
			BrokenClass:    2,
			FitMargin:      0.9,
			MinViewport:    200,
			ZoomStep:       1.1,
			ZoomMin:        0.2,
			ZoomMax:        5.0,
			ImageCacheSize: 32,
			TableRows:      30,
			Watch:          true,
		},
		Tracker: TrackerConfig{
			Source:          "webcam",
			Device:          0,
			IntervalMs:      10,
			Detector:        "cascade",
			CascadePath:     "haarcascade_frontalface_default.xml",
			ModelsDir:       "models",
			LandmarkScheme:  "dlib5",
			SnapshotPath:    "snapshot.jpg",
			SnapshotQuality: 92,
		},
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	b := &c.Browser
	if b.ImageDir == "" {
		b.ImageDir = "images"
	}
	if b.LabelDir == "" {
		b.LabelDir = "labels"
	}
	if b.LabelExt == "" {
		b.LabelExt = ".txt"
	}
	if b.LabelExt[0] != '.' {
		b.LabelExt = "." + b.LabelExt
	}
	if len(b.Classes) == 0 {
		b.Classes = DefaultClasses()
	}
	if b.FitMargin <= 0 || b.FitMargin > 1 {
		b.FitMargin = 0.9
	}
	if b.MinViewport <= 0 {
		b.MinViewport = 200
	}
	if b.ZoomStep <= 1 {
		b.ZoomStep = 1.1
	}
	if b.ZoomMin <= 0 {
		b.ZoomMin = 0.2
	}
	if b.ZoomMax <= 0 || b.ZoomMax < b.ZoomMin {
		b.ZoomMax = 5.0
		if b.ZoomMax < b.ZoomMin {
			b.ZoomMin = 0.2
		}
	}
	if b.ImageCacheSize <= 0 {
		b.ImageCacheSize = 32
	}
	if b.TableRows <= 0 {
		b.TableRows = 30
	}

	t := &c.Tracker
	if t.Source != "webcam" && t.Source != "screen" {
		t.Source = "webcam"
	}
	if t.Device < 0 {
		t.Device = 0
	}
	if t.IntervalMs <= 0 {
		t.IntervalMs = 10
	}
	if t.Detector != "cascade" && t.Detector != "dlib" {
		t.Detector = "cascade"
	}
	if t.LandmarkScheme == "" {
		t.LandmarkScheme = "dlib5"
	}
	if t.SnapshotPath == "" {
		t.SnapshotPath = "snapshot.jpg"
	}
	if t.SnapshotQuality < 1 || t.SnapshotQuality > 100 {
		t.SnapshotQuality = 92
	}
	if t.RegionW < 0 || t.RegionH < 0 {
		t.RegionW, t.RegionH = 0, 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Environment variables consulted by ApplyEnv.
const (
	EnvImageDir = "PLATE_IMAGE_DIR"
	EnvLabelDir = "PLATE_LABEL_DIR"
	EnvDevice   = "TRACKER_DEVICE"
	EnvSnapshot = "TRACKER_SNAPSHOT"
)

// ApplyEnv loads the optional dotenv files (missing files are ignored) and then
// overrides config fields from the process environment.
func (c *Config) ApplyEnv(files ...string) error {
	var loadErr error
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil && loadErr == nil {
			loadErr = err
		}
	}
	if v := os.Getenv(EnvImageDir); v != "" {
		c.Browser.ImageDir = v
	}
	if v := os.Getenv(EnvLabelDir); v != "" {
		c.Browser.LabelDir = v
	}
	if v := os.Getenv(EnvDevice); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Tracker.Device = n
		}
	}
	if v := os.Getenv(EnvSnapshot); v != "" {
		c.Tracker.SnapshotPath = v
	}
	_ = c.Validate()
	return loadErr
}
