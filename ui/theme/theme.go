package theme

// Centralized theming for the browser and tracker windows.
// Provides palette snapshots and InitStyles to apply the active mode.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dark palette colors.
const (
	ColorBg        = "#121212" // image side background
	ColorPanel     = "#1A1A1A" // navigation / table panel
	ColorImageBg   = "#000000"
	ColorAccent    = "#FF3333" // buttons, table heading
	ColorAccentHi  = "#FF5555" // selected row
	ColorText      = "#FFFFFF"
	ColorTextMuted = "#9CA3AF"
	ColorError     = "#EF4444"
	ColorIntact    = "#00FF88"
	ColorBroken    = "#FF3333"
	ColorGo        = "#27AE60"
	ColorSnapshot  = "#F39C12"
	ColorQuit      = "#C0392B"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Panel     string
	ImageBg   string
	Accent    string
	Selected  string
	Text      string
	TextMuted string
	Error     string
	Intact    string
	Broken    string
	Go        string
	Snapshot  string
	Quit      string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     ColorBg,
			Panel:     ColorPanel,
			ImageBg:   ColorImageBg,
			Accent:    ColorAccent,
			Selected:  ColorAccentHi,
			Text:      ColorText,
			TextMuted: ColorTextMuted,
			Error:     ColorError,
			Intact:    ColorIntact,
			Broken:    ColorBroken,
			Go:        ColorGo,
			Snapshot:  ColorSnapshot,
			Quit:      ColorQuit,
		}
	}
	return PaletteSnapshot{
		AppBg:     "#f7f9fb",
		Panel:     "#ffffff",
		ImageBg:   "#e5e7eb",
		Accent:    "#2563eb",
		Selected:  "#93c5fd",
		Text:      "#1e293b",
		TextMuted: "#64748b",
		Error:     "#dc2626",
		Intact:    "#059669",
		Broken:    "#dc2626",
		Go:        "#10b981",
		Snapshot:  "#f59e0b",
		Quit:      "#dc2626",
	}
}

// internal flag for current mode; both tools start dark.
var darkMode = true

// InitStyles (re)applies the window background for the current mode.
func InitStyles() { applyStyles() }

// SetDark switches mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles()
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles() {
	App.Configure(Background(CurrentPalette().AppBg))
}
