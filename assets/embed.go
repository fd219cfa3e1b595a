package assets

import (
	_ "embed"
)

// LandmarkSchemesJSON holds the named landmark index presets (nose tip and eye
// contour indices) for the supported face landmark estimators.
//
//go:embed landmark_schemes.json
var LandmarkSchemesJSON []byte
