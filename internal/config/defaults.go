package config

import (
	_ "embed"
)

//go:embed defaults/stalls.yaml
var defaultStallsYAML []byte

//go:embed defaults/stalls.schema.json
var stallsSchemaJSON []byte

// DefaultStallsConfig returns the default stalls configuration.
func DefaultStallsConfig() StallsConfig {
	return StallsConfig{
		Timing: StallsTiming{
			FrameIntervalMS: 100,
		},
		Offers: StallsOffers{
			MaxAttempts: 10000,
		},
		Display: StallsDisplay{
			ScaleX: 8,
			ScaleY: 25,
			Glyphs: map[string]string{
				"wood":  "♣",
				"bread": "◍",
				"stone": "▲",
				"gold":  "●",
				"sheep": "ʘ",
			},
			Sprite: map[string]string{
				"front": "▾",
				"back":  "▴",
				"left":  "◂",
				"right": "▸",
			},
		},
	}
}
