// Package config provides YAML-based game configuration loading and
// validation for the stalls game.
package config

import (
	"time"
	"unicode/utf8"
)

// StallsConfig contains all configuration for the stalls game.
type StallsConfig struct {
	Timing  StallsTiming  `yaml:"timing"`
	Offers  StallsOffers  `yaml:"offers"`
	Display StallsDisplay `yaml:"display"`
}

// StallsTiming defines playback pacing.
type StallsTiming struct {
	FrameIntervalMS int `yaml:"frame_interval_ms"` // delay between two walk samples
}

// StallsOffers defines offer generation limits.
type StallsOffers struct {
	MaxAttempts int `yaml:"max_attempts"` // dead-offer re-roll cap
}

// StallsDisplay defines how layout pixels and sprites map onto cells.
type StallsDisplay struct {
	ScaleX int               `yaml:"scale_x"` // layout pixels per column
	ScaleY int               `yaml:"scale_y"` // layout pixels per row
	Glyphs map[string]string `yaml:"glyphs"`  // resource name -> glyph
	Sprite map[string]string `yaml:"sprite"`  // direction name -> glyph
}

// FrameInterval returns the playback delay as a duration.
func (c StallsConfig) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameIntervalMS) * time.Millisecond
}

// Glyph returns the glyph for a resource name, or '?' when none is set.
func (d StallsDisplay) Glyph(name string) rune {
	return firstRune(d.Glyphs[name], '?')
}

// SpriteGlyph returns the sprite glyph for a direction name.
func (d StallsDisplay) SpriteGlyph(dir string) rune {
	return firstRune(d.Sprite[dir], '@')
}

func firstRune(s string, fallback rune) rune {
	if s == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
