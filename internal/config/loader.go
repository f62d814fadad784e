package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".stalls"

// LoadStalls loads the stalls configuration.
// Search order: customPath -> ~/.stalls/configs/stalls.yaml -> ./configs/stalls.yaml -> embedded default
func LoadStalls(customPath string) (StallsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultStallsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseStalls(data)
		if err != nil {
			return DefaultStallsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stalls.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseStalls(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stalls.yaml"); err == nil {
		if cfg, err := ParseStalls(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseStalls(defaultStallsYAML)
	if err != nil {
		return DefaultStallsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseStalls validates a YAML document against the config schema and
// decodes it over the defaults, so partial documents are allowed.
func ParseStalls(data []byte) (StallsConfig, error) {
	if err := validateStalls(data); err != nil {
		return StallsConfig{}, err
	}

	cfg := DefaultStallsConfig()
	var doc StallsConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return StallsConfig{}, err
	}
	merge(&cfg, doc)
	return cfg, nil
}

// merge copies every field set in src over dst.
func merge(dst *StallsConfig, src StallsConfig) {
	if src.Timing.FrameIntervalMS != 0 {
		dst.Timing.FrameIntervalMS = src.Timing.FrameIntervalMS
	}
	if src.Offers.MaxAttempts != 0 {
		dst.Offers.MaxAttempts = src.Offers.MaxAttempts
	}
	if src.Display.ScaleX != 0 {
		dst.Display.ScaleX = src.Display.ScaleX
	}
	if src.Display.ScaleY != 0 {
		dst.Display.ScaleY = src.Display.ScaleY
	}
	maps.Copy(dst.Display.Glyphs, src.Display.Glyphs)
	maps.Copy(dst.Display.Sprite, src.Display.Sprite)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
