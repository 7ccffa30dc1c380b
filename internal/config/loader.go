package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "crush.yaml"

// LoadCrush loads the game configuration.
// Search order: customPath -> ~/.crush/configs/crush.yaml -> ./configs/crush.yaml -> embedded default
//
// A custom path must exist, parse and validate. Files found in the search
// directories are skipped silently when broken.
func LoadCrush(customPath string) (CrushConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultCrushConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	cfg, err := parse(defaultCrushYAML)
	if err != nil {
		return DefaultCrushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (CrushConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrushConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return CrushConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults, so a file may set only some fields.
func parse(data []byte) (CrushConfig, error) {
	cfg := DefaultCrushConfig()
	cfg.Palette = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrushConfig{}, fmt.Errorf("config: failed to parse yaml: %w", err)
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultCrushConfig().Palette
	}
	if err := cfg.Validate(); err != nil {
		return CrushConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crush", "configs", filename)
}
