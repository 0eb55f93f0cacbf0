package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration for a game into a copy of fallback, so
// fields absent from the YAML keep their hardcoded values.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default -> fallback.
// Only an unreadable or invalid customPath is an error; other sources are
// skipped when missing or broken.
func Load[T any](name, customPath string, fallback T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	for _, p := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if data := DefaultYAML(name); data != nil {
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal[T any](cfg T) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
