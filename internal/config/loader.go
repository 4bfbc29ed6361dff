package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name configs that did not come from disk.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration for a scene.
// Search order: customPath -> ~/.pixelterm/configs/<scene>.yaml ->
// ./configs/<scene>.yaml -> embedded default -> DefaultConfig.
// Files on disk are overlaid on the embedded default, so they only need the
// keys they change. It returns where the overlay came from.
func Load(scene, customPath string) (Config, string, error) {
	base := DefaultConfig()
	source := SourceBuiltin
	if data, err := fs.ReadFile(defaultFiles, "defaults/"+scene+".yaml"); err == nil {
		if err := yaml.Unmarshal(data, &base); err != nil {
			return Config{}, "", fmt.Errorf("config: embedded %s.yaml: %w", scene, err)
		}
		source = SourceEmbedded
	}

	cfg, from, err := overlay(base, scene+".yaml", customPath)
	if err != nil {
		return Config{}, "", err
	}
	if from != "" {
		source = from
	}
	return cfg, source, nil
}

// LoadSheet loads the sprite sheet definition.
// Search order matches Load, with sprites.yaml as the file name.
func LoadSheet(customPath string) (SheetConfig, string, error) {
	var base SheetConfig
	data, err := fs.ReadFile(defaultFiles, "defaults/sprites.yaml")
	if err != nil {
		return SheetConfig{}, "", fmt.Errorf("config: embedded sprites.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return SheetConfig{}, "", fmt.Errorf("config: embedded sprites.yaml: %w", err)
	}

	// Sheets replace rather than merge: a custom file defines every sprite.
	cfg, from, err := overlay(SheetConfig{}, "sprites.yaml", customPath)
	if err != nil {
		return SheetConfig{}, "", err
	}
	if from == "" {
		return base, SourceEmbedded, nil
	}
	return cfg, from, nil
}

// overlay unmarshals the first readable config file over base. A custom
// path must load; user and local files are skipped when missing or broken.
// The returned source is empty when no file was found.
func overlay[T any](base T, filename, customPath string) (T, string, error) {
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, path, nil
		}
	}

	return base, "", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixelterm", "configs", filename)
}
