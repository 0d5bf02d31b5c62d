// Package config loads the optional build configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds file-supplied build settings. Zero values mean "unspecified";
// command-line flags take precedence over everything here.
type Config struct {
	SharedGGML bool     `json:"shared_ggml" yaml:"shared_ggml" toml:"shared_ggml"`
	Features   []string `json:"features" yaml:"features" toml:"features"`
	Debug      bool     `json:"debug" yaml:"debug" toml:"debug"`
	SourceDir  string   `json:"source_dir" yaml:"source_dir" toml:"source_dir"`
	Tag        string   `json:"tag" yaml:"tag" toml:"tag"`
	BuildDir   string   `json:"build_dir" yaml:"build_dir" toml:"build_dir"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
