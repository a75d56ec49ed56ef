// Package config handles starfield configuration loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/starfield/internal/catalog"
)

// defaultConfigFile is picked up from the working directory when no
// explicit path is given.
const defaultConfigFile = "starfield.yaml"

// Config holds all tool settings.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	URL  string `yaml:"url"`  // remote gzip-compressed catalog
	Path string `yaml:"path"` // local file; takes priority over URL
}

// OutputConfig controls the generated scene file.
type OutputConfig struct {
	Path           string  `yaml:"path"`            // output .glb path
	MagnitudeLimit float64 `yaml:"magnitude_limit"` // drop stars fainter than this; 0 keeps all
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL: catalog.DefaultCatalogURL,
		},
		Output: OutputConfig{
			Path:           "stars.glb",
			MagnitudeLimit: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load merges a yaml config file over the defaults. An explicit path must
// exist; with an empty path the default file is used when present and
// silently skipped otherwise. Flag handling layers on top in main.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
