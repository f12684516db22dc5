// Package config handles the global readpaper configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the global configuration stored in
// $XDG_CONFIG_HOME/readpaper/config.yml.
type Config struct {
	// Email is sent with Crossref and NCBI requests (polite pool).
	Email string `yaml:"email,omitempty"`
	// PDFReader selects the viewer for the open command:
	// system, skim, preview, zathura, evince, okular.
	PDFReader string `yaml:"pdf_reader,omitempty"`
	// ExifTool overrides the exiftool binary path.
	ExifTool string `yaml:"exiftool,omitempty"`
	// DisableCache turns off the SQLite sidecar mirror.
	DisableCache bool `yaml:"disable_cache,omitempty"`
}

const (
	configDir  = "readpaper"
	configFile = "config.yml"
)

// ValidReaders lists the supported pdf_reader values.
var ValidReaders = []string{"system", "skim", "preview", "zathura", "evince", "okular"}

// Path returns the global config file path. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/readpaper/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDir, configFile)
}

// Load reads the global config. A missing file yields an empty config,
// not an error. READPAPER_EMAIL overrides the file's email.
func Load() (*Config, error) {
	var cfg Config

	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if email := os.Getenv("READPAPER_EMAIL"); email != "" {
		cfg.Email = email
	}
	return &cfg, nil
}

// Save writes the config, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ValidateReader checks a pdf_reader value. Empty defaults to "system".
func ValidateReader(reader string) error {
	if reader == "" {
		return nil
	}
	for _, valid := range ValidReaders {
		if reader == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid pdf_reader: %s (valid: %v)", reader, ValidReaders)
}
