/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mojibox/mojibox/pkg/dump"
	"github.com/mojibox/mojibox/pkg/escape"
	"github.com/mojibox/mojibox/pkg/hexcodec"
	"github.com/mojibox/mojibox/pkg/scrub"
	"github.com/mojibox/mojibox/pkg/segment"
)

// Config holds the mojibox CLI and server defaults.
type Config struct {
	Hex     Hex     `yaml:"hex"`
	Escape  Escape  `yaml:"escape"`
	Segment Segment `yaml:"segment"`
	Dump    Dump    `yaml:"dump"`
	Scrub   Scrub   `yaml:"scrub"`
	Server  Server  `yaml:"server"`
}

// Hex configures bin2hex defaults.
type Hex struct {
	Lower  bool   `yaml:"lower"`
	Format string `yaml:"format"`
}

// Escape configures escape defaults.
type Escape struct {
	Format string `yaml:"format"`
}

// Segment configures iter/len/take/drop defaults.
type Segment struct {
	Mode   string `yaml:"mode"`
	Engine string `yaml:"engine"`
}

// Dump configures dump defaults.
type Dump struct {
	Format string `yaml:"format"`
}

// Scrub configures scrub defaults.
type Scrub struct {
	InputFormat string `yaml:"input_format"`
}

// Server configures the REST API server.
type Server struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hex:     Hex{Lower: false, Format: "default"},
		Escape:  Escape{Format: "default"},
		Segment: Segment{Mode: "grapheme", Engine: "runeseg"},
		Dump:    Dump{Format: "text"},
		Scrub:   Scrub{InputFormat: "binary"},
		Server:  Server{Bind: "127.0.0.1", Port: 8080},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every named format, mode, and engine is known.
func (c *Config) Validate() error {
	if _, err := hexcodec.ParseFormat(c.Hex.Format); err != nil {
		return fmt.Errorf("hex.format: %w", err)
	}
	if _, err := escape.ParseFormat(c.Escape.Format); err != nil {
		return fmt.Errorf("escape.format: %w", err)
	}
	if _, err := segment.ParseMode(c.Segment.Mode); err != nil {
		return fmt.Errorf("segment.mode: %w", err)
	}
	if _, err := segment.ParseEngine(c.Segment.Engine); err != nil {
		return fmt.Errorf("segment.engine: %w", err)
	}
	if _, err := dump.ParseFormat(c.Dump.Format); err != nil {
		return fmt.Errorf("dump.format: %w", err)
	}
	if _, err := scrub.ParseSourceFormat(c.Scrub.InputFormat); err != nil {
		return fmt.Errorf("scrub.input_format: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./mojibox.yaml"
	}
	return filepath.Join(homeDir, ".config", "mojibox", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
