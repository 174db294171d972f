// Package config provides configuration loading and management for the
// reasoning core.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semreason/ingest"
	"github.com/c360studio/semreason/reasoner"
)

// Config tunes ontology ingestion and reasoning. Every field has a working
// default; a config file only needs the values it overrides.
type Config struct {
	Ingest IngestConfig `yaml:"ingest"`
	Reason ReasonConfig `yaml:"reason"`
}

// IngestConfig configures the semstreams ingestion adapter.
type IngestConfig struct {
	// MinConfidence drops extracted statements below this confidence
	// (0.0-1.0, default: 0 keeps everything).
	MinConfidence float64 `yaml:"min_confidence"`
}

// ReasonConfig configures the inheritance service.
type ReasonConfig struct {
	// ParentFanout caps concurrent cache warming (default: 10).
	ParentFanout int `yaml:"parent_fanout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ingest: IngestConfig{
			MinConfidence: 0,
		},
		Reason: ReasonConfig{
			ParentFanout: 10,
		},
	}
}

// IngestOptions translates the ingest section into adapter options. The
// logger is left for the caller to supply.
func (c *Config) IngestOptions() ingest.Options {
	return ingest.Options{
		MinConfidence: c.Ingest.MinConfidence,
	}
}

// ReasonOptions translates the reason section into service options.
func (c *Config) ReasonOptions() reasoner.Options {
	return reasoner.Options{
		ParentFanout: c.Reason.ParentFanout,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Ingest.MinConfidence < 0 || c.Ingest.MinConfidence > 1 {
		return fmt.Errorf("ingest.min_confidence must be between 0 and 1, got %g", c.Ingest.MinConfidence)
	}
	if c.Reason.ParentFanout < 1 {
		return fmt.Errorf("reason.parent_fanout must be positive, got %d", c.Reason.ParentFanout)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Ingest.MinConfidence != 0 {
		c.Ingest.MinConfidence = other.Ingest.MinConfidence
	}
	if other.Reason.ParentFanout != 0 {
		c.Reason.ParentFanout = other.Reason.ParentFanout
	}
}
