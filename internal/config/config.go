// Package config loads the snograph.yaml configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snograph/snograph/graph"
)

// Config is the snograph.yaml configuration file.
type Config struct {
	// StatedPath is the RF2 stated relationship snapshot file.
	StatedPath string `yaml:"stated_path"`

	// InferredPath is the RF2 inferred relationship snapshot file.
	InferredPath string `yaml:"inferred_path"`

	// HashNamespace seeds the group content hash. Defaults to
	// graph.DefaultHashNamespace; override only to partition hash spaces
	// between unrelated runs.
	HashNamespace string `yaml:"hash_namespace,omitempty"`

	// IsATypeID overrides the relationship type treated as is-a.
	// Zero means the standard SNOMED CT is-a type.
	IsATypeID int64 `yaml:"isa_type_id,omitempty"`

	// ReportPath receives the orphan report as TSV. Empty means report to
	// the log only.
	ReportPath string `yaml:"report_path,omitempty"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug,omitempty"`

	// Trace enables span export for the load and verification phases.
	Trace bool `yaml:"trace,omitempty"`
}

// Load reads and parses a snograph.yaml file from the given path and
// applies defaults. Validation failures and unreadable files surface as
// errors; a missing optional field does not.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HashNamespace == "" {
		c.HashNamespace = graph.DefaultHashNamespace
	}
}

// Validate checks that the configuration names both input files.
func (c *Config) Validate() error {
	if c.StatedPath == "" {
		return fmt.Errorf("stated_path is required")
	}
	if c.InferredPath == "" {
		return fmt.Errorf("inferred_path is required")
	}
	if c.IsATypeID < 0 {
		return fmt.Errorf("isa_type_id must not be negative")
	}
	return nil
}
