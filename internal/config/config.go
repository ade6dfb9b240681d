package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/claimstats/internal/projection"
)

// Config holds all runtime configuration for a claimstats run.
type Config struct {
	FilePath   string
	Format     string // "csv", "xlsx", or "parquet"; empty = infer from extension
	OutputPath string // report destination; empty = stdout
	LogFormat  string // "text" or "json"

	// Assumptions feed the projection engine. Zero fields fall back to
	// projection.Defaults, so a partial config file is fine.
	Assumptions projection.Assumptions
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Assumptions projection.Assumptions `yaml:"assumptions"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Assumptions = yc.Assumptions
	return c.validateAssumptions()
}

// validateAssumptions rejects values that would break the projection math.
func (c *Config) validateAssumptions() error {
	a := c.Assumptions
	if a.TargetDenialRate < 0 || a.TargetDenialRate > 100 {
		return fmt.Errorf("target_denial_rate must be within [0, 100], got %v", a.TargetDenialRate)
	}
	if a.CostOfCapital < 0 || a.CostOfCapital > 1 {
		return fmt.Errorf("cost_of_capital must be within [0, 1], got %v", a.CostOfCapital)
	}
	if a.EfficiencyRate < 0 || a.EfficiencyRate > 1 {
		return fmt.Errorf("efficiency_rate must be within [0, 1], got %v", a.EfficiencyRate)
	}
	if a.ROIMultiple < 0 {
		return fmt.Errorf("roi_multiple must be non-negative, got %v", a.ROIMultiple)
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}
