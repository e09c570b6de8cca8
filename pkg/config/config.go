// Package config provides run configuration for the mhdb pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mhdb/pkg/module"
)

// ModuleConfig controls a single data module.
type ModuleConfig struct {
	// Enabled turns the module's pipeline on.
	Enabled bool `yaml:"enabled"`
	// DocID is the remote spreadsheet identifier. Empty means the module is
	// loaded from its local workbook file only.
	DocID string `yaml:"doc_id"`
}

// Config represents the complete mhdb run configuration.
type Config struct {
	// Version is embedded verbatim into every emitted document header.
	Version string `yaml:"version"`
	// Input is the directory holding the workbook files (<module>.xlsx).
	Input string `yaml:"input"`
	// Output is the directory the Turtle documents are written to.
	Output string `yaml:"output"`
	// Renderer names the registered statement-map renderer to use.
	Renderer string `yaml:"renderer"`
	// Offline skips all remote fetches and reads workbooks from Input only.
	Offline bool `yaml:"offline"`
	// FetchTimeout bounds each remote spreadsheet download.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// Modules holds the per-module switches keyed by module name.
	Modules map[string]ModuleConfig `yaml:"modules"`
}

// DefaultConfig returns a Config with the observed defaults: resources is the
// only enabled module.
func DefaultConfig() *Config {
	modules := make(map[string]ModuleConfig, len(module.Names()))
	for _, name := range module.Names() {
		modules[string(name)] = ModuleConfig{Enabled: name == module.Resources}
	}
	return &Config{
		Version:      "0.3.0",
		Input:        filepath.Join("..", "input"),
		Output:       filepath.Join("..", "output"),
		Renderer:     "turtle",
		FetchTimeout: 30 * time.Second,
		Modules:      modules,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.Input == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Renderer == "" {
		return fmt.Errorf("renderer is required")
	}
	for name := range c.Modules {
		if _, err := module.Parse(name); err != nil {
			return fmt.Errorf("modules: %w", err)
		}
	}
	return nil
}

// Enabled reports whether the named module should run.
func (c *Config) Enabled(name module.Name) bool {
	mc, ok := c.Modules[string(name)]
	return ok && mc.Enabled
}

// DocID returns the remote spreadsheet identifier for the named module.
func (c *Config) DocID(name module.Name) string {
	return c.Modules[string(name)].DocID
}

// EnabledModules returns the enabled module names in canonical run order.
func (c *Config) EnabledModules() []module.Name {
	var names []module.Name
	for _, name := range module.Names() {
		if c.Enabled(name) {
			names = append(names, name)
		}
	}
	return names
}

// SetEnabled flips the named module's enable switch, creating its entry when
// missing.
func (c *Config) SetEnabled(name module.Name, enabled bool) {
	if c.Modules == nil {
		c.Modules = make(map[string]ModuleConfig)
	}
	mc := c.Modules[string(name)]
	mc.Enabled = enabled
	c.Modules[string(name)] = mc
}

// WorkbookPath returns the local workbook file for the named module.
func (c *Config) WorkbookPath(name module.Name) string {
	return filepath.Join(c.Input, string(name)+".xlsx")
}

// LoadFromFile loads configuration from a YAML file layered over the
// defaults.
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

	if other.Version != "" {
		c.Version = other.Version
	}
	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Renderer != "" {
		c.Renderer = other.Renderer
	}
	if other.Offline {
		c.Offline = true
	}
	if other.FetchTimeout != 0 {
		c.FetchTimeout = other.FetchTimeout
	}
	for name, mc := range other.Modules {
		if c.Modules == nil {
			c.Modules = make(map[string]ModuleConfig)
		}
		c.Modules[name] = mc
	}
}
