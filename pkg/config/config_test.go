package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-mhdb/pkg/module"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Renderer != "turtle" {
		t.Errorf("expected default renderer turtle, got %s", cfg.Renderer)
	}
	if cfg.Version == "" {
		t.Error("expected a default version")
	}
	if !cfg.Enabled(module.Resources) {
		t.Error("expected resources enabled by default")
	}
	for _, name := range []module.Name{module.States, module.Disorders, module.Assessments, module.Sensors} {
		if cfg.Enabled(name) {
			t.Errorf("expected %s disabled by default", name)
		}
	}
	if got := cfg.EnabledModules(); len(got) != 1 || got[0] != module.Resources {
		t.Errorf("expected [resources], got %v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing version",
			modify:  func(c *Config) { c.Version = "" },
			wantErr: true,
		},
		{
			name:    "missing input",
			modify:  func(c *Config) { c.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output",
			modify:  func(c *Config) { c.Output = "" },
			wantErr: true,
		},
		{
			name:    "missing renderer",
			modify:  func(c *Config) { c.Renderer = "" },
			wantErr: true,
		},
		{
			name:    "unknown module name",
			modify:  func(c *Config) { c.Modules["moods"] = ModuleConfig{Enabled: true} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mhdb.yaml")

	content := `version: "1.2.3"
output: out
modules:
  sensors:
    enabled: true
    doc_id: abc123
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", cfg.Version)
	}
	if cfg.Output != "out" {
		t.Errorf("expected output out, got %s", cfg.Output)
	}
	if !cfg.Enabled(module.Sensors) {
		t.Error("expected sensors enabled")
	}
	if cfg.DocID(module.Sensors) != "abc123" {
		t.Errorf("expected sensors doc_id abc123, got %s", cfg.DocID(module.Sensors))
	}
	// Defaults survive for keys the file does not set.
	if cfg.Renderer != "turtle" {
		t.Errorf("expected default renderer to survive, got %s", cfg.Renderer)
	}
	if !cfg.Enabled(module.Resources) {
		t.Error("expected default resources enable to survive")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "mhdb.yaml")

	cfg := DefaultConfig()
	cfg.Version = "9.9.9"
	cfg.SetEnabled(module.States, true)

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Version != "9.9.9" {
		t.Errorf("expected version 9.9.9, got %s", loaded.Version)
	}
	if !loaded.Enabled(module.States) {
		t.Error("expected states enabled after reload")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Version: "2.0.0",
		Offline: true,
		Modules: map[string]ModuleConfig{
			"resources": {Enabled: false},
		},
	}

	base.Merge(other)

	if base.Version != "2.0.0" {
		t.Errorf("expected merged version 2.0.0, got %s", base.Version)
	}
	if !base.Offline {
		t.Error("expected offline after merge")
	}
	if base.Enabled(module.Resources) {
		t.Error("expected resources disabled after merge")
	}
	if base.Input == "" {
		t.Error("expected base input to survive merge")
	}
}

func TestWorkbookPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "in"
	want := filepath.Join("in", "disorders.xlsx")
	if got := cfg.WorkbookPath(module.Disorders); got != want {
		t.Errorf("WorkbookPath = %s, want %s", got, want)
	}
}
