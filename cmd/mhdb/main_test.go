package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/internal/prompt"
	"github.com/goliatone/go-mhdb/pkg/config"
	"github.com/goliatone/go-mhdb/pkg/module"
)

type stubDriver struct {
	picked   []string
	err      error
	defaults []string
}

func (d *stubDriver) MultiSelect(_ context.Context, cfg prompt.MultiSelectConfig) ([]string, error) {
	d.defaults = cfg.Defaults
	return d.picked, d.err
}

func TestSelectModules(t *testing.T) {
	cfg := config.DefaultConfig()
	driver := &stubDriver{picked: []string{"states", "sensors"}}

	if err := selectModules(context.Background(), driver, cfg); err != nil {
		t.Fatalf("selectModules: %v", err)
	}

	// the default selection mirrors the config before the prompt
	if diff := cmp.Diff([]string{"resources"}, driver.defaults); diff != "" {
		t.Errorf("prompt defaults (-want +got):\n%s", diff)
	}

	want := []module.Name{module.States, module.Sensors}
	if diff := cmp.Diff(want, cfg.EnabledModules()); diff != "" {
		t.Errorf("enabled modules (-want +got):\n%s", diff)
	}
}

func TestSelectModulesAborted(t *testing.T) {
	cfg := config.DefaultConfig()
	driver := &stubDriver{err: prompt.ErrAborted}

	err := selectModules(context.Background(), driver, cfg)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
	// the config keeps its previous selection on abort
	if diff := cmp.Diff([]module.Name{module.Resources}, cfg.EnabledModules()); diff != "" {
		t.Errorf("enabled modules (-want +got):\n%s", diff)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	want := "mhdb " + config.DefaultConfig().Version + "\n"
	if out.String() != want {
		t.Errorf("version output = %q, want %q", out.String(), want)
	}
}
