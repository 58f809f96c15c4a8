package main

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/system"
)

func TestValidateSetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"color mode", "COLOR", "never", false},
		{"bad color mode", "COLOR", "blue", true},
		{"confirm truncate", "CONFIRM_TRUNCATE", "false", false},
		{"bad boolean", "CONFIRM_TRUNCATE", "nope", true},
		{"default layout", "DEFAULT_LAYOUT", "/etc/fsprov/layout.yaml", false},
		{"empty marker dir", "MARKER_DIR", " ", true},
		{"unknown key", "LOG_LEVEL", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSetting(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSetting(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"create-folder", "mkdir", "create-file", "touch", "apply", "config", "version", "menu", "status", "reset"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("command %q not registered (err = %v)", name, err)
		}
	}
}

func TestSettingLines(t *testing.T) {
	cfg := config.New("/fsprov.conf", system.NewProvisionerWithFs(afero.NewMemMapFs()))
	if err := cfg.Set(config.KeyColor, "never"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cfg.Set("EXTRA_KEY", "kept"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	expected := []string{
		"COLOR=never",
		"CONFIG_VERSION=1  (default)",
		"CONFIRM_TRUNCATE=true  (default)",
		"DEFAULT_LAYOUT=  (default)",
		"EXTRA_KEY=kept",
		"MARKER_DIR=  (default)",
	}

	got := settingLines(cfg)
	if len(got) != len(expected) {
		t.Fatalf("settingLines() = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("settingLines()[%d] = %q, want %q", i, got[i], expected[i])
		}
	}
}
