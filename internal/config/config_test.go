package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Indent.TabStop != 8 {
		t.Errorf("TabStop = %d, want 8", cfg.Indent.TabStop)
	}
	if cfg.Indent.ExpandTab {
		t.Error("ExpandTab default = true, want false")
	}
	if cfg.Sandbox.InstructionLimit != 10_000_000 {
		t.Errorf("InstructionLimit = %d, want 10000000", cfg.Sandbox.InstructionLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Indent.TabStop != 8 {
		t.Errorf("TabStop = %d, want default 8", cfg.Indent.TabStop)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "indent:\n  expand_tab: true\n  tab_stop: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Indent.ExpandTab {
		t.Error("ExpandTab not overridden")
	}
	if cfg.Indent.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", cfg.Indent.TabStop)
	}
	// Untouched sections keep their defaults.
	if cfg.Indent.ShiftWidth != 8 {
		t.Errorf("ShiftWidth = %d, want default 8", cfg.Indent.ShiftWidth)
	}
	if cfg.Sandbox.InstructionLimit != 10_000_000 {
		t.Errorf("InstructionLimit = %d, want default", cfg.Sandbox.InstructionLimit)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "indent:\n  tab_stop: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with zero tab_stop succeeded, want error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("indent: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with malformed YAML succeeded, want error")
	}
}
