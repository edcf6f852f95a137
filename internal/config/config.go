// Package config holds the engine configuration: indentation policy and
// script sandbox limits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the snippet engine.
type Config struct {
	// Indent controls how literal tabs in snippet bodies are rendered.
	Indent IndentConfig `yaml:"indent"`

	// Sandbox controls the Lua script sandbox.
	Sandbox SandboxConfig `yaml:"sandbox"`
}

// IndentConfig mirrors the host editor's indentation settings.
type IndentConfig struct {
	// ExpandTab renders indentation as spaces instead of tab characters.
	ExpandTab bool `yaml:"expand_tab"`

	// TabStop is the display width of a tab character.
	TabStop int `yaml:"tab_stop"`

	// ShiftWidth is the width of one indentation step.
	ShiftWidth int `yaml:"shift_width"`
}

// SandboxConfig limits Lua script execution.
type SandboxConfig struct {
	// InstructionLimit caps instructions per script run. Advisory: gopher-lua
	// does not provide hard enforcement.
	InstructionLimit int64 `yaml:"instruction_limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Indent: IndentConfig{
			ExpandTab:  false,
			TabStop:    8,
			ShiftWidth: 8,
		},
		Sandbox: SandboxConfig{
			InstructionLimit: 10_000_000,
		},
	}
}

// Load reads configuration from a YAML file, applying defaults for any
// omitted fields. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Indent.TabStop <= 0 {
		return fmt.Errorf("indent.tab_stop must be positive, got %d", c.Indent.TabStop)
	}
	if c.Indent.ShiftWidth <= 0 {
		return fmt.Errorf("indent.shift_width must be positive, got %d", c.Indent.ShiftWidth)
	}
	if c.Sandbox.InstructionLimit < 0 {
		return fmt.Errorf("sandbox.instruction_limit must not be negative, got %d", c.Sandbox.InstructionLimit)
	}
	return nil
}
