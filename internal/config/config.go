// Package config loads optional toolchain configuration from
// .minilangrc.yaml, overriding defaults such as the C compiler used to
// assemble and link generated code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the toolchain settings that .minilangrc.yaml may override.
type Config struct {
	CC           string `yaml:"cc"`             // host C compiler used to assemble+link, default "cc"
	KeepBuildDir bool   `yaml:"keep_build_dir"` // skip cleaning up the temp build directory, for debugging
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{CC: "cc"}
}

// Load reads and parses a YAML config file. A missing file is not an
// error: Default() is returned instead, since minilang works with no
// configuration at all.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.CC == "" {
		cfg.CC = "cc"
	}
	return cfg, nil
}
