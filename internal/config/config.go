// Package config loads idgen settings through viper. Every setting has a
// default that reproduces the tool's standard behavior, so no config file or
// environment variable is required.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/papapumpkin/idgen/internal/state"
)

// EnvPrefix is the prefix for environment overrides (IDGEN_STATE_DIR, ...).
const EnvPrefix = "IDGEN"

// Config holds all runtime configuration for one invocation.
// Values are populated from .idgen.yaml, IDGEN_* env vars, and CLI flags.
type Config struct {
	StateDir string `mapstructure:"state_dir"`
	Store    string `mapstructure:"store"`
	History  bool   `mapstructure:"history"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("state_dir", state.DefaultDir)
	viper.SetDefault("store", string(state.KindJSON))
	viper.SetDefault("history", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.StateDir == "" {
		return Config{}, fmt.Errorf("state_dir must not be empty")
	}
	if _, err := state.ParseKind(cfg.Store); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
