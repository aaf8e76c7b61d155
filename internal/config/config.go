// Package config provides Viper-based configuration loading for the Mirefall
// combat tools. Combat tuning constants are deliberately NOT configurable:
// they live as code in the combat package because their exact values are a
// compatibility contract.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// SimulationConfig holds the combat simulator settings.
type SimulationConfig struct {
	// Seed seeds the deterministic roll source; 0 selects crypto randomness.
	Seed int64 `mapstructure:"seed"`
	// Encounters is the number of encounters to simulate.
	Encounters int `mapstructure:"encounters"`
	// FOVRange is the attacker field-of-view range in tiles.
	FOVRange int `mapstructure:"fov_range"`
	// ArenaWidth and ArenaHeight size the simulated dungeon grid.
	ArenaWidth  int `mapstructure:"arena_width"`
	ArenaHeight int `mapstructure:"arena_height"`
	// WallChance is the probability in [0, 1) that a tile is a wall.
	WallChance float64 `mapstructure:"wall_chance"`
	// StatusTicks is how many status-effect ticks run after each encounter.
	StatusTicks int `mapstructure:"status_ticks"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	if l.Format != "json" && l.Format != "console" {
		errs = append(errs, fmt.Sprintf("logging.format must be json or console, got %q", l.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Encounters < 1 {
		errs = append(errs, fmt.Sprintf("simulation.encounters must be >= 1, got %d", s.Encounters))
	}
	if s.FOVRange < 0 {
		errs = append(errs, fmt.Sprintf("simulation.fov_range must not be negative, got %d", s.FOVRange))
	}
	if s.ArenaWidth < 2 || s.ArenaHeight < 2 {
		errs = append(errs, fmt.Sprintf("simulation arena must be at least 2x2, got %dx%d", s.ArenaWidth, s.ArenaHeight))
	}
	if s.WallChance < 0 || s.WallChance >= 1 {
		errs = append(errs, fmt.Sprintf("simulation.wall_chance must be in [0, 1), got %g", s.WallChance))
	}
	if s.StatusTicks < 0 {
		errs = append(errs, fmt.Sprintf("simulation.status_ticks must not be negative, got %d", s.StatusTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from path, applying defaults and MIREFALL_
// environment overrides.
//
// Precondition: path must point to a readable config file.
// Postcondition: Returns a validated Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with MIREFALL_ prefix
	v.SetEnvPrefix("MIREFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration used when no file is supplied.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config: built-in defaults failed validation: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.encounters", 10)
	v.SetDefault("simulation.fov_range", 8)
	v.SetDefault("simulation.arena_width", 24)
	v.SetDefault("simulation.arena_height", 16)
	v.SetDefault("simulation.wall_chance", 0.12)
	v.SetDefault("simulation.status_ticks", 3)
}
