// Package config merges the demo CLI's built-in defaults, an optional
// config file, and environment variables into one Config, using
// viper the way niceyeti-tabular's reinforcement package does for its
// training config: a fresh *viper.Viper per load rather than the
// package-level global viper encourages, so nothing here is stateful
// between calls.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every tunable default for the demo CLI. Flags passed on
// the command line take final precedence over whatever Load produces;
// applying that override is cmd/shoraidemo's job, not this package's.
type Config struct {
	Missiles    int     `mapstructure:"missiles"`
	RenderScale float64 `mapstructure:"render_scale"`
	RenderStep  float64 `mapstructure:"render_step"`
	RenderSmear float64 `mapstructure:"render_smear"`
	MaxTime     float64 `mapstructure:"max_time"`
	MaxSteps    int     `mapstructure:"max_steps"`
	StepSize    float64 `mapstructure:"step_size"`
	PawnSize    float64 `mapstructure:"pawn_size"`
	MoveSpeed   float64 `mapstructure:"move_speed"`
	OutDir      string  `mapstructure:"out_dir"`
}

// Defaults gives the demo CLI's built-in flag defaults.
func Defaults() Config {
	return Config{
		Missiles:    0,
		RenderScale: 0.4,
		RenderStep:  0.05,
		RenderSmear: 0,
		MaxTime:     10.0,
		MaxSteps:    10000,
		StepSize:    50.0,
		PawnSize:    55.0,
		MoveSpeed:   325.0,
		OutDir:      "out",
	}
}

// Load builds a *viper.Viper seeded with Defaults, merges configPath on
// top if it's non-empty, and lets SHORAI_-prefixed environment
// variables (e.g. SHORAI_MOVE_SPEED) override both.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("missiles", d.Missiles)
	v.SetDefault("render_scale", d.RenderScale)
	v.SetDefault("render_step", d.RenderStep)
	v.SetDefault("render_smear", d.RenderSmear)
	v.SetDefault("max_time", d.MaxTime)
	v.SetDefault("max_steps", d.MaxSteps)
	v.SetDefault("step_size", d.StepSize)
	v.SetDefault("pawn_size", d.PawnSize)
	v.SetDefault("move_speed", d.MoveSpeed)
	v.SetDefault("out_dir", d.OutDir)

	v.SetEnvPrefix("shorai")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	return v, nil
}

// Unmarshal decodes v into a Config.
func Unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
