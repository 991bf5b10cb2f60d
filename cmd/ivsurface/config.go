// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable, e.g. IVSURFACE_WORKERS.
const envPrefix = "IVSURFACE"

// Config is the tool configuration, read from the environment.
type Config struct {
	// Input is the quotes CSV; "-" reads stdin. A positional argument wins.
	Input string `envconfig:"INPUT" default:"-" validate:"required"`

	// Workers per refinement round; 0 means GOMAXPROCS.
	Workers int `envconfig:"WORKERS" default:"1" validate:"gte=0"`

	Tolerance float64 `envconfig:"TOLERANCE" default:"1e-12" validate:"gte=0"`
	MaxRounds int     `envconfig:"MAX_ROUNDS" default:"10" validate:"gte=1,lte=1000"`
	Fallback  float64 `envconfig:"FALLBACK" default:"0.8" validate:"gt=0"`

	// Repeat solves the batch this many times and reports the mean time.
	Repeat int `envconfig:"REPEAT" default:"1" validate:"gte=1"`
}

// LoadConfig reads the environment and applies args[0] as the input path.
func LoadConfig(args []string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
