// SPDX-License-Identifier: MIT

// Package config holds session settings for the mststep CLI: algorithm,
// Prim start vertex, auto-run speed, generated matrix size and a step cap.
// Settings come from Default, optionally overlaid by a YAML file, then by
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/mststep/engine"
	"github.com/katalvlaran/mststep/matrix"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the session configuration.
type Config struct {
	Algorithm   string `json:"algorithm"`
	StartVertex int    `json:"startVertex"`
	SpeedMS     int    `json:"speedMs"`
	MatrixSize  int    `json:"matrixSize"`
	MaxSteps    int    `json:"maxSteps"`
	LogLevel    string `json:"logLevel"`
}

// Default returns the visualizer's initial settings.
func Default() Config {
	return Config{
		Algorithm:  string(prim_kruskal.MethodKruskal),
		SpeedMS:    500,
		MatrixSize: 4,
		LogLevel:   "info",
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field's domain.
func (c Config) Validate() error {
	if _, err := prim_kruskal.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %v", ErrInvalidConfig, err)
	}
	if c.StartVertex < 0 {
		return fmt.Errorf("%w: startVertex %d < 0", ErrInvalidConfig, c.StartVertex)
	}
	if c.SpeedMS < engine.MinSpeedMS || c.SpeedMS > engine.MaxSpeedMS || c.SpeedMS%engine.SpeedStepMS != 0 {
		return fmt.Errorf("%w: speedMs %d not in [%d,%d] step %d",
			ErrInvalidConfig, c.SpeedMS, engine.MinSpeedMS, engine.MaxSpeedMS, engine.SpeedStepMS)
	}
	if err := matrix.ValidateSize(c.MatrixSize); err != nil {
		return fmt.Errorf("%w: matrixSize: %v", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: logLevel: %v", ErrInvalidConfig, err)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: maxSteps %d < 0", ErrInvalidConfig, c.MaxSteps)
	}

	return nil
}

// Interval returns the auto-run delay between steps.
func (c Config) Interval() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// Method returns the parsed algorithm; call after Validate.
func (c Config) Method() prim_kruskal.Algorithm {
	a, _ := prim_kruskal.ParseAlgorithm(c.Algorithm)

	return a
}
