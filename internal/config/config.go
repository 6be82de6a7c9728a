// Package config loads the plo-odds HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultSamples     = 30000
	DefaultWorkers     = 1
	DefaultLogLevel    = "info"
	DefaultPlayers     = 2
	DefaultHoleCards   = 4
	DefaultBoardCards  = 3
	DefaultMaxAttempts = 200
)

// Config represents the complete plo-odds configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Calculator *CalculatorSettings `hcl:"calculator,block"`
	Scenario   *ScenarioSettings   `hcl:"scenario,block"`
}

// CalculatorSettings configures the equity calculator
type CalculatorSettings struct {
	Samples    int `hcl:"samples,optional"`
	Workers    int `hcl:"workers,optional"`
	ExactLimit int `hcl:"exact_limit,optional"`
}

// ScenarioSettings configures random deals
type ScenarioSettings struct {
	Players     int `hcl:"players,optional"`
	HoleCards   int `hcl:"hole_cards,optional"`
	BoardCards  int `hcl:"board_cards,optional"`
	MaxAttempts int `hcl:"max_attempts,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Calculator: &CalculatorSettings{
			Samples: DefaultSamples,
			Workers: DefaultWorkers,
		},
		Scenario: &ScenarioSettings{
			Players:     DefaultPlayers,
			HoleCards:   DefaultHoleCards,
			BoardCards:  DefaultBoardCards,
			MaxAttempts: DefaultMaxAttempts,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults, and so does any setting left out of the file.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.Calculator == nil {
		c.Calculator = &CalculatorSettings{}
	}
	if c.Calculator.Samples == 0 {
		c.Calculator.Samples = DefaultSamples
	}
	if c.Calculator.Workers == 0 {
		c.Calculator.Workers = DefaultWorkers
	}

	if c.Scenario == nil {
		c.Scenario = &ScenarioSettings{}
	}
	if c.Scenario.Players == 0 {
		c.Scenario.Players = DefaultPlayers
	}
	if c.Scenario.HoleCards == 0 {
		c.Scenario.HoleCards = DefaultHoleCards
	}
	if c.Scenario.BoardCards == 0 {
		c.Scenario.BoardCards = DefaultBoardCards
	}
	if c.Scenario.MaxAttempts == 0 {
		c.Scenario.MaxAttempts = DefaultMaxAttempts
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Calculator.Samples < 100 {
		return fmt.Errorf("calculator: samples must be at least 100, got %d", c.Calculator.Samples)
	}
	if c.Calculator.Workers < 1 {
		return fmt.Errorf("calculator: workers must be positive, got %d", c.Calculator.Workers)
	}
	if c.Calculator.ExactLimit < 0 {
		return fmt.Errorf("calculator: exact_limit must not be negative, got %d", c.Calculator.ExactLimit)
	}
	if c.Scenario.Players < 2 || c.Scenario.Players > 6 {
		return fmt.Errorf("scenario: players must be between 2 and 6, got %d", c.Scenario.Players)
	}
	if c.Scenario.HoleCards < 4 || c.Scenario.HoleCards > 6 {
		return fmt.Errorf("scenario: hole_cards must be between 4 and 6, got %d", c.Scenario.HoleCards)
	}
	if c.Scenario.BoardCards != 3 && c.Scenario.BoardCards != 4 {
		return fmt.Errorf("scenario: board_cards must be 3 or 4, got %d", c.Scenario.BoardCards)
	}
	if c.Scenario.MaxAttempts < 1 {
		return fmt.Errorf("scenario: max_attempts must be positive, got %d", c.Scenario.MaxAttempts)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
