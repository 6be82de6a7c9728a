package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plo-odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			content: `
log_level = "debug"

calculator {
  samples     = 50000
  workers     = 4
  exact_limit = 20000
}

scenario {
  players      = 3
  hole_cards   = 5
  board_cards  = 4
  max_attempts = 500
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, log.DebugLevel, cfg.Level())
				assert.Equal(t, &CalculatorSettings{Samples: 50000, Workers: 4, ExactLimit: 20000}, cfg.Calculator)
				assert.Equal(t, &ScenarioSettings{Players: 3, HoleCards: 5, BoardCards: 4, MaxAttempts: 500}, cfg.Scenario)
			},
		},
		{
			name:    "empty file",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial calculator block",
			content: `
calculator {
  workers = 8
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSamples, cfg.Calculator.Samples)
				assert.Equal(t, 8, cfg.Calculator.Workers)
				assert.Equal(t, 0, cfg.Calculator.ExactLimit)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				assert.Equal(t, DefaultMaxAttempts, cfg.Scenario.MaxAttempts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			tt.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax error", `calculator {`, "failed to parse HCL file"},
		{"unknown attribute", `colour = "red"`, "failed to decode HCL"},
		{"wrong type", `calculator { samples = "many" }`, "failed to decode HCL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"too few samples", func(c *Config) { c.Calculator.Samples = 10 }, "samples"},
		{"no workers", func(c *Config) { c.Calculator.Workers = 0 }, "workers"},
		{"negative exact limit", func(c *Config) { c.Calculator.ExactLimit = -1 }, "exact_limit"},
		{"too many players", func(c *Config) { c.Scenario.Players = 7 }, "players"},
		{"three hole cards", func(c *Config) { c.Scenario.HoleCards = 3 }, "hole_cards"},
		{"river board", func(c *Config) { c.Scenario.BoardCards = 5 }, "board_cards"},
		{"no attempts", func(c *Config) { c.Scenario.MaxAttempts = -1 }, "max_attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "nonsense"
	assert.Equal(t, log.InfoLevel, cfg.Level())
}
