/*
Package factory provides JSON to Go grid configuration conversion.

PURPOSE:
  Converts JSON grid configurations into validated grid.Config values.
  This is the boundary where raw client input (API bodies, scenario
  presets) becomes typed engine input with defaults applied.

WHY JSON?
  - Scenario presets live as data, not code
  - Easy integration with a frontend settings panel
  - The API POST body uses the same schema

JSON SCHEMA:
  {
    "salary": 100000,
    "period": "annual",          // or "monthly" (default: annual)
    "mode": "money",             // or "time"    (default: money)
    "currency_symbol": "$"       // default: "$"
  }

VALIDATION:
  Unknown period or mode strings are errors. Salary is NOT validated
  here: non-positive salaries are legal input and the engine's display
  policy handles them (placeholder cells), so the factory passes them
  through untouched.

USAGE:
  factory := NewConfigFactory()
  cfg, err := factory.ParseConfig(jsonString)
  g := grid.Build(cfg)

SEE ALSO:
  - grid/grid.go: The Config consumer
  - api/scenarios.go: Preset configurations expressed in this schema
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/swkovma/isitworththetime/grid"
	"github.com/swkovma/isitworththetime/worth"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// GridConfigJSON is the JSON representation of a grid configuration.
type GridConfigJSON struct {
	Salary float64 `json:"salary"`
	Period string  `json:"period,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	Symbol string  `json:"currency_symbol,omitempty"`
}

// =============================================================================
// FACTORY
// =============================================================================

// ConfigFactory converts JSON configurations to grid.Config.
type ConfigFactory struct{}

// NewConfigFactory creates a new config factory.
func NewConfigFactory() *ConfigFactory {
	return &ConfigFactory{}
}

// ParseConfig parses a JSON string into a validated grid.Config.
func (f *ConfigFactory) ParseConfig(raw string) (grid.Config, error) {
	var cfg GridConfigJSON
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return grid.Config{}, fmt.Errorf("invalid config JSON: %w", err)
	}
	return f.FromJSON(cfg)
}

// FromJSON validates a decoded configuration and applies defaults.
func (f *ConfigFactory) FromJSON(cfg GridConfigJSON) (grid.Config, error) {
	period, err := parsePeriod(cfg.Period)
	if err != nil {
		return grid.Config{}, err
	}

	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return grid.Config{}, err
	}

	symbol := cfg.Symbol
	if symbol == "" {
		symbol = "$"
	}

	return grid.Config{
		Salary: cfg.Salary,
		Period: period,
		Mode:   mode,
		Symbol: symbol,
	}, nil
}

// =============================================================================
// ENUM PARSING
// =============================================================================

func parsePeriod(s string) (worth.Period, error) {
	switch s {
	case "", string(worth.PeriodAnnual):
		return worth.PeriodAnnual, nil
	case string(worth.PeriodMonthly):
		return worth.PeriodMonthly, nil
	default:
		return "", fmt.Errorf("unknown period %q (want %q or %q)",
			s, worth.PeriodAnnual, worth.PeriodMonthly)
	}
}

func parseMode(s string) (worth.DisplayMode, error) {
	switch s {
	case "", string(worth.ModeMoney):
		return worth.ModeMoney, nil
	case string(worth.ModeTime):
		return worth.ModeTime, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)",
			s, worth.ModeMoney, worth.ModeTime)
	}
}
