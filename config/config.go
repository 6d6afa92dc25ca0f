/*
Package config loads server configuration from the environment.

PURPOSE:
  Centralizes the few knobs the server has: listen address and the
  default grid parameters used when a request omits them. Values come
  from WORTH_* environment variables with sensible defaults; the -port
  flag in cmd/server can still override the address.

ENVIRONMENT:
  WORTH_ADDRESS          Listen address (default ":8080")
  WORTH_DEFAULT_SALARY   Salary used when a request omits one (default 100000)
  WORTH_DEFAULT_PERIOD   "annual" or "monthly" (default "annual")
  WORTH_DEFAULT_MODE     "money" or "time" (default "money")
  WORTH_CURRENCY_SYMBOL  Currency prefix (default "$")

SEE ALSO:
  - cmd/server/main.go: Flag overrides and startup
  - api/handlers.go: Consumes the grid defaults
*/
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all server configuration.
type Config struct {
	Service *svcConfig
	Grid    *gridConfig
}

type svcConfig struct {
	Address string `envconfig:"WORTH_ADDRESS" default:":8080"`
}

type gridConfig struct {
	DefaultSalary  float64 `envconfig:"WORTH_DEFAULT_SALARY" default:"100000"`
	DefaultPeriod  string  `envconfig:"WORTH_DEFAULT_PERIOD" default:"annual"`
	DefaultMode    string  `envconfig:"WORTH_DEFAULT_MODE" default:"money"`
	CurrencySymbol string  `envconfig:"WORTH_CURRENCY_SYMBOL" default:"$"`
}

// New processes the environment into a Config.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
