package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swkovma/isitworththetime/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Service.Address)
	assert.Equal(t, 100_000.0, cfg.Grid.DefaultSalary)
	assert.Equal(t, "annual", cfg.Grid.DefaultPeriod)
	assert.Equal(t, "money", cfg.Grid.DefaultMode)
	assert.Equal(t, "$", cfg.Grid.CurrencySymbol)
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WORTH_ADDRESS", ":3000")
	t.Setenv("WORTH_DEFAULT_SALARY", "250000")
	t.Setenv("WORTH_CURRENCY_SYMBOL", "£")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Service.Address)
	assert.Equal(t, 250_000.0, cfg.Grid.DefaultSalary)
	assert.Equal(t, "£", cfg.Grid.CurrencySymbol)
}
