package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "library-engine", cfg.App.Name)
	assert.Equal(t, 14, cfg.Policy.LoanPeriodDays)
	assert.Equal(t, 2, cfg.Policy.RenewalLimit)
	assert.True(t, cfg.Policy.DailyFine.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, cfg.Policy.MaxFine.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, 3, cfg.Policy.HoldExpiryDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOAN_PERIOD_DAYS", "21")
	t.Setenv("DAILY_FINE", "1.75")
	t.Setenv("STUDENT_LOAN_LIMIT", "6")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Policy.LoanPeriodDays)
	assert.True(t, cfg.Policy.DailyFine.Equal(decimal.RequireFromString("1.75")))
	assert.Equal(t, 6, cfg.Policy.StudentLoanLimit)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("RENEWAL_LIMIT", "often")
	t.Setenv("MAX_FINE", "lots")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Policy.RenewalLimit)
	assert.True(t, cfg.Policy.MaxFine.Equal(decimal.RequireFromString("50.00")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero loan period", func(c *config.Config) { c.Policy.LoanPeriodDays = 0 }},
		{"negative renewal limit", func(c *config.Config) { c.Policy.RenewalLimit = -1 }},
		{"zero hold expiry", func(c *config.Config) { c.Policy.HoldExpiryDays = 0 }},
		{"negative daily fine", func(c *config.Config) { c.Policy.DailyFine = decimal.RequireFromString("-1") }},
		{"negative fine cap", func(c *config.Config) { c.Policy.MaxFine = decimal.RequireFromString("-1") }},
		{"discount above one", func(c *config.Config) { c.Policy.StudentFineDiscount = decimal.RequireFromString("1.5") }},
		{"zero loan limit", func(c *config.Config) { c.Policy.StudentLoanLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, config.Default().Validate())
}
