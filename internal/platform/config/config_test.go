package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Empty variables count as unset, so every default applies.
	for _, key := range []string{"PORT", "IS_PRODUCTION", "ALLOWED_TAX_RATES", "DEFAULT_PAYMENT_TERM_DAYS",
		"RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "TOTALS_CACHE_SIZE"} {
		t.Setenv(key, "")
	}
	t.Setenv("PGSQL_URL", "postgres://localhost/invoicing")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 30, cfg.DefaultPaymentTermDays)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 512, cfg.TotalsCacheSize)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0,2.1,5.5,10,20", cfg.AllowedTaxRates.String())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/invoicing")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ALLOWED_TAX_RATES", "0, 5.5 ,20")
	t.Setenv("DEFAULT_PAYMENT_TERM_DAYS", "45")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TOTALS_CACHE_SIZE", "0")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/invoicing", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 45, cfg.DefaultPaymentTermDays)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, 0, cfg.TotalsCacheSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AllowedTaxRates.IsValidTaxRate(decimal.RequireFromString("5.50")))
	assert.False(t, cfg.AllowedTaxRates.IsValidTaxRate(decimal.NewFromInt(10)))
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("ALLOWED_TAX_RATES", "20,abc")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "ALLOWED_TAX_RATES")

	t.Setenv("ALLOWED_TAX_RATES", "20")
	t.Setenv("DEFAULT_PAYMENT_TERM_DAYS", "-1")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "DEFAULT_PAYMENT_TERM_DAYS")
}
