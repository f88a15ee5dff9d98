package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/utils/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Invoicing
	AllowedTaxRates        validation.TaxRateSet
	DefaultPaymentTermDays int
	TotalsCacheSize        int

	// HTTP
	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
}

const (
	defaultPort            = "8080"
	defaultTaxRates        = "0,2.1,5.5,10,20"
	defaultPaymentTermDays = 30
	defaultRateLimit       = "100-M"
	defaultCORSOrigins     = "http://localhost:3000"
	defaultTotalsCacheSize = 512
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("ALLOWED_TAX_RATES", defaultTaxRates)
	v.SetDefault("DEFAULT_PAYMENT_TERM_DAYS", defaultPaymentTermDays)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("TOTALS_CACHE_SIZE", defaultTotalsCacheSize)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		DefaultPaymentTermDays: v.GetInt("DEFAULT_PAYMENT_TERM_DAYS"),
		TotalsCacheSize:        v.GetInt("TOTALS_CACHE_SIZE"),
		RateLimit:              strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DefaultPaymentTermDays < 0 {
		return nil, fmt.Errorf("DEFAULT_PAYMENT_TERM_DAYS must not be negative, got %d", cfg.DefaultPaymentTermDays)
	}

	rates, err := validation.ParseTaxRateSet(v.GetString("ALLOWED_TAX_RATES"))
	if err != nil {
		return nil, fmt.Errorf("ALLOWED_TAX_RATES: %w", err)
	}
	cfg.AllowedTaxRates = rates

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
