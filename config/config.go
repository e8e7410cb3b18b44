package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is populated from environment variables, with defaults matching the
// standing library policy.
type Config struct {
	App    AppConfig
	Policy PolicyConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
}

// PolicyConfig carries every lending policy knob. Fine amounts are decimals;
// float env values are parsed exactly, not via float64.
type PolicyConfig struct {
	LoanPeriodDays      int
	RenewalLimit        int
	DailyFine           decimal.Decimal
	StudentFineDiscount decimal.Decimal
	MaxFine             decimal.Decimal
	HoldExpiryDays      int
	ReturnLoyaltyPoints int

	// Active-loan ceilings per member type.
	RegularLoanLimit   int
	StudentLoanLimit   int
	ProfessorLoanLimit int
	VIPLoanLimit       int
}

// Load reads configuration from the environment. A .env file is honored when
// present and silently skipped otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "library-engine"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Policy: PolicyConfig{
			LoanPeriodDays:      getEnvInt("LOAN_PERIOD_DAYS", 14),
			RenewalLimit:        getEnvInt("RENEWAL_LIMIT", 2),
			DailyFine:           getEnvDecimal("DAILY_FINE", "2.50"),
			StudentFineDiscount: getEnvDecimal("STUDENT_FINE_DISCOUNT", "0.5"),
			MaxFine:             getEnvDecimal("MAX_FINE", "50.00"),
			HoldExpiryDays:      getEnvInt("HOLD_EXPIRY_DAYS", 3),
			ReturnLoyaltyPoints: getEnvInt("RETURN_LOYALTY_POINTS", 10),
			RegularLoanLimit:    getEnvInt("REGULAR_LOAN_LIMIT", 5),
			StudentLoanLimit:    getEnvInt("STUDENT_LOAN_LIMIT", 3),
			ProfessorLoanLimit:  getEnvInt("PROFESSOR_LOAN_LIMIT", 10),
			VIPLoanLimit:        getEnvInt("VIP_LOAN_LIMIT", 8),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the standing policy without touching the environment.
// Tests rely on it for deterministic values.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "library-engine",
			Environment: "development",
		},
		Policy: PolicyConfig{
			LoanPeriodDays:      14,
			RenewalLimit:        2,
			DailyFine:           decimal.RequireFromString("2.50"),
			StudentFineDiscount: decimal.RequireFromString("0.5"),
			MaxFine:             decimal.RequireFromString("50.00"),
			HoldExpiryDays:      3,
			ReturnLoyaltyPoints: 10,
			RegularLoanLimit:    5,
			StudentLoanLimit:    3,
			ProfessorLoanLimit:  10,
			VIPLoanLimit:        8,
		},
	}
}

// Validate rejects configurations no lending policy can run with.
func (c *Config) Validate() error {
	p := c.Policy
	if p.LoanPeriodDays <= 0 {
		return fmt.Errorf("LOAN_PERIOD_DAYS must be positive, got %d", p.LoanPeriodDays)
	}
	if p.RenewalLimit < 0 {
		return fmt.Errorf("RENEWAL_LIMIT must not be negative, got %d", p.RenewalLimit)
	}
	if p.HoldExpiryDays <= 0 {
		return fmt.Errorf("HOLD_EXPIRY_DAYS must be positive, got %d", p.HoldExpiryDays)
	}
	if p.DailyFine.IsNegative() {
		return fmt.Errorf("DAILY_FINE must not be negative, got %s", p.DailyFine)
	}
	if p.MaxFine.IsNegative() {
		return fmt.Errorf("MAX_FINE must not be negative, got %s", p.MaxFine)
	}
	if p.StudentFineDiscount.IsNegative() || p.StudentFineDiscount.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("STUDENT_FINE_DISCOUNT must be within [0, 1], got %s", p.StudentFineDiscount)
	}
	for name, limit := range map[string]int{
		"REGULAR_LOAN_LIMIT":   p.RegularLoanLimit,
		"STUDENT_LOAN_LIMIT":   p.StudentLoanLimit,
		"PROFESSOR_LOAN_LIMIT": p.ProfessorLoanLimit,
		"VIP_LOAN_LIMIT":       p.VIPLoanLimit,
	} {
		if limit <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, limit)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.RequireFromString(defaultValue)
	}
	return value
}
