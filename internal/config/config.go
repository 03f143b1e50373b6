package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	GeminiAPIKey     string        `env:"GEMINI_API_KEY,required"`
	GeminiImageModel string        `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image-preview"`
	GeminiCheckModel string        `env:"GEMINI_CHECK_MODEL" envDefault:"gemini-2.5-flash"`
	GenerateTimeout  time.Duration `env:"GENERATE_TIMEOUT" envDefault:"90s"`

	// PaymentMode is one of: disabled, embedded-checkout, hosted-button.
	PaymentMode          string `env:"PAYMENT_MODE" envDefault:"disabled"`
	PayPalClientID       string `env:"PAYPAL_CLIENT_ID"`
	PayPalHostedButtonID string `env:"PAYPAL_HOSTED_BUTTON_ID"`
	PriceKRW             int    `env:"PRICE_KRW" envDefault:"500"`
	Currency             string `env:"CURRENCY" envDefault:"KRW"`

	StaticDir string `env:"STATIC_DIR" envDefault:"web"`

	// Optional MySQL settings for the generation attempt ledger. When absent
	// the server runs without a ledger.
	DBUser                 string `env:"DB_USER"`
	DBPassword             string `env:"DB_PASSWORD"`
	DBHost                 string `env:"DB_HOST"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.PaymentMode {
	case "disabled":
	case "embedded-checkout", "hosted-button":
		if c.PayPalClientID == "" {
			return fmt.Errorf("PAYPAL_CLIENT_ID is required when PAYMENT_MODE=%s", c.PaymentMode)
		}
		if c.PaymentMode == "hosted-button" && c.PayPalHostedButtonID == "" {
			return fmt.Errorf("PAYPAL_HOSTED_BUTTON_ID is required when PAYMENT_MODE=hosted-button")
		}
	default:
		return fmt.Errorf("unknown PAYMENT_MODE %q", c.PaymentMode)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("GENERATE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) HasDB() bool {
	return c.DBHost != "" && c.DBUser != "" && c.DBName != ""
}
