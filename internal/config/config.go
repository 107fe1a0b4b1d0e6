package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Path string `envconfig:"DB_PATH" default:"billing_app.db"`
	}

	// Company is the seller identity printed on exported invoices.
	Company struct {
		Name    string `envconfig:"COMPANY_NAME" default:"Your Company Name"`
		Address string `envconfig:"COMPANY_ADDRESS" default:"123 Business Street"`
		City    string `envconfig:"COMPANY_CITY" default:"City, State 12345"`
		Phone   string `envconfig:"COMPANY_PHONE" default:"(123) 456-7890"`
		Email   string `envconfig:"COMPANY_EMAIL" default:"info@company.com"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
