package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment    string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort        string `envconfig:"SERVICE_API_PORT" default:"5000"`
	ServiceHost           string `envconfig:"SERVICE_HOST" default:"localhost:5000"`
	SQLitePath            string `envconfig:"SQLITE_PATH" default:"data/portal.db"`
	SeedPath              string `envconfig:"SEED_PATH"`
	ChurnWindowDays       int    `envconfig:"CHURN_WINDOW_DAYS" default:"60"`
	TransactionsImmutable bool   `envconfig:"TRANSACTIONS_IMMUTABLE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
